// Package textsource resolves a source identifier (URL or local file path)
// to decoded text content.
package textsource

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/nata87/goit-algo2-hw-06/pkg/caching"
)

const userAgent = "MapReduceWordCount/1.0"

// SourceError wraps any failure while obtaining text: network errors,
// non-2xx HTTP statuses, missing files, read errors.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("failed to load source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Source fetches text from URLs or the local filesystem. URL bodies are
// cached through an optional file cache so repeat runs skip the network.
type Source struct {
	client *http.Client
	cache  *caching.Cache
}

// New creates a Source with the given request timeout. cache may be nil to
// disable caching.
func New(timeout time.Duration, cache *caching.Cache) *Source {
	return &Source{
		client: &http.Client{Timeout: timeout},
		cache:  cache,
	}
}

// IsURL reports whether the source identifier is an HTTP or HTTPS URL.
// Anything else is treated as a file path.
func IsURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Get resolves the source to its text content. HTML responses are reduced
// to their readable article text. All failures come back as *SourceError;
// callers must not run the pipeline when one is returned.
func (s *Source) Get(source string) (string, error) {
	if IsURL(source) {
		return s.getURL(source)
	}
	return s.getFile(source)
}

func (s *Source) getURL(rawURL string) (string, error) {
	if s.cache != nil {
		if data, ok := s.cache.Get(rawURL); ok {
			return string(data), nil
		}
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &SourceError{Source: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &SourceError{Source: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &SourceError{Source: rawURL, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &SourceError{Source: rawURL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	text := string(body)
	if isHTML(resp.Header.Get("Content-Type"), text) {
		text = extractHTML(rawURL, text)
	}

	if s.cache != nil {
		// Cache writes are best effort; the fetch already succeeded.
		_ = s.cache.Set(rawURL, []byte(text))
	}
	return text, nil
}

func (s *Source) getFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &SourceError{Source: path, Err: err}
	}
	return string(data), nil
}

// isHTML decides whether a response body needs article extraction, by
// Content-Type first and a cheap prefix sniff as fallback.
func isHTML(contentType, body string) bool {
	if strings.Contains(strings.ToLower(contentType), "text/html") {
		return true
	}
	head := strings.ToLower(body)
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}
