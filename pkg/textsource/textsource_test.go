package textsource

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nata87/goit-algo2-hw-06/pkg/caching"
)

func TestGetPlainTextURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != userAgent {
			t.Errorf("User-Agent = %q, want %q", got, userAgent)
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("the cat sat on the mat"))
	}))
	defer server.Close()

	src := New(5*time.Second, nil)
	text, err := src.Get(server.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if text != "the cat sat on the mat" {
		t.Errorf("Get() = %q, want plain body", text)
	}
}

func TestGetHTMLURLStripsMarkup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>t</title><script>var x = 1;</script></head>` +
			`<body><p>words inside paragraphs survive extraction</p></body></html>`))
	}))
	defer server.Close()

	src := New(5*time.Second, nil)
	text, err := src.Get(server.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if strings.Contains(text, "<") {
		t.Errorf("Get() still contains markup: %q", text)
	}
	if !strings.Contains(text, "words inside paragraphs survive extraction") {
		t.Errorf("Get() lost body text: %q", text)
	}
	if strings.Contains(text, "var x") {
		t.Errorf("Get() kept script content: %q", text)
	}
}

func TestGetURLNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	src := New(5*time.Second, nil)
	_, err := src.Get(server.URL)
	if err == nil {
		t.Fatal("Get() error = nil, want SourceError for 404")
	}

	var srcErr *SourceError
	if !errors.As(err, &srcErr) {
		t.Errorf("Get() error type = %T, want *SourceError", err)
	}
}

func TestGetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("file words"), 0644); err != nil {
		t.Fatal(err)
	}

	src := New(5*time.Second, nil)
	text, err := src.Get(path)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if text != "file words" {
		t.Errorf("Get() = %q, want %q", text, "file words")
	}
}

func TestGetFileMissing(t *testing.T) {
	src := New(5*time.Second, nil)
	_, err := src.Get(filepath.Join(t.TempDir(), "does-not-exist.txt"))

	var srcErr *SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("Get() error = %v, want *SourceError", err)
	}
}

func TestGetURLUsesCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("cached body"))
	}))
	defer server.Close()

	cache, err := caching.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	src := New(5*time.Second, cache)
	for i := 0; i < 3; i++ {
		text, err := src.Get(server.URL)
		if err != nil {
			t.Fatalf("Get() #%d error = %v", i+1, err)
		}
		if text != "cached body" {
			t.Errorf("Get() #%d = %q", i+1, text)
		}
	}

	if hits != 1 {
		t.Errorf("server hits = %d, want 1 (later calls served from cache)", hits)
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"https://gutenberg.net.au/ebooks01/0100021.txt", true},
		{"HTTP://EXAMPLE.COM", true},
		{"./local/file.txt", false},
		{"/abs/path.txt", false},
		{"ftp://example.com/file", false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.source); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.source, got, tt.want)
		}
	}
}
