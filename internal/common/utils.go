package common

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// SanitizeSource performs basic cleanup on a source identifier to handle
// common copy-paste issues: surrounding whitespace, quotes, markdown
// angle brackets and trailing punctuation.
func SanitizeSource(raw string) string {
	cleaned := strings.TrimSpace(raw)

	// A trailing "." is left alone: it could belong to a file extension.
	for _, char := range []string{",", ")", "]", "\"", "'", ">", ";"} {
		cleaned = strings.TrimSuffix(cleaned, char)
	}
	for _, char := range []string{"(", "[", "<", "\"", "'"} {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}
