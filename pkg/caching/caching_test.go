package caching

import (
	"bytes"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if err := cache.Set("https://example.com/book.txt", []byte("content")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data, ok := cache.Get("https://example.com/book.txt")
	if !ok {
		t.Fatal("Get() miss, want hit")
	}
	if !bytes.Equal(data, []byte("content")) {
		t.Errorf("Get() = %q, want %q", data, "content")
	}
}

func TestCacheMiss(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if _, ok := cache.Get("never stored"); ok {
		t.Error("Get() hit, want miss for unknown key")
	}
}

func TestCacheExpiry(t *testing.T) {
	// Zero TTL means every entry is already expired.
	cache, err := NewCache(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if err := cache.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, ok := cache.Get("k"); ok {
		t.Error("Get() hit, want miss after expiry")
	}
}

func TestCacheOverwrite(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if err := cache.Set("k", []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := cache.Set("k", []byte("new")); err != nil {
		t.Fatal(err)
	}

	data, ok := cache.Get("k")
	if !ok || string(data) != "new" {
		t.Errorf("Get() = %q, %v; want %q hit", data, ok, "new")
	}
}
