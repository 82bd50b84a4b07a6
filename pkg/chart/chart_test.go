package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nata87/goit-algo2-hw-06/pkg/mapreduce"
)

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top_words.html")

	rendered, err := Render(path, "Top 3 words", []mapreduce.Entry{
		{Word: "the", Count: 3},
		{Word: "cat", Count: 2},
		{Word: "mat", Count: 1},
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !rendered {
		t.Fatal("Render() rendered = false, want true")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("chart file not written: %v", err)
	}
	html := string(data)
	for _, word := range []string{"the", "cat", "mat", "Top 3 words"} {
		if !strings.Contains(html, word) {
			t.Errorf("chart HTML missing %q", word)
		}
	}
}

func TestRenderNoData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top_words.html")

	rendered, err := Render(path, "Top 0 words", nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if rendered {
		t.Error("Render() rendered = true, want false for empty input")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Render() wrote a file for empty input")
	}
}
