package common

import "testing"

func TestSanitizeSource(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "clean URL unchanged",
			raw:  "https://gutenberg.net.au/ebooks01/0100021.txt",
			want: "https://gutenberg.net.au/ebooks01/0100021.txt",
		},
		{
			name: "surrounding whitespace",
			raw:  "  ./corpus/book.txt \n",
			want: "./corpus/book.txt",
		},
		{
			name: "trailing comma from copy-paste",
			raw:  "https://example.com/text.txt,",
			want: "https://example.com/text.txt",
		},
		{
			name: "quoted path",
			raw:  `"input.txt"`,
			want: "input.txt",
		},
		{
			name: "angle brackets",
			raw:  "<https://example.com/a.txt>",
			want: "https://example.com/a.txt",
		},
		{
			name: "file extension dot survives",
			raw:  "notes.txt",
			want: "notes.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeSource(tt.raw); got != tt.want {
				t.Errorf("SanitizeSource(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestContentHash(t *testing.T) {
	h1 := ContentHash([]byte("the cat sat"))
	h2 := ContentHash([]byte("the cat sat"))
	h3 := ContentHash([]byte("something else"))

	if h1 != h2 {
		t.Error("ContentHash() not deterministic")
	}
	if h1 == h3 {
		t.Error("ContentHash() collision on different content")
	}
	if len(h1) != 64 {
		t.Errorf("ContentHash() length = %d, want 64 hex chars", len(h1))
	}
}
