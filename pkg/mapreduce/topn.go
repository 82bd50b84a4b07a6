package mapreduce

import (
	"fmt"
	"io"
	"sort"
)

// Entry is one ranked word with its final count.
type Entry struct {
	Word  string
	Count int
}

// TopN returns the n most frequent words, sorted by count descending.
// Equal counts are broken lexicographically by word, so output is
// reproducible regardless of map iteration order or worker count.
// n <= 0 returns nil; n larger than the number of distinct words returns
// every word ranked.
func TopN(counts map[string]int, n int) []Entry {
	if n <= 0 || len(counts) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(counts))
	for word, count := range counts {
		entries = append(entries, Entry{Word: word, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})

	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// PrintTop writes the ranked entries as a 1-indexed numbered list.
func PrintTop(w io.Writer, entries []Entry) {
	for i, e := range entries {
		fmt.Fprintf(w, "%2d. %s: %d\n", i+1, e.Word, e.Count)
	}
}
