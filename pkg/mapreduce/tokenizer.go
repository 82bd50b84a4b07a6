package mapreduce

import (
	"regexp"
	"strings"
)

// wordPattern matches maximal runs of letters, digits, underscores and
// apostrophes. Everything else (punctuation, whitespace) is a separator.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_']+`)

// Tokenize lower-cases the text and splits it into word tokens.
// It always succeeds; empty or all-separator input yields an empty slice.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}
