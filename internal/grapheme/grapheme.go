// Package grapheme holds the grapheme-cluster helpers shared by the buffer and
// the engine's auxiliary widgets.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates clusters[start:end) with bounds clamped.
func Join(clusters []string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(clusters) {
		end = len(clusters)
	}
	if start >= end {
		return ""
	}
	return strings.Join(clusters[start:end], "")
}

// Words returns the number of Unicode words in text. Segments made only of
// spaces or punctuation do not count.
func Words(text string) int {
	n := 0
	state := -1
	var word string
	for len(text) > 0 {
		word, text, state = uniseg.FirstWordInString(text, state)
		if isWord(word) {
			n++
		}
	}
	return n
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isWord(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
