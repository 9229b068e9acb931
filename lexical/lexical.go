// Package lexical provides word-level text metrics: tokenization, syllable
// estimation, stop-word filtering, and token normalization. All functions
// are pure and safe for concurrent use.
package lexical

import "strings"

// stopWords is the fixed set of high-frequency English function words
// excluded from keyword-density analysis. Initialized once, never mutated.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "a": {}, "to": {}, "of": {},
	"in": {}, "is": {}, "it": {}, "that": {}, "on": {},
	"for": {}, "with": {}, "as": {}, "at": {}, "this": {},
	"by": {}, "an": {}, "be": {}, "are": {}, "from": {},
	"or": {}, "was": {}, "were": {}, "but": {}, "not": {},
}

// Syllables estimates the number of syllables in a word. The estimate is a
// heuristic, not a dictionary lookup: runs of one or two consecutive vowels
// (a, e, i, o, u, y) count as syllable nuclei, a trailing silent "e" is
// discounted, and a trailing "-le" keeps its syllable. Words of three
// letters or fewer count as one syllable. Returns 0 only when the word
// contains no letters at all.
func Syllables(word string) int {
	w := stripNonAlpha(strings.ToLower(word))
	if w == "" {
		return 0
	}
	if len(w) <= 3 {
		return 1
	}

	count := 0
	for i := 0; i < len(w); {
		if !isVowel(w[i]) {
			i++
			continue
		}
		count++
		i++
		if i < len(w) && isVowel(w[i]) {
			i++
		}
	}

	if strings.HasSuffix(w, "e") {
		count--
	}
	if strings.HasSuffix(w, "le") {
		count++
	}
	if count < 1 {
		count = 1
	}
	return count
}

// Words splits text into whitespace-delimited tokens. Empty or blank input
// yields an empty slice.
func Words(text string) []string {
	return strings.Fields(text)
}

// IsStopWord reports whether the token is a common English function word.
// The test is case-insensitive.
func IsStopWord(token string) bool {
	_, ok := stopWords[strings.ToLower(token)]
	return ok
}

// Normalize lowers a word and strips every character outside [a-z0-9],
// producing the form used for frequency counting. The result may be empty;
// callers must exclude empty results from tallies.
func Normalize(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range strings.ToLower(word) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Helper functions

// stripNonAlpha keeps only the characters a-z of an already-lowered word.
func stripNonAlpha(w string) string {
	var b strings.Builder
	b.Grow(len(w))
	for _, r := range w {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
