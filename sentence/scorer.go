package sentence

import "github.com/tsawler/stylus/lexical"

// Classification thresholds. These are fixed design constants: a sentence
// scoring 35 or more is flagged danger, 25 or more is flagged warn.
const (
	warnThreshold   = 25
	dangerThreshold = 35
)

// Score computes a sentence's readability risk score from its length,
// average syllables per word, and clause-separating punctuation:
//
//	score = words*0.5 + avgSyllablesPerWord*10 + punctuation*2
//
// where punctuation counts commas, semicolons, colons, and dashes.
// The input is expected to be a trimmed sentence as produced by [Segment].
func Score(text string) float64 {
	words := lexical.Words(text)

	syllables := 0
	for _, w := range words {
		syllables += lexical.Syllables(w)
	}

	wordCount := len(words)
	divisor := wordCount
	if divisor < 1 {
		divisor = 1
	}
	avgSyllables := float64(syllables) / float64(divisor)

	punctuation := 0
	for _, r := range text {
		switch r {
		case ',', ';', ':', '—', '–':
			punctuation++
		}
	}

	return float64(wordCount)*0.5 + avgSyllables*10 + float64(punctuation)*2
}

// Classify scores a trimmed sentence and maps the score to a severity
// tier: [SeverityDanger] at 35 and above, [SeverityWarn] at 25 and above,
// [SeverityNone] below that.
func Classify(text string) Severity {
	score := Score(text)
	switch {
	case score >= dangerThreshold:
		return SeverityDanger
	case score >= warnThreshold:
		return SeverityWarn
	default:
		return SeverityNone
	}
}
