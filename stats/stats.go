// Package stats aggregates document-level writing statistics: word,
// character, sentence, and paragraph counts, reading and speaking time
// estimates, a Flesch-Kincaid reading grade, and a keyword-density
// ranking. Statistics are computed over the active text of a pass, which
// is the selection text when a selection exists and the full document
// text otherwise.
package stats

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/stylus/lexical"
	"github.com/tsawler/stylus/model"
)

// GradeUnavailable is the ReadingGrade value used when no grade can be
// computed: empty text, no sentences, or a non-positive raw grade.
const GradeUnavailable = "N/A"

// maxKeywords caps the keyword-density ranking.
const maxKeywords = 10

// Keyword is one entry of the keyword-density ranking.
type Keyword struct {
	Word  string
	Count int
	// Density is the keyword's share of all words as a percentage,
	// rounded to one decimal.
	Density float64
}

// Snapshot holds the results of one statistics pass. Snapshots are plain
// values; every pass produces a fresh one.
type Snapshot struct {
	Words int
	// Characters counts runes excluding whitespace;
	// CharactersWithFormatting counts runes as-is.
	Characters               int
	CharactersWithFormatting int
	Sentences                int
	Paragraphs               int
	ReadingTime              string
	SpeakingTime             string
	ReadingGrade             string
	Keywords                 []Keyword
}

// Compute aggregates statistics over activeText. The document tree and
// selection are consulted only for paragraph counting: with no selection
// the paragraph count is the number of top-level blocks, otherwise it is
// the number of structural blocks the selection touches.
//
// Degenerate input is not an error: blank activeText yields a zeroed
// snapshot with ReadingGrade set to [GradeUnavailable].
func Compute(activeText string, doc *model.Document, sel model.Selection) Snapshot {
	snap := Snapshot{
		ReadingTime:  FormatTime(0, ReadingWPM),
		SpeakingTime: FormatTime(0, SpeakingWPM),
		ReadingGrade: GradeUnavailable,
		Keywords:     []Keyword{},
	}

	trimmed := strings.TrimSpace(activeText)
	if trimmed == "" {
		return snap
	}

	words := lexical.Words(trimmed)
	snap.Words = len(words)
	snap.Sentences = countSentences(trimmed)
	snap.Characters = countNonSpace(trimmed)
	snap.CharactersWithFormatting = utf8.RuneCountInString(trimmed)
	snap.Paragraphs = countParagraphs(doc, sel)

	syllables := 0
	for _, w := range words {
		syllables += lexical.Syllables(w)
	}

	if snap.Words > 0 && snap.Sentences > 0 {
		grade := 0.39*float64(snap.Words)/float64(snap.Sentences) +
			11.8*float64(syllables)/float64(snap.Words) - 15.59
		if grade > 0 {
			rounded := int(math.Round(grade))
			if rounded < 1 {
				rounded = 1
			}
			snap.ReadingGrade = Ordinal(rounded)
		}
	}

	snap.Keywords = topKeywords(words)
	snap.ReadingTime = FormatTime(snap.Words, ReadingWPM)
	snap.SpeakingTime = FormatTime(snap.Words, SpeakingWPM)
	return snap
}

// countSentences counts sentence-like pieces of text: the non-blank
// pieces left after splitting on runs of terminator characters. This is a
// count-only pass; the sentence package does the offset-tracking split.
func countSentences(text string) int {
	pieces := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	count := 0
	for _, p := range pieces {
		if strings.TrimSpace(p) != "" {
			count++
		}
	}
	return count
}

// countParagraphs counts top-level blocks when the selection is empty,
// otherwise the structural blocks touched by the selection.
func countParagraphs(doc *model.Document, sel model.Selection) int {
	if doc == nil {
		return 0
	}
	if sel.Empty() {
		return doc.BlockCount()
	}
	count := 0
	doc.BlocksBetween(sel.From, sel.To, func(b *model.Block, pos int) bool {
		if b.Kind.IsBlock() {
			count++
		}
		return true
	})
	return count
}

// topKeywords ranks normalized non-stop words by frequency, descending,
// with ties kept in first-seen order, capped at maxKeywords entries.
func topKeywords(words []string) []Keyword {
	counts := make(map[string]int)
	order := make([]string, 0, len(words))
	for _, w := range words {
		norm := lexical.Normalize(w)
		if norm == "" || lexical.IsStopWord(norm) {
			continue
		}
		if _, seen := counts[norm]; !seen {
			order = append(order, norm)
		}
		counts[norm]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}

	total := len(words)
	keywords := make([]Keyword, 0, len(order))
	for _, w := range order {
		density := float64(counts[w]) / float64(total) * 100
		keywords = append(keywords, Keyword{
			Word:    w,
			Count:   counts[w],
			Density: math.Round(density*10) / 10,
		})
	}
	return keywords
}

// Helper functions

func countNonSpace(text string) int {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}
