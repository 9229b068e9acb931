// Package sentence splits block text into sentence spans with
// original-offset tracking and classifies each sentence's readability
// risk. All functions are pure and safe for concurrent use.
package sentence

import "unicode"

// Sentence is one sentence-like span of a text block. Raw holds the
// untrimmed run including trailing punctuation; Text holds the trimmed
// form that scoring operates on. From and To are absolute document
// positions of the trimmed text, half-open.
type Sentence struct {
	Raw  string
	Text string
	From int
	To   int
}

// Segment splits a block's flattened text into sentences, tracking each
// sentence's absolute document position. blockStart is the position of the
// block's opening boundary; its first rune of content sits at blockStart+1.
//
// The text is consumed as maximal runs of non-terminator characters
// followed by any number of terminators (".", "!", "?"). Every rune of the
// input belongs to exactly one run or to a leading terminator prefix, so
// offsets stay aligned with the host document. Runs that trim to nothing
// advance the offset without producing a sentence.
func Segment(text string, blockStart int) []Sentence {
	runes := []rune(text)
	var out []Sentence

	i := 0
	for i < len(runes) && isTerminator(runes[i]) {
		i++
	}
	for i < len(runes) {
		runStart := i
		for i < len(runes) && !isTerminator(runes[i]) {
			i++
		}
		for i < len(runes) && isTerminator(runes[i]) {
			i++
		}
		raw := runes[runStart:i]

		lead := 0
		for lead < len(raw) && unicode.IsSpace(raw[lead]) {
			lead++
		}
		tail := len(raw)
		for tail > lead && unicode.IsSpace(raw[tail-1]) {
			tail--
		}
		if lead == tail {
			continue
		}

		from := blockStart + 1 + runStart + lead
		out = append(out, Sentence{
			Raw:  string(raw),
			Text: string(raw[lead:tail]),
			From: from,
			To:   from + (tail - lead),
		})
	}
	return out
}

// Helper functions

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
