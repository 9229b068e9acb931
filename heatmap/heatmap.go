// Package heatmap flags hard-to-read sentences across a whole document.
//
// [Compute] walks the document tree, segments every text block into
// sentences, scores each sentence's readability risk, and returns the
// flagged ranges as [Span] values in document order. Hosts render the
// spans as inline highlights using the two severity classes.
package heatmap

import (
	"github.com/tsawler/stylus/model"
	"github.com/tsawler/stylus/sentence"
)

// Span flags a range of the document as a readability concern. From and To
// are absolute document positions, half-open, with From < To. Spans from
// the same block never overlap and the full result is ordered by
// ascending From.
type Span struct {
	From     int
	To       int
	Severity sentence.Severity
}

// Compute returns one span per sentence classified warn or danger, in
// document order (block order, then sentence order within each block).
// An empty document yields an empty result, never an error.
//
// Every call recomputes the heatmap from scratch so the result always
// matches the snapshot it was given; hosts re-invoke it whenever the
// document changes. At interactive document sizes a full pass is cheap.
// Hosts with very large documents can memoize per block, keyed by block
// content, outside this package.
func Compute(doc *model.Document) []Span {
	spans := make([]Span, 0)
	if doc == nil {
		return spans
	}
	doc.Walk(func(b *model.Block, pos int) bool {
		if !b.Kind.IsText() || b.Text == "" {
			return true
		}
		for _, s := range sentence.Segment(b.Text, pos) {
			severity := sentence.Classify(s.Text)
			if severity == sentence.SeverityNone {
				continue
			}
			spans = append(spans, Span{From: s.From, To: s.To, Severity: severity})
		}
		return true
	})
	return spans
}
