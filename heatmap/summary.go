package heatmap

import (
	"github.com/tsawler/stylus/lexical"
	"github.com/tsawler/stylus/model"
	"github.com/tsawler/stylus/sentence"
)

// Summary aggregates a heatmap into counts suitable for a status line or
// panel header.
type Summary struct {
	// Spans is the total number of flagged sentences.
	Spans int
	// Warn and Danger break the total down by severity.
	Warn   int
	Danger int
	// FlaggedWords counts the words inside flagged spans; TotalWords
	// counts the words of the whole document.
	FlaggedWords int
	TotalWords   int
}

// Summarize tallies the spans produced by [Compute] against the document
// they were computed from.
func Summarize(doc *model.Document, spans []Span) Summary {
	var sum Summary
	sum.Spans = len(spans)
	for _, sp := range spans {
		switch sp.Severity {
		case sentence.SeverityWarn:
			sum.Warn++
		case sentence.SeverityDanger:
			sum.Danger++
		}
		if doc != nil {
			sum.FlaggedWords += len(lexical.Words(doc.TextBetween(sp.From, sp.To)))
		}
	}
	if doc != nil {
		sum.TotalWords = len(lexical.Words(doc.PlainText()))
	}
	return sum
}
