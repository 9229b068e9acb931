// Package stylus provides a fluent API for analyzing the readability of
// prose documents: per-sentence difficulty highlighting, word and sentence
// statistics, reading and speaking time estimates, a Flesch-Kincaid grade,
// and keyword density.
//
// Basic usage:
//
//	snap, warnings, err := stylus.Open("draft.md").Statistics()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", stylus.FormatWarnings(warnings))
//	}
//	fmt.Println(snap.Words, "words, reads in", snap.ReadingTime)
//
// Highlighting hard sentences:
//
//	spans, _, err := stylus.FromText(draft).Heatmap()
//	for _, s := range spans {
//	    // render s.From..s.To with class s.Severity.String()
//	}
//
// Analyzing a selection:
//
//	snap, _, err := stylus.Open("draft.md").Select(120, 480).Statistics()
//
// For advanced use cases the lower-level packages (model, sentence,
// heatmap, stats, and the per-format readers) are also available.
package stylus

import (
	"io"

	"github.com/tsawler/stylus/format"
	"github.com/tsawler/stylus/model"
)

// Open opens a document file and returns an Analyzer for fluent
// configuration. The format is detected from the filename extension, with
// a content sniff as fallback. Errors are deferred to the first terminal
// operation.
//
// Example:
//
//	snap, warnings, err := stylus.Open("draft.docx").Statistics()
func Open(filename string) *Analyzer {
	return &Analyzer{
		filename: filename,
		format:   format.Detect(filename),
		options:  defaultOptions(),
	}
}

// OpenReader creates an Analyzer over an io.Reader holding a document in
// the given format. Pass [format.Unknown] to detect the format from the
// content. The reader is consumed by the first terminal operation.
//
// Example:
//
//	spans, _, err := stylus.OpenReader(resp.Body, format.HTML).Heatmap()
func OpenReader(r io.Reader, f format.Format) *Analyzer {
	return &Analyzer{
		source:  r,
		format:  f,
		options: defaultOptions(),
	}
}

// FromText creates an Analyzer over plain text. Blank lines delimit
// paragraphs.
//
// Example:
//
//	spans, _, err := stylus.FromText(draft).Heatmap()
func FromText(text string) *Analyzer {
	return &Analyzer{
		text:     text,
		fromText: true,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Analyzer over a document tree the host built
// itself. The tree is treated as an immutable snapshot; the Analyzer
// never mutates it.
//
// Example:
//
//	doc := model.NewDocument()
//	doc.AddBlock(model.NewParagraph("Some text."))
//	spans, _, err := stylus.FromDocument(doc).Heatmap()
func FromDocument(doc *model.Document) *Analyzer {
	return &Analyzer{
		doc:     doc,
		loaded:  true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := stylus.Must(markdown.Open("draft.md"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustAnalyze is a helper that wraps a terminal operation and panics if
// the error is non-nil. It discards warnings and returns just the value.
// It is intended for use in scripts or tests where error handling would
// be cumbersome.
//
// Example:
//
//	snap := stylus.MustAnalyze(stylus.Open("draft.md").Statistics())
func MustAnalyze[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
