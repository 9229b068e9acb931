package stylus

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/stylus/docx"
	"github.com/tsawler/stylus/format"
	"github.com/tsawler/stylus/heatmap"
	"github.com/tsawler/stylus/htmldoc"
	"github.com/tsawler/stylus/markdown"
	"github.com/tsawler/stylus/model"
	"github.com/tsawler/stylus/pdfdoc"
	"github.com/tsawler/stylus/plaintext"
	"github.com/tsawler/stylus/stats"
)

// Analyzer provides a fluent interface for analyzing document readability.
// Each configuration method returns a new Analyzer instance, making it
// safe for concurrent use and allowing method chaining.
type Analyzer struct {
	// Source (exactly one of these is set at construction)
	filename string
	source   io.Reader
	text     string
	fromText bool

	// Format for file and stream sources
	format format.Format

	// Loaded document snapshot
	doc    *model.Document
	loaded bool

	// Configuration
	options analyzeOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during loading
	warnings []Warning
}

// Report bundles the results of a full analysis pass: statistics over the
// active text, heatmap spans for the whole document, and a span summary.
type Report struct {
	Statistics stats.Snapshot
	Spans      []heatmap.Span
	Summary    heatmap.Summary
}

// clone creates a shallow copy of the Analyzer with a deep copy of
// options, so each chain method returns an independent instance.
func (a *Analyzer) clone() *Analyzer {
	return &Analyzer{
		filename: a.filename,
		source:   a.source,
		text:     a.text,
		fromText: a.fromText,
		format:   a.format,
		doc:      a.doc,
		loaded:   a.loaded,
		options:  a.options.clone(),
		err:      a.err,
		warnings: append([]Warning(nil), a.warnings...),
	}
}

// ============================================================================
// Configuration Methods (return new Analyzer instance)
// ============================================================================

// Select restricts statistics to the text between two absolute document
// positions. The heatmap always covers the whole document; paragraph
// counting switches to the blocks the selection touches. Positions
// outside the document are clamped.
//
// Example:
//
//	snap, _, err := stylus.Open("draft.md").Select(120, 480).Statistics()
func (a *Analyzer) Select(from, to int) *Analyzer {
	newA := a.clone()
	newA.options.selection = model.Selection{From: from, To: to}
	newA.options.hasSelection = true
	return newA
}

// ClearSelection removes a previously configured selection, returning
// statistics to full-document scope.
//
// Example:
//
//	base := stylus.Open("draft.md").Select(0, 100)
//	full := base.ClearSelection()
func (a *Analyzer) ClearSelection() *Analyzer {
	newA := a.clone()
	newA.options.selection = model.Selection{}
	newA.options.hasSelection = false
	return newA
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Document loads and returns the document tree. The tree is shared with
// the Analyzer; treat it as read-only.
//
// Example:
//
//	doc, warnings, err := stylus.Open("draft.md").Document()
func (a *Analyzer) Document() (*model.Document, []Warning, error) {
	if err := a.ensureDocument(); err != nil {
		return nil, a.warnings, err
	}
	return a.doc, a.warnings, nil
}

// Text loads the document and returns its plain text content.
//
// Example:
//
//	text, warnings, err := stylus.Open("draft.docx").Text()
func (a *Analyzer) Text() (string, []Warning, error) {
	if err := a.ensureDocument(); err != nil {
		return "", a.warnings, err
	}
	return a.doc.PlainText(), a.warnings, nil
}

// Heatmap returns one span per sentence flagged as hard to read, in
// document order. The host renders each span as an inline highlight using
// the span's severity class.
//
// Example:
//
//	spans, warnings, err := stylus.Open("draft.md").Heatmap()
//	for _, s := range spans {
//	    fmt.Println(s.From, s.To, s.Severity)
//	}
func (a *Analyzer) Heatmap() ([]heatmap.Span, []Warning, error) {
	if err := a.ensureDocument(); err != nil {
		return nil, a.warnings, err
	}
	return heatmap.Compute(a.doc), a.warnings, nil
}

// Statistics returns a statistics snapshot over the active text: the
// configured selection's text when one is set and non-empty, the full
// document text otherwise.
//
// Example:
//
//	snap, warnings, err := stylus.Open("draft.md").Statistics()
//	fmt.Println(snap.Words, snap.ReadingGrade, snap.ReadingTime)
func (a *Analyzer) Statistics() (stats.Snapshot, []Warning, error) {
	if err := a.ensureDocument(); err != nil {
		return stats.Snapshot{}, a.warnings, err
	}
	activeText, sel := a.activeText()
	return stats.Compute(activeText, a.doc, sel), a.warnings, nil
}

// Report runs the full analysis in one pass: statistics over the active
// text plus the document heatmap and its summary.
//
// Example:
//
//	report, warnings, err := stylus.Open("draft.md").Report()
//	fmt.Println(report.Statistics.Words, "words,", report.Summary.Danger, "hard sentences")
func (a *Analyzer) Report() (Report, []Warning, error) {
	if err := a.ensureDocument(); err != nil {
		return Report{}, a.warnings, err
	}
	activeText, sel := a.activeText()
	spans := heatmap.Compute(a.doc)
	return Report{
		Statistics: stats.Compute(activeText, a.doc, sel),
		Spans:      spans,
		Summary:    heatmap.Summarize(a.doc, spans),
	}, a.warnings, nil
}

// ============================================================================
// Loading
// ============================================================================

// activeText resolves the text and selection a statistics pass operates
// on. A selection that clamps to nothing falls back to the full text.
func (a *Analyzer) activeText() (string, model.Selection) {
	if !a.options.hasSelection {
		return a.doc.PlainText(), model.Selection{}
	}
	sel := a.options.selection.Clamp(a.doc)
	if sel != a.options.selection {
		a.warn("analyze", "selection clamped to document bounds")
	}
	if sel.Empty() {
		return a.doc.PlainText(), model.Selection{}
	}
	return a.doc.TextBetween(sel.From, sel.To), sel
}

// ensureDocument loads the document snapshot if it is not loaded yet.
func (a *Analyzer) ensureDocument() error {
	if a.err != nil {
		return a.err
	}
	if a.loaded {
		return nil
	}

	doc, err := a.loadDocument()
	if err != nil {
		a.err = err
		return err
	}
	a.doc = doc
	a.loaded = true

	if doc.BlockCount() == 0 {
		a.warn("analyze", "document has no text content")
	}
	return nil
}

// loadDocument reads the configured source into a document tree.
func (a *Analyzer) loadDocument() (*model.Document, error) {
	switch {
	case a.fromText:
		return plaintext.FromString(a.text).Document(), nil

	case a.source != nil:
		f := a.format
		src := a.source
		if f == format.Unknown {
			data, err := io.ReadAll(src)
			if err != nil {
				return nil, fmt.Errorf("reading source: %w", err)
			}
			f = format.DetectFromMagic(data)
			src = bytes.NewReader(data)
		}
		return a.readDocument(f, src)

	case a.filename != "":
		f := a.format
		if f == format.Unknown {
			detected, err := detectFile(a.filename)
			if err != nil {
				return nil, err
			}
			f = detected
		}
		if f == format.PDF {
			return a.openPDF(a.filename)
		}
		file, err := os.Open(a.filename)
		if err != nil {
			return nil, fmt.Errorf("opening file: %w", err)
		}
		defer file.Close()
		return a.readDocument(f, file)

	default:
		return nil, fmt.Errorf("no document source specified")
	}
}

// readDocument dispatches to the reader package for the format.
func (a *Analyzer) readDocument(f format.Format, r io.Reader) (*model.Document, error) {
	switch f {
	case format.Plain:
		pr, err := plaintext.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("reading plain text: %w", err)
		}
		return pr.Document(), nil

	case format.Markdown:
		mr, err := markdown.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("reading markdown: %w", err)
		}
		return mr.Document(), nil

	case format.HTML:
		hr, err := htmldoc.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("reading HTML: %w", err)
		}
		return hr.Document(), nil

	case format.DOCX:
		dr, err := docx.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("reading DOCX: %w", err)
		}
		defer dr.Close()
		return dr.Document(), nil

	case format.PDF:
		pr, err := pdfdoc.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("reading PDF: %w", err)
		}
		a.warnSkippedPages(pr.Skipped())
		return pr.Document(), nil

	default:
		return nil, fmt.Errorf("unsupported document format: %s", f)
	}
}

// openPDF opens a PDF by path so the reader can seek the file directly.
func (a *Analyzer) openPDF(filename string) (*model.Document, error) {
	pr, err := pdfdoc.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("reading PDF: %w", err)
	}
	defer pr.Close()
	a.warnSkippedPages(pr.Skipped())
	return pr.Document(), nil
}

func (a *Analyzer) warnSkippedPages(skipped []int) {
	for _, page := range skipped {
		a.warn("open", fmt.Sprintf("no text extracted from page %d", page))
	}
}

func (a *Analyzer) warn(stage, message string) {
	a.warnings = append(a.warnings, Warning{Stage: stage, Message: message})
}

// detectFile sniffs a file's format from its content.
func detectFile(filename string) (format.Format, error) {
	file, err := os.Open(filename)
	if err != nil {
		return format.Unknown, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return format.Unknown, fmt.Errorf("inspecting file: %w", err)
	}
	f, err := format.DetectFromReader(file, info.Size())
	if err != nil {
		return format.Unknown, fmt.Errorf("detecting format: %w", err)
	}
	return f, nil
}
