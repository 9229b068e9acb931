// Package pdfdoc reads the plain text of PDF documents into the stylus
// document model. Text is extracted per page; blank-line runs within the
// extracted text delimit paragraphs. PDF layout (columns, headers, tables)
// is not reconstructed, so prose documents extract far better than
// heavily formatted ones.
package pdfdoc

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/stylus/model"
)

// Reader provides access to the text content of a PDF document.
type Reader struct {
	doc     *model.Document
	pages   int
	skipped []int
	closeFn func() error
}

// Open opens a PDF file for reading. Pages whose text cannot be extracted
// are skipped rather than failing the whole document; Skipped reports
// which ones.
func Open(filename string) (*Reader, error) {
	f, r, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	reader := fromPDF(r)
	reader.closeFn = f.Close
	return reader, nil
}

// OpenReader parses a PDF document from an io.Reader. The data is
// buffered in memory, so this suits interactively-sized documents.
func OpenReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading PDF data: %w", err)
	}
	pr, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parsing PDF: %w", err)
	}
	return fromPDF(pr), nil
}

// fromPDF extracts text from every page of a parsed PDF.
func fromPDF(r *pdf.Reader) *Reader {
	reader := &Reader{
		doc:   model.NewDocument(),
		pages: r.NumPage(),
	}

	var sb strings.Builder
	for i := 1; i <= reader.pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			reader.skipped = append(reader.skipped, i)
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil {
			reader.skipped = append(reader.skipped, i)
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n\n")
	}

	for _, para := range splitParagraphs(sb.String()) {
		reader.doc.AddBlock(model.NewParagraph(para))
	}
	return reader
}

// Document returns the parsed document tree.
func (r *Reader) Document() *model.Document {
	return r.doc
}

// Text returns the document's plain text content.
func (r *Reader) Text() string {
	return r.doc.PlainText()
}

// PageCount returns the number of pages in the source PDF.
func (r *Reader) PageCount() int {
	return r.pages
}

// Skipped returns the 1-indexed pages whose text could not be extracted.
func (r *Reader) Skipped() []int {
	return r.skipped
}

// Close releases the underlying file. It is safe to call Close multiple
// times.
func (r *Reader) Close() error {
	if r.closeFn == nil {
		return nil
	}
	fn := r.closeFn
	r.closeFn = nil
	return fn()
}

// splitParagraphs splits extracted text on blank-line runs, joining the
// lines of each paragraph with single spaces.
func splitParagraphs(text string) []string {
	var paras []string
	for _, chunk := range strings.Split(text, "\n\n") {
		lines := strings.Fields(chunk)
		if len(lines) == 0 {
			continue
		}
		paras = append(paras, strings.Join(lines, " "))
	}
	return paras
}
