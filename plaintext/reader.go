// Package plaintext reads plain UTF-8 text into the stylus document model.
// Input is normalized to Unicode NFC, line endings are unified, and runs of
// blank lines delimit paragraphs.
package plaintext

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/stylus/model"
)

// Reader provides access to the content of a plain text document.
type Reader struct {
	doc *model.Document
}

// Open opens a plain text file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader reads plain text from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading text: %w", err)
	}
	return FromString(string(data)), nil
}

// FromString builds a Reader directly from a string.
func FromString(text string) *Reader {
	doc := model.NewDocument()
	for _, para := range splitParagraphs(normalize(text)) {
		doc.AddBlock(model.NewParagraph(para))
	}
	return &Reader{doc: doc}
}

// Document returns the parsed document tree.
func (r *Reader) Document() *model.Document {
	return r.doc
}

// Text returns the document's plain text content.
func (r *Reader) Text() string {
	return r.doc.PlainText()
}

// Close releases resources associated with the Reader.
// Plain text readers keep no file handles, so Close never fails.
func (r *Reader) Close() error {
	return nil
}

// normalize converts text to Unicode NFC and unifies line endings, so a
// character looks the same to the analyzer however the source encoded it.
func normalize(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// splitParagraphs splits text on runs of blank lines. Lines within one
// paragraph are joined with single spaces; blank input yields nothing.
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
