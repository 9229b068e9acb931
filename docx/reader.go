// Package docx reads DOCX (Office Open XML) documents into the stylus
// document model. Only the prose content of word/document.xml is read:
// paragraph text assembled from runs, with heading paragraphs recognized
// by their style. Styling, numbering, tables, and embedded media are
// ignored.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tsawler/stylus/model"
)

// Reader provides access to the prose content of a DOCX document.
type Reader struct {
	closer io.Closer
	doc    *model.Document
}

// documentXML mirrors the parts of word/document.xml the reader consumes.
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    struct {
		Paragraphs []paragraphXML `xml:"p"`
	} `xml:"body"`
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	Properties struct {
		Style struct {
			Val string `xml:"val,attr"`
		} `xml:"pStyle"`
	} `xml:"pPr"`
	Runs []struct {
		Texts []string `xml:"t"`
	} `xml:"r"`
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	reader, err := fromZip(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	reader.closer = zr
	return reader, nil
}

// OpenReader parses a DOCX document from an io.Reader. The archive is
// buffered in memory, so this suits interactively-sized documents.
func OpenReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading DOCX data: %w", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return fromZip(zr)
}

// fromZip locates and parses word/document.xml inside the archive.
func fromZip(zr *zip.Reader) (*Reader, error) {
	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("not a DOCX file: word/document.xml not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("opening word/document.xml: %w", err)
	}
	defer rc.Close()

	var parsed documentXML
	if err := xml.NewDecoder(rc).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parsing word/document.xml: %w", err)
	}

	doc := model.NewDocument()
	for _, p := range parsed.Body.Paragraphs {
		text := paragraphText(p)
		if text == "" {
			continue
		}
		if level, ok := headingLevel(p.Properties.Style.Val); ok {
			doc.AddBlock(model.NewHeading(level, text))
		} else {
			doc.AddBlock(model.NewParagraph(text))
		}
	}

	return &Reader{doc: doc}, nil
}

// Document returns the parsed document tree.
func (r *Reader) Document() *model.Document {
	return r.doc
}

// Text returns the document's plain text content.
func (r *Reader) Text() string {
	return r.doc.PlainText()
}

// Close releases the underlying archive, if the Reader owns one.
// It is safe to call Close multiple times.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	return c.Close()
}

// paragraphText joins the text runs of a paragraph.
func paragraphText(p paragraphXML) string {
	var sb strings.Builder
	for _, run := range p.Runs {
		for _, t := range run.Texts {
			sb.WriteString(t)
		}
	}
	return strings.TrimSpace(sb.String())
}

// headingLevel reports whether a paragraph style ID names a Word heading
// style (Heading1 through Heading9, or Title) and at which level.
func headingLevel(styleID string) (int, bool) {
	s := strings.ToLower(styleID)
	if s == "title" {
		return 1, true
	}
	if rest, ok := strings.CutPrefix(s, "heading"); ok {
		if level, err := strconv.Atoi(rest); err == nil && level >= 1 && level <= 9 {
			return level, true
		}
	}
	return 0, false
}
