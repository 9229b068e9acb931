// Package format provides input format detection for the stylus library.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Plain indicates plain UTF-8 text.
	Plain
	// Markdown indicates a Markdown document.
	Markdown
	// HTML indicates an HTML document.
	HTML
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// PDF indicates a PDF document.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Plain:
		return "Plain"
	case Markdown:
		return "Markdown"
	case HTML:
		return "HTML"
	case DOCX:
		return "DOCX"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Plain:
		return ".txt"
	case Markdown:
		return ".md"
	case HTML:
		return ".html"
	case DOCX:
		return ".docx"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".text":
		return Plain
	case ".md", ".markdown", ".mdown":
		return Markdown
	case ".html", ".htm":
		return HTML
	case ".docx":
		return DOCX
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// DetectFromMagic determines the format from file content. This is more
// reliable than extension-based detection: it recognizes PDF and ZIP magic
// bytes (probing ZIP archives for the DOCX marker), HTML tags, and
// Markdown syntax, and falls back to Plain for any other valid UTF-8 text.
// Returns Unknown only for content that is none of these.
func DetectFromMagic(data []byte) Format {
	if len(data) == 0 {
		return Unknown
	}

	// PDF magic: %PDF
	if len(data) >= 4 && data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return PDF
	}

	// ZIP magic (DOCX is a ZIP archive): PK\x03\x04
	if len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return Unknown
		}
		return detectZIPFormat(zr)
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	if !utf8.Valid(data) {
		return Unknown
	}
	if looksLikeMarkdown(data) {
		return Markdown
	}
	return Plain
}

// DetectFromReader inspects content through an io.ReaderAt to determine
// format without loading the whole file, probing ZIP archives in place.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	sniff := make([]byte, 512)
	n, err := r.ReadAt(sniff, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	sniff = sniff[:n]

	if len(sniff) >= 4 && sniff[0] == '%' && sniff[1] == 'P' && sniff[2] == 'D' && sniff[3] == 'F' {
		return PDF, nil
	}

	if len(sniff) >= 4 && sniff[0] == 0x50 && sniff[1] == 0x4B && sniff[2] == 0x03 && sniff[3] == 0x04 {
		zr, err := zip.NewReader(r, size)
		if err != nil {
			return Unknown, err
		}
		return detectZIPFormat(zr), nil
	}

	if detectHTMLMagic(sniff) {
		return HTML, nil
	}
	if !utf8.Valid(sniff) {
		return Unknown, nil
	}
	if looksLikeMarkdown(sniff) {
		return Markdown, nil
	}
	if len(bytes.TrimSpace(sniff)) > 0 {
		return Plain, nil
	}
	return Unknown, nil
}

// detectZIPFormat inspects a ZIP archive for the Word document marker.
func detectZIPFormat(zr *zip.Reader) Format {
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			return DOCX
		}
	}
	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}

	upper := strings.ToUpper(string(data[start:]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper[:min(500, len(upper))], "<HTML") {
		return true
	}

	return false
}

// Markdown detection patterns. Several distinct features must appear
// before content is treated as Markdown, so plain text with an occasional
// "#" or "-" is not misclassified.

var (
	atxHeadingPattern    = regexp.MustCompile(`(?m)^#{1,6}\s+\S`)
	codeFencePattern     = regexp.MustCompile("(?m)^(```|~~~)")
	unorderedListPattern = regexp.MustCompile(`(?m)^\s*[-*+]\s+\S`)
	orderedListPattern   = regexp.MustCompile(`(?m)^\s*\d+\.\s+\S`)
	linkPattern          = regexp.MustCompile(`!?\[[^\]]*\]\([^)]+\)`)
	blockquotePattern    = regexp.MustCompile(`(?m)^>\s`)
)

// looksLikeMarkdown reports whether the content shows at least two
// distinct Markdown features.
func looksLikeMarkdown(data []byte) bool {
	patterns := []*regexp.Regexp{
		atxHeadingPattern,
		codeFencePattern,
		unorderedListPattern,
		orderedListPattern,
		linkPattern,
		blockquotePattern,
	}

	indicators := 0
	for _, p := range patterns {
		if p.Match(data) {
			indicators++
			if indicators >= 2 {
				return true
			}
		}
	}
	return false
}
