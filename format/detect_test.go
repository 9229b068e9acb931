package format

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Plain, "Plain"},
		{Markdown, "Markdown"},
		{HTML, "HTML"},
		{DOCX, "DOCX"},
		{PDF, "PDF"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Plain, ".txt"},
		{Markdown, ".md"},
		{HTML, ".html"},
		{DOCX, ".docx"},
		{PDF, ".pdf"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"notes.txt", Plain},
		{"notes.text", Plain},
		{"README.md", Markdown},
		{"post.markdown", Markdown},
		{"page.html", HTML},
		{"page.htm", HTML},
		{"report.docx", DOCX},
		{"paper.pdf", PDF},
		{"REPORT.PDF", PDF},
		{"archive.tar", Unknown},
		{"noextension", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"pdf magic", []byte("%PDF-1.7\n"), PDF},
		{"html doctype", []byte("<!DOCTYPE html><html></html>"), HTML},
		{"html tag", []byte("  <html><body></body></html>"), HTML},
		{"markdown two markers", []byte("# Heading\n\n- item one\n- item two\n"), Markdown},
		{"plain prose", []byte("Just ordinary prose without markup.\n"), Plain},
		{"single hash is plain", []byte("# looks like a heading but nothing else\n"), Plain},
		{"empty", nil, Unknown},
		{"invalid utf8", []byte{0xff, 0xfe, 0x00, 0x01}, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromMagic_DOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/document.xml")
	w.Write([]byte("<w:document/>"))
	zw.Close()

	if got := DetectFromMagic(buf.Bytes()); got != DOCX {
		t.Errorf("DetectFromMagic(docx zip) = %v, want DOCX", got)
	}
}

func TestDetectFromMagic_PlainZIP(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("some/other.txt")
	w.Write([]byte("data"))
	zw.Close()

	if got := DetectFromMagic(buf.Bytes()); got != Unknown {
		t.Errorf("DetectFromMagic(generic zip) = %v, want Unknown", got)
	}
}

func TestDetectFromReader(t *testing.T) {
	data := []byte("%PDF-1.4 content")
	got, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if got != PDF {
		t.Errorf("DetectFromReader() = %v, want PDF", got)
	}
}
