// Package markdown reads Markdown documents into the stylus document
// model. Parsing is done with goldmark; the block-level AST (headings,
// paragraphs, lists, block quotes, code blocks) maps onto [model.Block]
// kinds, with inline markup flattened to its text content.
package markdown

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/tsawler/stylus/model"
)

// Reader provides access to the content of a Markdown document.
type Reader struct {
	doc *model.Document
}

// Open opens a Markdown file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses Markdown from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading markdown: %w", err)
	}
	return FromString(string(data)), nil
}

// FromString builds a Reader directly from Markdown source.
func FromString(source string) *Reader {
	src := []byte(source)
	root := parser.NewParser(
		parser.WithBlockParsers(parser.DefaultBlockParsers()...),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	).Parse(text.NewReader(src))

	doc := model.NewDocument()
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		for _, b := range convertNode(n, src) {
			doc.AddBlock(b)
		}
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
// Markdown readers keep no file handles, so Close never fails.
func (r *Reader) Close() error {
	return nil
}

// convertNode maps one goldmark AST node to zero or more model blocks.
func convertNode(n ast.Node, src []byte) []*model.Block {
	switch node := n.(type) {
	case *ast.Heading:
		if t := inlineText(node, src); t != "" {
			return []*model.Block{model.NewHeading(node.Level, t)}
		}
		return nil

	case *ast.Paragraph, *ast.TextBlock:
		if t := inlineText(n, src); t != "" {
			return []*model.Block{model.NewParagraph(t)}
		}
		return nil

	case *ast.Blockquote:
		children := convertChildren(n, src)
		if len(children) == 0 {
			return nil
		}
		return []*model.Block{model.NewBlockQuote(children...)}

	case *ast.List:
		list := model.NewList()
		for li := n.FirstChild(); li != nil; li = li.NextSibling() {
			children := convertChildren(li, src)
			if len(children) == 0 {
				continue
			}
			list.AddChild(model.NewListItem(children...))
		}
		if len(list.Children) == 0 {
			return nil
		}
		return []*model.Block{list}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if t := linesText(n, src); strings.TrimSpace(t) != "" {
			return []*model.Block{model.NewCodeBlock(strings.TrimRight(t, "\n"))}
		}
		return nil

	case *ast.ThematicBreak, *ast.HTMLBlock:
		return nil
	}

	return convertChildren(n, src)
}

// convertChildren collects the blocks produced by a node's children.
func convertChildren(n ast.Node, src []byte) []*model.Block {
	var blocks []*model.Block
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		blocks = append(blocks, convertNode(c, src)...)
	}
	return blocks
}

// inlineText flattens the inline content of a block node: text segments
// are read from the source, soft and hard line breaks become spaces, and
// inline markup (emphasis, links, code spans) contributes its text only.
func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	collectInline(n, src, &sb)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func collectInline(n ast.Node, src []byte, sb *strings.Builder) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			sb.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.CodeSpan:
			for g := node.FirstChild(); g != nil; g = g.NextSibling() {
				if t, ok := g.(*ast.Text); ok {
					sb.Write(t.Segment.Value(src))
				}
			}
		case *ast.AutoLink:
			sb.Write(node.URL(src))
		case *ast.Image:
			// Alt text only
			collectInline(node, src, sb)
		default:
			collectInline(c, src, sb)
		}
	}
}

// linesText reads a block node's raw source lines, for code blocks whose
// internal whitespace must survive.
func linesText(n ast.Node, src []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return sb.String()
}
