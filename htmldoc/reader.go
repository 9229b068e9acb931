// Package htmldoc reads HTML documents into the stylus document model.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/stylus/model"
)

// Reader provides access to the prose content of an HTML document.
// Script, style, and other non-content elements are skipped; the remaining
// block structure (headings, paragraphs, lists, block quotes, preformatted
// text) maps onto [model.Block] kinds.
type Reader struct {
	title string
	doc   *model.Document
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{doc: model.NewDocument()}

	if title := findElement(root, "title"); title != nil {
		reader.title = textContent(title)
	}

	body := findElement(root, "body")
	if body == nil {
		// Fragment without a body tag; read from the root
		body = root
	}
	for _, b := range parseChildren(body) {
		reader.doc.AddBlock(b)
	}

	return reader, nil
}

// Document returns the parsed document tree.
func (r *Reader) Document() *model.Document {
	return r.doc
}

// Text returns the document's plain text content.
func (r *Reader) Text() string {
	return r.doc.PlainText()
}

// Title returns the content of the document's title element, if any.
func (r *Reader) Title() string {
	return r.title
}

// Close releases resources associated with the Reader.
// HTML readers keep no file handles, so Close never fails.
func (r *Reader) Close() error {
	return nil
}

// parseChildren collects the blocks produced by a node's children in
// document order.
func parseChildren(n *html.Node) []*model.Block {
	var blocks []*model.Block
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		blocks = append(blocks, parseNode(c)...)
	}
	return blocks
}

// parseNode maps one DOM node to zero or more model blocks.
func parseNode(n *html.Node) []*model.Block {
	if n.Type != html.ElementNode {
		return nil
	}
	if skipElement(n.Data) {
		return nil
	}

	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		if text := textContent(n); text != "" {
			return []*model.Block{model.NewHeading(level, text)}
		}
		return nil

	case "p":
		if text := textContent(n); text != "" {
			return []*model.Block{model.NewParagraph(text)}
		}
		return nil

	case "ul", "ol":
		if list := parseList(n); len(list.Children) > 0 {
			return []*model.Block{list}
		}
		return nil

	case "blockquote":
		children := parseChildren(n)
		if len(children) == 0 {
			// Bare quote text without inner paragraph tags
			if text := textContent(n); text != "" {
				children = []*model.Block{model.NewParagraph(text)}
			}
		}
		if len(children) > 0 {
			return []*model.Block{model.NewBlockQuote(children...)}
		}
		return nil

	case "pre":
		if text := rawTextContent(n); strings.TrimSpace(text) != "" {
			return []*model.Block{model.NewCodeBlock(strings.Trim(text, "\n"))}
		}
		return nil

	case "div", "article", "section", "main", "header", "footer", "nav", "aside", "figure":
		blocks := parseChildren(n)
		if len(blocks) == 0 {
			// A leaf container holding loose text acts as a paragraph
			if text := textContent(n); text != "" {
				return []*model.Block{model.NewParagraph(text)}
			}
		}
		return blocks
	}

	return parseChildren(n)
}

// parseList maps a ul or ol element to a list block. Each li becomes a
// list item holding a paragraph for its direct text plus any nested lists.
func parseList(n *html.Node) *model.Block {
	list := model.NewList()
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		item := model.NewListItem()
		if text := directTextContent(c); text != "" {
			item.AddChild(model.NewParagraph(text))
		}
		for g := c.FirstChild; g != nil; g = g.NextSibling {
			if g.Type == html.ElementNode && (g.Data == "ul" || g.Data == "ol") {
				if nested := parseList(g); len(nested.Children) > 0 {
					item.AddChild(nested)
				}
			}
		}
		if len(item.Children) > 0 {
			list.AddChild(item)
		}
	}
	return list
}

// skipElement reports whether an element carries no prose content.
func skipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// textContent extracts the flattened text of a node and its descendants,
// collapsing runs of whitespace to single spaces.
func textContent(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		if skipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			sb.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// rawTextContent extracts text preserving internal whitespace, for
// preformatted content.
func rawTextContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}

// directTextContent extracts an element's text excluding nested block
// elements, so a list item's own text is separated from its sublists.
func directTextContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
		case html.ElementNode:
			switch c.Data {
			case "ul", "ol", "div", "p", "blockquote", "pre":
				// Nested blocks are parsed separately
			default:
				sb.WriteString(" ")
				collectText(c, &sb)
			}
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
