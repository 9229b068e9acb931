package model

import "unicode/utf8"

// BlockKind represents the structural role of a block
type BlockKind int

const (
	KindUnknown BlockKind = iota
	KindParagraph
	KindHeading
	KindBlockQuote
	KindList
	KindListItem
	KindCodeBlock
)

func (k BlockKind) String() string {
	switch k {
	case KindParagraph:
		return "Paragraph"
	case KindHeading:
		return "Heading"
	case KindBlockQuote:
		return "BlockQuote"
	case KindList:
		return "List"
	case KindListItem:
		return "ListItem"
	case KindCodeBlock:
		return "CodeBlock"
	default:
		return "Unknown"
	}
}

// IsText reports whether blocks of this kind directly carry text content.
// Only text-bearing leaf blocks are analyzed for readability.
func (k BlockKind) IsText() bool {
	switch k {
	case KindParagraph, KindHeading, KindCodeBlock:
		return true
	default:
		return false
	}
}

// IsBlock reports whether this kind counts as a structural block.
// Structural blocks contribute to paragraph counting over a selection.
func (k BlockKind) IsBlock() bool {
	return k != KindUnknown
}

// Block is a node in the document tree. Text-bearing kinds (paragraph,
// heading, code block) are leaves holding their flattened text; the
// remaining kinds are containers holding child blocks.
type Block struct {
	Kind     BlockKind
	Level    int // heading level 1-6, zero otherwise
	Text     string
	Children []*Block
}

// NewParagraph creates a paragraph block
func NewParagraph(text string) *Block {
	return &Block{Kind: KindParagraph, Text: text}
}

// NewHeading creates a heading block with the given level (clamped to 1-6)
func NewHeading(level int, text string) *Block {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return &Block{Kind: KindHeading, Level: level, Text: text}
}

// NewCodeBlock creates a code block
func NewCodeBlock(text string) *Block {
	return &Block{Kind: KindCodeBlock, Text: text}
}

// NewBlockQuote creates a block quote containing the given children
func NewBlockQuote(children ...*Block) *Block {
	return &Block{Kind: KindBlockQuote, Children: children}
}

// NewList creates a list containing the given items
func NewList(items ...*Block) *Block {
	return &Block{Kind: KindList, Children: items}
}

// NewListItem creates a list item containing the given children
func NewListItem(children ...*Block) *Block {
	return &Block{Kind: KindListItem, Children: children}
}

// AddChild appends a child block to a container block.
func (b *Block) AddChild(child *Block) {
	b.Children = append(b.Children, child)
}

// Size returns the number of positions the block occupies in the document
// coordinate space: an opening boundary, the content, and a closing
// boundary. Text-bearing blocks contribute one position per rune of text;
// containers contribute the sizes of their children.
func (b *Block) Size() int {
	if b.Kind.IsText() {
		return utf8.RuneCountInString(b.Text) + 2
	}
	size := 2
	for _, c := range b.Children {
		size += c.Size()
	}
	return size
}

// PlainText returns the flattened text of the block. For containers the
// texts of nested text blocks are joined with blank lines.
func (b *Block) PlainText() string {
	if b.Kind.IsText() {
		return b.Text
	}
	var parts []string
	for _, c := range b.Children {
		if t := c.PlainText(); t != "" {
			parts = append(parts, t)
		}
	}
	return joinBlocks(parts)
}

func joinBlocks(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	n := 0
	for _, p := range parts {
		n += len(p) + 2
	}
	out := make([]byte, 0, n)
	for i, p := range parts {
		if i > 0 {
			out = append(out, '\n', '\n')
		}
		out = append(out, p...)
	}
	return string(out)
}
