package model

import "strings"

// Document represents a complete document as an ordered tree of blocks
type Document struct {
	Blocks []*Block
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Blocks: make([]*Block, 0),
	}
}

// AddBlock appends a top-level block to the document
func (d *Document) AddBlock(b *Block) {
	d.Blocks = append(d.Blocks, b)
}

// BlockCount returns the number of top-level blocks
func (d *Document) BlockCount() int {
	return len(d.Blocks)
}

// Size returns the total number of positions the document occupies.
// Positions count rune tokens: every block contributes an opening and a
// closing boundary, and text blocks contribute one position per rune, so
// the content of a block starting at position p begins at p+1.
func (d *Document) Size() int {
	size := 0
	for _, b := range d.Blocks {
		size += b.Size()
	}
	return size
}

// Walk traverses the document tree depth-first, calling fn with each block
// and its absolute start position. Returning false from fn skips the
// block's children; siblings are still visited.
func (d *Document) Walk(fn func(b *Block, pos int) bool) {
	pos := 0
	for _, b := range d.Blocks {
		walkBlock(b, pos, fn)
		pos += b.Size()
	}
}

func walkBlock(b *Block, pos int, fn func(*Block, int) bool) {
	if !fn(b, pos) {
		return
	}
	child := pos + 1
	for _, c := range b.Children {
		walkBlock(c, child, fn)
		child += c.Size()
	}
}

// BlocksBetween traverses the blocks whose position ranges touch the range
// [from, to), calling fn with each block and its absolute start position.
// A collapsed range (from == to) touches the block containing that
// position. Returning false from fn skips the block's children.
func (d *Document) BlocksBetween(from, to int, fn func(b *Block, pos int) bool) {
	if to < from {
		from, to = to, from
	}
	pos := 0
	for _, b := range d.Blocks {
		blocksBetween(b, pos, from, to, fn)
		pos += b.Size()
	}
}

func blocksBetween(b *Block, pos, from, to int, fn func(*Block, int) bool) {
	if !touches(pos, pos+b.Size(), from, to) {
		return
	}
	if !fn(b, pos) {
		return
	}
	child := pos + 1
	for _, c := range b.Children {
		blocksBetween(c, child, from, to, fn)
		child += c.Size()
	}
}

// touches reports whether the block range [start, end) overlaps the
// selection range [from, to).
func touches(start, end, from, to int) bool {
	if from == to {
		return start <= from && from < end
	}
	return start < to && from < end
}

// PlainText returns the document's full text content: the text of every
// text block in document order, joined with blank lines.
func (d *Document) PlainText() string {
	return d.TextBetween(0, d.Size())
}

// TextBetween returns the text content between two absolute positions.
// Content from distinct blocks is joined with blank lines. Positions
// outside the document are clamped.
func (d *Document) TextBetween(from, to int) string {
	if to < from {
		from, to = to, from
	}
	var sb strings.Builder
	first := true
	d.Walk(func(b *Block, pos int) bool {
		if !b.Kind.IsText() {
			return true
		}
		runes := []rune(b.Text)
		lo := from - pos - 1
		hi := to - pos - 1
		if lo < 0 {
			lo = 0
		}
		if hi > len(runes) {
			hi = len(runes)
		}
		if lo >= hi {
			return true
		}
		if !first {
			sb.WriteString("\n\n")
		}
		sb.WriteString(string(runes[lo:hi]))
		first = false
		return true
	})
	return sb.String()
}
