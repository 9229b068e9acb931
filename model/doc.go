// Package model defines the document tree shared by the ingestion readers
// and the analysis packages.
//
// A [Document] is an ordered sequence of top-level [Block] nodes. Blocks of
// a text-bearing kind (paragraph, heading, code block) are leaves holding
// their flattened text; the remaining kinds (block quote, list, list item)
// are containers holding child blocks.
//
// # Building a document
//
// Hosts that already have a document tree build one directly:
//
//	doc := model.NewDocument()
//	doc.AddBlock(model.NewHeading(1, "Title"))
//	doc.AddBlock(model.NewParagraph("Body text."))
//
// The reader packages (plaintext, markdown, htmldoc, docx, pdfdoc) produce
// the same structure from files.
//
// # Positions
//
// Analysis results refer into the document through absolute positions.
// Positions count rune tokens: every block contributes an opening and a
// closing boundary token, and text blocks contribute one token per rune of
// content. The first top-level block opens at position 0, so the first
// rune of a block starting at position p sits at p+1. [Document.Walk] and
// [Document.BlocksBetween] yield blocks together with their start
// positions, and [Document.TextBetween] maps a position range back to
// text. Hosts using a different coordinate scheme translate at this
// boundary.
package model
