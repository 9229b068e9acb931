package stylus_test

import (
	"fmt"

	"github.com/tsawler/stylus"
	"github.com/tsawler/stylus/model"
)

func ExampleFromText() {
	snap := stylus.MustAnalyze(stylus.FromText("The quick brown fox jumps over the lazy dog.").Statistics())

	fmt.Println(snap.Words, "words in", snap.Sentences, "sentence")
	// Output: 9 words in 1 sentence
}

func ExampleAnalyzer_Heatmap() {
	text := "This is a short sentence. But here is a much longer and more " +
		"syntactically complicated sentence, containing several clauses, semicolons; " +
		"and extra punctuation: to push its score past the danger threshold."

	spans := stylus.MustAnalyze(stylus.FromText(text).Heatmap())

	fmt.Println(len(spans), "flagged,", spans[0].Severity)
	// Output: 1 flagged, danger
}

func ExampleAnalyzer_Select() {
	doc := model.NewDocument()
	doc.AddBlock(model.NewParagraph("One two three."))
	doc.AddBlock(model.NewParagraph("Four five six."))

	snap := stylus.MustAnalyze(stylus.FromDocument(doc).Select(17, 31).Statistics())

	fmt.Println(snap.Words, "words in", snap.Paragraphs, "paragraph")
	// Output: 3 words in 1 paragraph
}

func ExampleFromDocument() {
	doc := model.NewDocument()
	doc.AddBlock(model.NewHeading(1, "Title"))
	doc.AddBlock(model.NewParagraph("Body text of the document."))

	text := stylus.MustAnalyze(stylus.FromDocument(doc).Text())

	fmt.Println(text)
	// Output:
	// Title
	//
	// Body text of the document.
}
