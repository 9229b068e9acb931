package markdown

import (
	"strings"
	"testing"

	"github.com/tsawler/stylus/model"
)

func TestFromString_BlockKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []model.BlockKind
	}{
		{
			name:  "heading and paragraph",
			input: "# Title\n\nBody text.",
			want:  []model.BlockKind{model.KindHeading, model.KindParagraph},
		},
		{
			name:  "unordered list",
			input: "- one\n- two\n",
			want:  []model.BlockKind{model.KindList},
		},
		{
			name:  "ordered list",
			input: "1. first\n2. second\n",
			want:  []model.BlockKind{model.KindList},
		},
		{
			name:  "blockquote",
			input: "> quoted text\n",
			want:  []model.BlockKind{model.KindBlockQuote},
		},
		{
			name:  "fenced code block",
			input: "```\nfunc main() {}\n```\n",
			want:  []model.BlockKind{model.KindCodeBlock},
		},
		{
			name:  "indented code block",
			input: "para\n\n    indented code\n",
			want:  []model.BlockKind{model.KindParagraph, model.KindCodeBlock},
		},
		{
			name:  "thematic break dropped",
			input: "above\n\n---\n\nbelow\n",
			want:  []model.BlockKind{model.KindParagraph, model.KindParagraph},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := FromString(tt.input).Document()
			if doc.BlockCount() != len(tt.want) {
				t.Fatalf("BlockCount() = %d, want %d", doc.BlockCount(), len(tt.want))
			}
			for i, kind := range tt.want {
				if doc.Blocks[i].Kind != kind {
					t.Errorf("block %d kind = %v, want %v", i, doc.Blocks[i].Kind, kind)
				}
			}
		})
	}
}

func TestFromString_HeadingLevels(t *testing.T) {
	doc := FromString("# One\n\n### Three\n\n###### Six\n").Document()
	if doc.BlockCount() != 3 {
		t.Fatalf("BlockCount() = %d, want 3", doc.BlockCount())
	}

	wantLevels := []int{1, 3, 6}
	for i, want := range wantLevels {
		if got := doc.Blocks[i].Level; got != want {
			t.Errorf("heading %d level = %d, want %d", i, got, want)
		}
	}
}

func TestFromString_InlineMarkupFlattened(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"emphasis", "some *emphasized* and **bold** text", "some emphasized and bold text"},
		{"link text", "see [the docs](https://example.com) here", "see the docs here"},
		{"code span", "call `Compute` to run", "call Compute to run"},
		{"soft line break", "wrapped\nline", "wrapped line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := FromString(tt.input).Document()
			if doc.BlockCount() != 1 {
				t.Fatalf("BlockCount() = %d, want 1", doc.BlockCount())
			}
			if got := doc.Blocks[0].Text; got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromString_NestedList(t *testing.T) {
	input := "- outer\n  - inner\n"

	doc := FromString(input).Document()
	if doc.BlockCount() != 1 {
		t.Fatalf("BlockCount() = %d, want 1", doc.BlockCount())
	}

	list := doc.Blocks[0]
	if list.Kind != model.KindList || len(list.Children) != 1 {
		t.Fatalf("top block = %v with %d items, want List with 1 item", list.Kind, len(list.Children))
	}
	item := list.Children[0]
	if len(item.Children) != 2 {
		t.Fatalf("item has %d children, want text + nested list", len(item.Children))
	}
	if item.Children[0].Text != "outer" {
		t.Errorf("item text = %q, want %q", item.Children[0].Text, "outer")
	}
	if item.Children[1].Kind != model.KindList {
		t.Errorf("nested child kind = %v, want List", item.Children[1].Kind)
	}
}

func TestFromString_CodeBlockPreservesWhitespace(t *testing.T) {
	input := "```\nif x {\n\treturn\n}\n```\n"

	doc := FromString(input).Document()
	if doc.BlockCount() != 1 {
		t.Fatalf("BlockCount() = %d, want 1", doc.BlockCount())
	}
	want := "if x {\n\treturn\n}"
	if got := doc.Blocks[0].Text; got != want {
		t.Errorf("code text = %q, want %q", got, want)
	}
}

func TestFromString_Empty(t *testing.T) {
	doc := FromString("").Document()
	if doc.BlockCount() != 0 {
		t.Errorf("BlockCount() = %d, want 0", doc.BlockCount())
	}
}

func TestOpenReader(t *testing.T) {
	r, err := OpenReader(strings.NewReader("# Hi\n\nText.\n"))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer r.Close()

	if got := r.Text(); got != "Hi\n\nText." {
		t.Errorf("Text() = %q, want %q", got, "Hi\n\nText.")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open("nonexistent-file.md"); err == nil {
		t.Error("Open() on missing file: expected error, got nil")
	}
}
