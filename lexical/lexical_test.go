package lexical

import (
	"reflect"
	"testing"
)

func TestSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"", 0},
		{"123", 0},
		{"...", 0},
		{"a", 1},
		{"cat", 1},
		{"the", 1},
		{"don't", 1},
		{"hello", 2},
		{"beautiful", 4},
		{"make", 1},
		{"queue", 1},
		{"apple", 2},
		{"table", 2},
		{"strength", 1},
		{"syzygy", 3},
		{"punctuation", 3},
		{"syntactically", 5},
		{"HELLO", 2},
		{"co-operate", 3},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Syllables(tt.word); got != tt.want {
				t.Errorf("Syllables(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}

func TestSyllablesAtLeastOneForLetters(t *testing.T) {
	words := []string{"b", "zz", "rhythm", "tsk", "crwth", "xylophone", "e"}
	for _, w := range words {
		if got := Syllables(w); got < 1 {
			t.Errorf("Syllables(%q) = %d, want >= 1", w, got)
		}
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "  \t\n ", nil},
		{"single", "hello", []string{"hello"}},
		{"spaces", "hello world", []string{"hello", "world"}},
		{"mixed whitespace", "one\ttwo\nthree  four", []string{"one", "two", "three", "four"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsStopWord(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"the", true},
		{"The", true},
		{"THE", true},
		{"not", true},
		{"were", true},
		{"cat", false},
		{"", false},
		{"them", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := IsStopWord(tt.token); got != tt.want {
				t.Errorf("IsStopWord(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"Hello,", "hello"},
		{"don't", "dont"},
		{"C3PO", "c3po"},
		{"—", ""},
		{"", ""},
		{"café", "caf"},
		{"word.", "word"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Normalize(tt.word); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}
