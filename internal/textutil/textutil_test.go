package textutil

import (
	"reflect"
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses whitespace", "a\t b\n\nc", "a b c"},
		{"strips unsafe characters", "cost: $5 @home", "cost: 5 home"},
		{"keeps academic punctuation", `He said, "yes" (twice)!`, `He said, "yes" (twice)!`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	in := "one  two\n\n\n\nthree   four"
	want := "one two\n\nthree four"
	if got := NormalizeWhitespace(in); got != want {
		t.Errorf("NormalizeWhitespace(%q) = %q, want %q", in, got, want)
	}
}

func TestSentences(t *testing.T) {
	got := Sentences("First. Second! Third? ")
	want := []string{"First", "Second", "Third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences = %v, want %v", got, want)
	}

	if got := Sentences(""); len(got) != 0 {
		t.Errorf("Sentences(\"\") = %v, want empty", got)
	}
}

func TestParagraphs(t *testing.T) {
	got := Paragraphs("first para\n\n\n\nsecond para\n\n")
	want := []string{"first para", "second para"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Paragraphs = %v, want %v", got, want)
	}
}

func TestCounts(t *testing.T) {
	text := "one two three"
	if got := WordCount(text); got != 3 {
		t.Errorf("WordCount = %d, want 3", got)
	}
	if got := CharCount(text); got != 11 {
		t.Errorf("CharCount = %d, want 11", got)
	}
}

func TestReadingTime(t *testing.T) {
	text := "word word word word"
	if got := ReadingTime(text, 4); got != 1 {
		t.Errorf("ReadingTime at 4 wpm = %v, want 1", got)
	}
	// Non-positive speed falls back to the default.
	if got := ReadingTime(text, 0); got != 4.0/DefaultReadingSpeed {
		t.Errorf("ReadingTime at default = %v, want %v", got, 4.0/DefaultReadingSpeed)
	}
}

func TestFindQuotes(t *testing.T) {
	text := `He said "hello" and then 'goodbye' quietly.`
	spans := FindQuotes(text)
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2: %v", len(spans), spans)
	}

	texts := make(map[string]bool)
	for _, sp := range spans {
		texts[sp.Text] = true
		if text[sp.Start:sp.End] == sp.Text {
			t.Errorf("span [%d,%d) should cover the quote marks, not just %q", sp.Start, sp.End, sp.Text)
		}
	}
	if !texts["hello"] || !texts["goodbye"] {
		t.Errorf("quote interiors = %v, want hello and goodbye", texts)
	}
}

func TestFindNumbersAndDates(t *testing.T) {
	text := "In 2023 we measured 3.14 units on 5/12/2023."

	if spans := FindNumbers(text); len(spans) == 0 {
		t.Error("FindNumbers found nothing")
	}

	dates := FindDates(text)
	var found bool
	for _, sp := range dates {
		if sp.Text == "5/12/2023" {
			found = true
		}
	}
	if !found {
		t.Errorf("FindDates = %v, want slash date", dates)
	}
}

func TestKeywords(t *testing.T) {
	text := "Learning systems improve learning outcomes. Learning helps systems."

	got := Keywords(text, 3)
	want := []string{"learning", "systems", "improve"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords = %v, want %v", got, want)
	}
}

func TestKeywords_FiltersStopwordsAndShortWords(t *testing.T) {
	got := Keywords("the and was big cat sat mat dog", 10)
	if len(got) != 0 {
		t.Errorf("Keywords = %v, want none (all stopwords or too short)", got)
	}

	if got := Keywords("anything at all", 0); got != nil {
		t.Errorf("Keywords with max 0 = %v, want nil", got)
	}
}
