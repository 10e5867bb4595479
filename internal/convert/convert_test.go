package convert

import (
	"errors"
	"strings"
	"testing"

	"github.com/paperfmt/paperfmt/internal/analyze"
	"github.com/paperfmt/paperfmt/internal/citation"
	"github.com/paperfmt/paperfmt/internal/render"
	"github.com/paperfmt/paperfmt/internal/style"
)

func convertOrFail(t *testing.T, content string, meta Metadata, s style.Style) string {
	t.Helper()
	records := citation.Extract(content)
	out, err := Convert(content, meta, records, analyze.Analyze(content), s, render.Options{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	return out
}

func TestConvert_UnsupportedStyle(t *testing.T) {
	_, err := Convert("text", Metadata{}, nil, analyze.Structure{}, style.Style("turabian"), render.Options{})
	if !errors.Is(err, style.ErrUnsupported) {
		t.Fatalf("err = %v, want style.ErrUnsupported", err)
	}
}

func TestConvert_APAEndToEnd(t *testing.T) {
	content := "Education matters. According to Smith (2023), AI helps learning."
	out := convertOrFail(t, content, Metadata{Title: "T", Author: "A"}, style.APA)

	for _, want := range []string{
		"Running head: T",
		"(Smith, 2023)",
		"References",
		"Smith. (2023).",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "By A") {
		t.Errorf("byline should not appear for this style:\n%s", out)
	}
}

func TestConvert_MLATitleBlock(t *testing.T) {
	meta := Metadata{
		Title:      "On Method",
		Author:     "Jane Doe",
		Course:     "PHIL 101",
		Instructor: "Dr. Lee",
		DueDate:    "May 1, 2026",
	}
	out := convertOrFail(t, "Body text.", meta, style.MLA)

	for _, want := range []string{
		"On Method\n\nBy Jane Doe",
		"Course: PHIL 101",
		"Instructor: Dr. Lee",
		"Due Date: May 1, 2026",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Running head") {
		t.Errorf("running head should not appear:\n%s", out)
	}
}

func TestConvert_MLATitleBlockOmittedWithoutTitleOrAuthor(t *testing.T) {
	out := convertOrFail(t, "Body text.", Metadata{Course: "PHIL 101"}, style.MLA)
	if strings.Contains(out, "PHIL 101") {
		t.Errorf("course line should not appear without title or author:\n%s", out)
	}
	if !strings.HasPrefix(out, ParagraphIndent+"Body text.") {
		t.Errorf("output should start with the body:\n%s", out)
	}
}

func TestRunningHead(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Short Title", "SHORT TITLE"},
		{"Effects: A Study!", "EFFECTS A STUDY"},
		{
			strings.Repeat("abcde ", 10), // 60 chars once uppercased
			strings.ToUpper(strings.Repeat("abcde ", 7) + "abcde")[:47] + "...",
		},
	}
	for _, tt := range tests {
		if got := runningHead(tt.title); got != tt.want {
			t.Errorf("runningHead(%q) = %q, want %q", tt.title, got, tt.want)
		}
		if got := runningHead(tt.title); len(got) > 50 {
			t.Errorf("runningHead(%q) is %d chars, want <= 50", tt.title, len(got))
		}
	}
}

func TestConvert_AbstractSynthesis(t *testing.T) {
	content := "One fact. Two facts. Three facts. Four facts.\n\nSecond paragraph."

	apa := convertOrFail(t, content, Metadata{}, style.APA)
	if !strings.Contains(apa, "Abstract\n\nOne fact. Two facts. Three facts.\n\nKeywords:") {
		t.Errorf("abstract not synthesized from first three sentences:\n%s", apa)
	}
	if strings.Contains(apa, "Abstract\n\nOne fact. Two facts. Three facts. Four facts.") {
		t.Errorf("fourth sentence leaked into the abstract:\n%s", apa)
	}

	ieee := convertOrFail(t, content, Metadata{}, style.IEEE)
	if !strings.Contains(ieee, "Abstract—One fact. Two facts. Three facts.") {
		t.Errorf("inline abstract missing:\n%s", ieee)
	}
	if strings.Contains(ieee, "Keywords:") {
		t.Errorf("keywords line should be absent for inline abstracts:\n%s", ieee)
	}
}

func TestConvert_ExistingAbstractNotDuplicated(t *testing.T) {
	content := "Abstract\n\nThis paper argues a point.\n\nIntroduction follows."
	out := convertOrFail(t, content, Metadata{}, style.APA)
	if strings.Contains(out, "Keywords: [Keywords would be added here]") {
		t.Errorf("synthesized abstract added despite existing one:\n%s", out)
	}
}

func TestConvert_EmptyContentStillBuildsFrontMatter(t *testing.T) {
	out := convertOrFail(t, "", Metadata{}, style.APA)
	if !strings.Contains(out, "Running head: UNTITLED DOCUMENT") {
		t.Errorf("missing fallback running head:\n%s", out)
	}
	if !strings.Contains(out, "[Abstract content would be generated here]") {
		t.Errorf("missing abstract placeholder:\n%s", out)
	}
}

func TestConvert_MLABibliographyDashes(t *testing.T) {
	content := "First point (Smith, 2020). Second point (Smith, 2023)."
	records := []citation.Record{
		mustExtractOne(t, content, "(Smith, 2020)"),
		mustExtractOne(t, content, "(Smith, 2023)"),
	}
	out, err := Convert(content, Metadata{Title: "T"}, records, analyze.Analyze(content), style.MLA, render.Options{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(out, "Works Cited") || !strings.Contains(out, render.RepeatedAuthorDash) {
		t.Errorf("missing grouped works cited block:\n%s", out)
	}
}

// mustExtractOne returns the extracted record whose raw text matches.
func mustExtractOne(t *testing.T, content, rawText string) citation.Record {
	t.Helper()
	for _, rec := range citation.Extract(content) {
		if rec.RawText == rawText {
			return rec
		}
	}
	t.Fatalf("no record with raw text %q", rawText)
	return citation.Record{}
}

func TestSubstituteCitations_IEEESequentialNumbering(t *testing.T) {
	content := "See [9] and also [9] again."
	records := citation.Extract(content)
	if len(records) != 2 {
		t.Fatalf("setup: got %d records, want 2", len(records))
	}

	got := substituteCitations(content, records, style.IEEE)
	if got != "See [1] and also [2] again." {
		t.Errorf("got %q", got)
	}
}

func TestSubstituteCitations_StaleSpanSkipped(t *testing.T) {
	content := "Plain text with no citation here."
	records := []citation.Record{{RawText: "(Smith, 2023)", Author: "Smith", Year: "2023", Position: 0}}

	if got := substituteCitations(content, records, style.APA); got != content {
		t.Errorf("stale span altered content: %q", got)
	}
}

func TestSubstituteCitations_OverlappingSpanClaimedOnce(t *testing.T) {
	content := "(Brown, 2021)"
	records := citation.Extract(content)
	if len(records) < 2 {
		t.Fatalf("setup: got %d records, want overlapping pair", len(records))
	}

	got := substituteCitations(content, records, style.MLA)
	if got != "(Brown)" {
		t.Errorf("got %q, want %q", got, "(Brown)")
	}
}

func TestConvert_Deterministic(t *testing.T) {
	content := "Results improved (Lee, 2019, p. 3). See also [2].\n\nFurther work follows."
	records := citation.Extract(content)
	analysis := analyze.Analyze(content)

	first, err := Convert(content, Metadata{Title: "T", Author: "A"}, records, analysis, style.Chicago, render.Options{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	second, err := Convert(content, Metadata{Title: "T", Author: "A"}, records, analysis, style.Chicago, render.Options{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if first != second {
		t.Errorf("outputs differ:\n%s\n---\n%s", first, second)
	}
}
