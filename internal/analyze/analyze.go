// Package analyze inspects document structure and reports advisory gaps
// against a target formatting style.
package analyze

import (
	"regexp"
	"strings"

	"github.com/paperfmt/paperfmt/internal/citation"
	"github.com/paperfmt/paperfmt/internal/style"
	"github.com/paperfmt/paperfmt/internal/textutil"
)

// Structure summarizes the shape of a document. It is advisory input to the
// converter and the stats command; nothing here blocks formatting.
type Structure struct {
	Sections                 []string `json:"sections"`
	ParagraphCount           int      `json:"paragraph_count"`
	SentenceCount            int      `json:"sentence_count"`
	WordCount                int      `json:"word_count"`
	CharacterCount           int      `json:"character_count"`
	AvgWordsPerSentence      float64  `json:"average_words_per_sentence"`
	AvgSentencesPerParagraph float64  `json:"average_sentences_per_paragraph"`
	ReadingTimeMinutes       float64  `json:"reading_time_minutes"`
	HasQuotes                bool     `json:"has_quotes"`
	HasCitations             bool     `json:"has_citations"`
	HasNumbers               bool     `json:"has_numbers"`
	HasDates                 bool     `json:"has_dates"`
}

var sectionHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z\s]+$`),
	regexp.MustCompile(`^\d+\.\s+[A-Z]`),
	regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]+)*$`),
}

// isSectionHeader reports whether a line looks like a section heading:
// all caps, a numbered section, or a short title-case phrase.
func isSectionHeader(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	for _, p := range sectionHeaderPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// Analyze computes document structure statistics.
func Analyze(content string) Structure {
	sentences := textutil.Sentences(content)
	paragraphs := textutil.Paragraphs(content)
	words := textutil.WordCount(content)

	st := Structure{
		ParagraphCount:     len(paragraphs),
		SentenceCount:      len(sentences),
		WordCount:          words,
		CharacterCount:     len(content),
		ReadingTimeMinutes: textutil.ReadingTime(content, 0),
		HasQuotes:          strings.ContainsAny(content, `"'`),
		HasCitations:       hasCitationMarkers(content),
		HasNumbers:         digitPattern.MatchString(content),
		HasDates:           len(textutil.FindDates(content)) > 0 || yearPattern.MatchString(content),
	}

	if n := len(sentences); n > 0 {
		st.AvgWordsPerSentence = float64(words) / float64(n)
	}
	if n := len(paragraphs); n > 0 {
		st.AvgSentencesPerParagraph = float64(len(sentences)) / float64(n)
	}

	for _, line := range strings.Split(content, "\n") {
		if isSectionHeader(line) {
			st.Sections = append(st.Sections, strings.TrimSpace(line))
		}
	}

	return st
}

var (
	digitPattern       = regexp.MustCompile(`\d`)
	yearPattern        = regexp.MustCompile(`\d{4}`)
	parentheticalSpan  = regexp.MustCompile(`\([^)]*\)`)
	bracketedSpan      = regexp.MustCompile(`\[[^\]]*\]`)
	numberedRefPattern = regexp.MustCompile(`\[\d+\]`)
	footnotePatterns   = []*regexp.Regexp{
		regexp.MustCompile(`\d+\.\s`),
		regexp.MustCompile(`\[\d+\]`),
	}
	pageNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`page \d+`),
		regexp.MustCompile(`p\. \d+`),
		regexp.MustCompile(`pp\. \d+`),
	}
	quotePairPatterns = []*regexp.Regexp{
		regexp.MustCompile(`"[^"]*"`),
		regexp.MustCompile(`'[^']*'`),
	}
)

func hasCitationMarkers(content string) bool {
	return parentheticalSpan.MatchString(content) || bracketedSpan.MatchString(content)
}

func containsAnyWord(content string, words ...string) bool {
	lower := strings.ToLower(content)
	for _, w := range words {
		if regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`).MatchString(lower) {
			return true
		}
	}
	return false
}

// MissingElements returns a human-readable checklist of elements the
// document appears to lack for the target style. Every predicate runs; the
// result preserves the fixed declaration order below. The output is
// advisory only and never blocks formatting.
func MissingElements(content string, s style.Style) []string {
	missing := []string{}
	lower := strings.ToLower(content)

	titleIndicators := []string{"title:", "author:", "course:", "instructor:", "date:"}
	hasTitleInfo := false
	for _, ind := range titleIndicators {
		if strings.Contains(lower, ind) {
			hasTitleInfo = true
			break
		}
	}
	if !hasTitleInfo {
		missing = append(missing, "Title page information (title, author, course, instructor, date)")
	}

	if (s == style.APA || s == style.IEEE) && !containsAnyWord(content, "abstract", "summary") {
		missing = append(missing, "Abstract section")
	}

	if !containsAnyWord(content, "introduction", "intro") {
		missing = append(missing, "Introduction section")
	}

	if !containsAnyWord(content, "conclusion", "concluding") {
		missing = append(missing, "Conclusion section")
	}

	if len(citation.Extract(content)) == 0 {
		missing = append(missing, "Citations and references")
	}

	switch s {
	case style.MLA:
		if !containsAnyWord(content, "works cited", "bibliography") {
			missing = append(missing, "Works Cited page")
		}
	case style.APA:
		if !containsAnyWord(content, "references", "reference list") {
			missing = append(missing, "References page")
		}
		if !strings.Contains(lower, "running head") {
			missing = append(missing, "Running head")
		}
	case style.Chicago:
		if !hasFootnotes(content) && !strings.Contains(lower, "bibliography") {
			missing = append(missing, "Footnotes or bibliography")
		}
	case style.IEEE:
		if !numberedRefPattern.MatchString(content) {
			missing = append(missing, "Numbered reference list")
		}
	}

	if !matchesAny(content, quotePairPatterns) {
		missing = append(missing, "Properly formatted quotations")
	}

	if !matchesAny(lower, pageNumberPatterns) {
		missing = append(missing, "Page numbering")
	}

	return missing
}

func hasFootnotes(content string) bool {
	return matchesAny(content, footnotePatterns)
}

func matchesAny(content string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(content) {
			return true
		}
	}
	return false
}
