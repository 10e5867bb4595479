// Package textutil provides stateless text helpers: splitting, counting,
// and pattern detection over plain prose.
package textutil

import (
	"regexp"
	"sort"
	"strings"
)

// Span is a located substring within a larger text.
type Span struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	spaceRun      = regexp.MustCompile(` +`)
	newlineRun    = regexp.MustCompile(`\n+`)
	unsafeChars   = regexp.MustCompile(`[^\w\s.,;:!?\-()\[\]{}"']`)
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	wordPattern   = regexp.MustCompile(`\w+`)
	quotePatterns = []*regexp.Regexp{
		regexp.MustCompile(`"([^"]*)"`),
		regexp.MustCompile(`'([^']*)'`),
		regexp.MustCompile(`\x{201C}([^\x{201C}\x{201D}]*)\x{201D}`),
		regexp.MustCompile(`\x{2018}([^\x{2018}\x{2019}]*)\x{2019}`),
	}
	numberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d+\b`),
		regexp.MustCompile(`\b\d+\.\d+\b`),
		regexp.MustCompile(`\b\d{4}\b`),
		regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
	}
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
		regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{4}\b`),
		regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`),
		regexp.MustCompile(`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`),
	}
)

// CleanText collapses whitespace and strips characters outside the set
// expected in academic prose.
func CleanText(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = unsafeChars.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// NormalizeWhitespace collapses space runs and reduces newline runs to
// paragraph breaks.
func NormalizeWhitespace(text string) string {
	text = spaceRun.ReplaceAllString(text, " ")
	text = newlineRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Sentences splits text on sentence-ending punctuation, dropping empties.
func Sentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// Paragraphs splits text on blank lines, dropping empties.
func Paragraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			paragraphs = append(paragraphs, s)
		}
	}
	return paragraphs
}

// WordCount counts whitespace-delimited words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharCount counts characters excluding spaces.
func CharCount(text string) int {
	return len(strings.ReplaceAll(text, " ", ""))
}

// DefaultReadingSpeed is an average adult reading speed in words per minute.
const DefaultReadingSpeed = 200

// ReadingTime estimates reading time in minutes at the given speed.
// A speed of zero or less falls back to DefaultReadingSpeed.
func ReadingTime(text string, wordsPerMinute int) float64 {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultReadingSpeed
	}
	return float64(WordCount(text)) / float64(wordsPerMinute)
}

// FindQuotes locates quoted substrings (straight and curly quotes).
// The span covers the quote marks; Text is the interior.
func FindQuotes(text string) []Span {
	var spans []Span
	for _, p := range quotePatterns {
		for _, loc := range p.FindAllStringSubmatchIndex(text, -1) {
			inner := text[loc[2]:loc[3]]
			if strings.TrimSpace(inner) == "" {
				continue
			}
			spans = append(spans, Span{Text: inner, Start: loc[0], End: loc[1]})
		}
	}
	return spans
}

// FindNumbers locates whole numbers, decimals, years, and slash dates.
func FindNumbers(text string) []Span {
	return findAll(text, numberPatterns)
}

// FindDates locates common date shapes (slash, dash, ISO, and written-out).
func FindDates(text string) []Span {
	return findAll(text, datePatterns)
}

func findAll(text string, patterns []*regexp.Regexp) []Span {
	var spans []Span
	for _, p := range patterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			spans = append(spans, Span{Text: text[loc[0]:loc[1]], Start: loc[0], End: loc[1]})
		}
	}
	return spans
}

// stopWords are excluded from keyword extraction.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {}, "might": {},
	"must": {}, "can": {}, "this": {}, "that": {}, "these": {}, "those": {},
}

// Keywords extracts up to max keywords by frequency, ignoring stopwords and
// words of four characters or fewer. Ties break by first appearance.
func Keywords(text string, max int) []string {
	if max <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(w) <= 3 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > max {
		order = order[:max]
	}
	return order
}
