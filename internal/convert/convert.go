// Package convert assembles formatted documents: title block, optional
// abstract, body with in-text citation substitution, and bibliography.
package convert

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/paperfmt/paperfmt/internal/analyze"
	"github.com/paperfmt/paperfmt/internal/citation"
	"github.com/paperfmt/paperfmt/internal/render"
	"github.com/paperfmt/paperfmt/internal/style"
	"github.com/paperfmt/paperfmt/internal/textutil"
)

// Metadata describes the document for the title block. Every field is
// optional; absent fields drop their lines rather than failing.
type Metadata struct {
	Title      string `json:"title,omitempty"`
	Author     string `json:"author,omitempty"`
	Course     string `json:"course,omitempty"`
	Instructor string `json:"instructor,omitempty"`
	DueDate    string `json:"due_date,omitempty"`
}

// ParagraphIndent prefixes every body paragraph.
const ParagraphIndent = "    "

// abstractMode selects how a missing abstract is synthesized.
type abstractMode int

const (
	abstractNone abstractMode = iota
	// abstractLabeled emits an "Abstract" heading plus a Keywords line (APA).
	abstractLabeled
	// abstractInline emits the inline "Abstract" lead-in (IEEE).
	abstractInline
)

// styleSpec captures the literal differences between the five converters.
// The control shape is identical for all styles.
type styleSpec struct {
	titleBlockOptional bool // emit the title block only when title or author is set
	byline             bool // "By <author>" instead of a bare author line
	labeledDetails     bool // "Course:", "Instructor:", "Due Date:" prefixes
	runningHead        bool
	abstract           abstractMode
}

var styleSpecs = map[style.Style]styleSpec{
	style.MLA:     {titleBlockOptional: true, byline: true, labeledDetails: true},
	style.APA:     {runningHead: true, abstract: abstractLabeled},
	style.Chicago: {byline: true, labeledDetails: true},
	style.Harvard: {byline: true, labeledDetails: true},
	style.IEEE:    {abstract: abstractInline},
}

// Convert formats content for the target style: builds the title block,
// injects a synthesized abstract where the style requires one, substitutes
// every extracted citation with its style-rendered in-text form, and appends
// the bibliography when any citations were found. The records slice must
// come from citation.Extract over the same content so that the recorded
// spans line up. The analysis argument is advisory and does not alter the
// assembled output.
func Convert(content string, meta Metadata, records []citation.Record, analysis analyze.Structure, s style.Style, opts render.Options) (string, error) {
	spec, ok := styleSpecs[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", style.ErrUnsupported, s)
	}

	var parts []string

	if block := titleBlock(meta, spec); block != "" {
		parts = append(parts, block)
	}

	if spec.abstract != abstractNone && !hasAbstract(content) {
		parts = append(parts, synthesizeAbstract(content, spec.abstract))
	}

	if body := formatBody(content, records, s); body != "" {
		parts = append(parts, body)
	}

	if len(records) > 0 {
		parts = append(parts, strings.TrimRight(render.Bibliography(records, s, opts), "\n"))
	}

	return strings.Join(parts, "\n\n"), nil
}

// titleBlock renders the metadata lines the style calls for. Returns an
// empty string when nothing is available (or, for MLA, when neither title
// nor author is set).
func titleBlock(meta Metadata, spec styleSpec) string {
	if spec.titleBlockOptional && meta.Title == "" && meta.Author == "" {
		return ""
	}

	var b strings.Builder

	if spec.runningHead {
		title := meta.Title
		if title == "" {
			title = "Untitled Document"
		}
		b.WriteString("Running head: " + runningHead(title) + "\n\n")
	}

	if meta.Title != "" {
		b.WriteString(meta.Title + "\n\n")
	}

	if meta.Author != "" {
		if spec.byline {
			b.WriteString("By " + meta.Author + "\n\n")
		} else {
			b.WriteString(meta.Author + "\n\n")
		}
	}

	writeDetail := func(label, value string) {
		if value == "" {
			return
		}
		if spec.labeledDetails {
			b.WriteString(label + ": " + value + "\n")
		} else {
			b.WriteString(value + "\n")
		}
	}
	writeDetail("Course", meta.Course)
	writeDetail("Instructor", meta.Instructor)
	writeDetail("Due Date", meta.DueDate)

	return strings.TrimRight(b.String(), "\n")
}

var nonWordOrSpace = regexp.MustCompile(`[^\w\s]`)

// runningHead shortens a title to the APA running-head form: punctuation
// stripped, uppercased, at most 50 characters.
func runningHead(title string) string {
	head := strings.ToUpper(nonWordOrSpace.ReplaceAllString(title, ""))
	if len(head) > 50 {
		head = head[:47] + "..."
	}
	return head
}

// hasAbstract checks the first 500 characters for the word "abstract",
// case-insensitively.
func hasAbstract(content string) bool {
	head := strings.ToLower(content)
	if len(head) > 500 {
		head = head[:500]
	}
	return strings.Contains(head, "abstract")
}

// synthesizeAbstract builds an abstract from the first three sentences of
// the opening paragraph.
func synthesizeAbstract(content string, mode abstractMode) string {
	first, _, _ := strings.Cut(content, "\n\n")
	sentences := textutil.Sentences(first)
	if len(sentences) > 3 {
		sentences = sentences[:3]
	}

	text := "[Abstract content would be generated here]"
	if len(sentences) > 0 {
		text = strings.Join(sentences, ". ") + "."
	}

	if mode == abstractInline {
		return "Abstract—" + text
	}
	return "Abstract\n\n" + text + "\n\nKeywords: [Keywords would be added here]"
}

// formatBody substitutes citations and indents each paragraph.
func formatBody(content string, records []citation.Record, s style.Style) string {
	substituted := substituteCitations(content, records, s)

	paragraphs := textutil.Paragraphs(substituted)
	for i, p := range paragraphs {
		paragraphs[i] = ParagraphIndent + p
	}
	return strings.Join(paragraphs, "\n\n")
}

// replacement is a one-time span substitution within the source text.
type replacement struct {
	start, end int
	text       string
}

// substituteCitations replaces each record's recorded span with the
// style-rendered in-text citation. Replacement is span-based and one-time:
// a record whose span overlaps an already-claimed span, or no longer holds
// its raw text, is skipped. Records are considered in extraction-list
// order, and IEEE markers are numbered by that same order.
func substituteCitations(content string, records []citation.Record, s style.Style) string {
	var claimed []replacement

	for i, rec := range records {
		start, end := rec.Position, rec.End()
		if start < 0 || end > len(content) || content[start:end] != rec.RawText {
			continue
		}
		if overlapsAny(claimed, start, end) {
			continue
		}
		claimed = append(claimed, replacement{
			start: start,
			end:   end,
			text:  render.InTextNumbered(rec, s, i+1),
		})
	}

	if len(claimed) == 0 {
		return content
	}

	sort.Slice(claimed, func(i, j int) bool { return claimed[i].start < claimed[j].start })

	var b strings.Builder
	last := 0
	for _, r := range claimed {
		b.WriteString(content[last:r.start])
		b.WriteString(r.text)
		last = r.end
	}
	b.WriteString(content[last:])
	return b.String()
}

func overlapsAny(claimed []replacement, start, end int) bool {
	for _, r := range claimed {
		if start < r.end && end > r.start {
			return true
		}
	}
	return false
}
