package citation

import (
	"regexp"
	"strings"
)

// matchRule is one pattern in the fixed extraction order. Rules with a
// capture group classify the captured interior; the others classify the
// whole match.
type matchRule struct {
	pattern    *regexp.Regexp
	delimited  bool // interior is wrapped in () or []
	hasCapture bool
}

// Extraction rules, applied in order over the entire input:
// parenthetical spans, bracketed spans, "First Last 2023", "Smith, 2023".
var matchRules = []matchRule{
	{pattern: regexp.MustCompile(`\(([^)]+)\)`), delimited: true, hasCapture: true},
	{pattern: regexp.MustCompile(`\[([^\]]+)\]`), delimited: true, hasCapture: true},
	{pattern: regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+ \d{4}`)},
	{pattern: regexp.MustCompile(`[A-Z][a-z]+, \d{4}`)},
}

var (
	// Interior of a narrative citation: a year with an optional page,
	// e.g. "2023" or "2022, p. 45".
	narrativeInteriorPattern = regexp.MustCompile(`^(\d{4})(?:\s*,\s*(?:[pP]{1,2}\.?\s*)?(\d+))?$`)
	// A proper name immediately before the opening delimiter,
	// e.g. "Smith" or "Mary Smith".
	precedingNamePattern = regexp.MustCompile(`([A-Z][a-z]+ [A-Z][a-z]+|[A-Z][a-z]+)$`)
)

// Extract scans text with the fixed rule set and returns every citation span
// it can classify, in rule order then document order. The same source span
// may be reported more than once when several rules fire on it; callers must
// tolerate duplicates. Extract never fails: text with no matches yields an
// empty slice.
func Extract(text string) []Record {
	records := []Record{}

	for _, rule := range matchRules {
		for _, loc := range rule.pattern.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[0], loc[1]
			interior := text[start:end]
			if rule.hasCapture && loc[2] >= 0 {
				interior = text[loc[2]:loc[3]]
			}

			if rule.delimited {
				if rec, ok := narrativeRecord(text, start, end, interior); ok {
					records = append(records, rec)
					continue
				}
			}

			rec, ok := classify(interior)
			if !ok {
				continue
			}
			rec.RawText = text[start:end]
			rec.Position = start
			records = append(records, rec)
		}
	}

	return records
}

// narrativeRecord handles citations of the form "Smith (2023)" or
// "Johnson (2022, p. 45)", where the author sits outside the delimiters.
// The matched span is widened to include the preceding name so that
// substitution replaces the whole narrative citation.
func narrativeRecord(text string, start, end int, interior string) (Record, bool) {
	m := narrativeInteriorPattern.FindStringSubmatch(strings.TrimSpace(interior))
	if m == nil {
		return Record{}, false
	}

	prefix := strings.TrimRight(text[:start], " ")
	nameLoc := precedingNamePattern.FindStringIndex(prefix)
	if nameLoc == nil {
		return Record{}, false
	}

	rec := Record{
		Kind:     KindAuthorYear,
		Author:   prefix[nameLoc[0]:nameLoc[1]],
		Year:     m[1],
		Page:     m[2],
		RawText:  text[nameLoc[0]:end],
		Position: nameLoc[0],
	}
	return rec, true
}
