// Package render turns citation records into style-specific in-text markers
// and bibliography blocks.
package render

import (
	"fmt"
	"strings"

	"github.com/paperfmt/paperfmt/internal/citation"
	"github.com/paperfmt/paperfmt/internal/style"
)

// InText renders a single in-text citation marker for the given style.
// Missing fields are omitted; when every relevant field is absent the result
// degenerates to an empty parenthesis or bracket pair. For IEEE the record's
// own Number field is used; whole-document passes should prefer
// InTextNumbered with the record's position in the citation list.
func InText(rec citation.Record, s style.Style) string {
	return InTextNumbered(rec, s, rec.Number)
}

// InTextNumbered is InText with an explicit ordinal for IEEE numbering.
// The ordinal is ignored by the other styles.
func InTextNumbered(rec citation.Record, s style.Style, ordinal int) string {
	switch s {
	case style.MLA:
		return "(" + joinPresent(" ", rec.Author, rec.Page) + ")"
	case style.APA:
		return "(" + joinPresent(", ", rec.Author, rec.Year, pagePrefixed(rec.Page)) + ")"
	case style.Chicago:
		return "(" + joinPresent(" ", rec.Author, rec.Year, pagePrefixed(rec.Page)) + ")"
	case style.Harvard:
		return "(" + joinPresent(", ", rec.Author, rec.Year) + ")"
	case style.IEEE:
		if ordinal <= 0 {
			return "[?]"
		}
		return fmt.Sprintf("[%d]", ordinal)
	}
	return "(" + joinPresent(", ", rec.Author, rec.Year) + ")"
}

func pagePrefixed(page string) string {
	if page == "" {
		return ""
	}
	return "p. " + page
}

// joinPresent joins the non-empty parts with sep.
func joinPresent(sep string, parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, sep)
}
