package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/paperfmt/paperfmt/internal/citation"
	"github.com/paperfmt/paperfmt/internal/style"
)

// UnknownAuthor is the grouping key for records with no author.
const UnknownAuthor = "Unknown Author"

// RepeatedAuthorDash replaces the author name on subsequent MLA entries for
// the same author.
const RepeatedAuthorDash = "---."

// Options control bibliography rendering.
type Options struct {
	// SortAuthors orders author groups alphabetically instead of by first
	// appearance. Off by default: the style tables claim alphabetical
	// ordering, but insertion order is the established output.
	SortAuthors bool
}

// Bibliography renders the end-of-document reference block for the given
// style. MLA, APA, Chicago, and Harvard group entries by author, preserving
// first-seen author order (unless opts.SortAuthors) and original record
// order within a group. IEEE ignores grouping and numbers the records in
// their original sequence order. Duplicate records render as duplicate
// entries. An empty record list yields an empty string.
func Bibliography(records []citation.Record, s style.Style, opts Options) string {
	if len(records) == 0 {
		return ""
	}

	if s == style.IEEE {
		return ieeeBibliography(records)
	}

	var b strings.Builder
	b.WriteString(heading(s))
	b.WriteString("\n\n")

	for _, group := range groupByAuthor(records, opts.SortAuthors) {
		for i, rec := range group.records {
			writeEntry(&b, s, group.author, rec, i > 0)
		}
	}

	return b.String()
}

// heading returns the style-specific bibliography heading.
func heading(s style.Style) string {
	switch s {
	case style.MLA:
		return "Works Cited"
	case style.Chicago:
		return "Bibliography"
	case style.Harvard:
		return "Reference List"
	default:
		return "References"
	}
}

type authorGroup struct {
	author  string
	records []citation.Record
}

// groupByAuthor buckets records by author, keeping first-seen group order
// and original record order within each group.
func groupByAuthor(records []citation.Record, sortAuthors bool) []authorGroup {
	index := make(map[string]int)
	var groups []authorGroup

	for _, rec := range records {
		author := rec.Author
		if author == "" {
			author = UnknownAuthor
		}
		i, ok := index[author]
		if !ok {
			i = len(groups)
			index[author] = i
			groups = append(groups, authorGroup{author: author})
		}
		groups[i].records = append(groups[i].records, rec)
	}

	if sortAuthors {
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].author < groups[j].author
		})
	}

	return groups
}

// writeEntry appends one grouped bibliography entry. For MLA, repeat entries
// for the same author substitute three hyphens for the name.
func writeEntry(b *strings.Builder, s style.Style, author string, rec citation.Record, repeat bool) {
	if s == style.MLA && repeat {
		b.WriteString(RepeatedAuthorDash + " ")
	} else {
		b.WriteString(author + ". ")
	}

	switch s {
	case style.MLA:
		if rec.Title != "" {
			b.WriteString("\"" + rec.Title + ".\" ")
		}
		if rec.Source != "" {
			b.WriteString(rec.Source + ", ")
		}
		if rec.Year != "" {
			b.WriteString(rec.Year + ".")
		}
		if rec.Page != "" {
			b.WriteString(" p. " + rec.Page + ".")
		}

	case style.APA:
		if rec.Year != "" {
			b.WriteString("(" + rec.Year + "). ")
		}
		if rec.Title != "" {
			b.WriteString(rec.Title + ". ")
		}
		if rec.Source != "" {
			b.WriteString(rec.Source + ".")
		}
		if rec.Page != "" {
			b.WriteString(" p. " + rec.Page + ".")
		}

	case style.Chicago:
		if rec.Title != "" {
			b.WriteString("\"" + rec.Title + ".\" ")
		}
		if rec.Source != "" {
			b.WriteString(rec.Source + ", ")
		}
		if rec.Year != "" {
			b.WriteString(rec.Year + ".")
		}
		if rec.Page != "" {
			b.WriteString(" " + rec.Page + ".")
		}

	case style.Harvard:
		if rec.Year != "" {
			b.WriteString("(" + rec.Year + "). ")
		}
		if rec.Title != "" {
			b.WriteString(rec.Title + ". ")
		}
		if rec.Source != "" {
			b.WriteString(rec.Source + ".")
		}
	}

	b.WriteString("\n\n")
}

// ieeeBibliography numbers entries [1], [2], ... in record order with no
// grouping or deduplication.
func ieeeBibliography(records []citation.Record) string {
	var b strings.Builder
	b.WriteString("References\n\n")

	for i, rec := range records {
		fmt.Fprintf(&b, "[%d] ", i+1)
		if rec.Author != "" {
			b.WriteString(rec.Author + ", ")
		}
		if rec.Title != "" {
			b.WriteString("\"" + rec.Title + ",\" ")
		}
		if rec.Source != "" {
			b.WriteString(rec.Source + ", ")
		}
		if rec.Year != "" {
			b.WriteString(rec.Year + ".")
		}
		if rec.Page != "" {
			b.WriteString(" pp. " + rec.Page + ".")
		}
		b.WriteString("\n\n")
	}

	return b.String()
}
