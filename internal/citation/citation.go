// Package citation locates citation-like substrings in free-form prose and
// classifies them into structured records.
package citation

// Kind classifies the shape of a detected citation.
type Kind string

const (
	// KindNumbered is a numbered reference such as "[3]".
	KindNumbered Kind = "numbered"
	// KindAuthorYear is an author-year citation such as "(Smith, 2023)".
	KindAuthorYear Kind = "author_year"
	// KindTitle is a quoted-title citation.
	KindTitle Kind = "title"
	// KindUnclassified is reserved for spans that matched a pattern but
	// resisted classification. The extractor drops such spans, so records
	// with this kind are never produced today.
	KindUnclassified Kind = "unclassified"
)

// Record represents one detected citation occurrence.
//
// RawText is the exact substring matched in the source document, delimiters
// included, and is always a literal substring of the input. Position is the
// byte offset of RawText in the source, so the occupied span is
// [Position, Position+len(RawText)).
type Record struct {
	RawText  string `json:"raw_text"`
	Kind     Kind   `json:"kind"`
	Author   string `json:"author,omitempty"`
	Year     string `json:"year,omitempty"`
	Page     string `json:"page,omitempty"`
	Title    string `json:"title,omitempty"`
	Source   string `json:"source,omitempty"`
	Number   int    `json:"number,omitempty"`
	Position int    `json:"position"`
}

// End returns the byte offset just past the matched span.
func (r Record) End() int {
	return r.Position + len(r.RawText)
}
