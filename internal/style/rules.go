package style

// RuleSet describes the page-layout conventions of a style. The formatter
// emits plain text only, so these rules are informational: they drive the
// `styles` preview output, not the rendering itself.
type RuleSet struct {
	Name        string `json:"name"`
	Margins     string `json:"margins"`
	Spacing     string `json:"spacing"`
	Font        string `json:"font"`
	Header      string `json:"header"`
	TitleFormat string `json:"title_format"`
	Indentation string `json:"indentation"`
	Quotes      string `json:"quotes"`
	Citations   string `json:"citations"`
	References  string `json:"references"`
}

var ruleSets = map[Style]RuleSet{
	MLA: {
		Name:        "MLA",
		Margins:     "1 inch on all sides",
		Spacing:     "Double-spaced",
		Font:        "Times New Roman, 12pt",
		Header:      "Last name and page number",
		TitleFormat: "Centered, no bold/underline",
		Indentation: "0.5 inch for paragraphs",
		Quotes:      "Double quotes for short quotes, block quotes for 4+ lines",
		Citations:   "Author-page format in parentheses",
		References:  "Works Cited page, alphabetical by author",
	},
	APA: {
		Name:        "APA",
		Margins:     "1 inch on all sides",
		Spacing:     "Double-spaced",
		Font:        "Times New Roman, 12pt",
		Header:      "Running head with title",
		TitleFormat: "Centered, bold",
		Indentation: "0.5 inch for paragraphs",
		Quotes:      "Double quotes for short quotes, block quotes for 40+ words",
		Citations:   "Author-year format in parentheses",
		References:  "References page, alphabetical by author",
	},
	Chicago: {
		Name:        "Chicago",
		Margins:     "1 inch on all sides",
		Spacing:     "Double-spaced",
		Font:        "Times New Roman, 12pt",
		Header:      "Page number in top right",
		TitleFormat: "Centered, one-third down the page",
		Indentation: "0.5 inch for paragraphs",
		Quotes:      "Double quotes for short quotes, block quotes for 5+ lines",
		Citations:   "Author-year-page format in parentheses",
		References:  "Bibliography, alphabetical by author",
	},
	Harvard: {
		Name:        "Harvard",
		Margins:     "1 inch on all sides",
		Spacing:     "Double-spaced",
		Font:        "Times New Roman, 12pt",
		Header:      "Page number in top right",
		TitleFormat: "Centered",
		Indentation: "0.5 inch for paragraphs",
		Quotes:      "Single quotes for short quotes, block quotes for 30+ words",
		Citations:   "Author-year format in parentheses",
		References:  "Reference List, alphabetical by author",
	},
	IEEE: {
		Name:        "IEEE",
		Margins:     "1 inch on all sides",
		Spacing:     "Single-spaced",
		Font:        "Times New Roman, 10pt",
		Header:      "Title and page number",
		TitleFormat: "Centered, bold",
		Indentation: "0.5 inch for paragraphs",
		Quotes:      "Double quotes for short quotes, block quotes for 40+ words",
		Citations:   "Numbered references in brackets",
		References:  "Numbered reference list",
	},
}

// Rules returns the layout rule table for a style.
func Rules(s Style) RuleSet {
	return ruleSets[s]
}
