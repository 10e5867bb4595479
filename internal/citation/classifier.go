package citation

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	digitsOnlyPattern = regexp.MustCompile(`^\d+$`)

	// Author prefixes, tried in order: "First Last", "Last, First", "Single".
	authorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+`),
		regexp.MustCompile(`^[A-Z][a-z]+, [A-Z][a-z]+`),
		regexp.MustCompile(`^[A-Z][a-z]+`),
	}

	yearPattern = regexp.MustCompile(`\d{4}`)
	// A trailing number, optionally introduced by "p." or "pp.".
	trailingPagePattern = regexp.MustCompile(`(?:[pP]{1,2}\.?\s*)?(\d+)$`)
	quotedTitlePattern  = regexp.MustCompile(`["']([^"']+)["']`)
)

// classify attempts to turn a candidate span interior into a Record.
// The returned record carries no RawText or Position; the extractor fills
// those in from the match. Returns false when the candidate fits no shape.
func classify(candidate string) (Record, bool) {
	candidate = strings.TrimSpace(candidate)

	if digitsOnlyPattern.MatchString(candidate) {
		n, err := strconv.Atoi(candidate)
		if err != nil {
			return Record{}, false
		}
		return Record{Kind: KindNumbered, Number: n}, true
	}

	for _, pattern := range authorPatterns {
		loc := pattern.FindStringIndex(candidate)
		if loc == nil {
			continue
		}
		author := candidate[loc[0]:loc[1]]
		remaining := strings.TrimSpace(candidate[loc[1]:])

		rec := Record{Kind: KindAuthorYear, Author: author}

		yearLoc := yearPattern.FindStringIndex(remaining)
		if yearLoc != nil {
			rec.Year = remaining[yearLoc[0]:yearLoc[1]]
		}

		if pageLoc := trailingPagePattern.FindStringSubmatchIndex(remaining); pageLoc != nil {
			// A bare year at the end of the remainder is a year, not a page.
			if yearLoc == nil || pageLoc[2] != yearLoc[0] || pageLoc[3] != yearLoc[1] {
				rec.Page = remaining[pageLoc[2]:pageLoc[3]]
			}
		}

		return rec, true
	}

	if strings.ContainsAny(candidate, `"'`) {
		if m := quotedTitlePattern.FindStringSubmatch(candidate); m != nil {
			return Record{Kind: KindTitle, Title: m[1]}, true
		}
	}

	return Record{}, false
}
