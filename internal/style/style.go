// Package style defines the supported academic formatting styles and their
// static rule tables.
package style

import (
	"errors"
	"fmt"
	"strings"
)

// Style identifies one of the supported academic formatting conventions.
type Style string

const (
	MLA     Style = "mla"
	APA     Style = "apa"
	Chicago Style = "chicago"
	Harvard Style = "harvard"
	IEEE    Style = "ieee"
)

// ErrUnsupported is returned when a requested style is not one of the five
// supported conventions.
var ErrUnsupported = errors.New("unsupported style")

// All lists the supported styles in canonical order.
var All = []Style{MLA, APA, Chicago, Harvard, IEEE}

// Parse converts a user-supplied style name to a Style.
// Matching is case-insensitive.
func Parse(name string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(name))) {
	case MLA:
		return MLA, nil
	case APA:
		return APA, nil
	case Chicago:
		return Chicago, nil
	case Harvard:
		return Harvard, nil
	case IEEE:
		return IEEE, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, name)
}

// Valid reports whether s is one of the supported styles.
func Valid(s Style) bool {
	_, err := Parse(string(s))
	return err == nil
}

// DisplayName returns the conventional capitalized name of the style.
func (s Style) DisplayName() string {
	switch s {
	case MLA:
		return "MLA"
	case APA:
		return "APA"
	case Chicago:
		return "Chicago"
	case Harvard:
		return "Harvard"
	case IEEE:
		return "IEEE"
	}
	return string(s)
}
