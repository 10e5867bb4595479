// Package docproc wires the citation pipeline behind the three public
// operations: extract, format, and missing-element analysis.
package docproc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paperfmt/paperfmt/internal/analyze"
	"github.com/paperfmt/paperfmt/internal/citation"
	"github.com/paperfmt/paperfmt/internal/convert"
	"github.com/paperfmt/paperfmt/internal/render"
	"github.com/paperfmt/paperfmt/internal/style"
)

// ErrEmptyInput signals that no content was supplied at all. The core still
// produces a minimal document for empty content; hosts should surface this
// to the user before invoking FormatDocument.
var ErrEmptyInput = errors.New("empty input")

// Config carries the explicit settings the pipeline honors. The core reads
// no ambient state; hosts build a Config from wherever they keep theirs.
type Config struct {
	// SortAuthors orders bibliography author groups alphabetically.
	SortAuthors bool
}

// Processor runs the citation pipeline. Every method is a pure function of
// its inputs plus the fixed Config, so a single Processor is safe for
// concurrent use.
type Processor struct {
	cfg Config
}

// New creates a Processor with the given configuration.
func New(cfg Config) *Processor {
	return &Processor{cfg: cfg}
}

// ExtractCitations scans text for citation spans and classifies them.
func (p *Processor) ExtractCitations(text string) []citation.Record {
	return citation.Extract(text)
}

// FormatDocument formats content into the target style: title block,
// synthesized abstract where the style requires one, in-text citation
// substitution, and bibliography. Empty content yields a minimal document
// (title block only) rather than an error.
func (p *Processor) FormatDocument(content string, s style.Style, meta convert.Metadata) (string, error) {
	if !style.Valid(s) {
		return "", fmt.Errorf("%w: %q", style.ErrUnsupported, s)
	}

	records := citation.Extract(content)
	analysis := analyze.Analyze(content)

	return convert.Convert(content, meta, records, analysis, s, render.Options{
		SortAuthors: p.cfg.SortAuthors,
	})
}

// FindMissingElements reports advisory formatting gaps for the target style.
func (p *Processor) FindMissingElements(content string, s style.Style) ([]string, error) {
	if !style.Valid(s) {
		return nil, fmt.Errorf("%w: %q", style.ErrUnsupported, s)
	}
	return analyze.MissingElements(content, s), nil
}

// ValidateInput checks that content carries any text at all. Hosts call this
// before formatting to give users a clearer error than a bare title block.
func ValidateInput(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyInput
	}
	return nil
}
