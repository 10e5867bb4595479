package render

import (
	"testing"

	"github.com/paperfmt/paperfmt/internal/citation"
	"github.com/paperfmt/paperfmt/internal/style"
)

func TestInText(t *testing.T) {
	full := citation.Record{
		Kind:   citation.KindAuthorYear,
		Author: "Smith",
		Year:   "2023",
		Page:   "45",
	}

	tests := []struct {
		name  string
		rec   citation.Record
		style style.Style
		want  string
	}{
		{name: "mla author page", rec: full, style: style.MLA, want: "(Smith 45)"},
		{name: "apa author year page", rec: full, style: style.APA, want: "(Smith, 2023, p. 45)"},
		{name: "chicago author year page", rec: full, style: style.Chicago, want: "(Smith 2023 p. 45)"},
		{name: "harvard author year", rec: full, style: style.Harvard, want: "(Smith, 2023)"},
		{
			name:  "apa without page",
			rec:   citation.Record{Author: "Smith", Year: "2023"},
			style: style.APA,
			want:  "(Smith, 2023)",
		},
		{
			name:  "mla author only",
			rec:   citation.Record{Author: "Smith"},
			style: style.MLA,
			want:  "(Smith)",
		},
		{
			name:  "all fields absent degenerates to empty parens",
			rec:   citation.Record{},
			style: style.APA,
			want:  "()",
		},
		{
			name:  "ieee uses record number",
			rec:   citation.Record{Kind: citation.KindNumbered, Number: 7},
			style: style.IEEE,
			want:  "[7]",
		},
		{
			name:  "ieee without number degenerates",
			rec:   citation.Record{},
			style: style.IEEE,
			want:  "[?]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InText(tt.rec, tt.style); got != tt.want {
				t.Errorf("InText(%+v, %s) = %q, want %q", tt.rec, tt.style, got, tt.want)
			}
		})
	}
}

func TestInTextNumbered_IEEEOrdinalWinsOverNumber(t *testing.T) {
	rec := citation.Record{Kind: citation.KindNumbered, Number: 42}
	if got := InTextNumbered(rec, style.IEEE, 2); got != "[2]" {
		t.Errorf("InTextNumbered ordinal 2 = %q, want %q", got, "[2]")
	}
}
