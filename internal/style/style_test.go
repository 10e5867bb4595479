package style

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Style
		wantErr bool
	}{
		{"lowercase", "mla", MLA, false},
		{"uppercase", "APA", APA, false},
		{"mixed case with spaces", "  Chicago ", Chicago, false},
		{"harvard", "harvard", Harvard, false},
		{"ieee", "IEEE", IEEE, false},
		{"unknown", "turabian", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupported) {
					t.Fatalf("Parse(%q) err = %v, want ErrUnsupported", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	for _, s := range All {
		if !Valid(s) {
			t.Errorf("Valid(%q) = false, want true", s)
		}
	}
	if Valid(Style("bluebook")) {
		t.Error("Valid(bluebook) = true, want false")
	}
}

func TestDisplayName(t *testing.T) {
	if got := Chicago.DisplayName(); got != "Chicago" {
		t.Errorf("DisplayName = %q, want Chicago", got)
	}
	if got := IEEE.DisplayName(); got != "IEEE" {
		t.Errorf("DisplayName = %q, want IEEE", got)
	}
}

func TestRules_AllStylesHaveTables(t *testing.T) {
	for _, s := range All {
		r := Rules(s)
		if r.Name != s.DisplayName() {
			t.Errorf("Rules(%q).Name = %q, want %q", s, r.Name, s.DisplayName())
		}
		if r.Citations == "" || r.References == "" || r.Spacing == "" {
			t.Errorf("Rules(%q) has empty fields: %+v", s, r)
		}
	}
}
