package colorspec

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/unkn0wn-root/tinct/internal/errdef"
)

func TestParseBaseColors(t *testing.T) {
	for idx, name := range BaseColorNames() {
		spec, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", name, err)
		}
		if spec.Kind != KindBase {
			t.Errorf("Parse(%q) kind = %v, want base", name, spec.Kind)
		}
		if spec.Name != name {
			t.Errorf("Parse(%q) name = %q", name, spec.Name)
		}
		if spec.AnsiIndex() != idx {
			t.Errorf("Parse(%q) ansi index = %d, want %d", name, spec.AnsiIndex(), idx)
		}
	}
}

func TestParseBaseColorsAreCaseSensitive(t *testing.T) {
	for _, raw := range []string{"BLUE", "Blue", "Light Black", "LIGHT WHITE"} {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q) should fail, base names are lowercase only", raw)
		}
	}
	if _, err := Parse("blue"); err != nil {
		t.Fatalf("Parse(blue) returned error: %v", err)
	}
}

func TestParseLowRes(t *testing.T) {
	spec, err := Parse("541")
	if err != nil {
		t.Fatalf("Parse(541) returned error: %v", err)
	}
	if spec.Kind != KindLowRes {
		t.Fatalf("Parse(541) kind = %v, want lowres", spec.Kind)
	}
	if spec.R != 5 || spec.G != 4 || spec.B != 1 {
		t.Errorf("Parse(541) channels = %d%d%d", spec.R, spec.G, spec.B)
	}
	if got := spec.Lipgloss(); got != lipgloss.Color("217") {
		// 16 + 36*5 + 6*4 + 1
		t.Errorf("Lipgloss cube index = %v, want 217", got)
	}
	if got := spec.Hex(); got != "#ffcc33" {
		t.Errorf("lowres hex = %q, want #ffcc33", got)
	}
}

func TestParseLowResRejectsDigitsAboveFive(t *testing.T) {
	for _, raw := range []string{"600", "059", "996", "678"} {
		_, err := Parse(raw)
		if err == nil {
			t.Fatalf("Parse(%q) should fail", raw)
		}
		if !errdef.IsCode(err, errdef.CodeColorSyntax) {
			t.Errorf("Parse(%q) error code = %v, want color_syntax", raw, errdef.CodeOf(err))
		}
	}
}

func TestParseHexForms(t *testing.T) {
	tests := []struct {
		raw   string
		hex   string
		short bool
	}{
		{"#ff0000", "#ff0000", false},
		{"#1A6", "#11aa66", true},
		{"#abc", "#aabbcc", true},
		{"#ABCDEF", "#abcdef", false},
		{"#003", "#000033", true},
	}
	for _, tc := range tests {
		spec, err := Parse(tc.raw)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.raw, err)
		}
		if spec.Kind != KindHex {
			t.Fatalf("Parse(%q) kind = %v, want hex", tc.raw, spec.Kind)
		}
		if got := spec.Hex(); got != tc.hex {
			t.Errorf("Parse(%q) hex = %q, want %q", tc.raw, got, tc.hex)
		}
		if spec.Short != tc.short {
			t.Errorf("Parse(%q) short = %v, want %v", tc.raw, spec.Short, tc.short)
		}
	}
}

func TestParseHexRejectsBadInput(t *testing.T) {
	for _, raw := range []string{"#", "#1", "#12", "#1234", "#12345", "#1234567", "#ggg", "#12z456"} {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q) should fail", raw)
		}
	}
}

func TestParseRejectsUnknownStrings(t *testing.T) {
	for _, raw := range []string{"", "grey", "dark blue", "light", "12", "1234", "ff0000"} {
		_, err := Parse(raw)
		if err == nil {
			t.Fatalf("Parse(%q) should fail", raw)
		}
		if !errdef.IsCode(err, errdef.CodeColorSyntax) {
			t.Errorf("Parse(%q) error code = %v, want color_syntax", raw, errdef.CodeOf(err))
		}
	}
}

func TestColorSpecString(t *testing.T) {
	tests := []struct{ raw, want string }{
		{"light magenta", "light magenta"},
		{"045", "045"},
		{"#1A6", "#1a6"},
		{"#11aa66", "#11aa66"},
	}
	for _, tc := range tests {
		spec, err := Parse(tc.raw)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.raw, err)
		}
		if got := spec.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
