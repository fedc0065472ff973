package theme

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/unkn0wn-root/tinct/internal/colorspec"
	"github.com/unkn0wn-root/tinct/internal/errdef"
)

func TestLoadEmptyDocumentYieldsDefaults(t *testing.T) {
	doc, err := Load(map[string]interface{}{}, colorspec.ForProfile(termenv.TrueColor))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if doc.Shadow {
		t.Errorf("shadow should default to false")
	}
	if doc.Borders != BordersOutset {
		t.Errorf("borders should default to outset, got %q", doc.Borders)
	}
	if doc.Palette.Background.Name != "blue" {
		t.Errorf("background should default to blue, got %q", doc.Palette.Background.String())
	}
	if doc.Palette.Tertiary.Name != "light white" {
		t.Errorf("tertiary should default to light white, got %q", doc.Palette.Tertiary.String())
	}
}

func TestLoadResolvesColorSlots(t *testing.T) {
	raw := map[string]interface{}{
		"shadow":  true,
		"borders": "simple",
		"colors": map[string]interface{}{
			"background":    "black",
			"view":          "#1e1e2e",
			"title_primary": []interface{}{"#ff00ff", "magenta"},
			"highlight":     "530",
		},
	}
	doc, err := Load(raw, colorspec.ForProfile(termenv.TrueColor))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !doc.Shadow {
		t.Errorf("expected shadow on")
	}
	if doc.Borders != BordersSimple {
		t.Errorf("expected simple borders, got %q", doc.Borders)
	}
	if doc.Palette.View.Hex() != "#1e1e2e" {
		t.Errorf("expected view #1e1e2e, got %q", doc.Palette.View.Hex())
	}
	if doc.Palette.TitlePrimary.Kind != colorspec.KindHex {
		t.Errorf("first usable candidate should win, got %q", doc.Palette.TitlePrimary.String())
	}
	if doc.Palette.Highlight.Kind != colorspec.KindLowRes {
		t.Errorf("expected low-res highlight, got %q", doc.Palette.Highlight.String())
	}
}

func TestLoadDegradesOnBasicTarget(t *testing.T) {
	raw := map[string]interface{}{
		"colors": map[string]interface{}{
			"background":    []interface{}{"#1e1e2e", "250", "black"},
			"title_primary": "#ff00ff",
		},
	}
	doc, err := Load(raw, colorspec.ForProfile(termenv.ANSI))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if doc.Palette.Background.Name != "black" {
		t.Errorf("expected base fallback black, got %q", doc.Palette.Background.String())
	}
	// Sole candidate unusable: slot keeps its documented default.
	if doc.Palette.TitlePrimary.Name != "red" {
		t.Errorf("expected default title_primary red, got %q", doc.Palette.TitlePrimary.String())
	}
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	raw := map[string]interface{}{
		"foo": "bar",
		"colors": map[string]interface{}{
			"view":       "white",
			"not_a_slot": "#123456",
		},
	}
	doc, err := Load(raw, colorspec.ForProfile(termenv.TrueColor))
	if err != nil {
		t.Fatalf("unknown keys must not fail the load: %v", err)
	}
	if _, ok := doc.Color("foo"); ok {
		t.Errorf("unknown field must not appear in the document")
	}
	if _, ok := doc.Color("not_a_slot"); ok {
		t.Errorf("unknown color slot must not appear in the document")
	}
}

func TestLoadRejectsBadBorders(t *testing.T) {
	_, err := Load(map[string]interface{}{"borders": "dotted"}, colorspec.ForProfile(termenv.ANSI))
	if err == nil {
		t.Fatalf("borders=dotted should fail")
	}
	if !errdef.IsCode(err, errdef.CodeFieldValue) {
		t.Errorf("error code = %v, want field_value", errdef.CodeOf(err))
	}
	if !strings.Contains(err.Error(), "borders") || !strings.Contains(err.Error(), "dotted") {
		t.Errorf("error should name the field and value, got %q", err.Error())
	}
}

func TestLoadRejectsNonBooleanShadow(t *testing.T) {
	_, err := Load(map[string]interface{}{"shadow": "yes"}, colorspec.ForProfile(termenv.ANSI))
	if err == nil {
		t.Fatalf("shadow=\"yes\" should fail")
	}
	if !errdef.IsCode(err, errdef.CodeFieldValue) {
		t.Errorf("error code = %v, want field_value", errdef.CodeOf(err))
	}
	if !strings.Contains(err.Error(), "shadow") {
		t.Errorf("error should name the field, got %q", err.Error())
	}
}

func TestLoadSkipsNonStringColorScalar(t *testing.T) {
	raw := map[string]interface{}{
		"colors": map[string]interface{}{"view": int64(5)},
	}
	doc, err := Load(raw, colorspec.ForProfile(termenv.TrueColor))
	if err != nil {
		t.Fatalf("non-string color values degrade, not fail: %v", err)
	}
	if doc.Palette.View.Name != "white" {
		t.Errorf("expected default view white, got %q", doc.Palette.View.String())
	}
}

func TestColorAccessorCoversAllSlots(t *testing.T) {
	doc := Default()
	for _, slot := range ColorSlots() {
		if _, ok := doc.Color(slot); !ok {
			t.Errorf("slot %q missing from accessor", slot)
		}
	}
}

func TestParseBorderStyleFoldsCase(t *testing.T) {
	style, err := ParseBorderStyle(" Simple ")
	if err != nil {
		t.Fatalf("ParseBorderStyle returned error: %v", err)
	}
	if style != BordersSimple {
		t.Errorf("expected simple, got %q", style)
	}
}
