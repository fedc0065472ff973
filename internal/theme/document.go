package theme

import (
	"strings"

	"github.com/unkn0wn-root/tinct/internal/colorspec"
	"github.com/unkn0wn-root/tinct/internal/errdef"
)

type BorderStyle string

const (
	BordersNone   BorderStyle = "none"
	BordersSimple BorderStyle = "simple"
	BordersOutset BorderStyle = "outset"
)

func ParseBorderStyle(raw string) (BorderStyle, error) {
	switch BorderStyle(strings.ToLower(strings.TrimSpace(raw))) {
	case BordersNone:
		return BordersNone, nil
	case BordersSimple:
		return BordersSimple, nil
	case BordersOutset:
		return BordersOutset, nil
	default:
		return "", errdef.New(
			errdef.CodeFieldValue,
			"borders: unknown border style %q (expected none, simple or outset)",
			raw,
		)
	}
}

// Palette holds the ten named color slots a theme file may set.
type Palette struct {
	Background        colorspec.ColorSpec
	Shadow            colorspec.ColorSpec
	View              colorspec.ColorSpec
	Primary           colorspec.ColorSpec
	Secondary         colorspec.ColorSpec
	Tertiary          colorspec.ColorSpec
	TitlePrimary      colorspec.ColorSpec
	TitleSecondary    colorspec.ColorSpec
	Highlight         colorspec.ColorSpec
	HighlightInactive colorspec.ColorSpec
}

// Theme is a fully resolved document. It is built once by Load and never
// mutated afterwards; reloading means building a fresh Theme and swapping
// the reference.
type Theme struct {
	Shadow  bool
	Borders BorderStyle
	Palette Palette
}

// Default returns the resolved theme used when fields are absent:
// shadow off, outset borders, and the classic palette of
// background=blue, shadow=black, view=white, primary=black, secondary=blue,
// tertiary="light white", title_primary=red, title_secondary=yellow,
// highlight=red, highlight_inactive=blue.
func Default() Theme {
	return Theme{
		Shadow:  false,
		Borders: BordersOutset,
		Palette: Palette{
			Background:        mustBase("blue"),
			Shadow:            mustBase("black"),
			View:              mustBase("white"),
			Primary:           mustBase("black"),
			Secondary:         mustBase("blue"),
			Tertiary:          mustBase("light white"),
			TitlePrimary:      mustBase("red"),
			TitleSecondary:    mustBase("yellow"),
			Highlight:         mustBase("red"),
			HighlightInactive: mustBase("blue"),
		},
	}
}

func mustBase(name string) colorspec.ColorSpec {
	spec, err := colorspec.Parse(name)
	if err != nil {
		panic(err)
	}
	return spec
}

// Load builds a Theme from a decoded document. Color slots degrade to the
// default palette when no candidate is usable; type or domain violations on
// shadow and borders abort the load. Unrecognized keys are ignored at every
// level so newer theme files keep loading on older binaries.
func Load(raw map[string]interface{}, caps colorspec.Capabilities) (Theme, error) {
	doc := Default()

	if value, ok := raw["shadow"]; ok {
		enabled, isBool := value.(bool)
		if !isBool {
			return Theme{}, errdef.New(
				errdef.CodeFieldValue,
				"shadow: expected boolean, got %v",
				value,
			)
		}
		doc.Shadow = enabled
	}

	if value, ok := raw["borders"]; ok {
		name, isString := value.(string)
		if !isString {
			return Theme{}, errdef.New(
				errdef.CodeFieldValue,
				"borders: expected string, got %v",
				value,
			)
		}
		style, err := ParseBorderStyle(name)
		if err != nil {
			return Theme{}, err
		}
		doc.Borders = style
	}

	if value, ok := raw["colors"]; ok {
		colors, isMap := value.(map[string]interface{})
		if !isMap {
			return Theme{}, errdef.New(
				errdef.CodeFieldValue,
				"colors: expected table of color values, got %v",
				value,
			)
		}
		applyColors(&doc.Palette, colors, caps)
	}

	return doc, nil
}

func applyColors(
	palette *Palette,
	raw map[string]interface{},
	caps colorspec.Capabilities,
) {
	slots := map[string]*colorspec.ColorSpec{
		"background":         &palette.Background,
		"shadow":             &palette.Shadow,
		"view":               &palette.View,
		"primary":            &palette.Primary,
		"secondary":          &palette.Secondary,
		"tertiary":           &palette.Tertiary,
		"title_primary":      &palette.TitlePrimary,
		"title_secondary":    &palette.TitleSecondary,
		"highlight":          &palette.Highlight,
		"highlight_inactive": &palette.HighlightInactive,
	}
	for name, value := range raw {
		target, known := slots[name]
		if !known {
			continue
		}
		if spec, ok := colorspec.Resolve(colorspec.Normalize(value), caps); ok {
			*target = spec
		}
	}
}

// ColorSlots lists the recognized color field names in display order.
func ColorSlots() []string {
	return []string{
		"background",
		"shadow",
		"view",
		"primary",
		"secondary",
		"tertiary",
		"title_primary",
		"title_secondary",
		"highlight",
		"highlight_inactive",
	}
}

// Color looks a slot up by its document field name.
func (t Theme) Color(name string) (colorspec.ColorSpec, bool) {
	switch name {
	case "background":
		return t.Palette.Background, true
	case "shadow":
		return t.Palette.Shadow, true
	case "view":
		return t.Palette.View, true
	case "primary":
		return t.Palette.Primary, true
	case "secondary":
		return t.Palette.Secondary, true
	case "tertiary":
		return t.Palette.Tertiary, true
	case "title_primary":
		return t.Palette.TitlePrimary, true
	case "title_secondary":
		return t.Palette.TitleSecondary, true
	case "highlight":
		return t.Palette.Highlight, true
	case "highlight_inactive":
		return t.Palette.HighlightInactive, true
	default:
		return colorspec.ColorSpec{}, false
	}
}
