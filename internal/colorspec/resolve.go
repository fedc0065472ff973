package colorspec

import "github.com/muesli/termenv"

// FieldValue is an ordered fallback list of raw color candidates. The first
// entry is the theme author's first preference.
type FieldValue []string

// Normalize turns a decoded raw value into a FieldValue. Scalars become a
// one-element list; arrays keep their order. Entries that are not strings
// can never parse, so they are dropped here rather than carried along as
// permanently unusable candidates.
func Normalize(raw interface{}) FieldValue {
	switch v := raw.(type) {
	case string:
		return FieldValue{v}
	case []string:
		out := make(FieldValue, 0, len(v))
		for _, entry := range v {
			out = append(out, entry)
		}
		return out
	case []interface{}:
		out := make(FieldValue, 0, len(v))
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Capabilities describes the color fidelity of the output target. Base
// colors render everywhere; low-res and hex values need CustomColors.
type Capabilities struct {
	CustomColors bool
	Profile      termenv.Profile
}

// Detect reads the color profile of the current process' stdout.
func Detect() Capabilities {
	return ForProfile(termenv.ColorProfile())
}

// ForProfile derives capabilities from a termenv profile. Only the 256-color
// and truecolor profiles can place the low-res cube and hex values; plain
// ANSI keeps the 16 base slots and Ascii renders nothing but still accepts
// base names so resolution stays deterministic.
func ForProfile(p termenv.Profile) Capabilities {
	return Capabilities{
		CustomColors: p == termenv.ANSI256 || p == termenv.TrueColor,
		Profile:      p,
	}
}

// Resolve walks the fallback list in order and returns the first candidate
// that both parses and is renderable under caps. Malformed entries are
// skipped, never fatal. The second return is false when nothing in the list
// was usable; the caller decides the default.
func Resolve(field FieldValue, caps Capabilities) (ColorSpec, bool) {
	for _, candidate := range field {
		spec, err := Parse(candidate)
		if err != nil {
			continue
		}
		if spec.Kind != KindBase && !caps.CustomColors {
			continue
		}
		return spec, true
	}
	return ColorSpec{}, false
}
