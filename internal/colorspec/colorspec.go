package colorspec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/unkn0wn-root/tinct/internal/errdef"
)

type Kind int

const (
	KindBase Kind = iota
	KindLowRes
	KindHex
)

func (k Kind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindLowRes:
		return "lowres"
	case KindHex:
		return "hex"
	default:
		return "invalid"
	}
}

// ColorSpec is a parsed theme color value in one of the three source forms.
// Base colors keep their name, low-res colors keep per-channel values in
// 0..5, hex colors keep full 8-bit channels plus a marker for the short
// (3-digit) notation.
type ColorSpec struct {
	Kind    Kind
	Name    string
	R, G, B uint8
	Short   bool
}

// The 16 base names map onto the standard ANSI palette indices. Matching is
// case-sensitive on purpose: "Blue" is not a theme color.
var baseColorIndex = map[string]int{
	"black":         0,
	"red":           1,
	"green":         2,
	"yellow":        3,
	"blue":          4,
	"magenta":       5,
	"cyan":          6,
	"white":         7,
	"light black":   8,
	"light red":     9,
	"light green":   10,
	"light yellow":  11,
	"light blue":    12,
	"light magenta": 13,
	"light cyan":    14,
	"light white":   15,
}

// Parse reads a raw color string. Form detection is ordered: a "#" prefix
// selects the hex grammar, three ASCII digits select the low-res grammar,
// anything else must be one of the 16 base names.
func Parse(raw string) (ColorSpec, error) {
	if strings.HasPrefix(raw, "#") {
		return parseHex(raw)
	}
	if len(raw) == 3 && isASCIIDigits(raw) {
		return parseLowRes(raw)
	}
	if _, ok := baseColorIndex[raw]; ok {
		return ColorSpec{Kind: KindBase, Name: raw}, nil
	}
	return ColorSpec{}, errdef.New(
		errdef.CodeColorSyntax,
		"invalid color %q: expected base color name, 3 digits 0-5, or #hex",
		raw,
	)
}

func parseHex(raw string) (ColorSpec, error) {
	digits := raw[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return ColorSpec{}, errdef.New(
			errdef.CodeColorSyntax,
			"invalid color %q: hex form needs exactly 3 or 6 digits",
			raw,
		)
	}
	for _, r := range digits {
		if !isHexDigit(byte(r)) {
			return ColorSpec{}, errdef.New(
				errdef.CodeColorSyntax,
				"invalid color %q: %q is not a hex digit",
				raw,
				string(r),
			)
		}
	}
	short := len(digits) == 3
	if short {
		// "1A6" reads as "11AA66".
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = digits[i]
			expanded[2*i+1] = digits[i]
		}
		digits = string(expanded)
	}
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return ColorSpec{}, errdef.Wrap(errdef.CodeColorSyntax, err, "invalid color %q", raw)
	}
	return ColorSpec{
		Kind:  KindHex,
		R:     uint8(value >> 16),
		G:     uint8(value >> 8),
		B:     uint8(value),
		Short: short,
	}, nil
}

func parseLowRes(raw string) (ColorSpec, error) {
	channels := [3]uint8{}
	for i := 0; i < 3; i++ {
		d := raw[i] - '0'
		if d > 5 {
			return ColorSpec{}, errdef.New(
				errdef.CodeColorSyntax,
				"invalid color %q: low-res channels range 0-5",
				raw,
			)
		}
		channels[i] = d
	}
	return ColorSpec{Kind: KindLowRes, R: channels[0], G: channels[1], B: channels[2]}, nil
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	}
	return false
}

// AnsiIndex returns the palette index of a base color; -1 for other forms.
func (c ColorSpec) AnsiIndex() int {
	if c.Kind != KindBase {
		return -1
	}
	idx, ok := baseColorIndex[c.Name]
	if !ok {
		return -1
	}
	return idx
}

// Hex returns the 24-bit "#rrggbb" encoding. Low-res channels scale onto
// 0-255 (0→0x00, 5→0xff); base colors have no fixed RGB and return "".
func (c ColorSpec) Hex() string {
	switch c.Kind {
	case KindHex:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	case KindLowRes:
		return fmt.Sprintf("#%02x%02x%02x", c.R*51, c.G*51, c.B*51)
	default:
		return ""
	}
}

// Lipgloss converts the spec into a color lipgloss can render: base colors
// as ANSI palette indices, low-res colors as the matching xterm 6x6x6 cube
// index, hex colors verbatim.
func (c ColorSpec) Lipgloss() lipgloss.TerminalColor {
	switch c.Kind {
	case KindBase:
		return lipgloss.Color(strconv.Itoa(c.AnsiIndex()))
	case KindLowRes:
		cube := 16 + 36*int(c.R) + 6*int(c.G) + int(c.B)
		return lipgloss.Color(strconv.Itoa(cube))
	case KindHex:
		return lipgloss.Color(c.Hex())
	default:
		return lipgloss.NoColor{}
	}
}

func (c ColorSpec) String() string {
	switch c.Kind {
	case KindBase:
		return c.Name
	case KindLowRes:
		return fmt.Sprintf("%d%d%d", c.R, c.G, c.B)
	case KindHex:
		if c.Short {
			return fmt.Sprintf("#%x%x%x", c.R&0x0f, c.G&0x0f, c.B&0x0f)
		}
		return c.Hex()
	default:
		return ""
	}
}

// BaseColorNames lists the 16 valid base names in palette order.
func BaseColorNames() []string {
	names := make([]string, len(baseColorIndex))
	for name, idx := range baseColorIndex {
		names[idx] = name
	}
	return names
}
