package colorspec

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/unkn0wn-root/tinct/internal/errdef"
)

// ParseProfile maps a user-facing profile name onto a termenv profile.
// "auto" (or empty) detects the current terminal.
func ParseProfile(name string) (termenv.Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return termenv.ColorProfile(), nil
	case "ascii":
		return termenv.Ascii, nil
	case "ansi":
		return termenv.ANSI, nil
	case "ansi256", "256":
		return termenv.ANSI256, nil
	case "truecolor", "24bit":
		return termenv.TrueColor, nil
	default:
		return termenv.Ascii, errdef.New(
			errdef.CodeFieldValue,
			"profile: unknown color profile %q (expected auto, ascii, ansi, ansi256 or truecolor)",
			name,
		)
	}
}

// ProfileName is the inverse of ParseProfile for display purposes.
func ProfileName(p termenv.Profile) string {
	switch p {
	case termenv.Ascii:
		return "ascii"
	case termenv.ANSI:
		return "ansi"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.TrueColor:
		return "truecolor"
	default:
		return "unknown"
	}
}
