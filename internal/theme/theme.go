// Package theme provides theme definitions and color parsing for the TUI.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines all colors used in the application UI.
type Theme struct {
	Accent      lipgloss.Color // Primary accent: view titles, section headers
	AccentFg    lipgloss.Color // Foreground for text on Accent background
	Border      lipgloss.Color
	MutedFg     lipgloss.Color // Hashes, dates, hints
	TextFg      lipgloss.Color // Primary text
	SelectionBg lipgloss.Color // Cursor row background
	SelectionFg lipgloss.Color // Cursor row foreground
	AdditionFg  lipgloss.Color // Diff + lines
	DeletionFg  lipgloss.Color // Diff - lines
	HunkFg      lipgloss.Color // @@ hunk headers
	FileFg      lipgloss.Color // Diff file headers
	RefFg       lipgloss.Color // Branch and tag decorations
	AuthorFg    lipgloss.Color
	SuccessFg   lipgloss.Color
	WarnFg      lipgloss.Color
	ErrorFg     lipgloss.Color
	StatusBarBg lipgloss.Color
	StatusBarFg lipgloss.Color
}

// Theme names.
const (
	DefaultName       = "default"
	DraculaName       = "dracula"
	NordName          = "nord"
	SolarizedDarkName = "solarized-dark"
	GruvboxDarkName   = "gruvbox-dark"
)

// Default returns a palette built from the basic ANSI colors, usable on any
// terminal without truecolor support.
func Default() *Theme {
	return &Theme{
		Accent:      lipgloss.Color("4"),  // Blue
		AccentFg:    lipgloss.Color("0"),  // Black on accent
		Border:      lipgloss.Color("8"),  // Bright black
		MutedFg:     lipgloss.Color("8"),  // Bright black
		TextFg:      lipgloss.Color("7"),  // White
		SelectionBg: lipgloss.Color("4"),  // Blue
		SelectionFg: lipgloss.Color("15"), // Bright white
		AdditionFg:  lipgloss.Color("2"),  // Green
		DeletionFg:  lipgloss.Color("1"),  // Red
		HunkFg:      lipgloss.Color("6"),  // Cyan
		FileFg:      lipgloss.Color("4"),  // Blue
		RefFg:       lipgloss.Color("5"),  // Magenta
		AuthorFg:    lipgloss.Color("2"),  // Green
		SuccessFg:   lipgloss.Color("2"),  // Green
		WarnFg:      lipgloss.Color("3"),  // Yellow
		ErrorFg:     lipgloss.Color("1"),  // Red
		StatusBarBg: lipgloss.Color("8"),  // Bright black
		StatusBarFg: lipgloss.Color("15"), // Bright white
	}
}

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Accent:      lipgloss.Color("#BD93F9"), // Purple (primary accent)
		AccentFg:    lipgloss.Color("#282A36"), // Dark text on accent
		Border:      lipgloss.Color("#6272A4"), // Comment (subtle borders)
		MutedFg:     lipgloss.Color("#6272A4"), // Comment (muted text)
		TextFg:      lipgloss.Color("#F8F8F2"), // Foreground (primary text)
		SelectionBg: lipgloss.Color("#44475A"), // Current Line / Selection
		SelectionFg: lipgloss.Color("#F8F8F2"),
		AdditionFg:  lipgloss.Color("#50FA7B"), // Green
		DeletionFg:  lipgloss.Color("#FF5555"), // Red
		HunkFg:      lipgloss.Color("#8BE9FD"), // Cyan
		FileFg:      lipgloss.Color("#BD93F9"), // Purple
		RefFg:       lipgloss.Color("#FF79C6"), // Pink
		AuthorFg:    lipgloss.Color("#50FA7B"), // Green
		SuccessFg:   lipgloss.Color("#50FA7B"),
		WarnFg:      lipgloss.Color("#FFB86C"), // Orange
		ErrorFg:     lipgloss.Color("#FF5555"),
		StatusBarBg: lipgloss.Color("#44475A"),
		StatusBarFg: lipgloss.Color("#F8F8F2"),
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Accent:      lipgloss.Color("#88C0D0"),
		AccentFg:    lipgloss.Color("#2E3440"), // Dark text on accent
		Border:      lipgloss.Color("#4C566A"),
		MutedFg:     lipgloss.Color("#81A1C1"),
		TextFg:      lipgloss.Color("#E5E9F0"),
		SelectionBg: lipgloss.Color("#3B4252"),
		SelectionFg: lipgloss.Color("#ECEFF4"),
		AdditionFg:  lipgloss.Color("#A3BE8C"),
		DeletionFg:  lipgloss.Color("#BF616A"),
		HunkFg:      lipgloss.Color("#88C0D0"),
		FileFg:      lipgloss.Color("#81A1C1"),
		RefFg:       lipgloss.Color("#B48EAD"),
		AuthorFg:    lipgloss.Color("#A3BE8C"),
		SuccessFg:   lipgloss.Color("#A3BE8C"),
		WarnFg:      lipgloss.Color("#EBCB8B"),
		ErrorFg:     lipgloss.Color("#BF616A"),
		StatusBarBg: lipgloss.Color("#3B4252"),
		StatusBarFg: lipgloss.Color("#E5E9F0"),
	}
}

// SolarizedDark returns the Solarized Dark theme.
func SolarizedDark() *Theme {
	return &Theme{
		Accent:      lipgloss.Color("#268BD2"),
		AccentFg:    lipgloss.Color("#FDF6E3"), // Light text on accent
		Border:      lipgloss.Color("#586E75"),
		MutedFg:     lipgloss.Color("#586E75"),
		TextFg:      lipgloss.Color("#EEE8D5"),
		SelectionBg: lipgloss.Color("#073642"),
		SelectionFg: lipgloss.Color("#FDF6E3"),
		AdditionFg:  lipgloss.Color("#859900"),
		DeletionFg:  lipgloss.Color("#DC322F"),
		HunkFg:      lipgloss.Color("#2AA198"),
		FileFg:      lipgloss.Color("#268BD2"),
		RefFg:       lipgloss.Color("#D33682"),
		AuthorFg:    lipgloss.Color("#859900"),
		SuccessFg:   lipgloss.Color("#859900"),
		WarnFg:      lipgloss.Color("#B58900"),
		ErrorFg:     lipgloss.Color("#DC322F"),
		StatusBarBg: lipgloss.Color("#073642"),
		StatusBarFg: lipgloss.Color("#EEE8D5"),
	}
}

// GruvboxDark returns the Gruvbox Dark theme.
func GruvboxDark() *Theme {
	return &Theme{
		Accent:      lipgloss.Color("#FABD2F"),
		AccentFg:    lipgloss.Color("#282828"), // Dark text on yellow accent
		Border:      lipgloss.Color("#504945"),
		MutedFg:     lipgloss.Color("#928374"),
		TextFg:      lipgloss.Color("#EBDBB2"),
		SelectionBg: lipgloss.Color("#3C3836"),
		SelectionFg: lipgloss.Color("#FBF1C7"),
		AdditionFg:  lipgloss.Color("#B8BB26"),
		DeletionFg:  lipgloss.Color("#FB4934"),
		HunkFg:      lipgloss.Color("#83A598"),
		FileFg:      lipgloss.Color("#FABD2F"),
		RefFg:       lipgloss.Color("#D3869B"),
		AuthorFg:    lipgloss.Color("#B8BB26"),
		SuccessFg:   lipgloss.Color("#B8BB26"),
		WarnFg:      lipgloss.Color("#FABD2F"),
		ErrorFg:     lipgloss.Color("#FB4934"),
		StatusBarBg: lipgloss.Color("#3C3836"),
		StatusBarFg: lipgloss.Color("#EBDBB2"),
	}
}

// ByName returns the named theme, or an error naming the valid choices.
func ByName(name string) (*Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DefaultName:
		return Default(), nil
	case DraculaName:
		return Dracula(), nil
	case NordName:
		return Nord(), nil
	case SolarizedDarkName:
		return SolarizedDark(), nil
	case GruvboxDarkName:
		return GruvboxDark(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q (available: %s)",
			name, strings.Join(AvailableThemes(), ", "))
	}
}

// AvailableThemes lists the theme names accepted by ByName.
func AvailableThemes() []string {
	return []string{
		DefaultName,
		DraculaName,
		NordName,
		SolarizedDarkName,
		GruvboxDarkName,
	}
}

// ansiNames maps the conventional color names to ANSI palette indexes.
var ansiNames = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"gray":           "8",
	"grey":           "8",
	"bright-black":   "8",
	"bright-red":     "9",
	"bright-green":   "10",
	"bright-yellow":  "11",
	"bright-blue":    "12",
	"bright-magenta": "13",
	"bright-cyan":    "14",
	"bright-white":   "15",
}

// parseColor accepts "#rrggbb" hex, an ANSI index like "240", a named color,
// or "default" for the terminal's own color.
func parseColor(s string) (lipgloss.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "default":
		return lipgloss.Color(""), nil
	case strings.HasPrefix(s, "#"):
		if len(s) != 7 && len(s) != 4 {
			return "", fmt.Errorf("malformed hex color %q", s)
		}
		return lipgloss.Color(s), nil
	default:
		if idx, ok := ansiNames[s]; ok {
			return lipgloss.Color(idx), nil
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return "", fmt.Errorf("unknown color %q", s)
			}
		}
		return lipgloss.Color(s), nil
	}
}

// ParseStyle parses a "fg" or "fg on bg" color spec.
func ParseStyle(spec string) (fg, bg lipgloss.Color, err error) {
	fgPart := spec
	bgPart := ""
	if idx := strings.Index(strings.ToLower(spec), " on "); idx >= 0 {
		fgPart = spec[:idx]
		bgPart = spec[idx+4:]
	}
	if fg, err = parseColor(fgPart); err != nil {
		return "", "", err
	}
	if bg, err = parseColor(bgPart); err != nil {
		return "", "", err
	}
	return fg, bg, nil
}

// ApplyColors overrides palette roles from "fg [on bg]" specs, keyed by the
// role names accepted in the config colors section.
func (t *Theme) ApplyColors(colors map[string]string) error {
	for role, spec := range colors {
		fg, bg, err := ParseStyle(spec)
		if err != nil {
			return fmt.Errorf("color %s: %w", role, err)
		}
		switch strings.ToLower(strings.TrimSpace(role)) {
		case "text":
			t.TextFg = fg
		case "muted":
			t.MutedFg = fg
		case "title":
			t.Accent = fg
			if bg != "" {
				t.AccentFg = fg
				t.Accent = bg
			}
		case "selection":
			t.SelectionFg = fg
			if bg != "" {
				t.SelectionBg = bg
			}
		case "addition":
			t.AdditionFg = fg
		case "deletion":
			t.DeletionFg = fg
		case "hunk":
			t.HunkFg = fg
		case "file":
			t.FileFg = fg
		case "ref":
			t.RefFg = fg
		case "author":
			t.AuthorFg = fg
		case "success":
			t.SuccessFg = fg
		case "warning":
			t.WarnFg = fg
		case "error":
			t.ErrorFg = fg
		case "border":
			t.Border = fg
		case "statusbar":
			t.StatusBarFg = fg
			if bg != "" {
				t.StatusBarBg = bg
			}
		default:
			return fmt.Errorf("unknown color role %q", role)
		}
	}
	return nil
}
