package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ftahirops/logradar/model"
)

// Theme is a named color palette. "matrix" and "mono" are built in. The CLI
// treats an unrecognized name from an explicit --theme flag as a fatal
// error (§6); an unrecognized name from the config file falls back to
// matrix silently instead, since a bad config value is never fatal.
type Theme struct {
	Name string

	Accent    lipgloss.Color
	Border    lipgloss.Color
	Text      lipgloss.Color
	Dim       lipgloss.Color
	Highlight lipgloss.Color

	ColorTrace lipgloss.Color
	ColorDebug lipgloss.Color
	ColorInfo  lipgloss.Color
	ColorWarn  lipgloss.Color
	ColorError lipgloss.Color
}

func matrixTheme() Theme {
	return Theme{
		Name:       "matrix",
		Accent:     lipgloss.Color("#50FA7B"),
		Border:     lipgloss.Color("#2E8B57"),
		Text:       lipgloss.Color("#D0FFD0"),
		Dim:        lipgloss.Color("#3A6B3A"),
		Highlight:  lipgloss.Color("#F1FA8C"),
		ColorTrace: lipgloss.Color("#3A6B3A"),
		ColorDebug: lipgloss.Color("#6272A4"),
		ColorInfo:  lipgloss.Color("#50FA7B"),
		ColorWarn:  lipgloss.Color("#F1FA8C"),
		ColorError: lipgloss.Color("#FF5555"),
	}
}

func monoTheme() Theme {
	return Theme{
		Name:       "mono",
		Accent:     lipgloss.Color("#FFFFFF"),
		Border:     lipgloss.Color("#888888"),
		Text:       lipgloss.Color("#DDDDDD"),
		Dim:        lipgloss.Color("#666666"),
		Highlight:  lipgloss.Color("#FFFFFF"),
		ColorTrace: lipgloss.Color("#666666"),
		ColorDebug: lipgloss.Color("#999999"),
		ColorInfo:  lipgloss.Color("#DDDDDD"),
		ColorWarn:  lipgloss.Color("#CCCCCC"),
		ColorError: lipgloss.Color("#FFFFFF"),
	}
}

// themeNames lists every built-in theme, in cycle order for the "t" key.
var themeNames = []string{"matrix", "mono"}

// LookupTheme resolves a theme by name. The bool is false for an unknown
// name; callers decide what that means (cmd.Run treats a bad --theme flag
// as fatal but a bad config-file theme as a silent fallback to matrix).
func LookupTheme(name string) (Theme, bool) {
	switch name {
	case "matrix", "":
		return matrixTheme(), true
	case "mono":
		return monoTheme(), true
	default:
		return Theme{}, false
	}
}

// NextTheme returns the theme that follows name in the cycle order.
func NextTheme(name string) Theme {
	for i, n := range themeNames {
		if n == name {
			next, _ := LookupTheme(themeNames[(i+1)%len(themeNames)])
			return next
		}
	}
	t, _ := LookupTheme(themeNames[0])
	return t
}

// styles bundles the lipgloss.Style values derived from a Theme, rebuilt
// whenever the active theme changes.
type styles struct {
	panel         lipgloss.Style
	activePanel   lipgloss.Style
	title         lipgloss.Style
	label         lipgloss.Style
	value         lipgloss.Style
	header        lipgloss.Style
	selected      lipgloss.Style
	help          lipgloss.Style
	dim           lipgloss.Style
	highlight     lipgloss.Style
	severityStyle map[model.Severity]lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		panel:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1),
		activePanel: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Accent).Padding(0, 1),
		title:       lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		label:       lipgloss.NewStyle().Foreground(t.Dim),
		value:       lipgloss.NewStyle().Foreground(t.Text),
		header:      lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		selected:    lipgloss.NewStyle().Background(t.Dim).Foreground(t.Text),
		help:        lipgloss.NewStyle().Foreground(t.Dim),
		dim:         lipgloss.NewStyle().Foreground(t.Dim),
		highlight:   lipgloss.NewStyle().Foreground(t.Highlight).Bold(true),
		severityStyle: map[model.Severity]lipgloss.Style{
			model.Trace:   lipgloss.NewStyle().Foreground(t.ColorTrace),
			model.Debug:   lipgloss.NewStyle().Foreground(t.ColorDebug),
			model.Info:    lipgloss.NewStyle().Foreground(t.ColorInfo),
			model.Warn:    lipgloss.NewStyle().Foreground(t.ColorWarn).Bold(true),
			model.Error:   lipgloss.NewStyle().Foreground(t.ColorError).Bold(true),
			model.Unknown: lipgloss.NewStyle().Foreground(t.ColorInfo),
		},
	}
}

func (s styles) severity(sev model.Severity) lipgloss.Style {
	if st, ok := s.severityStyle[sev]; ok {
		return st
	}
	return s.value
}
