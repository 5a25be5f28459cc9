package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/wethinkt/go-vstoolbox/internal/tui/theme"
	"github.com/wethinkt/go-vstoolbox/internal/vscode"
)

// Styles holds the computed lipgloss styles for the TUI.
type Styles struct {
	Title     lipgloss.Style
	Border    lipgloss.Style
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style

	Selected     lipgloss.Style
	PinnedMarker lipgloss.Style
	SectionTitle lipgloss.Style

	ToggleOn  lipgloss.Style
	ToggleOff lipgloss.Style

	StatusOK    lipgloss.Style
	StatusError lipgloss.Style

	kindBadges map[vscode.ConnectionKind]lipgloss.Style
}

// applyStyle applies a theme.Style to a lipgloss.Style builder.
func applyStyle(s lipgloss.Style, ts theme.Style) lipgloss.Style {
	if ts.Fg != "" {
		s = s.Foreground(lipgloss.Color(ts.Fg))
	}
	if ts.Bg != "" {
		s = s.Background(lipgloss.Color(ts.Bg))
	}
	if ts.Bold {
		s = s.Bold(true)
	}
	if ts.Italic {
		s = s.Italic(true)
	}
	if ts.Underline {
		s = s.Underline(true)
	}
	return s
}

// buildStyles creates Styles from a Theme.
func buildStyles(t theme.Theme) Styles {
	s := Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.GetAccent())),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.GetBorderInactive())),

		Primary:   applyStyle(lipgloss.NewStyle(), t.TextPrimary),
		Secondary: applyStyle(lipgloss.NewStyle(), t.TextSecondary),
		Muted:     applyStyle(lipgloss.NewStyle(), t.TextMuted),

		Selected:     applyStyle(lipgloss.NewStyle(), t.Selected),
		PinnedMarker: applyStyle(lipgloss.NewStyle(), t.PinnedMarker),
		SectionTitle: applyStyle(lipgloss.NewStyle(), t.SectionTitle),

		ToggleOn:  applyStyle(lipgloss.NewStyle(), t.ToggleOn),
		ToggleOff: applyStyle(lipgloss.NewStyle(), t.ToggleOff),

		StatusOK:    applyStyle(lipgloss.NewStyle(), t.StatusOK),
		StatusError: applyStyle(lipgloss.NewStyle(), t.StatusError),

		kindBadges: make(map[vscode.ConnectionKind]lipgloss.Style),
	}
	for _, kind := range vscode.AllKinds() {
		s.kindBadges[kind] = applyStyle(lipgloss.NewStyle(), t.KindBadge(string(kind)))
	}
	return s
}

// KindBadge returns the badge style for kind.
func (s Styles) KindBadge(kind vscode.ConnectionKind) lipgloss.Style {
	if st, ok := s.kindBadges[kind]; ok {
		return st
	}
	return s.Muted
}
