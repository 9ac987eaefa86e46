package tui

import (
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	muted  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	danger = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F87"}

	titleStyle       = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)
	statusStyle      = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)
	errorStyle       = lipgloss.NewStyle().Foreground(danger).Bold(true).Padding(1, 1)
	placeholderStyle = lipgloss.NewStyle().Padding(1, 1)
	tableBoxStyle    = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(muted)
)

func tableStyles() btable.Styles {
	s := btable.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(muted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(accent).Bold(false)
	return s
}
