package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes the Lip Gloss styles used to draw the panel.
type Styles struct {
	Cell      *lipgloss.Style
	Highlight *lipgloss.Style
	Editing   *lipgloss.Style
	Screen    *lipgloss.Style
	Title     *lipgloss.Style
	Status    *lipgloss.Style
	Help      *lipgloss.Style
}

var defaultStyles = Styles{
	Cell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Highlight: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Editing: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	Screen: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Help: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
