package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("242"))

	Value = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("220"))

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("242")).
		Italic(true)
)
