// Package lipgloss defines the shared terminal styles used by the CLI.
package lipgloss

import "github.com/charmbracelet/lipgloss"

var (
	Red    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	Green  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	Yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	Blue   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	Gray   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// BoxStyle frames short status lines (token usage, hints).
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
)
