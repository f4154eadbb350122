// Package styles holds the lipgloss styles shared by brik's text output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	BoldStyle = lipgloss.NewStyle().Bold(true)

	// ValueStyle renders numeric results.
	ValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

	TrueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	FalseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	DimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)
