// Package ui provides the interactive dashboard for the poultry360 console.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette based on the Poultry360 web dashboard
var (
	ColorPrimary = lipgloss.Color("#16a34a") // Green
	ColorAccent  = lipgloss.Color("#f59e0b") // Amber
	ColorDanger  = lipgloss.Color("#e53935") // Red
	ColorMuted   = lipgloss.Color("#6b7280") // Gray
	ColorBorder  = lipgloss.Color("#374151") // Dark gray
	ColorText    = lipgloss.Color("#f2f2f2")
)

// Styles holds the lipgloss styles for the dashboard view.
type Styles struct {
	Title     lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	StatValue lipgloss.Style
	StatLabel lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	StatusBar lipgloss.Style
}

// DefaultStyles returns the dashboard styling.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1),
		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent),
		StatValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText),
		StatLabel: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Error: lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),
		StatusBar: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1),
	}
}
