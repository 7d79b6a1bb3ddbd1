package ui

import "github.com/charmbracelet/lipgloss"

var (
	Purple = lipgloss.Color("99")
	Cyan   = lipgloss.Color("14")
)

// Theme provides semantic color access
type Theme struct {
	Emphasis lipgloss.Color
	Data     lipgloss.Color
}

// DefaultTheme returns the standard shape color theme
func DefaultTheme() Theme {
	return Theme{
		Emphasis: Purple,
		Data:     Cyan,
	}
}
