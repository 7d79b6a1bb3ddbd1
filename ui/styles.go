package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	theme = DefaultTheme()

	Bold = lipgloss.NewStyle().Bold(true)

	// Header styles the first cell of every column
	Header = Bold.Foreground(theme.Emphasis)
	// Value styles body cells
	Value = lipgloss.NewStyle().Foreground(theme.Data)
)

// StyleColumns returns a copy of columns with header and body cells styled.
// Visible widths are unchanged, so the styled table has the same layout.
func StyleColumns(columns [][]any, header bool) [][]any {
	styled := make([][]any, len(columns))
	for i, col := range columns {
		styled[i] = make([]any, len(col))
		for r, cell := range col {
			style := Value
			if r == 0 && header {
				style = Header
			}
			styled[i][r] = style.Render(fmt.Sprint(cell))
		}
	}
	return styled
}
