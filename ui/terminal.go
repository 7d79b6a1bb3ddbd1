package ui

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// DefaultTerminalWidth is used when the terminal width cannot be determined.
const DefaultTerminalWidth = 80

// SizeFunc reports the current terminal width in columns.
type SizeFunc func() int

// TerminalWidth returns the width of the terminal attached to stdout.
// Pipes and redirects fall back to $COLUMNS, then DefaultTerminalWidth.
func TerminalWidth() int {
	fd := os.Stdout.Fd()
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return width
		}
	}

	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}

	return DefaultTerminalWidth
}

// FixedWidth returns a SizeFunc that always reports width.
func FixedWidth(width int) SizeFunc {
	return func() int { return width }
}

func resolveSize(size SizeFunc) SizeFunc {
	if size == nil {
		return TerminalWidth
	}
	return size
}
