package ui

import "github.com/charmbracelet/x/ansi"

// VisibleLen returns the number of terminal columns s occupies once any
// ANSI escape sequences are removed.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Strip removes ANSI escape sequences from s.
func Strip(s string) string {
	return ansi.Strip(s)
}

// splitVisible cuts s after n visible columns. Escape sequences are kept on
// whichever side they appear.
func splitVisible(s string, n int) (string, string) {
	return ansi.Truncate(s, n, ""), ansi.TruncateLeft(s, n, "")
}
