// Package ui renders plain text into fixed-width terminal layouts.
//
// The ui package has three renderers built on two shared helpers:
//
//   - Progress bars with configurable done, undone and head glyphs
//   - Boxes that frame arbitrary text with a single character
//   - Bordered tables with proportional column widths and word-wrapped cells
//   - WordWrap, a greedy whitespace wrapper with hyphenated forced splits
//   - VisibleLen, the rendered width of a string with ANSI sequences removed
//
// Every renderer defaults its width to the current terminal. The terminal
// query is a SizeFunc that can be replaced with WithTerminal.
//
// Usage:
//
//	bar, err := ui.NewProgressBar(0.42).WithWidth(40).Render()
//	// [================>---------------------]
//
//	box, err := ui.NewBox("hello world").WithChar("*").Render()
//
//	table, err := ui.NewTable().
//		AddColumn("Name", "apple", "avocado").
//		AddColumn("Owner", "bob").
//		WithWidth(20).
//		Render()
//
// Cell contents may carry lipgloss styling. Widths are always measured on
// the visible text, so styled and plain tables have the same geometry.
package ui
