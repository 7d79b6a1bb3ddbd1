package ui

import (
	"fmt"
	"strings"
)

// BoxComponent frames content in a border made of a single character
type BoxComponent struct {
	content string
	char    string
	width   int
	size    SizeFunc
}

// NewBox creates a box around the string form of content
func NewBox(content any) *BoxComponent {
	return &BoxComponent{content: fmt.Sprint(content), char: "#"}
}

// WithChar sets the frame character
func (b *BoxComponent) WithChar(char string) *BoxComponent {
	b.char = char
	return b
}

// WithWidth sets the maximum box width. Content is wrapped to width-4 columns.
func (b *BoxComponent) WithWidth(width int) *BoxComponent {
	b.width = width
	return b
}

// WithTerminal sets the terminal size query used when no width is set
func (b *BoxComponent) WithTerminal(size SizeFunc) *BoxComponent {
	b.size = size
	return b
}

// Render outputs the framed content. The frame is sized to the widest
// wrapped line, so short content produces a narrow box.
func (b *BoxComponent) Render() (string, error) {
	if err := checkGlyph("frame char", b.char); err != nil {
		return "", err
	}

	width := b.width
	if width == 0 {
		width = resolveSize(b.size)()
	}
	maxLen := width - 4

	var lines []string
	longest := 0
	for _, raw := range strings.Split(b.content, "\n") {
		sublines, n := WordWrap(raw, maxLen)
		lines = append(lines, sublines...)
		longest = max(longest, n)
	}

	border := strings.Repeat(b.char, longest+4) + "\n"

	var out strings.Builder
	out.WriteString(border)
	for _, line := range lines {
		padding := strings.Repeat(" ", max(0, longest-VisibleLen(line)))
		fmt.Fprintf(&out, "%s %s%s %s\n", b.char, line, padding, b.char)
	}
	out.WriteString(border)

	return out.String(), nil
}
