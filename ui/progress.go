package ui

import (
	"fmt"
	"math"
	"strings"
)

// ProgressBar renders a bracketed completion bar such as [=====>----].
type ProgressBar struct {
	complete float64
	width    int
	done     string
	undone   string
	head     string
	size     SizeFunc
}

// NewProgressBar creates a progress bar for a completion fraction in [0, 1].
// Values outside that range are clamped when rendering.
func NewProgressBar(complete float64) *ProgressBar {
	return &ProgressBar{
		complete: complete,
		done:     "=",
		undone:   "-",
		head:     ">",
	}
}

// WithWidth sets the total width of the bar, brackets included
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.width = width
	return p
}

// WithChars sets the done, undone and head glyphs
func (p *ProgressBar) WithChars(done, undone, head string) *ProgressBar {
	p.done = done
	p.undone = undone
	p.head = head
	return p
}

// WithTerminal sets the terminal size query used when no width is set
func (p *ProgressBar) WithTerminal(size SizeFunc) *ProgressBar {
	p.size = size
	return p
}

// SetProgress updates the completion fraction
func (p *ProgressBar) SetProgress(complete float64) *ProgressBar {
	p.complete = complete
	return p
}

// Render outputs the progress bar
func (p *ProgressBar) Render() (string, error) {
	if err := checkGlyph("done char", p.done); err != nil {
		return "", err
	}
	if err := checkGlyph("undone char", p.undone); err != nil {
		return "", err
	}
	if err := checkGlyph("head char", p.head); err != nil {
		return "", err
	}

	width := p.width
	if width == 0 {
		width = resolveSize(p.size)()
	}
	if width < 3 {
		return "", fmt.Errorf("progress bar width %d: %w", width, ErrInvalidWidth)
	}

	complete := p.complete
	switch {
	case math.IsNaN(complete), complete < 0:
		complete = 0
	case complete > 1:
		complete = 1
	}

	nDone := int(float64(width-3) * complete)
	nUndone := width - 3 - nDone

	var b strings.Builder
	b.Grow(width)
	b.WriteByte('[')
	b.WriteString(strings.Repeat(p.done, nDone))
	b.WriteString(p.head)
	b.WriteString(strings.Repeat(p.undone, nUndone))
	b.WriteByte(']')

	return b.String(), nil
}
