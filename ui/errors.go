package ui

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidGlyph is returned when a glyph argument is not exactly one character.
	ErrInvalidGlyph = errors.New("glyph must be exactly one character")

	// ErrInvalidWidth is returned when a requested width cannot hold the layout frame.
	ErrInvalidWidth = errors.New("width too small")

	// ErrNoColumns is returned when a table is rendered without columns.
	ErrNoColumns = errors.New("table has no columns")

	// ErrLayout matches every LayoutError with errors.Is.
	ErrLayout = errors.New("table layout infeasible")
)

// LayoutError reports a table whose columns cannot all be given room to
// display content at the requested width.
type LayoutError struct {
	Column int
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("table layout: column %d: %s", e.Column, e.Reason)
}

func (e *LayoutError) Is(target error) bool {
	return target == ErrLayout
}

func checkGlyph(name, glyph string) error {
	if utf8.RuneCountInString(glyph) != 1 {
		return fmt.Errorf("%s %q: %w", name, glyph, ErrInvalidGlyph)
	}
	return nil
}
