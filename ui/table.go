package ui

import (
	"fmt"
	"strings"

	"github.com/telton/shape/internal/logger"
)

// TableRenderer renders columns of cells as a bordered grid:
//
//	+------------------+
//	| Name  | Owner    |
//	|==================|
//	| apple | bob      |
//	+------------------+
//
// Column widths are proportional to each column's widest cell. Cells that do
// not fit are word-wrapped and the row grows vertically.
type TableRenderer struct {
	columns     [][]string
	width       int
	maxWidth    int
	minWidth    int
	header      bool
	rowDividers bool
	size        SizeFunc
}

// NewTable creates an empty table with a header row and row dividers enabled
func NewTable() *TableRenderer {
	return &TableRenderer{header: true, rowDividers: true}
}

// NewTableFromColumns creates a table from column-major data. The first cell
// of each column is its header.
func NewTableFromColumns(columns [][]any) *TableRenderer {
	t := NewTable()
	for _, col := range columns {
		t.AddColumn(col...)
	}
	return t
}

// NewTableFromRows creates a table from row-major data. The first row is the
// header row.
func NewTableFromRows(rows [][]any) *TableRenderer {
	t := NewTable()
	for _, row := range rows {
		t.AddRow(row...)
	}
	return t
}

// AddColumn appends a column. The first cell is the header when headers are enabled.
func (t *TableRenderer) AddColumn(cells ...any) *TableRenderer {
	col := make([]string, len(cells))
	for i, c := range cells {
		col[i] = fmt.Sprint(c)
	}
	t.columns = append(t.columns, col)
	return t
}

// AddRow appends one cell to each of the first len(cells) columns, creating
// columns as needed. Columns without a cell in this row render it blank.
func (t *TableRenderer) AddRow(cells ...any) *TableRenderer {
	row := t.rowCount()
	for len(t.columns) < len(cells) {
		t.columns = append(t.columns, nil)
	}
	for i, c := range cells {
		for len(t.columns[i]) < row {
			t.columns[i] = append(t.columns[i], "")
		}
		t.columns[i] = append(t.columns[i], fmt.Sprint(c))
	}
	return t
}

// WithWidth fixes the table width, overriding WithMinWidth and WithMaxWidth
func (t *TableRenderer) WithWidth(width int) *TableRenderer {
	t.width = width
	return t
}

// WithMaxWidth bounds the content-derived width. Defaults to the terminal width.
func (t *TableRenderer) WithMaxWidth(width int) *TableRenderer {
	t.maxWidth = width
	return t
}

// WithMinWidth sets the lower bound on the content-derived width
func (t *TableRenderer) WithMinWidth(width int) *TableRenderer {
	t.minWidth = width
	return t
}

// WithHeader toggles the "=" divider under the first row
func (t *TableRenderer) WithHeader(header bool) *TableRenderer {
	t.header = header
	return t
}

// WithRowDividers toggles "-" dividers between rows
func (t *TableRenderer) WithRowDividers(rowDividers bool) *TableRenderer {
	t.rowDividers = rowDividers
	return t
}

// WithTerminal sets the terminal size query used when no maximum width is set
func (t *TableRenderer) WithTerminal(size SizeFunc) *TableRenderer {
	t.size = size
	return t
}

func (t *TableRenderer) rowCount() int {
	rows := 0
	for _, col := range t.columns {
		rows = max(rows, len(col))
	}
	return rows
}

// bounds resolves the minimum and maximum table width
func (t *TableRenderer) bounds() (int, int) {
	if t.width > 0 {
		return t.width, t.width
	}

	maxWidth := t.maxWidth
	if maxWidth == 0 {
		maxWidth = resolveSize(t.size)()
	}

	minWidth := t.minWidth
	if minWidth == 0 {
		minWidth = 2*len(t.columns) + 1
	}

	return minWidth, maxWidth
}

// Render outputs the formatted table
func (t *TableRenderer) Render() (string, error) {
	if len(t.columns) == 0 {
		return "", ErrNoColumns
	}

	minWidth, maxWidth := t.bounds()

	natural := make([]int, len(t.columns))
	for i, col := range t.columns {
		for _, cell := range col {
			natural[i] = max(natural[i], VisibleLen(cell))
		}
	}

	layout, err := layoutColumns(natural, minWidth, maxWidth)
	if err != nil {
		logger.Debug("Table layout failed", "columns", len(t.columns), "min_width", minWidth, "max_width", maxWidth, "error", err)
		return "", err
	}
	logger.Debug("Table layout", "width", layout.width, "columns", layout.columns)

	wrapped := make([][][]string, len(t.columns))
	for i, col := range t.columns {
		wrapped[i] = make([][]string, len(col))
		for r, cell := range col {
			wrapped[i][r], _ = WordWrap(cell, layout.contentWidth(i))
		}
	}

	var out strings.Builder
	out.WriteString(hline(layout.width, '-', '+'))

	rows := t.rowCount()
	for r := range rows {
		t.writeRow(&out, layout, wrapped, r)

		switch {
		case r == 0:
			if t.header {
				out.WriteString(hline(layout.width, '=', '|'))
			} else if t.rowDividers {
				out.WriteString(hline(layout.width, '-', '|'))
			}
		case r < rows-1:
			if t.rowDividers {
				out.WriteString(hline(layout.width, '-', '|'))
			}
		default:
			out.WriteString(hline(layout.width, '-', '+'))
		}
	}

	return out.String(), nil
}

// writeRow emits one physical line per subline of the tallest cell in row r
func (t *TableRenderer) writeRow(out *strings.Builder, layout columnLayout, wrapped [][][]string, r int) {
	entries := make([][]string, len(wrapped))
	height := 0
	for c, col := range wrapped {
		entries[c] = []string{""}
		if r < len(col) {
			entries[c] = col[r]
		}
		height = max(height, len(entries[c]))
	}

	for i := range height {
		for c, entry := range entries {
			var val string
			if i < len(entry) {
				val = entry[i]
			}
			padding := max(0, layout.contentWidth(c)-VisibleLen(val))
			out.WriteString("| ")
			out.WriteString(val)
			out.WriteString(strings.Repeat(" ", padding))
		}
		out.WriteString("|\n")
	}
}

func hline(width int, char, edge byte) string {
	return string(edge) + strings.Repeat(string(char), width-2) + string(edge) + "\n"
}
