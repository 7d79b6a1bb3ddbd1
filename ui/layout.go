package ui

import (
	"cmp"
	"fmt"
	"slices"
)

const (
	// cellPadding is the "| " prefix plus the trailing space of every cell.
	cellPadding = 2

	// minColumnWidth fits two content characters and the cell padding.
	minColumnWidth = 2 + cellPadding
)

// columnLayout is the resolved geometry of a single table render.
// The column widths always sum to width-1; the final column is closed by
// the trailing "|".
type columnLayout struct {
	width   int
	columns []int
}

// contentWidth is the room left for cell text in column i.
func (l columnLayout) contentWidth(i int) int {
	return l.columns[i] - cellPadding
}

// layoutColumns shares the table width between columns in proportion to
// their natural (widest cell) widths, then grows any column too narrow to
// display content at the expense of the widest remaining ones.
func layoutColumns(natural []int, minWidth, maxWidth int) (columnLayout, error) {
	n := len(natural)
	maxColWidth := maxWidth - 3 - 2*(n-1)

	widths := make([]int, n)
	total := 1
	for i, w := range natural {
		widths[i] = max(min(w, maxColWidth), 0)
		total += widths[i] + 3
	}

	tableWidth := max(min(total, maxWidth), minWidth)
	usable := tableWidth - 1

	columns := make([]int, n)
	assigned := 0
	for i, w := range widths[:n-1] {
		pct := float64(w) / float64(total)
		columns[i] = int(pct*float64(usable)) + 3
		assigned += columns[i]
	}
	columns[n-1] = usable - assigned

	if err := redistribute(columns); err != nil {
		return columnLayout{}, err
	}

	for i, w := range columns {
		if w-cellPadding <= 1 {
			return columnLayout{}, &LayoutError{
				Column: i,
				Reason: fmt.Sprintf("content width %d after redistribution", w-cellPadding),
			}
		}
	}

	return columnLayout{width: tableWidth, columns: columns}, nil
}

// redistribute brings every collapsed column up to minColumnWidth by taking
// width from the widest column that can spare it and stay displayable.
// The sum of columns is unchanged.
func redistribute(columns []int) error {
	var collapsed, donors []int
	for i, w := range columns {
		if w-cellPadding < 2 {
			collapsed = append(collapsed, i)
		} else {
			donors = append(donors, i)
		}
	}

	for _, c := range collapsed {
		slices.SortStableFunc(donors, func(a, b int) int {
			return cmp.Compare(columns[b], columns[a])
		})

		need := minColumnWidth - columns[c]
		if len(donors) == 0 || columns[donors[0]]-need < minColumnWidth {
			return &LayoutError{Column: c, Reason: "no column has width to spare"}
		}

		columns[donors[0]] -= need
		columns[c] += need
	}

	return nil
}
