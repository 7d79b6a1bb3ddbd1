package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRenderer(t *testing.T) {
	tests := []struct {
		name  string
		table *TableRenderer
		want  string
	}{
		{
			name: "header divider and closing border",
			table: NewTableFromColumns([][]any{
				{"A", "apple", "avocado"},
				{"B", "bob"},
			}).WithWidth(20),
			want: "+------------------+\n" +
				"| A       | B      |\n" +
				"|==================|\n" +
				"| apple   | bob    |\n" +
				"|------------------|\n" +
				"| avocado |        |\n" +
				"+------------------+\n",
		},
		{
			name: "narrow table wraps cells",
			table: NewTableFromColumns([][]any{
				{"A", "apple", "avocado"},
				{"B", "bob"},
			}).WithWidth(14),
			want: "+------------+\n" +
				"| A     | B  |\n" +
				"|============|\n" +
				"| apple | bob|\n" +
				"|------------|\n" +
				"| avoca-|    |\n" +
				"| do    |    |\n" +
				"+------------+\n",
		},
		{
			name: "no header keeps row dividers",
			table: NewTableFromColumns([][]any{
				{"x", "y"},
				{1, 2},
			}).WithWidth(11).WithHeader(false),
			want: "+---------+\n" +
				"| x | 1   |\n" +
				"|---------|\n" +
				"| y | 2   |\n" +
				"+---------+\n",
		},
		{
			name: "no header and no dividers",
			table: NewTableFromColumns([][]any{
				{"x", "y", "z"},
				{1, 2, 3},
			}).WithWidth(11).WithHeader(false).WithRowDividers(false),
			want: "+---------+\n" +
				"| x | 1   |\n" +
				"| y | 2   |\n" +
				"| z | 3   |\n" +
				"+---------+\n",
		},
		{
			name: "header without row dividers",
			table: NewTableFromColumns([][]any{
				{"x", "y", "z"},
				{1, 2, 3},
			}).WithWidth(11).WithRowDividers(false),
			want: "+---------+\n" +
				"| x | 1   |\n" +
				"|=========|\n" +
				"| y | 2   |\n" +
				"| z | 3   |\n" +
				"+---------+\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.table.Render()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A single row is both the first and the last row. Only the first-row
// divider is written, so the table has no closing border.
func TestTableRenderer_SingleRow(t *testing.T) {
	got, err := NewTableFromColumns([][]any{{"A"}, {"B"}}).WithWidth(11).Render()
	require.NoError(t, err)

	assert.Equal(t, "+---------+\n"+
		"| A | B   |\n"+
		"|=========|\n", got)
	assert.Equal(t, 1, strings.Count(got, "+"+strings.Repeat("-", 9)+"+"))
}

func TestTableRenderer_Rectangular(t *testing.T) {
	columns := [][]any{
		{"Name", "apple", "avocado", "a much longer description of a fruit"},
		{"Owner", "bob"},
		{"Count", 3, 12, 100000},
		{"Notes", "", "\x1b[1mstyled\x1b[0m text", "supercalifragilisticexpialidocious"},
	}

	for _, width := range []int{20, 25, 33, 50, 80, 120} {
		got, err := NewTableFromColumns(columns).WithWidth(width).Render()
		require.NoError(t, err, "width %d", width)

		lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
		for _, line := range lines {
			assert.Equal(t, width, VisibleLen(line), "width %d line %q", width, line)
		}
	}
}

func TestTableRenderer_RaggedColumns(t *testing.T) {
	got, err := NewTableFromColumns([][]any{
		{"A", "1", "2"},
		{"B"},
	}).WithWidth(11).Render()
	require.NoError(t, err)

	assert.Equal(t, "+---------+\n"+
		"| A | B   |\n"+
		"|=========|\n"+
		"| 1 |     |\n"+
		"|---------|\n"+
		"| 2 |     |\n"+
		"+---------+\n", got)
}

func TestTableRenderer_AddRow(t *testing.T) {
	byRow, err := NewTable().
		AddRow("A", "B").
		AddRow("apple", "bob").
		AddRow("avocado").
		WithWidth(20).
		Render()
	require.NoError(t, err)

	byColumn, err := NewTableFromColumns([][]any{
		{"A", "apple", "avocado"},
		{"B", "bob"},
	}).WithWidth(20).Render()
	require.NoError(t, err)

	assert.Equal(t, byColumn, byRow)

	fromRows, err := NewTableFromRows([][]any{
		{"A", "B"},
		{"apple", "bob"},
		{"avocado"},
	}).WithWidth(20).Render()
	require.NoError(t, err)

	assert.Equal(t, byColumn, fromRows)
}

func TestTableRenderer_AddRowPadsNewColumns(t *testing.T) {
	table := NewTable().
		AddRow("A").
		AddRow("1", "x")

	assert.Equal(t, [][]string{{"A", "1"}, {"", "x"}}, table.columns)
}

func TestTableRenderer_ContentWidth(t *testing.T) {
	tests := []struct {
		name  string
		table *TableRenderer
		want  int
	}{
		{
			name:  "shrinks to content",
			table: NewTableFromColumns([][]any{{"A"}, {"B"}}).WithTerminal(FixedWidth(80)),
			want:  9,
		},
		{
			name:  "min width",
			table: NewTableFromColumns([][]any{{"A"}, {"B"}}).WithTerminal(FixedWidth(80)).WithMinWidth(15),
			want:  15,
		},
		{
			name:  "max width",
			table: NewTableFromColumns([][]any{{strings.Repeat("x", 50)}, {"B"}}).WithMaxWidth(30),
			want:  30,
		},
		{
			name:  "terminal width bounds content",
			table: NewTableFromColumns([][]any{{strings.Repeat("x", 50)}, {"B"}}).WithTerminal(FixedWidth(40)),
			want:  40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.table.Render()
			require.NoError(t, err)

			first, _, _ := strings.Cut(got, "\n")
			assert.Len(t, first, tt.want)
		})
	}
}

func TestTableRenderer_StyledCells(t *testing.T) {
	plain, err := NewTableFromColumns([][]any{
		{"Name", "apple"},
		{"Owner", "bob"},
	}).WithWidth(24).Render()
	require.NoError(t, err)

	styled, err := NewTableFromColumns([][]any{
		{"\x1b[1mName\x1b[0m", "apple"},
		{"Owner", "\x1b[36mbob\x1b[0m"},
	}).WithWidth(24).Render()
	require.NoError(t, err)

	assert.Equal(t, plain, Strip(styled))
}

func TestTableRenderer_Collapse(t *testing.T) {
	got, err := NewTableFromColumns([][]any{
		{"", ""},
		{strings.Repeat("x", 30), "y"},
	}).WithWidth(20).Render()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	for _, line := range lines {
		assert.Len(t, line, 20)
	}
	assert.True(t, strings.HasPrefix(lines[1], "|   | "), "collapsed column keeps two content columns: %q", lines[1])
}

func TestTableRenderer_LayoutInfeasible(t *testing.T) {
	_, err := NewTableFromColumns([][]any{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}}).WithWidth(10).Render()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLayout)

	var layoutErr *LayoutError
	require.ErrorAs(t, err, &layoutErr)
	assert.Equal(t, 0, layoutErr.Column)
}

func TestTableRenderer_NoColumns(t *testing.T) {
	_, err := NewTable().Render()
	assert.ErrorIs(t, err, ErrNoColumns)
}
