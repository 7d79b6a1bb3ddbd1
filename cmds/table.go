package cmds

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/telton/shape/internal/logger"
	"github.com/telton/shape/ui"
)

func newTableCmd() *cli.Command {
	return &cli.Command{
		Name:    "table",
		Aliases: []string{"t"},
		Usage:   "lay out columns as a bordered table",
		Description: `Table reads a YAML or JSON document and prints it as a bordered grid.

The document is either a list of columns or a mapping:

  header: true
  row_dividers: false
  columns:
    - [Name, apple, avocado]
    - [Owner, bob]

A "rows" key (or --rows) lays the lists out as rows instead. The first
cell of every column is the header. Reads stdin when no file is given.`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "file",
			},
		},
		Flags: []cli.Flag{
			widthFlag("Fixed table width (overrides --min-width and --max-width)"),
			&cli.IntFlag{
				Name:  "max-width",
				Usage: "Upper bound on the content-based width (defaults to terminal width)",
			},
			&cli.IntFlag{
				Name:  "min-width",
				Usage: "Lower bound on the content-based width",
			},
			&cli.BoolFlag{
				Name:  "rows",
				Usage: "Treat each list in a bare document as a row",
			},
			&cli.BoolFlag{
				Name:  "no-header",
				Usage: "Do not set the first row apart",
			},
			&cli.BoolFlag{
				Name:  "no-row-dividers",
				Usage: "Omit dividers between rows",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "Style header and body cells",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			file := c.StringArg("file")

			doc, err := readTableDocument(file, func() (string, error) { return readStdin(c) })
			if err != nil {
				return err
			}

			header := !c.Bool("no-header")
			if doc.Header != nil && !c.IsSet("no-header") {
				header = *doc.Header
			}
			rowDividers := !c.Bool("no-row-dividers")
			if doc.RowDividers != nil && !c.IsSet("no-row-dividers") {
				rowDividers = *doc.RowDividers
			}

			columns := doc.Columns
			if len(doc.Rows) > 0 || c.Bool("rows") {
				columns = transpose(append(doc.Rows, doc.Columns...))
			}
			if c.Bool("color") {
				columns = ui.StyleColumns(columns, header)
			}

			logger.Debug("Rendering table", "file", file, "columns", len(columns), "header", header, "row_dividers", rowDividers)

			out, err := ui.NewTableFromColumns(columns).
				WithWidth(c.Int("width")).
				WithMaxWidth(c.Int("max-width")).
				WithMinWidth(c.Int("min-width")).
				WithHeader(header).
				WithRowDividers(rowDividers).
				Render()
			if err != nil {
				return fmt.Errorf("render table: %w", err)
			}

			_, err = fmt.Fprint(c.Root().Writer, out)
			return err
		},
	}
}

// transpose turns row-major cells into columns. Short rows leave blanks.
func transpose(rows [][]any) [][]any {
	var columns [][]any
	for r, row := range rows {
		for i, cell := range row {
			if i == len(columns) {
				columns = append(columns, nil)
			}
			for len(columns[i]) < r {
				columns[i] = append(columns[i], "")
			}
			columns[i] = append(columns[i], cell)
		}
	}
	return columns
}
