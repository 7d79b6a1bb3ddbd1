package cmds

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/telton/shape/internal/logger"
	"github.com/telton/shape/ui"
)

func newBoxCmd() *cli.Command {
	return &cli.Command{
		Name:  "box",
		Usage: "frame text in a box",
		Description: `Box frames its arguments, or stdin when there are none, in a border
made of a single character. Long lines are word-wrapped to fit the width.`,
		Flags: []cli.Flag{
			widthFlag("Maximum box width (defaults to terminal width)"),
			&cli.StringFlag{
				Name:    "char",
				Aliases: []string{"c"},
				Usage:   "Frame character",
				Value:   "#",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			content := strings.Join(c.Args().Slice(), " ")
			if content == "" {
				in, err := readStdin(c)
				if err != nil {
					return err
				}
				content = strings.TrimSuffix(in, "\n")
			}

			logger.Debug("Rendering box", "bytes", len(content), "width", c.Int("width"))

			out, err := ui.NewBox(content).
				WithChar(c.String("char")).
				WithWidth(c.Int("width")).
				Render()
			if err != nil {
				return fmt.Errorf("render box: %w", err)
			}

			_, err = fmt.Fprint(c.Root().Writer, out)
			return err
		},
	}
}
