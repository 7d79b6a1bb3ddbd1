package cmds

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/telton/shape/internal/logger"
	"github.com/telton/shape/ui"
)

func newBarCmd() *cli.Command {
	return &cli.Command{
		Name:    "bar",
		Aliases: []string{"progress"},
		Usage:   "draw a progress bar",
		Description: `Bar prints a bracketed progress bar for a completion fraction.

The fraction is a number in [0, 1] or a percentage such as 42%.`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "fraction",
			},
		},
		Flags: []cli.Flag{
			widthFlag("Total width of the bar (defaults to terminal width)"),
			&cli.StringFlag{
				Name:  "done",
				Usage: "Character for the completed portion",
				Value: "=",
			},
			&cli.StringFlag{
				Name:  "undone",
				Usage: "Character for the remaining portion",
				Value: "-",
			},
			&cli.StringFlag{
				Name:  "head",
				Usage: "Character at the head of the bar",
				Value: ">",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			arg := c.StringArg("fraction")
			if arg == "" {
				return errors.New("missing required argument: <fraction>")
			}

			complete, err := parseFraction(arg)
			if err != nil {
				return err
			}

			logger.Debug("Rendering progress bar", "complete", complete, "width", c.Int("width"))

			bar, err := ui.NewProgressBar(complete).
				WithWidth(c.Int("width")).
				WithChars(c.String("done"), c.String("undone"), c.String("head")).
				Render()
			if err != nil {
				return fmt.Errorf("render progress bar: %w", err)
			}

			_, err = fmt.Fprintln(c.Root().Writer, bar)
			return err
		},
	}
}

// parseFraction accepts "0.42" or "42%"
func parseFraction(s string) (float64, error) {
	scale := 1.0
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		s = pct
		scale = 100
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse fraction %q: %w", s, err)
	}
	return f / scale, nil
}
