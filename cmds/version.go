package cmds

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/telton/shape/internal/version"
)

func newVersionCmd() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Usage:   "Show version information",
		Aliases: []string{"v"},
		Action: func(ctx context.Context, c *cli.Command) error {
			_, err := fmt.Fprintf(c.Root().Writer, "shape %s\n", version.Get())
			return err
		},
	}
}
