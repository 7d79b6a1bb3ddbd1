package cmds

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/telton/shape/internal/logger"
)

// Execute runs the shape command line against the process stdio
func Execute(ctx context.Context, args []string) error {
	return newRootCmd(os.Stdin, os.Stdout, os.Stderr).Run(ctx, args)
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "shape",
		Usage:     "lay out text for the terminal",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   string(logger.LevelWarn),
				Sources: cli.EnvVars("SHAPE_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (text, json)",
				Value:   "text",
				Sources: cli.EnvVars("SHAPE_LOG_FORMAT"),
				Validator: func(s string) error {
					if s == "text" || s == "json" {
						return nil
					}
					return fmt.Errorf("unknown log format: %s", s)
				},
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger.Setup(&logger.Config{
				Level:  logger.ParseLevelFromString(c.String("log-level")),
				Format: c.String("log-format"),
				Output: errOut,
			})
			return ctx, nil
		},
		Commands: []*cli.Command{
			newBarCmd(),
			newBoxCmd(),
			newTableCmd(),
			newVersionCmd(),
		},
	}
}

// widthFlag is shared by every rendering command. Zero means the terminal width.
func widthFlag(usage string) cli.Flag {
	return &cli.IntFlag{
		Name:    "width",
		Aliases: []string{"w"},
		Usage:   usage,
		Sources: cli.EnvVars("SHAPE_WIDTH"),
		Validator: func(w int) error {
			if w < 0 {
				return fmt.Errorf("width must not be negative: %d", w)
			}
			return nil
		},
	}
}

// readStdin returns everything on the command's input
func readStdin(c *cli.Command) (string, error) {
	data, err := io.ReadAll(c.Root().Reader)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
