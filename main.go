package main

import (
	"context"
	"os"

	"github.com/telton/shape/cmds"
	"github.com/telton/shape/internal/logger"
)

func main() {
	if err := cmds.Execute(context.Background(), os.Args); err != nil {
		logger.Error("shape failed", "error", err)
		os.Exit(1)
	}
}
