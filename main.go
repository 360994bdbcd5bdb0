package main

import (
	"context"
	"os"

	"github.com/jcorbin/inets/internal/logio"
)

func main() {
	log := logio.NewLogger(os.Stderr)
	cmd := newRootCmd(log, os.Stdout)
	log.ErrorIf(cmd.ExecuteContext(context.Background()))
	os.Exit(log.ExitCode())
}
