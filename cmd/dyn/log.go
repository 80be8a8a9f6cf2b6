package main

import (
	"log/slog"
	"os"

	"github.com/signadot/dyndecode/debug"
)

var theLog = logger()

func logger() *slog.Logger {
	if debug.Source() {
		return debug.Logger()
	}
	return debug.NewLogger(os.Stderr, slog.LevelWarn)
}
