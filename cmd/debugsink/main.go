// Package main is the entry point for the debugsink CLI.
package main

import (
	"os"

	"github.com/thoreinstein/debugsink/cmd/debugsink/commands"
	"github.com/thoreinstein/debugsink/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
