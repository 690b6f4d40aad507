package commands

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/debugsink/internal/debug"
	"github.com/thoreinstein/debugsink/internal/errors"
)

func init() {
	rootCmd.AddCommand(emitCmd)
	rootCmd.AddCommand(emitErrorCmd)
}

var emitCmd = &cobra.Command{
	Use:   "emit [message...]",
	Short: "Emit a trace line",
	Long: `Emit a ">> " prefixed trace line through the debug sink.

Arguments are joined with single spaces. Without arguments, each line read
from standard input is emitted separately.`,
	Example: `  # Single message
  debugsink --debug emit "cache warmed in 120ms"

  # One trace line per input line
  tail -n 5 app.log | debugsink --debug emit

See Also: debugsink dump, debugsink emit-error`,
	RunE: runEmit,
}

var emitErrorCmd = &cobra.Command{
	Use:   "emit-error <label> <message>",
	Short: "Emit an error with its stack trace",
	Long: `Emit a labeled error through the debug sink: the label line, the
error message, then the stack trace captured where the error was created.`,
	Example: `  debugsink --debug emit-error "upstream call failed" "connection refused"

See Also: debugsink trace`,
	Args: cobra.ExactArgs(2),
	RunE: runEmitError,
}

func runEmit(cmd *cobra.Command, args []string) error {
	sink := debug.FromContext(cmd.Context())

	if len(args) > 0 {
		sink.Emit(strings.Join(args, " "))
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		sink.Emit(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "reading standard input"), "")
	}
	return nil
}

func runEmitError(cmd *cobra.Command, args []string) error {
	sink := debug.FromContext(cmd.Context())
	sink.EmitError(args[0], errors.New(args[1]))
	return nil
}
