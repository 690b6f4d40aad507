package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/debugsink/internal/errors"
)

// PrintError writes err and its suggestion to w. The suggestion comes from an
// ExitError, or else from hints attached with errors.WithHint.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Fprintf(w, "%s %v\n", red.Sprint("Error:"), err)

	// An explicit suggestion wins over hints attached deeper in the chain.
	suggestion := errors.FlattenHints(err)
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		suggestion = exitErr.Suggestion
	}
	if suggestion != "" {
		fmt.Fprintf(w, "%s %s\n", yellow.Sprint("Suggestion:"), suggestion)
	}
}

// destinationName describes a sink destination for humans.
func destinationName(w io.Writer) string {
	switch w {
	case os.Stdout:
		return "stdout"
	case os.Stderr:
		return "stderr"
	case io.Discard:
		return "discard"
	}
	if f, ok := w.(*os.File); ok {
		return f.Name()
	}
	return fmt.Sprintf("%T", w)
}
