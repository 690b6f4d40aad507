package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/debugsink/internal/debug"
)

func init() {
	rootCmd.AddCommand(traceCmd)
}

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Emit the current stack trace",
	Long: `Emit a "DEBUG STACK TRACE" block showing the call stack at the point
of the call. Useful to verify that sink output reaches its destination.`,
	Example: `  debugsink --debug trace`,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		debug.FromContext(cmd.Context()).CaptureTrace()
	},
}
