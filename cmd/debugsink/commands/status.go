package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/debugsink/internal/debug"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the effective debug sink state",
	Long: `Show whether the debug sink is enabled, where its output goes, and
which config file was loaded. Status is written to standard error so it does
not mix with sink output.`,
	Example: `  debugsink status
  DEBUGSINK_DEBUG_ENABLED=true debugsink status

See Also: debugsink config show`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	sink := debug.FromContext(cmd.Context())
	w := cmd.ErrOrStderr()

	state := color.New(color.FgYellow).Sprint("disabled")
	if sink.Enabled() {
		state = color.New(color.FgGreen).Sprint("enabled")
	}

	source := viper.ConfigFileUsed()
	if source == "" {
		source = "(none, defaults and environment)"
	}

	fmt.Fprintf(w, "sink:        %s\n", state)
	fmt.Fprintf(w, "destination: %s\n", destinationName(sink.Destination()))
	fmt.Fprintf(w, "serialized:  %t\n", serialize)
	fmt.Fprintf(w, "config:      %s\n", source)
	return nil
}
