// Package commands implements the CLI commands for debugsink.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/debugsink/cmd"
	"github.com/thoreinstein/debugsink/internal/config"
	"github.com/thoreinstein/debugsink/internal/debug"
	"github.com/thoreinstein/debugsink/internal/errors"
	"github.com/thoreinstein/debugsink/internal/logging"
)

// configPath holds the value of the --config flag.
var configPath string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// debugFlag force-enables the sink regardless of configuration.
var debugFlag bool

// debugFile overrides debug.logfile when set.
var debugFile string

// serialize holds the value of the --serialize flag.
var serialize bool

// loadedConfig is the effective configuration after flag overrides.
var loadedConfig *config.Config

// sinkCloser is the log file opened by Sink.Initialize, if any.
var sinkCloser io.Closer

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: ./config.yaml or ~/.config/debugsink/config.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error log output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"enable the debug sink regardless of configuration")
	rootCmd.PersistentFlags().StringVar(&debugFile, "debug-file", "",
		"write debug sink output to this file (created or truncated)")
	rootCmd.PersistentFlags().BoolVar(&serialize, "serialize", false,
		"serialize writes to the debug sink destination")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("debugsink version {{.Version}}\n")

	// Errors are printed by main with their suggestions.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "debugsink",
	Short: "Toggleable diagnostic output for scripts and services",
	Long: `debugsink hosts a debug sink: a single on/off switch that prints
">> " prefixed trace lines, labeled hexadecimal byte dumps and error stack
traces to one destination.

The sink is enabled by debug.enabled in the config file, by the
DEBUGSINK_DEBUG_ENABLED environment variable, or by --debug. When disabled,
every command is silent.`,
	Example: `  # Emit a trace line
  debugsink --debug emit "connected to upstream"

  # Dump the first 32 bytes of a file
  debugsink --debug dump --length 32 packet.bin

  # Send sink output to a file
  DEBUGSINK_DEBUG_ENABLED=true debugsink --debug-file /tmp/debug.log trace

  See Also: debugsink config, debugsink status`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return setupSink(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the CLI's own logger from the verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "Use either --quiet or --verbose, not both")
	}

	level := logging.LevelFromVerbosity(verbosity)
	if quiet {
		level = slog.LevelError
	}

	switch logging.Format(logFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return errors.NewUserError(errors.Newf("unknown log format %q", logFormat), "Use --log-format text or json")
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	})
	slog.SetDefault(logger)

	cmd.SetContext(logging.NewContext(commandContext(cmd), logger))
	return nil
}

// setupSink loads configuration, applies flag overrides and initializes the
// sink that subcommands retrieve with debug.FromContext.
func setupSink(cmd *cobra.Command) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	config.Init()
	cfg, err := config.Load(configPath)
	switch {
	case errors.Is(err, errors.ErrNotFound):
		return errors.NewUserError(err, "Check the --config path, or run: debugsink config init --path "+configPath)
	case err != nil:
		return errors.NewConfigError(err)
	}

	if debugFlag {
		cfg.Debug.Enabled = true
	}
	if cmd.Flags().Changed("debug-file") {
		cfg.Debug.LogFile = debugFile
	}
	loadedConfig = cfg

	opts := []debug.Option{debug.WithDestination(cmd.OutOrStdout())}
	if serialize {
		opts = append(opts, debug.WithSerializedWrites())
	}
	sink := debug.New(opts...)
	sinkCloser = sink.Initialize(cfg.Settings())

	logger.Debug("debug sink initialized",
		"enabled", sink.Enabled(),
		"logfile", cfg.Debug.LogFile,
		"serialized", serialize)

	cmd.SetContext(debug.NewContext(ctx, sink))
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Execute runs the root command and closes any log file the sink opened.
func Execute() error {
	err := rootCmd.Execute()
	if sinkCloser != nil {
		if cerr := sinkCloser.Close(); cerr != nil && err == nil {
			err = errors.NewSystemError(errors.Wrap(cerr, "closing debug log file"), "")
		}
		sinkCloser = nil
	}
	return err
}
