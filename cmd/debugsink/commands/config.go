package commands

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/debugsink/internal/config"
	"github.com/thoreinstein/debugsink/internal/editor"
	"github.com/thoreinstein/debugsink/internal/errors"
	"github.com/thoreinstein/debugsink/internal/logging"
	"github.com/thoreinstein/debugsink/internal/paths"
)

var (
	configShowFormat string
	configInitPath   string
	configInitForce  bool
)

func init() {
	configShowCmd.Flags().StringVar(&configShowFormat, "format", "yaml",
		"output format: yaml, toml")
	configInitCmd.Flags().StringVar(&configInitPath, "path", "",
		"where to write the file (default: ~/.config/debugsink/config.yaml)")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false,
		"overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage debugsink configuration",
	Long: `Manage the debugsink configuration file.

Without a subcommand, shows the effective configuration.`,
	Example: `  # Effective configuration as YAML
  debugsink config

  # As TOML
  debugsink config show --format toml

  # Write a starter file
  debugsink config init

See Also: debugsink status`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration after defaults, config file, environment
variables and command-line flags have been applied.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long: `Write a configuration file with the sink disabled and debug.logfile
pointing at the default state directory. The format follows the file
extension: .toml writes TOML, anything else YAML.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintln(cmd.OutOrStdout(), used)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), "not found (default location: "+paths.ConfigFile()+")")
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in $EDITOR",
	Long: `Open the configuration file in your editor ($EDITOR, then $VISUAL,
then nano or vi). Edits the file in use, or the default location if none was
found. Run 'debugsink config init' first if the file does not exist.`,
	Example: `  EDITOR="code --wait" debugsink config edit

See Also: debugsink config init`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg := loadedConfig
	if cfg == nil {
		cfg = config.Default()
	}

	var (
		data []byte
		err  error
	)
	switch configShowFormat {
	case "yaml", "":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", configShowFormat), "Use --format yaml or toml")
	}
	if err != nil {
		return errors.NewSystemError(errors.Wrap(err, "encoding config"), "")
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configInitPath
	if path == "" {
		path = paths.ConfigFile()
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return errors.NewUserError(errors.Newf("%s already exists", path), "Use --force to overwrite it")
	}

	cfg := config.Default()
	cfg.Debug.LogFile = paths.DefaultLogFile()
	if err := config.Save(path, cfg); err != nil {
		return errors.NewSystemError(err, "Check that the directory is writable")
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "wrote "+path)
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := viper.ConfigFileUsed()
	if path == "" {
		path = paths.ConfigFile()
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return errors.NewSystemError(errors.Wrapf(err, "config file %s", path), "")
		}
		missing := errors.Mark(errors.Wrapf(err, "config file %s", path), errors.ErrNotFound)
		return errors.NewUserError(missing, "Run: debugsink config init")
	}

	logging.FromContext(cmd.Context()).Info("opening config", "path", path)
	return editor.Open(cmd.Context(), path, editor.Streams{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	})
}
