package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/debugsink/internal/debug"
	"github.com/thoreinstein/debugsink/internal/errors"
	"github.com/thoreinstein/debugsink/internal/logging"
	"github.com/thoreinstein/debugsink/pkg/fileutil"
)

var (
	dumpLabel  string
	dumpOffset int
	dumpLength int
)

func init() {
	dumpCmd.Flags().StringVar(&dumpLabel, "label", "",
		"label for the dump header (default: file name, or \"stdin\")")
	dumpCmd.Flags().IntVar(&dumpOffset, "offset", 0,
		"first byte to dump")
	dumpCmd.Flags().IntVar(&dumpLength, "length", -1,
		"number of bytes to dump (-1: through the end of the input)")
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Emit a labeled hexadecimal dump",
	Long: `Emit a labeled hexadecimal dump of a file, or of standard input when no
file is given. Input is limited to 1MB.

Bytes are printed as uppercase hex pairs in rows of eight. Rows alternate
between starting a new ">>    " line and joining the previous row after " : ",
so each output line holds up to sixteen bytes.`,
	Example: `  # Whole file
  debugsink --debug dump packet.bin

  # Bytes 16..47 from standard input
  head -c 64 /dev/urandom | debugsink --debug dump --offset 16 --length 32

See Also: debugsink emit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sink := debug.FromContext(ctx)
	logger := logging.FromContext(ctx)

	var (
		data  []byte
		err   error
		label = dumpLabel
	)
	if len(args) == 1 {
		data, err = fileutil.ReadFileWithLimit(args[0])
		if label == "" {
			label = filepath.Base(args[0])
		}
	} else {
		data, err = fileutil.ReadAllWithLimit(cmd.InOrStdin())
		if label == "" {
			label = "stdin"
		}
	}
	if err != nil {
		if errors.Is(err, fileutil.ErrFileTooLarge) {
			return errors.NewUserError(err, "Dump a smaller file or pipe a slice of it (e.g. head -c)")
		}
		return errors.NewSystemError(err, "")
	}

	length := dumpLength
	if length < 0 {
		length = len(data) - dumpOffset
	}

	if !sink.Enabled() {
		logger.Info("debug sink disabled, dump suppressed", "label", label, "bytes", len(data))
		return nil
	}

	if err := sink.EmitBytesRange(label, data, dumpOffset, length); err != nil {
		hint := errors.WithHint(err, fmt.Sprintf("The input is %d bytes; check --offset and --length", len(data)))
		return errors.NewExitError(hint, errors.ExitUser)
	}
	return nil
}
