// Package logging provides the debugsink CLI's own operational logging.
//
// This is separate from the debug sink: the sink prints ">> " diagnostics
// for the host application, while this package reports what the CLI itself
// is doing (config files loaded, log files opened) through [log/slog].
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("config loaded", "path", path)
//
// Text output is colorized with github.com/fatih/color when the writer is a
// terminal and neither NO_COLOR nor TERM=dumb is set.
//
// # Testing
//
// [ForTest] routes log output through t.Log; [NewDiscard] drops it.
package logging
