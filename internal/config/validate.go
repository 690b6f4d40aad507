package config

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/debugsink/internal/errors"
)

// ErrInvalidPath indicates a path value is malformed.
var ErrInvalidPath = errors.New("invalid path")

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if err := validateLogFile(cfg.Debug.LogFile); err != nil {
		errs = append(errs, &PathError{
			Field: KeyDebugLogFile,
			Path:  cfg.Debug.LogFile,
			Err:   err,
		})
	}

	return errs
}

// validateLogFile checks that path could name a file.
// It does not check that the file or its directory exist.
func validateLogFile(path string) error {
	// Empty means "log to standard output".
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	// A trailing separator names a directory.
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "." || cleaned == string(filepath.Separator) {
		return ErrInvalidPath
	}

	return nil
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
