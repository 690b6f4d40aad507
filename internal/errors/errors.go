package errors

import (
	"fmt"

	cerrors "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrOutOfRange indicates an offset/length pair that does not fit a buffer.
	ErrOutOfRange = cerrors.New("range out of bounds")

	// ErrNotFound indicates a file named by the user does not exist.
	ErrNotFound = cerrors.New("not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = cerrors.New("invalid configuration")
)

// Thin aliases over cockroachdb/errors so callers import a single package.
var (
	New    = cerrors.New
	Newf   = cerrors.Newf
	Wrap   = cerrors.Wrap
	Wrapf  = cerrors.Wrapf
	Is     = cerrors.Is
	As     = cerrors.As
	Unwrap = cerrors.UnwrapOnce
	Mark   = cerrors.Mark

	// User-facing hints, printed as suggestions by the CLI.
	WithHint     = cerrors.WithHint
	FlattenHints = cerrors.FlattenHints

	// Stack capture.
	NewWithDepth            = cerrors.NewWithDepth
	WithStackDepth          = cerrors.WithStackDepth
	GetReportableStackTrace = cerrors.GetReportableStackTrace
)

// OutOfRangeError reports a byte range that falls outside its buffer.
type OutOfRangeError struct {
	Offset int
	Length int
	Size   int
}

// CheckRange returns an *OutOfRangeError when [offset, offset+length) is not
// contained in a buffer of the given size.
func CheckRange(offset, length, size int) error {
	// offset > size-length avoids overflowing offset+length.
	if offset < 0 || length < 0 || offset > size-length {
		return &OutOfRangeError{Offset: offset, Length: length, Size: size}
	}
	return nil
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("range [offset=%d, length=%d) out of bounds for buffer of size %d",
		e.Offset, e.Length, e.Size)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: debugsink config show",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code carried by err.
// It returns ExitSuccess for nil and ExitUser for errors without an ExitError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if cerrors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUser
}
