// Package errors provides error handling conventions for debugsink.
//
// It re-exports the subset of github.com/cockroachdb/errors used across the
// module, defines sentinel errors for caller mistakes such as out-of-range
// byte dumps, and carries the ExitError type used by the CLI to map failures
// onto process exit codes.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrOutOfRange) {
//	    // offset/length did not fit the buffer
//	}
//
// # Out-of-Range Dumps
//
// [OutOfRangeError] reports the offending offset, length and buffer size.
// It matches [ErrOutOfRange] and can be extracted with [As]:
//
//	var rangeErr *errors.OutOfRangeError
//	if errors.As(err, &rangeErr) {
//	    fmt.Println("buffer size:", rangeErr.Size)
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
package errors
