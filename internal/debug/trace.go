package debug

import (
	"bytes"
	"fmt"

	"github.com/thoreinstein/debugsink/internal/errors"
)

// traceMarker heads the stack written by CaptureTrace.
const traceMarker = "DEBUG STACK TRACE"

// hasStack reports whether any layer of err carries a stack trace.
func hasStack(err error) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if errors.GetReportableStackTrace(err) != nil {
			return true
		}
	}
	return false
}

// writeTrace renders err in the verbose %+v form, which includes every
// attached stack, and terminates it with a newline.
func writeTrace(buf *bytes.Buffer, err error) {
	fmt.Fprintf(buf, "%+v", err)
	if b := buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
}
