package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/thoreinstein/debugsink/internal/errors"
)

const (
	// linePrefix starts every line the sink writes.
	linePrefix = ">> "

	// continuationPrefix starts dump rows and error messages.
	continuationPrefix = ">>    "
)

// destination boxes the writer so it can be swapped atomically regardless of
// its concrete type.
type destination struct {
	w io.Writer
}

// Sink is a toggleable diagnostic writer. The zero value is a disabled sink
// writing to standard output.
type Sink struct {
	enabled atomic.Bool
	dest    atomic.Pointer[destination]

	// mu is nil unless WithSerializedWrites was given.
	mu *sync.Mutex
}

// Option configures a Sink.
type Option func(*Sink)

// WithDestination sets the initial destination writer.
func WithDestination(w io.Writer) Option {
	return func(s *Sink) {
		s.SetDestination(w)
	}
}

// WithEnabled sets the initial state of the enabled flag.
func WithEnabled(enabled bool) Option {
	return func(s *Sink) {
		s.SetEnabled(enabled)
	}
}

// WithSerializedWrites makes each Emit call hold a mutex while writing.
func WithSerializedWrites() Option {
	return func(s *Sink) {
		s.mu = &sync.Mutex{}
	}
}

// New creates a disabled Sink writing to standard output.
func New(opts ...Option) *Sink {
	s := &Sink{}
	s.SetDestination(os.Stdout)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetEnabled turns emission on or off.
func (s *Sink) SetEnabled(enabled bool) {
	s.enabled.Store(enabled)
}

// Enabled reports whether emission is on.
func (s *Sink) Enabled() bool {
	return s != nil && s.enabled.Load()
}

// SetDestination replaces the destination writer. The previous writer is
// neither flushed nor closed. A nil writer discards output.
func (s *Sink) SetDestination(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.dest.Store(&destination{w: w})
}

// Destination returns the active destination writer. A Sink that never had
// one set, such as the zero value, writes to standard output.
func (s *Sink) Destination() io.Writer {
	if d := s.dest.Load(); d != nil {
		return d.w
	}
	return os.Stdout
}

// Emit writes ">> " followed by message and a newline.
func (s *Sink) Emit(message string) {
	if !s.Enabled() {
		return
	}
	b := make([]byte, 0, len(linePrefix)+len(message)+1)
	b = append(b, linePrefix...)
	b = append(b, message...)
	b = append(b, '\n')
	s.write(b)
}

// Emitf formats according to a format specifier and emits the result.
func (s *Sink) Emitf(format string, args ...any) {
	if !s.Enabled() {
		return
	}
	s.Emit(fmt.Sprintf(format, args...))
}

// EmitBytes dumps all of data under label.
func (s *Sink) EmitBytes(label string, data []byte) {
	// The full range is always valid.
	_ = s.EmitBytesRange(label, data, 0, len(data))
}

// EmitBytesRange dumps data[offset:offset+length] under label as rows of
// hexadecimal pairs. The header line reports offset and length as given.
//
// It returns an *errors.OutOfRangeError and writes nothing when the range
// does not fit data. A disabled sink returns nil without checking the range.
func (s *Sink) EmitBytesRange(label string, data []byte, offset, length int) error {
	if !s.Enabled() {
		return nil
	}
	if err := errors.CheckRange(offset, length, len(data)); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(linePrefix)
	buf.WriteString(label)
	buf.WriteString(", offset=")
	buf.WriteString(strconv.Itoa(offset))
	buf.WriteString(", length=")
	buf.WriteString(strconv.Itoa(length))
	buf.Write(appendHexRows(nil, data[offset:offset+length]))
	buf.WriteByte('\n')

	s.write(buf.Bytes())
	return nil
}

// EmitError writes label, the message of cause, and the stack trace of cause.
// When no layer of cause carries a stack, the stack of the EmitError caller
// is attached before rendering.
//
// The trace is the verbose %+v form, which opens with the message again:
//
//	>> label
//	>>    boom
//	boom
//	(1) attached stack trace
//	  -- stack trace:
//	  ...
func (s *Sink) EmitError(label string, cause error) {
	if !s.Enabled() {
		return
	}

	var buf bytes.Buffer
	buf.WriteString(linePrefix)
	buf.WriteString(label)
	buf.WriteByte('\n')
	buf.WriteString(continuationPrefix)
	if cause == nil {
		buf.WriteString("<nil>\n")
		s.write(buf.Bytes())
		return
	}
	buf.WriteString(cause.Error())
	buf.WriteByte('\n')

	if !hasStack(cause) {
		cause = errors.WithStackDepth(cause, 1)
	}
	writeTrace(&buf, cause)

	s.write(buf.Bytes())
}

// CaptureTrace writes the stack of its caller, headed by "DEBUG STACK TRACE".
// Failures while capturing or rendering the stack are dropped.
func (s *Sink) CaptureTrace() {
	if !s.Enabled() {
		return
	}
	defer func() {
		_ = recover()
	}()

	var buf bytes.Buffer
	writeTrace(&buf, errors.NewWithDepth(1, traceMarker))
	s.write(buf.Bytes())
}

// write sends b to the destination in a single call. Write errors are
// ignored; diagnostics never fail the caller.
func (s *Sink) write(b []byte) {
	if s.mu != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	_, _ = s.Destination().Write(b)
}
