package debug

import (
	"context"
	"io"
)

type contextKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Sink) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the sink carried by ctx, or a disabled sink that
// discards output.
func FromContext(ctx context.Context) *Sink {
	if s, ok := ctx.Value(contextKey{}).(*Sink); ok && s != nil {
		return s
	}
	return New(WithDestination(io.Discard))
}
