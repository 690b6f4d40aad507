// Package debug provides a toggleable diagnostic sink.
//
// A [Sink] gates every emission on a single enabled flag and writes
// human-readable lines to one destination writer. It has no levels and no
// structured fields: each line starts with the ">> " prefix, byte buffers are
// rendered as labeled hexadecimal rows, and errors are printed together with
// their stack traces.
//
// # Construction
//
// Sinks are constructed explicitly and passed to the code that needs them,
// either directly or through a context:
//
//	sink := debug.New()
//	closer := sink.Initialize(debug.Settings{Enabled: true, LogFile: "/tmp/debug.log"})
//	if closer != nil {
//	    defer closer.Close()
//	}
//	ctx = debug.NewContext(ctx, sink)
//
// The default destination is standard output. [Sink.SetDestination] swaps it
// without closing the previous writer; ownership always stays with the caller.
//
// # Output Format
//
//	>> message
//	>> payload, offset=0, length=20
//	>>    00 01 02 03 04 05 06 07 : 08 09 0A 0B 0C 0D 0E 0F
//	>>    10 11 12 13
//
// # Concurrency
//
// The enabled flag and destination are swapped atomically, but the sink does
// not order writes from concurrent callers. Each Emit call renders its output
// into a buffer and issues a single Write, so lines from different calls only
// interleave if the destination splits writes. [WithSerializedWrites] adds a
// mutex around those writes for destinations that are not safe for
// concurrent use.
package debug
