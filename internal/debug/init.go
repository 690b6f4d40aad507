package debug

import (
	"io"
	"os"
)

// Settings is the startup configuration of a Sink.
type Settings struct {
	// Enabled turns emission on.
	Enabled bool

	// LogFile, when set and Enabled is true, redirects output to this file.
	// The file is created or truncated.
	LogFile string
}

// Initialize applies startup settings. It is meant to be called once by the
// hosting application before the sink is handed out.
//
// If LogFile cannot be opened, the destination is left unchanged and a single
// line describing the failure is emitted there. Initialize never fails.
//
// The returned Closer is the opened log file, or nil if none was opened.
// Closing it is the caller's responsibility.
func (s *Sink) Initialize(cfg Settings) io.Closer {
	s.SetEnabled(cfg.Enabled)
	if !cfg.Enabled || cfg.LogFile == "" {
		return nil
	}

	f, err := os.Create(cfg.LogFile)
	if err != nil {
		s.Emitf("unable to open debug log file %s: %v", cfg.LogFile, err)
		return nil
	}
	s.SetDestination(f)
	return f
}
