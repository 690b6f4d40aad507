package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_Disabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	s, buf := newTestSink(true)

	closer := s.Initialize(Settings{Enabled: false, LogFile: path})

	assert.Nil(t, closer)
	assert.False(t, s.Enabled())
	assert.NoFileExists(t, path, "disabled sink should not open the log file")
	assert.Same(t, buf, s.Destination())
}

func TestInitialize_EnabledWithoutFile(t *testing.T) {
	s, buf := newTestSink(false)

	closer := s.Initialize(Settings{Enabled: true})

	assert.Nil(t, closer)
	assert.True(t, s.Enabled())
	assert.Same(t, buf, s.Destination())
}

func TestInitialize_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o600))
	s, buf := newTestSink(false)

	closer := s.Initialize(Settings{Enabled: true, LogFile: path})
	require.NotNil(t, closer)

	s.Emit("to file")
	require.NoError(t, closer.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ">> to file\n", string(got), "log file should be truncated")
	assert.Empty(t, buf.String())
}

func TestInitialize_LogFileFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "debug.log")
	s, buf := newTestSink(false)

	closer := s.Initialize(Settings{Enabled: true, LogFile: path})

	assert.Nil(t, closer)
	assert.True(t, s.Enabled())
	assert.Same(t, buf, s.Destination())

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), "expected exactly one diagnostic line, got %q", out)
	assert.True(t, strings.HasPrefix(out, ">> unable to open debug log file "+path))

	s.Emit("still working")
	assert.True(t, strings.HasSuffix(buf.String(), ">> still working\n"))
}

func TestInitialize_DefaultDestinationIsStdout(t *testing.T) {
	s := New()
	s.Initialize(Settings{Enabled: true})
	assert.Same(t, os.Stdout, s.Destination())
}
