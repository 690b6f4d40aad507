package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearColorEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"NO_COLOR", "TERM", "CLICOLOR_FORCE"} {
		// Setenv registers the restore; Unsetenv leaves the var absent.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestSupportsColor(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		isTTY bool
		want  bool
	}{
		{"terminal", map[string]string{"TERM": "xterm-256color"}, true, true},
		{"not a terminal", nil, false, false},
		{"NO_COLOR on terminal", map[string]string{"NO_COLOR": "1"}, true, false},
		{"empty NO_COLOR still counts", map[string]string{"NO_COLOR": ""}, true, false},
		{"dumb terminal", map[string]string{"TERM": "dumb"}, true, false},
		{"forced on pipe", map[string]string{"CLICOLOR_FORCE": "1"}, false, true},
		{"force of zero ignored", map[string]string{"CLICOLOR_FORCE": "0"}, false, false},
		{"NO_COLOR beats force", map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearColorEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, supportsColor(tt.isTTY))
		})
	}
}

func TestIsTTY(t *testing.T) {
	clearColorEnv(t)

	var buf bytes.Buffer
	assert.False(t, IsTTY(&buf))
	assert.False(t, SupportsColor(&buf))

	f, err := os.Create(filepath.Join(t.TempDir(), "debug.log"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTTY(f), "regular files are not terminals")
}
