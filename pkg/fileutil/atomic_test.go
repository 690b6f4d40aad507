package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type debugSection struct {
	Enabled string `yaml:"enabled" toml:"enabled"`
	LogFile string `yaml:"logfile" toml:"logfile"`
}

type document struct {
	Debug debugSection `yaml:"debug" toml:"debug"`
}

var sampleDoc = document{Debug: debugSection{Enabled: "true", LogFile: "/var/log/debug.log"}}

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{"text", []byte(">> hello\n"), 0o644},
		{"empty", []byte{}, 0o600},
		{"binary", []byte{0x00, 0x0A, 0xFF}, 0o600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out")

			require.NoError(t, AtomicWriteFile(path, tt.data, tt.perm))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.data, got)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tt.perm, info.Mode().Perm())
		})
	}
}

func TestAtomicWriteFile_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug:\n  enabled: false\n"), 0o600))

	require.NoError(t, AtomicWriteFile(path, []byte("debug:\n  enabled: true\n"), 0o600))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug:\n  enabled: true\n", string(got))
}

func TestAtomicWriteFile_MissingDirLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()

	err := AtomicWriteFile(filepath.Join(dir, "missing", "config.yaml"), []byte("x"), 0o600)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, ".tmp", filepath.Ext(e.Name()), "temp file left behind: %s", e.Name())
	}
}

func TestAtomicWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, AtomicWriteYAML(path, sampleDoc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug:\n    enabled: \"true\"\n    logfile: /var/log/debug.log\n", string(data))

	var back document
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, sampleDoc, back)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(DefaultFilePerm), info.Mode().Perm())
}

func TestAtomicWriteYAML_Unmarshalable(t *testing.T) {
	for name, v := range map[string]any{"channel": make(chan int), "func": func() {}} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")

			require.Error(t, AtomicWriteYAML(path, v))
			assert.NoFileExists(t, path)
		})
	}
}

func TestAtomicWriteYAML_TrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scalar.yaml")

	require.NoError(t, AtomicWriteYAML(path, "simple"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "simple\n", string(data))
}

func TestAtomicWriteTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, AtomicWriteTOMLWithPerm(path, sampleDoc, 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1])
	assert.Contains(t, string(data), "[debug]")

	var back document
	require.NoError(t, toml.Unmarshal(data, &back))
	assert.Equal(t, sampleDoc, back)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestAtomicWriteTOML_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.toml")

	assert.Error(t, AtomicWriteTOML(path, sampleDoc))
}
