package editor

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDetectEditor(t *testing.T) {
	fallback := "vi"
	if _, err := exec.LookPath("nano"); err == nil {
		fallback = "nano"
	}

	tests := []struct {
		name   string
		editor string
		visual string
		want   string
	}{
		{"EDITOR wins", "nvim", "code", "nvim"},
		{"VISUAL when EDITOR empty", "", "code", "code"},
		{"whitespace EDITOR treated as unset", "   ", "vscode", "vscode"},
		{"EDITOR with arguments", "code --wait", "", "code --wait"},
		{"fallback", "", "", fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.editor)
			t.Setenv("VISUAL", tt.visual)

			if got := detectEditor(); got != tt.want {
				t.Errorf("detectEditor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpen_Integration(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping integration test on windows (uses shell script mock)")
	}

	tmpDir := t.TempDir()
	mockEditor := filepath.Join(tmpDir, "mock-editor.sh")

	// The mock echoes its arguments to stdout.
	script := "#!/bin/sh\necho \"$@\"\n"
	if err := os.WriteFile(mockEditor, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EDITOR", mockEditor+" --wait")

	target := filepath.Join(tmpDir, "config.yaml")
	var out bytes.Buffer
	if err := Open(t.Context(), target, Streams{Out: &out}); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	got := strings.TrimSpace(out.String())
	if got != "--wait "+target {
		t.Errorf("editor arguments = %q, want %q", got, "--wait "+target)
	}
}

func TestOpen_MissingEditor(t *testing.T) {
	t.Setenv("EDITOR", "non-existent-binary-12345")
	t.Setenv("VISUAL", "")

	err := Open(t.Context(), "config.yaml", Streams{})
	if err == nil {
		t.Fatal("expected error for non-existent editor, got nil")
	}
	if !strings.Contains(err.Error(), "non-existent-binary-12345") {
		t.Errorf("error %q should name the editor", err)
	}
}
