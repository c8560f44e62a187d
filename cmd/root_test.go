package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/twui/internal/config"
	"nathanbeddoewebdev/twui/internal/database"
)

func execRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	config.SetPath(filepath.Join(dir, "config.json"))
	database.SetPath(filepath.Join(dir, "twui.db"))
	t.Cleanup(config.ResetPath)
	t.Cleanup(database.ResetPath)

	var outBuf, errBuf bytes.Buffer
	root := rootCmd()
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)
	err := root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestVersion(t *testing.T) {
	stdout, _, err := execRoot(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if got, want := stdout, "twui "+Version+"\n"; got != want {
		t.Errorf("version = %q, want %q", got, want)
	}
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	if _, _, err := execRoot(t, "--log-level", "loud", "version"); err == nil {
		t.Error("expected error for invalid log level")
	}
}

func TestRoot_DebugLogsGoToStderr(t *testing.T) {
	stdout, stderr, err := execRoot(t, "--log-level", "debug", "theme", "generate", "--tenant", "acme", "--format", "vars")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(stdout, "--accent-1: ") {
		t.Errorf("expected variables on stdout:\n%s", stdout)
	}
	if !strings.Contains(stderr, "tenant has no stored theme") {
		t.Errorf("expected debug log on stderr, got:\n%s", stderr)
	}
}
