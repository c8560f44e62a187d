package database

import (
	"path/filepath"
	"testing"
)

func TestDefaultPathOverride(t *testing.T) {
	t.Cleanup(ResetPath)

	path := filepath.Join(t.TempDir(), "twui.db")
	SetPath(path)

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath error: %v", err)
	}
	if got != path {
		t.Fatalf("DefaultPath = %q, want %q", got, path)
	}
}

func TestResolve(t *testing.T) {
	t.Cleanup(ResetPath)
	SetPath("/default/twui.db")

	got, err := Resolve("/custom/themes.db")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got != "/custom/themes.db" {
		t.Errorf("Resolve(custom) = %q", got)
	}

	got, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got != "/default/twui.db" {
		t.Errorf("Resolve(\"\") = %q", got)
	}
}

func TestOpenCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "twui.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := db.Ping(); err != nil {
		t.Fatalf("Ping error: %v", err)
	}
}
