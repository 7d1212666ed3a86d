package taxrate

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_DetectsRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rates.toml")
	if err := os.WriteFile(path, []byte("year = 2025\n"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("year = 2026\n"), 0o644); err != nil {
		t.Fatalf("rewriting file: %v", err)
	}

	select {
	case <-w.Changes:
	case <-time.After(3 * time.Second):
		t.Fatal("no change event after rewrite")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rates.toml")
	if err := os.WriteFile(path, []byte("year = 2025\n"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(other, []byte("unrelated"), 0o644); err != nil {
		t.Fatalf("writing other file: %v", err)
	}

	select {
	case <-w.Changes:
		t.Fatal("got change event for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}
