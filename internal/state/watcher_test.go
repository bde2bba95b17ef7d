package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherNotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewDirWatcher(dir, "")
	if err != nil {
		t.Fatalf("NewDirWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "note1"), []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification after write")
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	w, err := NewDirWatcher(dir, "")
	if err != nil {
		t.Fatalf("NewDirWatcher: %v", err)
	}
	defer w.Close()

	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "note1")
		if err := os.WriteFile(name, []byte("x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification after burst")
	}

	// The burst happened within one debounce window; at most the single
	// pending slot may still be filled, never more.
	drained := 0
	for {
		select {
		case <-w.Changes():
			drained++
			if drained > 1 {
				t.Fatalf("more than one queued notification")
			}
		case <-time.After(500 * time.Millisecond):
			return
		}
	}
}

func TestWatcherIgnoresDotfiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewDirWatcher(dir, "")
	if err != nil {
		t.Fatalf("NewDirWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, ".tmp-write"), []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes():
		t.Fatal("dotfile write produced a notification")
	case <-time.After(600 * time.Millisecond):
	}
}

func TestWatcherExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewDirWatcher(dir, "md")
	if err != nil {
		t.Fatalf("NewDirWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Changes():
		t.Fatal("non-matching extension produced a notification")
	case <-time.After(600 * time.Millisecond):
	}

	if err := os.WriteFile(filepath.Join(dir, "seen.md"), []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("matching extension produced no notification")
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	w, err := NewDirWatcher(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewDirWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
