package handler

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVerifyDataDirCreates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")
	h := NewFileHandler(dir)

	if err := h.VerifyDataDir(); err != nil {
		t.Fatalf("VerifyDataDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("data dir not created: %v", err)
	}
}

func TestVerifyDataDirRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notafile")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := NewFileHandler(path)
	if err := h.VerifyDataDir(); err == nil {
		t.Fatal("VerifyDataDir accepted a regular file")
	}
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	h := NewFileHandler(dir)
	path := filepath.Join(dir, "note1")

	if err := h.WriteAtomic(path, []byte("first\n")); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}
	if err := h.WriteAtomic(path, []byte("second\n")); err != nil {
		t.Fatalf("WriteAtomic overwrite: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second\n" {
		t.Errorf("content = %q", data)
	}

	// No temp files may remain after the writes.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("found %d entries, want 1", len(entries))
	}
}

func TestArchive(t *testing.T) {
	dir := t.TempDir()
	h := NewFileHandler(dir)
	path := filepath.Join(dir, "note1")
	if err := os.WriteFile(path, []byte("content\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	newPath, err := h.Archive(path)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if newPath != filepath.Join(dir, "archive", "note1") {
		t.Errorf("newPath = %q", newPath)
	}
	if _, err := os.Stat(newPath); err != nil {
		t.Errorf("archived file missing: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("original file still present")
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	h := NewFileHandler(dir)
	path := filepath.Join(dir, "note1")
	if err := os.WriteFile(path, []byte("content\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := h.Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := h.Remove(path); err == nil {
		t.Error("Remove of missing file succeeded")
	}
}
