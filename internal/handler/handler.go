// Package handler performs the filesystem moves and writes behind the
// note store: archival relocation, deletion, and atomic file rewrites.
package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrStorageUnavailable indicates the data directory is missing and cannot
// be created, or is not usable as a directory.
var ErrStorageUnavailable = errors.New("data directory unavailable")

const archiveDirName = "archive"

type FileHandler struct {
	dataDir string
}

func NewFileHandler(dataDir string) *FileHandler {
	return &FileHandler{dataDir: dataDir}
}

// VerifyDataDir creates the data directory on demand and checks that it is
// actually a directory.
func (h *FileHandler) VerifyDataDir() error {
	info, err := os.Stat(h.dataDir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(h.dataDir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, h.dataDir, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, h.dataDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrStorageUnavailable, h.dataDir)
	}
	return nil
}

// ArchiveDir returns the archive subdirectory path.
func (h *FileHandler) ArchiveDir() string {
	return filepath.Join(h.dataDir, archiveDirName)
}

// Archive moves a note file into the archive subdirectory, creating it on
// demand, and returns the new location.
func (h *FileHandler) Archive(path string) (string, error) {
	archiveDir := h.ArchiveDir()
	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		return "", fmt.Errorf("create archive directory: %w", err)
	}

	newPath := filepath.Join(archiveDir, filepath.Base(path))
	if err := os.Rename(path, newPath); err != nil {
		return "", fmt.Errorf("failure moving %s: %w", path, err)
	}
	return newPath, nil
}

// Remove deletes a note file permanently.
func (h *FileHandler) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failure deleting %s: %w", path, err)
	}
	return nil
}

// WriteAtomic writes data to a temporary file in the target directory and
// renames it into place, so an interrupt never leaves a half-written note
// visible at path.
func (h *FileHandler) WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".nrrdnote-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
