package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writeConfig: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
data_dir: /tmp/notes
default_notebook: Work
file_ext: .md
editor_options: "-c startinsert"
colors:
  disable_colors: true
  note_title: green
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataDir != "/tmp/notes" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
	if cfg.DefaultNotebook != "work" {
		t.Errorf("default_notebook = %q, want lowercased", cfg.DefaultNotebook)
	}
	if cfg.FileExt != "md" {
		t.Errorf("file_ext = %q, want leading dot stripped", cfg.FileExt)
	}
	if cfg.EditorOptions != "-c startinsert" {
		t.Errorf("editor_options = %q", cfg.EditorOptions)
	}
	if !cfg.Colors.DisableColors {
		t.Error("disable_colors not applied")
	}
	if cfg.Colors.NoteTitle != "green" {
		t.Errorf("note_title = %q", cfg.Colors.NoteTitle)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "data_dir: /tmp/notes\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultNotebook != "default" {
		t.Errorf("default_notebook = %q, want %q", cfg.DefaultNotebook, "default")
	}
	if cfg.FileExt != "" {
		t.Errorf("file_ext = %q, want empty", cfg.FileExt)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load of missing file succeeded")
	}
}

func TestLoadUnknownKeysIgnored(t *testing.T) {
	path := writeConfig(t, "data_dir: /tmp/notes\nsome_future_option: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/notes" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
}

func TestEnsureConfigExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := EnsureConfigExists(path); err != nil {
		t.Fatalf("EnsureConfigExists: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load of generated config: %v", err)
	}
	if cfg.DefaultNotebook != "default" {
		t.Errorf("default_notebook = %q", cfg.DefaultNotebook)
	}

	// A second call must leave the existing file alone.
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := EnsureConfigExists(path); err != nil {
		t.Fatalf("second EnsureConfigExists: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("existing config file was rewritten")
	}
}

func TestExpandPath(t *testing.T) {
	home := "/home/someone"
	if got := expandPath("~/notes", home); got != "/home/someone/notes" {
		t.Errorf("expandPath(~/notes) = %q", got)
	}
	if got := expandPath("/abs/path", home); got != "/abs/path" {
		t.Errorf("expandPath(/abs/path) = %q", got)
	}
}
