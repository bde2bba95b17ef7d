// Package state assembles the per-process application state: loaded
// configuration, the note store, and the directory watcher used by the
// interactive shell.
package state

import (
	"fmt"
	"os"

	"github.com/sdoconnell/nrrdnote/internal/config"
	"github.com/sdoconnell/nrrdnote/internal/store"
)

type State struct {
	Config     *config.Config
	ConfigPath string
	Store      *store.Store
	Home       string

	watcher *DirWatcher
}

// NewState loads the config at cfgPath (or the default location when
// empty, creating a starter file if none exists) and opens the note store.
func NewState(cfgPath string) (*State, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	if cfgPath == "" {
		cfgPath = config.GetConfigPath(home)
		if err := config.EnsureConfigExists(cfgPath); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	st, err := store.NewStore(cfg.DataDir, cfg.FileExt, cfg.DefaultNotebook)
	if err != nil {
		return nil, err
	}

	return &State{
		Config:     cfg,
		ConfigPath: cfgPath,
		Store:      st,
		Home:       home,
	}, nil
}

// Watch starts the directory watcher on first call and returns its change
// channel. Used by the interactive shell; one-shot commands never watch.
func (s *State) Watch() (<-chan struct{}, error) {
	if s.watcher == nil {
		w, err := NewDirWatcher(s.Store.Dir(), s.Config.FileExt)
		if err != nil {
			return nil, fmt.Errorf("failed to create directory watcher: %w", err)
		}
		s.watcher = w
	}
	return s.watcher.Changes(), nil
}

// Close releases the watcher, if one was started.
func (s *State) Close() error {
	if s.watcher != nil {
		err := s.watcher.Close()
		s.watcher = nil
		return err
	}
	return nil
}
