// Package store owns the in-memory note collection: loading a data
// directory into uid/alias/path mappings, snapshot-isolated refresh, and
// the mutation operations that keep the files and mappings consistent.
package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sdoconnell/nrrdnote/internal/handler"
	"github.com/sdoconnell/nrrdnote/internal/note"
)

var (
	// ErrNotFound indicates an alias that does not resolve to any note.
	ErrNotFound = errors.New("alias not found")
	// ErrDuplicateAlias indicates an alias already in use by another note.
	ErrDuplicateAlias = errors.New("duplicate alias")
	// ErrInvalidArgument indicates a rejected field value, such as a
	// reserved notebook name.
	ErrInvalidArgument = errors.New("invalid argument")
)

// reservedNotebooks are view names the list command claims for itself.
var reservedNotebooks = map[string]struct{}{
	"all":       {},
	"notebooks": {},
}

// IsReservedNotebook reports whether name cannot be used as a notebook.
func IsReservedNotebook(name string) bool {
	_, reserved := reservedNotebooks[strings.ToLower(name)]
	return reserved
}

// Snapshot is one immutable view of the loaded collection. Readers hold a
// Snapshot for the duration of an operation and never observe a partially
// rebuilt store.
type Snapshot struct {
	Notes     map[string]*note.Note // uid -> note
	NoteFiles map[string]string     // uid -> file path
	Aliases   map[string]string     // lowercase alias -> file path

	defaultNotebook string
}

// Store is the authoritative collection owner for one data directory.
type Store struct {
	mu              sync.RWMutex
	dir             string
	fileExt         string // optional extension filter, without the dot
	defaultNotebook string
	handler         *handler.FileHandler
	snap            *Snapshot

	logf func(format string, args ...any)
	now  func() time.Time
}

// NewStore creates a store over dir, verifying the directory exists (or
// can be created) and performing the initial load.
func NewStore(dir, fileExt, defaultNotebook string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve data directory: %w", err)
	}

	defaultNotebook = strings.ToLower(strings.TrimSpace(defaultNotebook))
	if defaultNotebook == "" {
		defaultNotebook = "default"
	}

	s := &Store{
		dir:             abs,
		fileExt:         strings.TrimPrefix(fileExt, "."),
		defaultNotebook: defaultNotebook,
		handler:         handler.NewFileHandler(abs),
		logf:            log.Printf,
		now:             time.Now,
	}

	if err := s.handler.VerifyDataDir(); err != nil {
		return nil, err
	}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the absolute data directory path.
func (s *Store) Dir() string { return s.dir }

// DefaultNotebook returns the configured default notebook name.
func (s *Store) DefaultNotebook() string { return s.defaultNotebook }

// Refresh rebuilds the collection from disk. The new snapshot is built off
// to the side and published with a single swap, so concurrent readers see
// either the old state or the new state, never a mix.
func (s *Store) Refresh() error {
	snap, err := s.load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return nil
}

// Snapshot returns the current immutable view of the collection.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *Store) load() (*Snapshot, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", handler.ErrStorageUnavailable, s.dir, err)
	}

	snap := &Snapshot{
		Notes:           make(map[string]*note.Note, len(entries)),
		NoteFiles:       make(map[string]string, len(entries)),
		Aliases:         make(map[string]string, len(entries)),
		defaultNotebook: s.defaultNotebook,
	}

	for _, entry := range entries {
		// The archive subdirectory (and anything else nested) is
		// outside the active set.
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if s.fileExt != "" && !strings.HasSuffix(name, "."+s.fileExt) {
			continue
		}

		path := filepath.Join(s.dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			s.logf("failure reading %s - skipping: %v", path, err)
			continue
		}

		n, err := note.Decode(data)
		if err != nil {
			s.logf("failure parsing %s - skipping: %v", path, err)
			continue
		}

		s.normalize(n)
		n.Path = path
		if info, err := entry.Info(); err == nil {
			n.Updated = info.ModTime()
		}

		if n.UID == "" || n.Alias == "" {
			s.logf("no uid and/or alias in %s - skipping", path)
			continue
		}
		if dup, ok := snap.NoteFiles[n.UID]; ok {
			s.logf("duplicate uid %s detected:\n  %s\n  %s\nskipping %s", n.UID, dup, path, path)
			continue
		}
		if dup, ok := snap.Aliases[n.Alias]; ok {
			s.logf("duplicate alias %s detected:\n  %s\n  %s\nskipping %s", n.Alias, dup, path, path)
			continue
		}

		snap.Notes[n.UID] = n
		snap.NoteFiles[n.UID] = path
		snap.Aliases[n.Alias] = path
	}

	return snap, nil
}

// normalize applies the parse-time field rules: aliases, notebooks, and
// tags are case-insensitive, and the notebook falls back to the default.
func (s *Store) normalize(n *note.Note) {
	n.Alias = strings.ToLower(strings.TrimSpace(n.Alias))
	n.Notebook = strings.ToLower(strings.TrimSpace(n.Notebook))
	if n.Notebook == "" {
		n.Notebook = s.defaultNotebook
	}
	n.Tags = note.NormalizeTags(n.Tags)
}

// Resolve returns the uid for an alias, case-insensitively.
func (snap *Snapshot) Resolve(alias string) (string, bool) {
	alias = strings.ToLower(strings.TrimSpace(alias))
	for uid, n := range snap.Notes {
		if n.Alias == alias {
			return uid, true
		}
	}
	return "", false
}

// LookupByAlias resolves an alias to its note.
func (snap *Snapshot) LookupByAlias(alias string) (*note.Note, error) {
	uid, ok := snap.Resolve(alias)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, alias)
	}
	return snap.Notes[uid], nil
}

// All returns every note, ordered by path for deterministic output.
func (snap *Snapshot) All() []*note.Note {
	out := make([]*note.Note, 0, len(snap.Notes))
	for _, n := range snap.Notes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out
}

// Notebooks returns the distinct notebook names in use, sorted, with the
// configured default notebook always first.
func (snap *Snapshot) Notebooks() []string {
	seen := make(map[string]struct{}, len(snap.Notes))
	for _, n := range snap.Notes {
		seen[n.Notebook] = struct{}{}
	}
	delete(seen, snap.defaultNotebook)

	rest := make([]string, 0, len(seen))
	for name := range seen {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	return append([]string{snap.defaultNotebook}, rest...)
}

// InNotebook returns the notes in one notebook.
func (snap *Snapshot) InNotebook(notebook string) []*note.Note {
	notebook = strings.ToLower(notebook)
	out := make([]*note.Note, 0)
	for _, n := range snap.All() {
		if n.Notebook == notebook {
			out = append(out, n)
		}
	}
	return out
}

// HasNotebook reports whether a notebook is known (the default notebook
// always is).
func (snap *Snapshot) HasNotebook(notebook string) bool {
	notebook = strings.ToLower(notebook)
	if notebook == snap.defaultNotebook {
		return true
	}
	for _, n := range snap.Notes {
		if n.Notebook == notebook {
			return true
		}
	}
	return false
}
