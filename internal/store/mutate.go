package store

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sdoconnell/nrrdnote/internal/note"
)

const (
	aliasLength  = 4
	aliasCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Changes describes a modification request. Empty strings mean "leave
// unchanged"; Tags uses the +add / ~remove / replace syntax.
type Changes struct {
	NewAlias    string
	Title       string
	Description string
	Notebook    string
	Tags        string
}

// Create writes a new note file with a fresh uid and generated alias and
// returns the loaded note. The caller supplies the visible fields; the
// body starts empty.
func (s *Store) Create(title, description, notebook, tags, body string) (*note.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: note title is required", ErrInvalidArgument)
	}
	notebook = strings.ToLower(strings.TrimSpace(notebook))
	if notebook == "" {
		notebook = s.defaultNotebook
	}
	if IsReservedNotebook(notebook) {
		return nil, fmt.Errorf("%w: notebook name %q is reserved", ErrInvalidArgument, notebook)
	}

	n := &note.Note{
		UID:         uuid.NewString(),
		Alias:       s.generateAlias(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Notebook:    notebook,
		Tags:        note.SplitTags(tags),
		Created:     s.now(),
		Body:        body,
	}
	if n.Body != "" && !strings.HasPrefix(n.Body, "\n") {
		n.Body = "\n" + n.Body
	}

	data, err := note.Encode(n)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, n.UID)
	if s.fileExt != "" {
		path += "." + s.fileExt
	}
	if err := s.handler.WriteAtomic(path, data); err != nil {
		return nil, err
	}
	n.Path = path

	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return n, nil
}

// Modify applies field changes to the note identified by alias and
// rewrites its file in place.
func (s *Store) Modify(alias string, ch Changes) (*note.Note, error) {
	snap := s.Snapshot()
	n, err := snap.LookupByAlias(alias)
	if err != nil {
		return nil, err
	}

	// Mutate a copy so a failed write never leaves the snapshot's
	// record out of sync with the file.
	updated := *n

	if ch.NewAlias != "" {
		newAlias := strings.ToLower(strings.TrimSpace(ch.NewAlias))
		if newAlias != updated.Alias {
			if _, taken := snap.Aliases[newAlias]; taken {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateAlias, newAlias)
			}
			updated.Alias = newAlias
		}
	}
	if ch.Title != "" {
		updated.Title = strings.TrimSpace(ch.Title)
	}
	if ch.Description != "" {
		updated.Description = strings.TrimSpace(ch.Description)
	}
	if ch.Notebook != "" {
		notebook := strings.ToLower(strings.TrimSpace(ch.Notebook))
		if IsReservedNotebook(notebook) {
			return nil, fmt.Errorf("%w: notebook name %q is reserved", ErrInvalidArgument, notebook)
		}
		updated.Notebook = notebook
	}
	if ch.Tags != "" {
		updated.Tags = note.ApplyTagUpdate(updated.Tags, ch.Tags)
	}

	data, err := note.Encode(&updated)
	if err != nil {
		return nil, err
	}
	if err := s.handler.WriteAtomic(updated.Path, data); err != nil {
		return nil, err
	}

	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Archive moves the note's file into the archive subdirectory, removing
// it from the active collection.
func (s *Store) Archive(alias string) (*note.Note, error) {
	snap := s.Snapshot()
	n, err := snap.LookupByAlias(alias)
	if err != nil {
		return nil, err
	}

	if _, err := s.handler.Archive(n.Path); err != nil {
		return nil, err
	}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return n, nil
}

// Delete removes the note's file permanently.
func (s *Store) Delete(alias string) (*note.Note, error) {
	snap := s.Snapshot()
	n, err := snap.LookupByAlias(alias)
	if err != nil {
		return nil, err
	}

	if err := s.handler.Remove(n.Path); err != nil {
		return nil, err
	}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return n, nil
}

// generateAlias produces a short random alias not already in use. Four
// lowercase alphanumerics give enough space that a clash retry is rare.
func (s *Store) generateAlias() string {
	snap := s.Snapshot()
	for {
		b := make([]byte, aliasLength)
		for i := range b {
			b[i] = aliasCharset[rand.Intn(len(aliasCharset))]
		}
		alias := string(b)
		if snap == nil {
			return alias
		}
		if _, taken := snap.Aliases[alias]; !taken {
			return alias
		}
	}
}
