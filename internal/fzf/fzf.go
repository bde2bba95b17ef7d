// Package fzf provides interactive note selection for commands invoked
// without an alias argument.
package fzf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/sdoconnell/nrrdnote/internal/note"
)

// ErrCancelled indicates the user aborted the picker without choosing.
var ErrCancelled = errors.New("selection cancelled")

// PickNote runs a fuzzy finder over the notes and returns the selection.
// The preview pane renders the note body as markdown.
func PickNote(notes []*note.Note, header string) (*note.Note, error) {
	if len(notes) == 0 {
		return nil, errors.New("no notes to select from")
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return renderPreview(notes[i], w)
		}),
	}
	if header != "" {
		options = append(options, fuzzyfinder.WithHeader(header))
	}

	idx, err := fuzzyfinder.Find(notes, func(i int) string {
		n := notes[i]
		label := fmt.Sprintf("%s (%s) [%s]", n.Title, n.Alias, n.Notebook)
		if len(n.Tags) > 0 {
			label += " " + strings.Join(n.Tags, ",")
		}
		return label
	}, options...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, ErrCancelled
		}
		return nil, err
	}
	return notes[idx], nil
}

func renderPreview(n *note.Note, width int) string {
	if width < 20 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width-2),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return n.Body
	}

	rendered, err := r.Render(fmt.Sprintf("# %s\n%s", n.Title, n.Body))
	if err != nil {
		return n.Body
	}
	return rendered
}
