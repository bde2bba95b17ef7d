// Package cmd holds helpers shared by the subcommand packages.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/erikgeiser/promptkit/confirmation"
	"golang.org/x/term"

	"github.com/sdoconnell/nrrdnote/internal/fzf"
	"github.com/sdoconnell/nrrdnote/internal/note"
	"github.com/sdoconnell/nrrdnote/internal/state"
)

// ErrCancelled indicates the user declined a confirmation prompt or
// backed out of an interactive selection. It is a normal outcome, not a
// failure.
var ErrCancelled = errors.New("cancelled")

// ResolveNote returns the note for the alias in args, or falls back to
// interactive fuzzy selection when no alias was given and stdin is a
// terminal.
func ResolveNote(s *state.State, args []string, header string) (*note.Note, error) {
	snap := s.Store.Snapshot()
	if len(args) > 0 {
		return snap.LookupByAlias(args[0])
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("alias argument required")
	}
	n, err := fzf.PickNote(snap.All(), header)
	if errors.Is(err, fzf.ErrCancelled) {
		return nil, ErrCancelled
	}
	return n, err
}

// Confirm asks the user to approve an action. force skips the prompt; a
// non-interactive stdin without force counts as a decline.
func Confirm(prompt string, force bool) error {
	if force {
		return nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrCancelled
	}

	input := confirmation.New(prompt, confirmation.No)
	confirmed, err := input.RunPrompt()
	if err != nil {
		return ErrCancelled
	}
	if !confirmed {
		return ErrCancelled
	}
	return nil
}
