// Package editor launches the user's external text editor on a note file.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrEditorFailure indicates the editor could not be started or exited
// with an error.
var ErrEditorFailure = errors.New("editor failure")

const fallbackEditor = "vi"

// Open runs $EDITOR on path synchronously, wired to the caller's
// terminal. opts is a space-separated option string placed before the
// file argument.
func Open(path, opts string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = fallbackEditor
	}

	args := strings.Fields(opts)
	args = append(args, path)

	cmd := exec.Command(editor, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEditorFailure, editor, err)
	}
	return nil
}
