package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sdoconnell/nrrdnote/internal/constants"
	"github.com/sdoconnell/nrrdnote/internal/display"
	"github.com/sdoconnell/nrrdnote/internal/editor"
	"github.com/sdoconnell/nrrdnote/internal/note"
	"github.com/sdoconnell/nrrdnote/internal/query"
	"github.com/sdoconnell/nrrdnote/internal/state"
	"github.com/sdoconnell/nrrdnote/internal/store"
	cmdpkg "github.com/sdoconnell/nrrdnote/pkg/cmd"
)

func NewCmdShell(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell.",
		Long: heredoc.Doc(`
			Start an interactive command shell. The note directory is
			watched while the shell runs; external changes are picked up
			automatically.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s)
		},
	}

	return cmd
}

func run(s *state.State) error {
	changes, err := s.Watch()
	if err != nil {
		return err
	}
	defer s.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-changes:
				if err := s.Store.Refresh(); err != nil {
					fmt.Fprintln(os.Stderr, "refresh failed:", err)
				}
			}
		}
	}()

	fmt.Printf("%s %s interactive shell. Type 'help' for commands.\n",
		constants.AppName, constants.Version)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> ", constants.AppName)
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		fields := splitQuoted(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		verb, args := strings.ToLower(fields[0]), fields[1:]
		if verb == "quit" || verb == "exit" || verb == "q" {
			return nil
		}
		if err := dispatch(s, verb, args); err != nil {
			if errors.Is(err, cmdpkg.ErrCancelled) {
				fmt.Println("Cancelled.")
				continue
			}
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
}

func dispatch(s *state.State, verb string, args []string) error {
	r := display.NewRenderer(os.Stdout, s.Config.Colors)
	r.DefaultNotebook = s.Store.DefaultNotebook()
	snap := s.Store.Snapshot()

	switch verb {
	case "list", "ls":
		if len(args) == 0 {
			return errors.New("usage: list <all|notebooks|notebook>")
		}
		return list(s, r, args[0])
	case "lsa":
		return list(s, r, "all")
	case "lsn":
		return list(s, r, "notebooks")
	case "search":
		if len(args) == 0 {
			return errors.New("usage: search <term>")
		}
		q, err := query.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		for _, warning := range q.Warnings {
			fmt.Fprintln(os.Stderr, "warning:", warning)
		}
		r.NoteList("Search results", q.Evaluate(snap.All()), true)
		return nil
	case "info":
		n, err := cmdpkg.ResolveNote(s, args, "Select a note")
		if err != nil {
			return err
		}
		r.Info(n)
		return nil
	case "new":
		return newWizard(s)
	case "modify", "mod":
		if len(args) == 0 {
			return errors.New("usage: modify <alias>")
		}
		n, err := snap.LookupByAlias(args[0])
		if err != nil {
			return err
		}
		return modifyShell(s, n)
	case "edit":
		n, err := cmdpkg.ResolveNote(s, args, "Select a note to edit")
		if err != nil {
			return err
		}
		if err := editor.Open(n.Path, s.Config.EditorOptions); err != nil {
			return err
		}
		return s.Store.Refresh()
	case "archive":
		if len(args) == 0 {
			return errors.New("usage: archive <alias>")
		}
		n, err := snap.LookupByAlias(args[0])
		if err != nil {
			return err
		}
		prompt := fmt.Sprintf("Archive note %q (%s)?", n.Title, n.Alias)
		if err := cmdpkg.Confirm(prompt, false); err != nil {
			return err
		}
		if _, err := s.Store.Archive(args[0]); err != nil {
			return err
		}
		fmt.Printf("Archived note: %s (%s)\n", n.Title, n.Alias)
		return nil
	case "delete", "rm":
		if len(args) == 0 {
			return errors.New("usage: delete <alias>")
		}
		n, err := snap.LookupByAlias(args[0])
		if err != nil {
			return err
		}
		prompt := fmt.Sprintf("Permanently delete note %q (%s)?", n.Title, n.Alias)
		if err := cmdpkg.Confirm(prompt, false); err != nil {
			return err
		}
		if _, err := s.Store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted note: %s (%s)\n", n.Title, n.Alias)
		return nil
	case "refresh":
		return s.Store.Refresh()
	case "config":
		return editor.Open(s.ConfigPath, s.Config.EditorOptions)
	case "help", "?":
		printHelp()
		return nil
	default:
		return fmt.Errorf("unknown command %q, type 'help' for commands", verb)
	}
}

func list(s *state.State, r *display.Renderer, view string) error {
	snap := s.Store.Snapshot()
	switch strings.ToLower(view) {
	case "notebooks":
		counts := make(map[string]int)
		for _, n := range snap.All() {
			counts[n.Notebook]++
		}
		r.NotebookList(snap.Notebooks(), counts)
	case "all":
		r.NoteList("Notes", asResults(snap.All()), true)
	default:
		r.NoteList("Notebook: "+view, asResults(snap.InNotebook(view)), false)
	}
	return nil
}

// wizardAnswers holds the field values collected by the new-note wizard.
type wizardAnswers struct {
	title       string
	description string
	notebook    string
	tags        string
}

// collectWizardAnswers prompts for each note field in turn. Empty answers
// take the shown default; answering '?' to the notebook prompt shows a
// numbered picker over the known notebooks.
func collectWizardAnswers(in io.Reader, out io.Writer, defaultNotebook string, notebooks []string) (wizardAnswers, error) {
	scanner := bufio.NewScanner(in)
	prompt := func(label string) (string, error) {
		fmt.Fprintf(out, "%s: ", label)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", cmdpkg.ErrCancelled
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	var a wizardAnswers

	defaultTitle := "New note - " + time.Now().Format("2006-01-02 15:04")
	title, err := prompt(fmt.Sprintf("Title [%s]", defaultTitle))
	if err != nil {
		return a, err
	}
	if title == "" {
		title = defaultTitle
	}
	a.title = title

	if a.description, err = prompt("Description [none]"); err != nil {
		return a, err
	}

	notebook, err := prompt(fmt.Sprintf("Notebook (? for list) [%s]", defaultNotebook))
	if err != nil {
		return a, err
	}
	if notebook == "?" && len(notebooks) > 0 {
		fmt.Fprintln(out, "Notebooks:")
		for i, name := range notebooks {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, name)
		}
		choice, err := prompt("Choice [1]")
		if err != nil {
			return a, err
		}
		notebook = notebooks[0]
		if idx, err := strconv.Atoi(choice); err == nil && idx >= 1 && idx <= len(notebooks) {
			notebook = notebooks[idx-1]
		}
	}
	a.notebook = notebook

	if a.tags, err = prompt("Tags [none]"); err != nil {
		return a, err
	}
	return a, nil
}

// newWizard collects the note fields interactively, creates the note, and
// opens it in the editor.
func newWizard(s *state.State) error {
	a, err := collectWizardAnswers(
		os.Stdin, os.Stdout,
		s.Store.DefaultNotebook(),
		s.Store.Snapshot().Notebooks(),
	)
	if err != nil {
		return err
	}

	n, err := s.Store.Create(a.title, a.description, a.notebook, a.tags, "")
	if err != nil {
		return err
	}
	fmt.Printf("Added note: %s (%s)\n", n.Title, n.Alias)
	if err := editor.Open(n.Path, s.Config.EditorOptions); err != nil {
		return err
	}
	return s.Store.Refresh()
}

// modifyShell runs a field-editing subshell for one note. Each line is a
// field name followed by the new value; 'done' applies nothing further
// and returns to the main prompt.
func modifyShell(s *state.State, n *note.Note) error {
	fmt.Printf("Modifying %s (%s). Fields: alias, title, description, notebook, tags. 'done' to finish.\n",
		n.Title, n.Alias)

	alias := n.Alias
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("modify (%s)> ", alias)
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		fields := splitQuoted(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		verb := strings.ToLower(fields[0])
		if verb == "done" || verb == "quit" || verb == "exit" {
			return nil
		}
		if len(fields) < 2 {
			fmt.Fprintf(os.Stderr, "usage: %s <value>\n", verb)
			continue
		}
		value := strings.Join(fields[1:], " ")

		var ch store.Changes
		switch verb {
		case "alias":
			ch.NewAlias = value
		case "title":
			ch.Title = value
		case "description", "desc":
			ch.Description = value
		case "notebook":
			ch.Notebook = value
		case "tags":
			ch.Tags = value
		default:
			fmt.Fprintf(os.Stderr, "unknown field %q\n", verb)
			continue
		}

		updated, err := s.Store.Modify(alias, ch)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}
		alias = updated.Alias
	}
}

func asResults(notes []*note.Note) []query.Result {
	results := make([]query.Result, 0, len(notes))
	for _, n := range notes {
		results = append(results, query.Result{Note: n})
	}
	return results
}

func printHelp() {
	fmt.Print(heredoc.Doc(`
		Commands:
		  list <view>       list notes (all, notebooks, or a notebook name)
		  lsa / lsn         shortcuts for 'list all' / 'list notebooks'
		  search <term>     search notes
		  info [alias]      show a note's metadata
		  new               create a note (prompts for each field)
		  modify <alias>    edit a note's metadata fields
		  edit [alias]      open a note in the editor
		  archive <alias>   archive a note
		  delete <alias>    delete a note permanently
		  refresh           reload the note directory
		  config            edit the configuration file
		  quit              exit the shell
	`))
}

// splitQuoted splits a command line on whitespace, honoring double and
// single quoted segments.
func splitQuoted(line string) []string {
	var fields []string
	var cur strings.Builder
	var quote byte
	inField := false

	flush := func() {
		if inField {
			fields = append(fields, cur.String())
			cur.Reset()
			inField = false
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				cur.WriteByte(c)
			}
		case c == '"' || c == '\'':
			quote = c
			inField = true
		case c == ' ' || c == '\t':
			flush()
		default:
			cur.WriteByte(c)
			inField = true
		}
	}
	flush()
	return fields
}
