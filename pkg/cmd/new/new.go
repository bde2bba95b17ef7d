package new

import (
	"fmt"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/sdoconnell/nrrdnote/internal/editor"
	"github.com/sdoconnell/nrrdnote/internal/state"
)

func NewCmdNew(s *state.State) *cobra.Command {
	var (
		description string
		notebook    string
		tags        string
		paste       bool
		noEdit      bool
	)

	cmd := &cobra.Command{
		Use:     "new [title]",
		Aliases: []string{"add"},
		Short:   "Create a new note.",
		Long: heredoc.Doc(`
			Create a new note file with a generated uid and alias and open
			it in your editor. Without a title, a timestamp placeholder is
			used.

			Examples:
			  nrrdnote new "Meeting notes" --notebook work --tags standup
			  nrrdnote new "Snippet" --paste --no-edit
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				title = "New note " + time.Now().Format("2006-01-02 15:04:05")
			}

			body := ""
			if paste {
				text, err := clipboard.ReadAll()
				if err != nil {
					return fmt.Errorf("failed to read clipboard: %w", err)
				}
				body = text
			}

			n, err := s.Store.Create(title, description, notebook, tags, body)
			if err != nil {
				return err
			}
			fmt.Printf("Added note: %s (%s)\n", n.Title, n.Alias)

			if noEdit {
				return nil
			}
			if err := editor.Open(n.Path, s.Config.EditorOptions); err != nil {
				return err
			}
			return s.Store.Refresh()
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "note description")
	cmd.Flags().StringVarP(&notebook, "notebook", "n", "", "notebook for the note")
	cmd.Flags().StringVarP(&tags, "tags", "t", "", "comma-separated tags")
	cmd.Flags().BoolVar(&paste, "paste", false, "use clipboard contents as the note body")
	cmd.Flags().BoolVar(&noEdit, "no-edit", false, "do not open the editor after creating")

	return cmd
}
