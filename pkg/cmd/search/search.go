package search

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sdoconnell/nrrdnote/internal/display"
	"github.com/sdoconnell/nrrdnote/internal/query"
	"github.com/sdoconnell/nrrdnote/internal/state"
)

func NewCmdSearch(s *state.State) *cobra.Command {
	var pager bool

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search notes.",
		Long: heredoc.Doc(`
			Search notes with field criteria and free-text matching. The
			term has the form "include[%exclude]": include criteria are
			joined with AND, exclude criteria with OR. A bare term searches
			note body text; wrap it in /slashes/ to use a regular
			expression. The special term "any" matches every note.

			Examples:
			  nrrdnote search notebook=work,tags=urgent+today
			  nrrdnote search title=foo%tags=archive
			  nrrdnote search /^TODO/
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := query.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			for _, warning := range q.Warnings {
				fmt.Fprintln(os.Stderr, "warning:", warning)
			}

			results := q.Evaluate(s.Store.Snapshot().All())

			render := func(r *display.Renderer) {
				r.DefaultNotebook = s.Store.DefaultNotebook()
				r.NoteList("Search results", results, true)
			}
			if pager {
				return display.Page(s.Config.Colors, render)
			}
			render(display.NewRenderer(os.Stdout, s.Config.Colors))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pager, "pager", "p", false, "page the output")

	return cmd
}
