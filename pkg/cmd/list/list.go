package list

import (
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sdoconnell/nrrdnote/internal/display"
	"github.com/sdoconnell/nrrdnote/internal/note"
	"github.com/sdoconnell/nrrdnote/internal/query"
	"github.com/sdoconnell/nrrdnote/internal/state"
)

func NewCmdList(s *state.State) *cobra.Command {
	var pager bool

	cmd := &cobra.Command{
		Use:     "list <view>",
		Aliases: []string{"ls"},
		Short:   "List notes or notebooks.",
		Long: heredoc.Doc(`
			List notes in a notebook, all notes grouped by notebook, or the
			notebooks themselves with note counts.

			Views:
			  all          every note, grouped by notebook
			  notebooks    the notebooks and their note counts
			  <notebook>   the notes in one notebook

			Examples:
			  nrrdnote list all
			  nrrdnote ls work
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := strings.ToLower(args[0])
			snap := s.Store.Snapshot()

			render := func(r *display.Renderer) {
				r.DefaultNotebook = s.Store.DefaultNotebook()
				switch view {
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

func asResults(notes []*note.Note) []query.Result {
	results := make([]query.Result, 0, len(notes))
	for _, n := range notes {
		results = append(results, query.Result{Note: n})
	}
	return results
}
