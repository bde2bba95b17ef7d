package modify

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sdoconnell/nrrdnote/internal/state"
	"github.com/sdoconnell/nrrdnote/internal/store"
)

func NewCmdModify(s *state.State) *cobra.Command {
	var ch store.Changes

	cmd := &cobra.Command{
		Use:     "modify <alias>",
		Aliases: []string{"mod"},
		Short:   "Modify a note's metadata.",
		Long: heredoc.Doc(`
			Change a note's metadata fields. Only the provided flags are
			applied; the note body is untouched. Tag updates support three
			modes: a plain list replaces the tags, a leading '+' adds, and
			a leading '~' removes.

			Examples:
			  nrrdnote modify a1b2 --title "Better title"
			  nrrdnote modify a1b2 --tags +urgent
			  nrrdnote modify a1b2 --tags ~stale --notebook work
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := s.Store.Modify(args[0], ch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated note: %s (%s)\n", n.Title, n.Alias)
			return nil
		},
	}

	cmd.Flags().StringVar(&ch.NewAlias, "new-alias", "", "rename the note's alias")
	cmd.Flags().StringVar(&ch.Title, "title", "", "new title")
	cmd.Flags().StringVarP(&ch.Description, "description", "d", "", "new description")
	cmd.Flags().StringVarP(&ch.Notebook, "notebook", "n", "", "move to another notebook")
	cmd.Flags().StringVarP(&ch.Tags, "tags", "t", "", "tag update (list, +add, or ~remove)")

	return cmd
}
