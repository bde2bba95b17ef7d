package delete

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sdoconnell/nrrdnote/internal/state"
	cmdpkg "github.com/sdoconnell/nrrdnote/pkg/cmd"
)

func NewCmdDelete(s *state.State) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <alias>",
		Aliases: []string{"rm"},
		Short:   "Delete a note permanently.",
		Long: heredoc.Doc(`
			Delete a note's file. This is permanent; use archive instead if
			you may want the note back later.

			Example:
			  nrrdnote delete a1b2
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := s.Store.Snapshot()
			n, err := snap.LookupByAlias(args[0])
			if err != nil {
				return err
			}

			prompt := fmt.Sprintf("Permanently delete note %q (%s)?", n.Title, n.Alias)
			if err := cmdpkg.Confirm(prompt, force); err != nil {
				return err
			}

			if _, err := s.Store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted note: %s (%s)\n", n.Title, n.Alias)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}
