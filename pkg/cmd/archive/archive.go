package archive

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sdoconnell/nrrdnote/internal/state"
	cmdpkg "github.com/sdoconnell/nrrdnote/pkg/cmd"
)

func NewCmdArchive(s *state.State) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "archive <alias>",
		Short: "Archive a note.",
		Long: heredoc.Doc(`
			Move a note's file into the archive subdirectory. Archived
			notes keep their files but no longer appear in lists or
			searches.

			Example:
			  nrrdnote archive a1b2
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := s.Store.Snapshot()
			n, err := snap.LookupByAlias(args[0])
			if err != nil {
				return err
			}

			prompt := fmt.Sprintf("Archive note %q (%s)?", n.Title, n.Alias)
			if err := cmdpkg.Confirm(prompt, force); err != nil {
				return err
			}

			if _, err := s.Store.Archive(args[0]); err != nil {
				return err
			}
			fmt.Printf("Archived note: %s (%s)\n", n.Title, n.Alias)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}
