package edit

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sdoconnell/nrrdnote/internal/editor"
	"github.com/sdoconnell/nrrdnote/internal/state"
	cmdpkg "github.com/sdoconnell/nrrdnote/pkg/cmd"
)

func NewCmdEdit(s *state.State) *cobra.Command {
	var editorOpts string

	cmd := &cobra.Command{
		Use:   "edit [alias]",
		Short: "Edit a note in your editor.",
		Long: heredoc.Doc(`
			Open a note's file in $EDITOR. Without an alias argument, an
			interactive picker is shown. The store is refreshed after the
			editor exits.

			Example:
			  nrrdnote edit a1b2
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(s, args, "Select a note to edit")
			if err != nil {
				return err
			}

			opts := editorOpts
			if opts == "" {
				opts = s.Config.EditorOptions
			}
			if err := editor.Open(n.Path, opts); err != nil {
				return err
			}
			return s.Store.Refresh()
		},
	}

	cmd.Flags().StringVarP(&editorOpts, "editor-opts", "o", "", "options passed to the editor")

	return cmd
}
