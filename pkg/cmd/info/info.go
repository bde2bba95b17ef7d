package info

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sdoconnell/nrrdnote/internal/display"
	"github.com/sdoconnell/nrrdnote/internal/state"
	cmdpkg "github.com/sdoconnell/nrrdnote/pkg/cmd"
)

func NewCmdInfo(s *state.State) *cobra.Command {
	var pager bool

	cmd := &cobra.Command{
		Use:   "info [alias]",
		Short: "Show a note's metadata.",
		Long: heredoc.Doc(`
			Show the full metadata for one note. Without an alias argument,
			an interactive picker is shown.

			Example:
			  nrrdnote info a1b2
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(s, args, "Select a note")
			if err != nil {
				return err
			}

			render := func(r *display.Renderer) { r.Info(n) }
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
