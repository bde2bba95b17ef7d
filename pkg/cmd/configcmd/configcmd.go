package configcmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sdoconnell/nrrdnote/internal/editor"
	"github.com/sdoconnell/nrrdnote/internal/state"
)

func NewCmdConfig(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Edit the configuration file.",
		Long: heredoc.Doc(`
			Open the configuration file in $EDITOR. Changes take effect on
			the next invocation.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editor.Open(s.ConfigPath, s.Config.EditorOptions)
		},
	}

	return cmd
}
