package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sdoconnell/nrrdnote/internal/constants"
	"github.com/sdoconnell/nrrdnote/internal/state"
	"github.com/sdoconnell/nrrdnote/pkg/cmd/archive"
	"github.com/sdoconnell/nrrdnote/pkg/cmd/configcmd"
	"github.com/sdoconnell/nrrdnote/pkg/cmd/delete"
	"github.com/sdoconnell/nrrdnote/pkg/cmd/edit"
	"github.com/sdoconnell/nrrdnote/pkg/cmd/info"
	"github.com/sdoconnell/nrrdnote/pkg/cmd/list"
	"github.com/sdoconnell/nrrdnote/pkg/cmd/modify"
	newcmd "github.com/sdoconnell/nrrdnote/pkg/cmd/new"
	"github.com/sdoconnell/nrrdnote/pkg/cmd/search"
	"github.com/sdoconnell/nrrdnote/pkg/cmd/shell"
	"github.com/sdoconnell/nrrdnote/pkg/cmd/version"
)

func NewCmdRoot(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "A terminal-based notes management program.",
		Long: heredoc.Doc(`
			nrrdnote manages plain-text note files with YAML front-matter
			headers, grouped into notebooks and searchable by field or
			free text.

			Examples:
			  nrrdnote new "Meeting notes" -n work
			  nrrdnote list all
			  nrrdnote search tags=urgent
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// The config path flag is prescanned in main before state exists;
	// it is declared here so cobra accepts and documents it.
	cmd.PersistentFlags().StringP("config", "c", "", "path to the configuration file")

	cmd.AddCommand(
		newcmd.NewCmdNew(s),
		list.NewCmdList(s),
		info.NewCmdInfo(s),
		search.NewCmdSearch(s),
		modify.NewCmdModify(s),
		edit.NewCmdEdit(s),
		archive.NewCmdArchive(s),
		delete.NewCmdDelete(s),
		shell.NewCmdShell(s),
		configcmd.NewCmdConfig(s),
		version.NewCmdVersion(),
	)

	return cmd
}
