package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdoconnell/nrrdnote/internal/constants"
)

func NewCmdVersion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", constants.AppName, constants.Version)
		},
	}

	return cmd
}
