package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/dpdkintel/internal/version"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the current version of dpdkintel`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dpdkintel %s\n", version.Version)
	},
}
