package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at release with -ldflags "-X ...cmd.version=v1.2.3".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the spellz version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "spellz %s\n", version)
		return err
	},
}
