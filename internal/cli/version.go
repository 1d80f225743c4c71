// Package cli provides the version command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), map[string]string{"version": Version})
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "fleet-tokens %s\n", Version)
		return err
	},
}
