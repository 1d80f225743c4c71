// Package cli provides the merge command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/fleet-ui/fleet-tokens/internal/export"
)

func init() {
	rootCmd.AddCommand(mergeCmd)
	addInputFlags(mergeCmd)
}

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Print the merged semantic table",
	Long: `Merge the light and dark design exports and print the semantic table as
JSON. Tokens present in only one export get the error color on the other side.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := mergeInputs(effectiveConfig())
		if err != nil {
			return err
		}
		data, err := export.MarshalJSON(table)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
