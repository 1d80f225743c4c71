// Package cli provides the resolve command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/fleet-ui/fleet-tokens/internal/tokens"
)

var semanticPath string

func init() {
	rootCmd.AddCommand(resolveCmd)
	addInputFlags(resolveCmd)
	resolveCmd.Flags().StringVar(&semanticPath, "semantic", "", "semantic JSON artifact to resolve against")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <theme> <token>...",
	Short: "Resolve semantic tokens to final colors",
	Long: `Resolve one or more semantic tokens for a theme through the palette.
Missing tokens and unknown palette keys resolve to the error color.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := tokens.ParseTheme(args[0])
		if err != nil {
			return &PreflightError{
				Message:  err.Error(),
				Hint:     "Use light or dark",
				NextStep: "fleet-tokens resolve light text.primary",
			}
		}

		resolver, _, err := loadResolver(effectiveConfig(), semanticPath)
		if err != nil {
			return err
		}

		resolved := tokens.NewMap()
		for _, token := range args[1:] {
			resolved.Set(token, resolver.Resolve(theme, token))
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, resolved)
		}

		rows := make([][]string, 0, resolved.Len())
		resolved.Each(func(token, value string) {
			rows = append(rows, []string{token, value})
		})
		return writeTable(out, nil, rows)
	},
}
