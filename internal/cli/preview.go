// Package cli provides the preview command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fleet-ui/fleet-tokens/internal/tokens"
	"github.com/fleet-ui/fleet-tokens/internal/tui/components"
	"github.com/fleet-ui/fleet-tokens/internal/tui/styles"
)

var previewChrome string

func init() {
	rootCmd.AddCommand(previewCmd)
	addInputFlags(previewCmd)
	previewCmd.Flags().StringVar(&semanticPath, "semantic", "", "semantic JSON artifact to preview")
	previewCmd.Flags().StringVar(&previewChrome, "chrome", "default", "terminal chrome theme (default, high-contrast)")
}

var previewCmd = &cobra.Command{
	Use:   "preview <theme>",
	Short: "Print every token of a theme with a color swatch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := tokens.ParseTheme(args[0])
		if err != nil {
			return &PreflightError{
				Message:  err.Error(),
				Hint:     "Use light or dark",
				NextStep: "fleet-tokens preview dark",
			}
		}

		resolver, _, err := loadResolver(effectiveConfig(), semanticPath)
		if err != nil {
			return err
		}
		resolved := resolver.ResolveAll(theme)

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, resolved)
		}

		styleSet := styles.BuildStyles(styles.ThemeByName(previewChrome))
		if resolved.Len() == 0 {
			fmt.Fprintln(out, components.EmptyTheme(string(theme)).Render(styleSet))
			return nil
		}

		width := 0
		for _, token := range resolved.Keys() {
			width = max(width, len(token))
		}

		fmt.Fprintln(out, styleSet.Title.Render(fmt.Sprintf("%s theme · %d tokens", theme, resolved.Len())))
		resolved.Each(func(token, value string) {
			fmt.Fprintln(out, styleSet.SwatchLine(token, value, resolver.ErrorColor(), width))
		})
		return nil
	},
}
