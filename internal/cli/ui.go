// Package cli provides the TUI launch command.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fleet-ui/fleet-tokens/internal/tokens"
	"github.com/fleet-ui/fleet-tokens/internal/tui"
)

var browseTheme string

func init() {
	rootCmd.AddCommand(browseCmd)
	addInputFlags(browseCmd)
	browseCmd.Flags().StringVar(&semanticPath, "semantic", "", "semantic JSON artifact to browse")
	browseCmd.Flags().StringVar(&browseTheme, "theme", "light", "initial theme")
	browseCmd.Flags().StringVar(&previewChrome, "chrome", "default", "terminal chrome theme (default, high-contrast)")
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse resolved tokens interactively",
	Long:  "Launch a terminal browser listing resolved tokens with color swatches.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	if !hasTTY() {
		return &PreflightError{
			Message:  "browse requires an interactive terminal",
			Hint:     "Use preview for non-interactive output",
			NextStep: "fleet-tokens preview light",
		}
	}

	theme, err := tokens.ParseTheme(browseTheme)
	if err != nil {
		return &PreflightError{Message: err.Error(), Hint: "Use --theme light or --theme dark"}
	}

	resolver, table, err := loadResolver(effectiveConfig(), semanticPath)
	if err != nil {
		return err
	}

	return tui.Run(tui.Config{
		Resolver: resolver,
		Table:    table,
		Theme:    theme,
		Chrome:   previewChrome,
	})
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
