// Package cli provides the check command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fleet-ui/fleet-tokens/internal/tokens"
)

var checkStrict bool

func init() {
	rootCmd.AddCommand(checkCmd)
	addInputFlags(checkCmd)
	checkCmd.Flags().StringVar(&semanticPath, "semantic", "", "semantic JSON artifact to check")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "exit non-zero on missing tokens, dangling references or duplicate properties")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report missing tokens and unresolved palette references",
	Long: `Inspect the semantic table against the palette. Reports tokens missing from
a theme, palette references with no palette entry, and tokens whose CSS
declaration holds a bare palette key.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := effectiveConfig()
		table, err := loadSemantic(cfg, semanticPath)
		if err != nil {
			return err
		}
		palette, err := loadPalette(cfg)
		if err != nil {
			return err
		}

		report := tokens.Check(palette, table, cfg.ErrorColor)
		out := cmd.OutOrStdout()

		if IsJSONOutput() {
			if err := WriteOutput(out, report); err != nil {
				return err
			}
		} else {
			rows := make([][]string, 0, len(report.Issues))
			for _, issue := range report.Issues {
				rows = append(rows, []string{formatIssueKind(issue.Kind), string(issue.Theme), issue.Token, issue.Value})
			}
			if len(rows) > 0 {
				if err := writeTable(out, []string{"ISSUE", "THEME", "TOKEN", "VALUE"}, rows); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%d tokens, %d missing, %d dangling, %d unresolved in CSS\n",
				report.Tokens,
				report.Count(tokens.IssueMissingToken),
				report.Count(tokens.IssueDanglingReference),
				report.Count(tokens.IssueUnresolvedCSS),
			)
			if n := report.Count(tokens.IssuePropertyCollision); n > 0 {
				fmt.Fprintf(out, "%d duplicate CSS properties\n", n)
			}
		}

		if checkStrict && report.HasErrors() {
			return &ExitError{Code: 1}
		}
		return nil
	},
}
