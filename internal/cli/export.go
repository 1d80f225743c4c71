// Package cli provides the export command.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fleet-ui/fleet-tokens/internal/config"
	"github.com/fleet-ui/fleet-tokens/internal/export"
	"github.com/fleet-ui/fleet-tokens/internal/watch"
)

var (
	flagLight   string
	flagDark    string
	flagPalette string
	flagOutDir  string

	exportWatch  bool
	exportDryRun bool
)

func init() {
	rootCmd.AddCommand(exportCmd)

	addInputFlags(exportCmd)
	exportCmd.Flags().StringVarP(&flagOutDir, "out", "o", "", "output directory (overrides output.dir)")
	exportCmd.Flags().BoolVarP(&exportWatch, "watch", "w", false, "regenerate when an input changes")
	exportCmd.Flags().BoolVar(&exportDryRun, "dry-run", false, "print artifacts instead of writing them")
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLight, "light", "", "light theme export (overrides inputs.light)")
	cmd.Flags().StringVar(&flagDark, "dark", "", "dark theme export (overrides inputs.dark)")
	cmd.Flags().StringVar(&flagPalette, "palette", "", "palette file (overrides inputs.palette)")
}

// effectiveConfig applies command-line overrides to a copy of the config.
func effectiveConfig() *config.Config {
	cfg := *GetConfig()
	if flagLight != "" {
		cfg.Inputs.Light = flagLight
	}
	if flagDark != "" {
		cfg.Inputs.Dark = flagDark
	}
	if flagPalette != "" {
		cfg.Inputs.Palette = flagPalette
	}
	if flagOutDir != "" {
		cfg.Output.Dir = flagOutDir
	}
	return &cfg
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate the semantic color JSON and CSS files",
	Long: `Merge the light and dark design exports and write three artifacts:
the semantic JSON table and one CSS custom-property file per theme.
Values are written as found; palette references are not resolved.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runExportCommand(ctx, cmd, effectiveConfig())
	},
}

// runExportCommand exports once and, in watch mode, keeps exporting on
// input changes until ctx is canceled. Missing input paths fail before
// the watch starts; load and parse errors are logged and retried.
func runExportCommand(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	if exportDryRun {
		return printArtifacts(cmd, cfg)
	}
	if !exportWatch {
		return exportOnce(cmd, cfg)
	}

	if err := requireInputs(cfg); err != nil {
		return err
	}
	if err := exportOnce(cmd, cfg); err != nil {
		logger.Error().Err(err).Msg("initial export failed")
	}

	paths := []string{cfg.Inputs.Light, cfg.Inputs.Dark}
	logger.Info().Strs("inputs", paths).Msg("watching for changes")
	return watch.New(logger).Run(ctx, paths, func(context.Context) error {
		return exportOnce(cmd, cfg)
	})
}

func exportOnce(cmd *cobra.Command, cfg *config.Config) error {
	step := startProgress("Exporting semantic colors")
	results, err := runExport(cfg)
	if err != nil {
		step.Fail(err)
		return err
	}
	step.Done()

	changed := 0
	for _, result := range results {
		if result.Changed {
			changed++
		}
	}
	logger.Info().Int("changed", changed).Str("dir", cfg.Output.Dir).Msg("export complete")

	out := cmd.OutOrStdout()
	if IsJSONOutput() {
		return WriteOutput(out, results)
	}

	rows := make([][]string, 0, len(results))
	for _, result := range results {
		rows = append(rows, []string{formatChanged(result.Changed), result.Path, fmt.Sprintf("%d", result.Bytes)})
	}
	return writeTable(out, []string{"STATUS", "FILE", "BYTES"}, rows)
}

func printArtifacts(cmd *cobra.Command, cfg *config.Config) error {
	table, err := mergeInputs(cfg)
	if err != nil {
		return err
	}
	warnCollisions(table)
	artifacts, err := export.ExportAll(table, cfg.ExportOptions())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if IsJSONOutput() {
		return WriteOutput(out, map[string]string{
			cfg.Output.JSON:     artifacts.JSON,
			cfg.Output.CSSLight: artifacts.CSSLight,
			cfg.Output.CSSDark:  artifacts.CSSDark,
		})
	}

	for _, file := range []struct{ name, content string }{
		{cfg.Output.JSON, artifacts.JSON},
		{cfg.Output.CSSLight, artifacts.CSSLight},
		{cfg.Output.CSSDark, artifacts.CSSDark},
	} {
		fmt.Fprintf(out, "/* %s */\n%s\n", file.name, file.content)
	}
	return nil
}
