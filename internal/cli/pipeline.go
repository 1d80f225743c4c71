// Package cli wires loaders, the merge step and the exporter together.
package cli

import (
	"fmt"
	"strings"

	"github.com/fleet-ui/fleet-tokens/internal/config"
	"github.com/fleet-ui/fleet-tokens/internal/export"
	"github.com/fleet-ui/fleet-tokens/internal/source"
	"github.com/fleet-ui/fleet-tokens/internal/tokens"
)

func requireInputs(cfg *config.Config) error {
	var missing []string
	if strings.TrimSpace(cfg.Inputs.Light) == "" {
		missing = append(missing, "light")
	}
	if strings.TrimSpace(cfg.Inputs.Dark) == "" {
		missing = append(missing, "dark")
	}
	if len(missing) == 0 {
		return nil
	}
	return &PreflightError{
		Message:  fmt.Sprintf("missing %s theme export path", strings.Join(missing, " and ")),
		Hint:     "Pass --light/--dark or set inputs.light/inputs.dark in fleet-tokens.yaml",
		NextStep: "fleet-tokens export --light light.json --dark dark.json",
	}
}

// mergeInputs loads both theme exports and merges them.
func mergeInputs(cfg *config.Config) (tokens.SemanticTable, error) {
	if err := requireInputs(cfg); err != nil {
		return tokens.SemanticTable{}, err
	}

	light, err := source.LoadThemeExport(cfg.Inputs.Light)
	if err != nil {
		return tokens.SemanticTable{}, err
	}
	dark, err := source.LoadThemeExport(cfg.Inputs.Dark)
	if err != nil {
		return tokens.SemanticTable{}, err
	}

	table := tokens.MergeThemeExports(light, dark, cfg.ErrorColor)
	logger.Debug().
		Int("light", light.Len()).
		Int("dark", dark.Len()).
		Int("merged", table.Light.Len()).
		Msg("theme exports merged")
	return table, nil
}

// runExport performs one full export and writes the artifacts.
func runExport(cfg *config.Config) ([]export.WriteResult, error) {
	table, err := mergeInputs(cfg)
	if err != nil {
		return nil, err
	}
	warnCollisions(table)
	artifacts, err := export.ExportAll(table, cfg.ExportOptions())
	if err != nil {
		return nil, err
	}
	writer := export.NewWriter(cfg.Output.Dir, cfg.OutputNames(), logger)
	return writer.Write(artifacts)
}

// warnCollisions logs tokens that render to an already used custom property.
func warnCollisions(table tokens.SemanticTable) {
	for _, issue := range tokens.PropertyCollisions(table) {
		logger.Warn().
			Str("token", issue.Token).
			Str("shadows", issue.Value).
			Str("property", export.PropertyName(issue.Token)).
			Msg("duplicate CSS custom property")
	}
}

// loadSemantic reads the semantic table from path, or merges the inputs
// when no path is given and no exported artifact exists.
func loadSemantic(cfg *config.Config, path string) (tokens.SemanticTable, error) {
	if path != "" {
		return source.LoadSemanticTable(path)
	}
	if cfg.Inputs.Light != "" && cfg.Inputs.Dark != "" {
		return mergeInputs(cfg)
	}
	return source.LoadSemanticTable(cfg.SemanticPath())
}

func loadPalette(cfg *config.Config) (*tokens.Map, error) {
	if strings.TrimSpace(cfg.Inputs.Palette) == "" {
		logger.Warn().Msg("no palette configured; palette references resolve to the error color")
		return tokens.NewMap(), nil
	}
	return source.LoadPalette(cfg.Inputs.Palette)
}

func loadResolver(cfg *config.Config, semanticPath string) (*tokens.Resolver, tokens.SemanticTable, error) {
	table, err := loadSemantic(cfg, semanticPath)
	if err != nil {
		return nil, tokens.SemanticTable{}, err
	}
	palette, err := loadPalette(cfg)
	if err != nil {
		return nil, tokens.SemanticTable{}, err
	}
	return tokens.NewResolver(palette, table, tokens.WithErrorColor(cfg.ErrorColor)), table, nil
}
