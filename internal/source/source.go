// Package source loads the design tool's color exports.
package source

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fleet-ui/fleet-tokens/internal/export"
	"github.com/fleet-ui/fleet-tokens/internal/tokens"
)

const colorsKey = "colors"

// LoadThemeExport reads one theme's export. The file is JSON or YAML with a
// top-level "colors" mapping; nested groups are flattened to dotted keys.
func LoadThemeExport(path string) (*tokens.Map, error) {
	root, err := readDocument(path)
	if err != nil {
		return nil, fmt.Errorf("read theme export %s: %w", path, err)
	}
	colors, err := ParseColors(root, false)
	if err != nil {
		return nil, fmt.Errorf("parse theme export %s: %w", path, err)
	}
	return colors, nil
}

// LoadPalette reads a palette file: a "colors" mapping or a bare mapping.
func LoadPalette(path string) (*tokens.Map, error) {
	root, err := readDocument(path)
	if err != nil {
		return nil, fmt.Errorf("read palette %s: %w", path, err)
	}
	palette, err := ParseColors(root, true)
	if err != nil {
		return nil, fmt.Errorf("parse palette %s: %w", path, err)
	}
	return palette, nil
}

// LoadSemanticTable reads a JSON artifact produced by the export step.
func LoadSemanticTable(path string) (tokens.SemanticTable, error) {
	if strings.TrimSpace(path) == "" {
		return tokens.SemanticTable{}, fmt.Errorf("semantic table path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return tokens.SemanticTable{}, fmt.Errorf("read semantic table %s: %w", path, err)
	}
	table, err := export.ParseJSON(data)
	if err != nil {
		return tokens.SemanticTable{}, fmt.Errorf("parse semantic table %s: %w", path, err)
	}
	return table, nil
}

func readDocument(path string) (*yaml.Node, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseColors extracts the color mapping from a decoded document. When
// bareAllowed is set and the document has no "colors" key, the whole
// document is the mapping.
func ParseColors(doc *yaml.Node, bareAllowed bool) (*tokens.Map, error) {
	out := tokens.NewMap()
	root := doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return out, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected an object at top level", root.Line)
	}

	colors := lookup(root, colorsKey)
	if colors == nil {
		if !bareAllowed {
			return out, nil
		}
		colors = root
	}
	if colors.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %q must be an object", colors.Line, colorsKey)
	}

	if err := flatten(colors, "", out); err != nil {
		return nil, err
	}
	return out, nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func flatten(node *yaml.Node, prefix string, out *tokens.Map) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if prefix != "" {
			key = prefix + "." + key
		}
		value := node.Content[i+1]
		switch value.Kind {
		case yaml.MappingNode:
			if err := flatten(value, key, out); err != nil {
				return err
			}
		case yaml.ScalarNode:
			if value.ShortTag() != "!!str" {
				return fmt.Errorf("line %d: %q must be a string, got %s", value.Line, key, value.Value)
			}
			out.Set(key, value.Value)
		default:
			return fmt.Errorf("line %d: %q must be a string", value.Line, key)
		}
	}
	return nil
}
