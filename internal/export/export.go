// Package export renders a semantic table into the generated JSON and CSS
// artifacts and writes them to disk.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fleet-ui/fleet-tokens/internal/tokens"
)

// Defaults for Options.
const (
	DefaultPrefix        = "--fleet-"
	DefaultLightSelector = ":root"
	DefaultDarkSelector  = ".dark"
)

// Options control CSS rendering.
type Options struct {
	Prefix        string
	LightSelector string
	DarkSelector  string
}

func (o Options) withDefaults() Options {
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.LightSelector == "" {
		o.LightSelector = DefaultLightSelector
	}
	if o.DarkSelector == "" {
		o.DarkSelector = DefaultDarkSelector
	}
	return o
}

// Artifacts are the generated files' contents.
type Artifacts struct {
	JSON     string
	CSSLight string
	CSSDark  string
}

// ExportAll renders the table. Values are written as found in the table;
// palette references are not resolved.
func ExportAll(table tokens.SemanticTable, opts Options) (Artifacts, error) {
	opts = opts.withDefaults()
	table = normalize(table)

	data, err := MarshalJSON(table)
	if err != nil {
		return Artifacts{}, err
	}

	return Artifacts{
		JSON:     string(data),
		CSSLight: RenderCSS(opts.LightSelector, opts.Prefix, table.Light),
		CSSDark:  RenderCSS(opts.DarkSelector, opts.Prefix, table.Dark),
	}, nil
}

// MarshalJSON encodes the table with two-space indentation and a trailing newline.
func MarshalJSON(table tokens.SemanticTable) ([]byte, error) {
	table = normalize(table)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(table); err != nil {
		return nil, fmt.Errorf("encode semantic table: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseJSON reads a JSON artifact back into a table, keeping key order.
func ParseJSON(data []byte) (tokens.SemanticTable, error) {
	var table tokens.SemanticTable
	if err := json.Unmarshal(data, &table); err != nil {
		return tokens.SemanticTable{}, fmt.Errorf("decode semantic table: %w", err)
	}
	return normalize(table), nil
}

// RenderCSS writes one rule block declaring a custom property per token.
func RenderCSS(selector, prefix string, values *tokens.Map) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	values.Each(func(token, value string) {
		fmt.Fprintf(&b, "  %s%s: %s;\n", prefix, PropertyName(token), value)
	})
	b.WriteString("}\n")
	return b.String()
}

// PropertyName converts a token name to its custom-property suffix.
func PropertyName(token string) string {
	return tokens.PropertyName(token)
}

func normalize(table tokens.SemanticTable) tokens.SemanticTable {
	if table.Light == nil {
		table.Light = tokens.NewMap()
	}
	if table.Dark == nil {
		table.Dark = tokens.NewMap()
	}
	return table
}
