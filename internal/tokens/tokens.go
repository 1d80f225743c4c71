// Package tokens models the Fleet palette and semantic color tables and
// resolves semantic tokens to final color values.
package tokens

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultErrorColor marks a token that could not be resolved.
const DefaultErrorColor = "#FF00FF"

// TransparentValue is the keyword passed through unresolved.
const TransparentValue = "transparent"

var (
	// ErrUnknownTheme is returned for theme names other than light and dark.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrInvalidColor is returned when a value is not a hex color.
	ErrInvalidColor = errors.New("invalid hex color")
)

// Theme selects one side of the semantic table.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Themes lists the themes in export order.
var Themes = []Theme{ThemeLight, ThemeDark}

// ParseTheme converts a theme name, ignoring case and surrounding space.
func ParseTheme(name string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(name))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("%w %q (want light or dark)", ErrUnknownTheme, name)
	}
}

// ValueKind classifies a raw semantic value.
type ValueKind int

const (
	KindReference ValueKind = iota
	KindLiteral
	KindTransparent
)

func (k ValueKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindTransparent:
		return "transparent"
	default:
		return "reference"
	}
}

// Value is a raw semantic value as written by the design tool.
type Value string

// Kind reports how the value resolves.
func (v Value) Kind() ValueKind {
	switch {
	case strings.HasPrefix(string(v), "#"):
		return KindLiteral
	case strings.EqualFold(string(v), TransparentValue):
		return KindTransparent
	default:
		return KindReference
	}
}

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateHexColor checks for #RGB, #RRGGBB or #RRGGBBAA.
func ValidateHexColor(value string) error {
	if !hexColorPattern.MatchString(value) {
		return fmt.Errorf("%w %q", ErrInvalidColor, value)
	}
	return nil
}

// SemanticTable holds the per-theme token mappings.
type SemanticTable struct {
	Light *Map `json:"light"`
	Dark  *Map `json:"dark"`
}

// NewSemanticTable returns a table with two empty themes.
func NewSemanticTable() SemanticTable {
	return SemanticTable{Light: NewMap(), Dark: NewMap()}
}

// For returns the mapping of theme, or nil for unknown themes.
func (t SemanticTable) For(theme Theme) *Map {
	switch theme {
	case ThemeLight:
		return t.Light
	case ThemeDark:
		return t.Dark
	default:
		return nil
	}
}

// MergeThemeExports combines per-theme design exports into a semantic
// table. Keys come from both sides, light order first; a side without a
// key gets errorColor.
func MergeThemeExports(light, dark *Map, errorColor string) SemanticTable {
	table := NewSemanticTable()

	fill := func(key string) {
		if _, seen := table.Light.Get(key); seen {
			return
		}
		lv, ok := light.Get(key)
		if !ok {
			lv = errorColor
		}
		dv, ok := dark.Get(key)
		if !ok {
			dv = errorColor
		}
		table.Light.Set(key, lv)
		table.Dark.Set(key, dv)
	}

	for _, key := range light.Keys() {
		fill(key)
	}
	for _, key := range dark.Keys() {
		fill(key)
	}
	return table
}
