package tokens

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResolvePaletteReference(t *testing.T) {
	palette := MapOf("blue.500", "#3B82F6")
	table := NewSemanticTable()
	table.Light.Set("button.primary", "blue.500")

	r := NewResolver(palette, table)
	assert.Equal(t, "#3B82F6", r.Resolve(ThemeLight, "button.primary"))
}

func TestResolvePassthrough(t *testing.T) {
	table := NewSemanticTable()
	table.Light.Set("overlay", "transparent")
	table.Light.Set("scrim", "Transparent")
	table.Light.Set("text.primary", "#1c1c1cff")

	r := NewResolver(NewMap(), table)
	assert.Equal(t, "transparent", r.Resolve(ThemeLight, "overlay"))
	assert.Equal(t, "Transparent", r.Resolve(ThemeLight, "scrim"))
	assert.Equal(t, "#1c1c1cff", r.Resolve(ThemeLight, "text.primary"))
}

func TestResolveFallsBackToErrorColor(t *testing.T) {
	palette := MapOf("gray.10", "#EEEEEE")
	table := NewSemanticTable()
	table.Light.Set("tooltip.border", "gray.10")
	table.Dark.Set("tooltip.background", "gray.99")

	r := NewResolver(palette, table)

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, DefaultErrorColor, r.Resolve(ThemeDark, "tooltip.border"))
	})
	t.Run("dangling reference", func(t *testing.T) {
		assert.Equal(t, DefaultErrorColor, r.Resolve(ThemeDark, "tooltip.background"))
	})
	t.Run("unknown theme", func(t *testing.T) {
		assert.Equal(t, DefaultErrorColor, r.Resolve(Theme("sepia"), "tooltip.border"))
	})
}

func TestResolveCustomErrorColor(t *testing.T) {
	r := NewResolver(nil, NewSemanticTable(), WithErrorColor("#00FF00"))
	assert.Equal(t, "#00FF00", r.ErrorColor())
	assert.Equal(t, "#00FF00", r.Resolve(ThemeLight, "anything"))

	r = NewResolver(nil, NewSemanticTable(), WithErrorColor(""))
	assert.Equal(t, DefaultErrorColor, r.ErrorColor())
}

func TestResolveAllKeepsOrder(t *testing.T) {
	palette := MapOf("red.50", "#FF0000")
	table := NewSemanticTable()
	table.Dark.Set("z.last", "red.50")
	table.Dark.Set("a.first", "#000000")

	got := NewResolver(palette, table).ResolveAll(ThemeDark)
	assert.Equal(t, []string{"z.last", "a.first"}, got.Keys())
	v, _ := got.Get("z.last")
	assert.Equal(t, "#FF0000", v)
}

func TestValueKind(t *testing.T) {
	cases := map[string]ValueKind{
		"#fff":        KindLiteral,
		"#":           KindLiteral,
		"transparent": KindTransparent,
		"TRANSPARENT": KindTransparent,
		"blue.500":    KindReference,
		"":            KindReference,
	}
	for raw, want := range cases {
		assert.Equal(t, want, Value(raw).Kind(), "value %q", raw)
	}
}

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	_, err = ParseTheme("sepia")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTheme))
}

func TestValidateHexColor(t *testing.T) {
	for _, ok := range []string{"#FFF", "#ff00ff", "#FF00FF80"} {
		assert.NoError(t, ValidateHexColor(ok), ok)
	}
	for _, bad := range []string{"FF00FF", "#FF00F", "#GG0000", "magenta"} {
		assert.ErrorIs(t, ValidateHexColor(bad), ErrInvalidColor, bad)
	}
}

func TestMergeThemeExports(t *testing.T) {
	t.Run("light only key", func(t *testing.T) {
		table := MergeThemeExports(MapOf("a", "#111111"), NewMap(), DefaultErrorColor)
		lv, _ := table.Light.Get("a")
		dv, _ := table.Dark.Get("a")
		assert.Equal(t, "#111111", lv)
		assert.Equal(t, DefaultErrorColor, dv)
	})

	t.Run("union order", func(t *testing.T) {
		light := MapOf("b", "#000000", "a", "transparent")
		dark := MapOf("c", "#222222", "a", "#333333")
		table := MergeThemeExports(light, dark, DefaultErrorColor)
		assert.Equal(t, []string{"b", "a", "c"}, table.Light.Keys())
		assert.Equal(t, []string{"b", "a", "c"}, table.Dark.Keys())
		lv, _ := table.Light.Get("c")
		assert.Equal(t, DefaultErrorColor, lv)
	})

	t.Run("idempotent", func(t *testing.T) {
		light := MapOf("x", "#111111", "y", "transparent")
		dark := MapOf("y", "#222222")
		first := MergeThemeExports(light, dark, DefaultErrorColor)
		second := MergeThemeExports(light, dark, DefaultErrorColor)
		assert.True(t, first.Light.Equal(second.Light))
		assert.True(t, first.Dark.Equal(second.Dark))
	})

	t.Run("superset extends", func(t *testing.T) {
		base := MergeThemeExports(MapOf("x", "#111111"), MapOf("x", "#222222"), DefaultErrorColor)
		ext := MergeThemeExports(MapOf("x", "#111111", "z", "#333333"), MapOf("x", "#222222"), DefaultErrorColor)
		base.Light.Each(func(k, v string) {
			got, ok := ext.Light.Get(k)
			require.True(t, ok)
			assert.Equal(t, v, got)
		})
		assert.Equal(t, base.Light.Len()+1, ext.Light.Len())
	})
}

func TestCheckReport(t *testing.T) {
	palette := MapOf("blue.500", "#3B82F6")
	table := MergeThemeExports(
		MapOf("button.primary", "blue.500", "link", "blue.900", "bg", "#FFFFFF"),
		MapOf("button.primary", "#000000", "bg", "#111111"),
		DefaultErrorColor,
	)

	report := Check(palette, table, DefaultErrorColor)
	assert.Equal(t, 3, report.Tokens)
	assert.Equal(t, 1, report.Count(IssueMissingToken))
	assert.Equal(t, 1, report.Count(IssueDanglingReference))
	assert.Equal(t, 2, report.Count(IssueUnresolvedCSS))
	assert.True(t, report.HasErrors())

	clean := Check(palette, MergeThemeExports(MapOf("bg", "#FFF"), MapOf("bg", "#000"), DefaultErrorColor), DefaultErrorColor)
	assert.False(t, clean.HasErrors())
	assert.Empty(t, clean.Issues)
}

func TestMapSetKeepsPosition(t *testing.T) {
	m := MapOf("a", "1", "b", "2")
	m.Set("a", "3")
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, _ := m.Get("a")
	assert.Equal(t, "3", v)
}

func TestMapJSONOrder(t *testing.T) {
	m := MapOf("z", "#000", "a", "transparent")
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"#000","a":"transparent"}`, string(data))

	var back Map
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, m.Equal(&back))

	assert.Error(t, json.Unmarshal([]byte(`{"a": 1}`), &back))
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &back))
}

func TestMapYAMLOrder(t *testing.T) {
	var m Map
	require.NoError(t, yaml.Unmarshal([]byte("z: \"#000\"\na: transparent\n"), &m))
	assert.Equal(t, []string{"z", "a"}, m.Keys())

	err := yaml.Unmarshal([]byte("a:\n  b: c\n"), &m)
	assert.Error(t, err)
}

func TestPropertyCollisions(t *testing.T) {
	table := MergeThemeExports(
		MapOf("a", "#111", " a", "#222", "text.primary", "#333", "text_primary", "#444"),
		MapOf("a", "#000"),
		DefaultErrorColor,
	)

	issues := PropertyCollisions(table)
	require.Len(t, issues, 2)
	assert.Equal(t, Issue{Kind: IssuePropertyCollision, Token: " a", Value: "a"}, issues[0])
	assert.Equal(t, Issue{Kind: IssuePropertyCollision, Token: "text_primary", Value: "text.primary"}, issues[1])

	report := Check(NewMap(), table, DefaultErrorColor)
	assert.Equal(t, 2, report.Count(IssuePropertyCollision))
	assert.True(t, report.HasErrors())

	clean := MergeThemeExports(MapOf("text.primary", "#333"), MapOf("text.primary", "#444"), DefaultErrorColor)
	assert.Empty(t, PropertyCollisions(clean))
}
