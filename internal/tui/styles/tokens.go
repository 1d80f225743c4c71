// Package styles renders terminal chrome and color swatches for the
// preview and browse commands.
package styles

// ChromeTokens are the semantic roles used by the tool's own output.
type ChromeTokens struct {
	Text      string
	TextMuted string
	Border    string
	Accent    string
	Selected  string
	Success   string
	Warning   string
	Error     string
}

// Theme bundles chrome tokens with a name.
type Theme struct {
	Name   string
	Tokens ChromeTokens
}

// Themes lists available chrome palettes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
}

// ThemeByName returns the named theme, falling back to DefaultTheme.
func ThemeByName(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return DefaultTheme
}
