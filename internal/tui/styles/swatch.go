package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fleet-ui/fleet-tokens/internal/tokens"
)

const swatchWidth = 4

// Swatch renders a color block for a resolved value. Transparent values
// show a checker pattern; the error color is tagged so it reads as missing
// even without color support.
func (s Styles) Swatch(value, errorColor string) string {
	switch tokens.Value(value).Kind() {
	case tokens.KindTransparent:
		return s.Muted.Render(strings.Repeat("░", swatchWidth))
	case tokens.KindReference:
		return s.Warning.Render(strings.Repeat("?", swatchWidth))
	}

	block := lipgloss.NewStyle().
		Background(lipgloss.Color(TerminalColor(value))).
		Render(strings.Repeat(" ", swatchWidth))
	if strings.EqualFold(value, errorColor) {
		return block + " " + s.Error.Render("missing")
	}
	return block
}

// SwatchLine renders "swatch token value" for one resolved token.
func (s Styles) SwatchLine(token, value, errorColor string, tokenWidth int) string {
	return fmt.Sprintf("%s  %s  %s",
		s.Swatch(value, errorColor),
		s.Text.Render(padRight(token, tokenWidth)),
		s.Muted.Render(value),
	)
}

// TerminalColor drops the alpha channel from #RRGGBBAA, which terminals
// cannot render.
func TerminalColor(hex string) string {
	if len(hex) == 9 && strings.HasPrefix(hex, "#") {
		return hex[:7]
	}
	return hex
}

func padRight(text string, width int) string {
	if n := lipgloss.Width(text); n < width {
		return text + strings.Repeat(" ", width-n)
	}
	return text
}
