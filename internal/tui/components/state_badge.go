package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fleet-ui/fleet-tokens/internal/tokens"
	"github.com/fleet-ui/fleet-tokens/internal/tui/styles"
)

// RenderValueBadge labels how a token's raw value resolved.
func RenderValueBadge(styleSet styles.Styles, raw, resolved, errorColor string) string {
	icon, label, style := valueDescriptor(styleSet, raw, resolved, errorColor)
	return style.Render(fmt.Sprintf("%s %s", icon, label))
}

func valueDescriptor(styleSet styles.Styles, raw, resolved, errorColor string) (string, string, lipgloss.Style) {
	if strings.EqualFold(resolved, errorColor) {
		return "ERR", "Missing", styleSet.Error
	}
	switch tokens.Value(raw).Kind() {
	case tokens.KindLiteral:
		return "#", "Literal", styleSet.Muted
	case tokens.KindTransparent:
		return "~", "Transparent", styleSet.Muted
	default:
		return "->", "Palette", styleSet.Accent
	}
}
