package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "high-contrast", ThemeByName("high-contrast").Name)
	assert.Equal(t, "default", ThemeByName("neon").Name)
}

func TestSwatch(t *testing.T) {
	s := DefaultStyles()

	t.Run("transparent", func(t *testing.T) {
		assert.Contains(t, s.Swatch("transparent", "#FF00FF"), "░")
	})
	t.Run("unresolved reference", func(t *testing.T) {
		assert.Contains(t, s.Swatch("blue.500", "#FF00FF"), "?")
	})
	t.Run("error color", func(t *testing.T) {
		assert.Contains(t, s.Swatch("#ff00ff", "#FF00FF"), "missing")
	})
	t.Run("literal", func(t *testing.T) {
		out := s.Swatch("#3574F0", "#FF00FF")
		assert.NotContains(t, out, "missing")
		assert.Contains(t, out, strings.Repeat(" ", swatchWidth))
	})
}

func TestSwatchLine(t *testing.T) {
	line := DefaultStyles().SwatchLine("text.primary", "#DFE1E5", "#FF00FF", 20)
	assert.Contains(t, line, "text.primary")
	assert.Contains(t, line, "#DFE1E5")
}

func TestTerminalColor(t *testing.T) {
	assert.Equal(t, "#112233", TerminalColor("#112233FF"))
	assert.Equal(t, "#112233", TerminalColor("#112233"))
	assert.Equal(t, "#FFF", TerminalColor("#FFF"))
}
