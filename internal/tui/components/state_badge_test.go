package components

import (
	"strings"
	"testing"

	"github.com/fleet-ui/fleet-tokens/internal/tui/styles"
)

func TestRenderValueBadge(t *testing.T) {
	styleSet := styles.DefaultStyles()

	tests := []struct {
		raw      string
		resolved string
		want     string
	}{
		{raw: "#FFFFFF", resolved: "#FFFFFF", want: "Literal"},
		{raw: "transparent", resolved: "transparent", want: "Transparent"},
		{raw: "blue.500", resolved: "#3B82F6", want: "Palette"},
		{raw: "blue.999", resolved: "#FF00FF", want: "Missing"},
		{raw: "#ff00ff", resolved: "#ff00ff", want: "Missing"},
	}

	for _, tt := range tests {
		got := RenderValueBadge(styleSet, tt.raw, tt.resolved, "#FF00FF")
		if !strings.Contains(got, tt.want) {
			t.Errorf("RenderValueBadge(%q, %q) = %q, want %q", tt.raw, tt.resolved, got, tt.want)
		}
	}
}
