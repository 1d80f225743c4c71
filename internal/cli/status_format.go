// Package cli provides status formatting helpers.
package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/fleet-ui/fleet-tokens/internal/tokens"
)

const (
	colorRed     = "red"
	colorGreen   = "green"
	colorYellow  = "yellow"
	colorCyan    = "cyan"
	colorMagenta = "magenta"
)

var colorAttrs = map[string]color.Attribute{
	colorRed:     color.FgRed,
	colorGreen:   color.FgGreen,
	colorYellow:  color.FgYellow,
	colorCyan:    color.FgCyan,
	colorMagenta: color.FgMagenta,
}

func colorize(text, name string) string {
	attr, ok := colorAttrs[name]
	if !ok || noColor {
		return text
	}
	return color.New(attr).Sprint(text)
}

func formatIssueKind(kind tokens.IssueKind) string {
	label, c := statusLabelForIssue(kind)
	return colorize(formatStatusLabel(label, string(kind)), c)
}

func statusLabelForIssue(kind tokens.IssueKind) (string, string) {
	switch kind {
	case tokens.IssueMissingToken:
		return "ERR", colorMagenta
	case tokens.IssueDanglingReference, tokens.IssuePropertyCollision:
		return "ERR", colorRed
	case tokens.IssueUnresolvedCSS:
		return "WARN", colorYellow
	default:
		return "WARN", colorYellow
	}
}

func formatChanged(changed bool) string {
	if changed {
		return colorize("written", colorGreen)
	}
	return colorize("unchanged", colorCyan)
}

func formatStatusLabel(label, status string) string {
	normalized := strings.TrimSpace(status)
	if normalized != "" {
		normalized = strings.ReplaceAll(normalized, "_", " ")
	}
	if normalized == "" {
		return label
	}
	return fmt.Sprintf("%s %s", label, normalized)
}
