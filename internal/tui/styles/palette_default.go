package styles

// DefaultTheme follows Fleet's dark chrome.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ChromeTokens{
		Text:      "#DFE1E5",
		TextMuted: "#898E99",
		Border:    "#393B40",
		Accent:    "#3574F0",
		Selected:  "#2E436E",
		Success:   "#5FB865",
		Warning:   "#E5A33E",
		Error:     "#E55765",
	},
}
