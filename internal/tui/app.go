// Package tui implements the interactive token browser.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fleet-ui/fleet-tokens/internal/tokens"
	"github.com/fleet-ui/fleet-tokens/internal/tui/components"
	"github.com/fleet-ui/fleet-tokens/internal/tui/styles"
)

// Config configures the browser.
type Config struct {
	Resolver *tokens.Resolver
	Table    tokens.SemanticTable
	Theme    tokens.Theme
	Chrome   string
}

// Run launches the browser program.
func Run(cfg Config) error {
	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type row struct {
	token    string
	raw      string
	resolved string
}

type model struct {
	resolver *tokens.Resolver
	table    tokens.SemanticTable
	styles   styles.Styles

	theme     tokens.Theme
	rows      []row
	cursor    int
	offset    int
	filter    string
	filtering bool

	width  int
	height int
}

const (
	minWidth   = 60
	minHeight  = 10
	chromeRows = 6
)

func newModel(cfg Config) model {
	theme := cfg.Theme
	if theme == "" {
		theme = tokens.ThemeLight
	}
	m := model{
		resolver: cfg.Resolver,
		table:    cfg.Table,
		styles:   styles.BuildStyles(styles.ThemeByName(cfg.Chrome)),
		theme:    theme,
	}
	m.reload()
	return m
}

func (m *model) reload() {
	m.rows = make([]row, 0, m.table.For(m.theme).Len())
	needle := strings.ToLower(m.filter)
	m.table.For(m.theme).Each(func(token, raw string) {
		if needle != "" && !strings.Contains(strings.ToLower(token), needle) {
			return
		}
		m.rows = append(m.rows, row{
			token:    token,
			raw:      raw,
			resolved: m.resolver.Resolve(m.theme, token),
		})
	})
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
	m.clampOffset()
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.filter != "" {
				m.filter = ""
				m.reload()
			}
		case "tab":
			m.theme = otherTheme(m.theme)
			m.reload()
		case "/":
			m.filtering = true
		case "j", "down":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				m.clampOffset()
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
				m.clampOffset()
			}
		case "g", "home":
			m.cursor = 0
			m.clampOffset()
		case "G", "end":
			m.cursor = max(len(m.rows)-1, 0)
			m.clampOffset()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
	}
	return m, nil
}

func (m model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
	case tea.KeyBackspace:
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filter += string(msg.Runes)
	default:
		return m, nil
	}
	m.cursor = 0
	m.offset = 0
	m.reload()
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
		}
	}

	lines := []string{
		m.styles.Title.Render(fmt.Sprintf("Fleet tokens · %s", m.theme)) +
			"  " + m.styles.Muted.Render(fmt.Sprintf("%d tokens", len(m.rows))),
		m.filterLine(),
	}

	if len(m.rows) == 0 {
		empty := components.EmptyTheme(string(m.theme))
		if m.filter != "" {
			empty = components.EmptyTokensFiltered(m.filter)
		}
		lines = append(lines, "", empty.Render(m.styles))
	} else {
		width := m.tokenWidth()
		errorColor := m.resolver.ErrorColor()
		end := min(m.offset+m.visibleRows(), len(m.rows))
		for i := m.offset; i < end; i++ {
			r := m.rows[i]
			line := m.styles.SwatchLine(r.token, r.resolved, errorColor, width)
			line += "  " + components.RenderValueBadge(m.styles, r.raw, r.resolved, errorColor)
			if tokens.Value(r.raw).Kind() == tokens.KindReference {
				line += m.styles.Muted.Render(" " + r.raw)
			}
			if i == m.cursor {
				line = m.styles.Accent.Render("▸ ") + line
			} else {
				line = "  " + line
			}
			lines = append(lines, line)
		}
	}

	lines = append(lines, "", m.styles.Muted.Render("Shortcuts: q quit | tab theme | / filter | esc clear | j/k move"))
	return fmt.Sprintf("%s\n", joinLines(lines))
}

func (m model) filterLine() string {
	switch {
	case m.filtering:
		return m.styles.Accent.Render("/" + m.filter + "█")
	case m.filter != "":
		return m.styles.Muted.Render("filter: " + m.filter)
	default:
		return ""
	}
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func (m model) visibleRows() int {
	if m.height <= 0 {
		return max(len(m.rows), 1)
	}
	return max(m.height-chromeRows, 1)
}

func (m *model) clampOffset() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m model) tokenWidth() int {
	width := 0
	for _, r := range m.rows {
		width = max(width, len(r.token))
	}
	return width
}

func otherTheme(theme tokens.Theme) tokens.Theme {
	if theme == tokens.ThemeDark {
		return tokens.ThemeLight
	}
	return tokens.ThemeDark
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
