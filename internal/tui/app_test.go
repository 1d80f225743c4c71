package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fleet-ui/fleet-tokens/internal/tokens"
)

func testModel() model {
	palette := tokens.MapOf("blue.500", "#3B82F6")
	table := tokens.MergeThemeExports(
		tokens.MapOf("text.primary", "#1C1C1C", "button.primary", "blue.500", "overlay", "transparent"),
		tokens.MapOf("text.primary", "#E0E0E0", "tooltip.border", "#333333"),
		tokens.DefaultErrorColor,
	)
	return newModel(Config{
		Resolver: tokens.NewResolver(palette, table),
		Table:    table,
	})
}

func press(m model, keys ...string) model {
	for _, key := range keys {
		var msg tea.KeyMsg
		switch key {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		updated, _ := m.Update(msg)
		m = updated.(model)
	}
	return m
}

func TestModelListsResolvedTokens(t *testing.T) {
	m := testModel()
	if m.theme != tokens.ThemeLight {
		t.Fatalf("expected light theme, got %q", m.theme)
	}
	if len(m.rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(m.rows))
	}
	if m.rows[1].resolved != "#3B82F6" {
		t.Errorf("expected resolved palette color, got %q", m.rows[1].resolved)
	}
	if m.rows[3].resolved != tokens.DefaultErrorColor {
		t.Errorf("expected error color for missing light token, got %q", m.rows[3].resolved)
	}

	view := m.View()
	for _, want := range []string{"text.primary", "button.primary", "blue.500", "missing"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestModelSwitchesTheme(t *testing.T) {
	m := press(testModel(), "tab")
	if m.theme != tokens.ThemeDark {
		t.Fatalf("expected dark theme, got %q", m.theme)
	}
	if m.rows[0].resolved != "#E0E0E0" {
		t.Errorf("unexpected dark value %q", m.rows[0].resolved)
	}
	m = press(m, "tab")
	if m.theme != tokens.ThemeLight {
		t.Fatalf("expected light theme again, got %q", m.theme)
	}
}

func TestModelCursorBounds(t *testing.T) {
	m := press(testModel(), "k")
	if m.cursor != 0 {
		t.Fatalf("cursor moved above first row: %d", m.cursor)
	}
	m = press(m, "j", "j", "j", "j", "j")
	if m.cursor != 3 {
		t.Fatalf("expected cursor on last row, got %d", m.cursor)
	}
	m = press(m, "g")
	if m.cursor != 0 {
		t.Fatalf("expected cursor reset, got %d", m.cursor)
	}
}

func TestModelFilter(t *testing.T) {
	m := press(testModel(), "/", "b", "u", "t")
	if !m.filtering {
		t.Fatal("expected filter mode")
	}
	if len(m.rows) != 1 || m.rows[0].token != "button.primary" {
		t.Fatalf("unexpected filtered rows: %+v", m.rows)
	}

	m = press(m, "enter")
	if m.filtering || m.filter != "but" {
		t.Fatalf("expected filter kept after enter, got filtering=%v filter=%q", m.filtering, m.filter)
	}

	m = press(m, "esc")
	if m.filter != "" || len(m.rows) != 4 {
		t.Fatalf("expected filter cleared, got %q with %d rows", m.filter, len(m.rows))
	}

	m = press(m, "/", "z", "z")
	if !strings.Contains(m.View(), "No tokens match") {
		t.Error("expected empty-state message")
	}
	m = press(m, "backspace", "backspace")
	if len(m.rows) != 4 {
		t.Fatalf("expected all rows after clearing filter text, got %d", len(m.rows))
	}
}

func TestModelSmallTerminal(t *testing.T) {
	updated, _ := testModel().Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	view := updated.(model).View()
	if !strings.Contains(view, "Terminal too small") {
		t.Errorf("expected small terminal warning, got: %s", view)
	}
}

func TestModelQuit(t *testing.T) {
	_, cmd := testModel().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}
