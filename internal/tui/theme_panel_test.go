package tui

import (
	"errors"
	"strings"
	"testing"

	"nathanbeddoewebdev/twui/internal/document"
	"nathanbeddoewebdev/twui/internal/provider"
	"nathanbeddoewebdev/twui/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func newTestPanel(t *testing.T, opts PanelOptions) (themePanelModel, *provider.Provider, *document.Document) {
	t.Helper()
	doc := document.New()
	p := provider.New(doc, provider.Options{})
	t.Cleanup(func() { p.Close() })
	opts.Setter = p
	return newThemePanelModel(opts), p, doc
}

func press(t *testing.T, m themePanelModel, keys ...string) themePanelModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(themePanelModel)
	}
	return m
}

func TestThemePanel_ChangesAccent(t *testing.T) {
	m, p, doc := newTestPanel(t, PanelOptions{})

	m = press(t, m, "right")

	// indigo is followed by blue in the accent list.
	if got := p.Config().AccentColor; got != theme.AccentBlue {
		t.Errorf("accent = %q, want %q", got, theme.AccentBlue)
	}
	if v, _ := doc.RootAttribute("accent-color"); v != "blue" {
		t.Errorf("accent-color attribute = %q, want blue", v)
	}
	if m.isError {
		t.Errorf("unexpected error status %q", m.status)
	}
}

func TestThemePanel_WrapsAround(t *testing.T) {
	m, p, _ := newTestPanel(t, PanelOptions{})

	// Appearance is the third group: light -> left wraps to dark.
	press(t, m, "down", "down", "left")
	if got := p.Config().Theme; got != theme.ModeDark {
		t.Errorf("theme = %q, want dark", got)
	}
}

func TestThemePanel_KeepsOtherFields(t *testing.T) {
	m, p, _ := newTestPanel(t, PanelOptions{})
	if err := p.Set(theme.Config{Theme: theme.ModeDark, AccentColor: theme.AccentRed, TenantID: "acme"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Radius group, one step right from medium.
	press(t, m, "j", "j", "j", "l")

	got := p.Config()
	want := theme.Config{
		Theme:           theme.ModeDark,
		AccentColor:     theme.AccentRed,
		GrayColor:       theme.DefaultGray,
		Radius:          theme.RadiusLarge,
		Scaling:         theme.DefaultScaling,
		PanelBackground: theme.DefaultPanelBackground,
		HasBackground:   theme.Bool(true),
		TenantID:        "acme",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestThemePanel_CursorBounds(t *testing.T) {
	m, _, _ := newTestPanel(t, PanelOptions{})

	m = press(t, m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	for range m.groups {
		m = press(t, m, "down")
	}
	if m.cursor != len(m.groups)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.groups)-1)
	}
}

func TestThemePanel_Save(t *testing.T) {
	var saved []theme.Config
	m, p, _ := newTestPanel(t, PanelOptions{Save: func(cfg theme.Config) error {
		saved = append(saved, cfg)
		return nil
	}})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	msg := cmd()
	if _, ok := msg.(themeSavedMsg); !ok {
		t.Fatalf("expected themeSavedMsg, got %T", msg)
	}
	next, _ = next.Update(msg)
	if got := next.(themePanelModel).status; got != "Theme saved" {
		t.Errorf("status = %q", got)
	}
	if diff := cmp.Diff([]theme.Config{p.Config()}, saved); diff != "" {
		t.Errorf("saved configs mismatch (-want +got):\n%s", diff)
	}
}

func TestThemePanel_SaveError(t *testing.T) {
	m, _, _ := newTestPanel(t, PanelOptions{Save: func(theme.Config) error {
		return errors.New("disk full")
	}})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, _ = next.Update(cmd())
	pm := next.(themePanelModel)
	if !pm.isError || !strings.Contains(pm.status, "disk full") {
		t.Errorf("unexpected status %q (error=%v)", pm.status, pm.isError)
	}
}

func TestThemePanel_View(t *testing.T) {
	m, _, _ := newTestPanel(t, PanelOptions{Tenant: "acme"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := next.(themePanelModel).View()

	for _, want := range []string{"twui", "acme", "Accent color", "Gray color", "Appearance", "Panel background", "indigo"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestThemePanel_QuitKeys(t *testing.T) {
	m, _, _ := newTestPanel(t, PanelOptions{})
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k.String())
		}
	}
}
