package tui

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/twui/internal/theme"
	"nathanbeddoewebdev/twui/internal/tui/components"
	"nathanbeddoewebdev/twui/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ThemeSetter is the state the panel edits. *provider.Provider satisfies it.
type ThemeSetter interface {
	Config() theme.Config
	Set(next theme.Config) error
}

// PanelOptions configures RunThemePanel.
type PanelOptions struct {
	// Setter holds the active theme and receives every change.
	Setter ThemeSetter

	// Save persists the configuration when the user presses enter. Nil
	// disables saving.
	Save func(cfg theme.Config) error

	// Tenant is shown in the header.
	Tenant string
}

// --- Panel messages ---

type themeSavedMsg struct{}

type themeSaveErrorMsg struct {
	err error
}

// --- Radio groups ---

type panelGroup struct {
	title   string
	options []string
	get     func(cfg theme.Config) string
	set     func(cfg *theme.Config, value string)
	swatch  func(value string, mode theme.Mode) theme.HSL
}

func panelGroups() []panelGroup {
	return []panelGroup{
		{
			title:   "Accent color",
			options: stringsOf(theme.AccentColors),
			get:     func(cfg theme.Config) string { return string(cfg.AccentColor) },
			set:     func(cfg *theme.Config, v string) { cfg.AccentColor = theme.AccentColor(v) },
			swatch: func(v string, mode theme.Mode) theme.HSL {
				return theme.AccentSwatch(theme.AccentColor(v), mode)
			},
		},
		{
			title:   "Gray color",
			options: stringsOf(theme.GrayColors),
			get:     func(cfg theme.Config) string { return string(cfg.GrayColor) },
			set:     func(cfg *theme.Config, v string) { cfg.GrayColor = theme.GrayColor(v) },
			swatch: func(v string, mode theme.Mode) theme.HSL {
				return theme.GraySwatch(theme.GrayColor(v), mode)
			},
		},
		{
			title:   "Appearance",
			options: stringsOf(theme.Modes),
			get:     func(cfg theme.Config) string { return string(cfg.Theme) },
			set:     func(cfg *theme.Config, v string) { cfg.Theme = theme.Mode(v) },
		},
		{
			title:   "Radius",
			options: stringsOf(theme.RadiusScales),
			get:     func(cfg theme.Config) string { return string(cfg.Radius) },
			set:     func(cfg *theme.Config, v string) { cfg.Radius = theme.RadiusScale(v) },
		},
		{
			title:   "Scaling",
			options: stringsOf(theme.Scalings),
			get:     func(cfg theme.Config) string { return string(cfg.Scaling) },
			set:     func(cfg *theme.Config, v string) { cfg.Scaling = theme.Scaling(v) },
		},
		{
			title:   "Panel background",
			options: stringsOf(theme.PanelBackgrounds),
			get:     func(cfg theme.Config) string { return string(cfg.PanelBackground) },
			set:     func(cfg *theme.Config, v string) { cfg.PanelBackground = theme.PanelBackground(v) },
		},
		{
			title:   "Background",
			options: []string{"true", "false"},
			get: func(cfg theme.Config) string {
				if cfg.Background() {
					return "true"
				}
				return "false"
			},
			set: func(cfg *theme.Config, v string) { cfg.HasBackground = theme.Bool(v == "true") },
		},
	}
}

// --- Panel model ---

type themePanelModel struct {
	setter ThemeSetter
	save   func(theme.Config) error
	tenant string
	groups []panelGroup

	cursor int

	width  int
	height int

	status  string
	isError bool
}

func newThemePanelModel(opts PanelOptions) themePanelModel {
	return themePanelModel{
		setter: opts.Setter,
		save:   opts.Save,
		tenant: opts.Tenant,
		groups: panelGroups(),
	}
}

// RunThemePanel starts the interactive theme settings panel.
func RunThemePanel(opts PanelOptions) error {
	if opts.Setter == nil {
		return fmt.Errorf("theme panel: no theme setter")
	}
	p := tea.NewProgram(newThemePanelModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m themePanelModel) Init() tea.Cmd {
	return nil
}

func (m themePanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case themeSavedMsg:
		m.status = "Theme saved"
		m.isError = false
		return m, nil

	case themeSaveErrorMsg:
		m.status = "Error: " + msg.err.Error()
		m.isError = true
		return m, nil
	}

	return m, nil
}

func (m themePanelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.groups)-1 {
			m.cursor++
		}
	case "left", "h":
		return m.step(-1), nil
	case "right", "l":
		return m.step(1), nil
	case "enter":
		if m.save == nil {
			m.status = "Saving is not available here"
			m.isError = true
			return m, nil
		}
		return m, m.saveTheme()
	}
	return m, nil
}

// step moves the selected group's choice by delta, wrapping around, and
// hands the full updated configuration to the setter.
func (m themePanelModel) step(delta int) themePanelModel {
	g := m.groups[m.cursor]
	cfg := m.setter.Config()

	idx := indexOf(g.options, g.get(cfg))
	n := len(g.options)
	idx = ((idx+delta)%n + n) % n

	next := cfg
	g.set(&next, g.options[idx])
	if err := m.setter.Set(next); err != nil {
		m.status = "Error: " + err.Error()
		m.isError = true
		return m
	}
	m.status = ""
	m.isError = false
	return m
}

func (m themePanelModel) saveTheme() tea.Cmd {
	cfg := m.setter.Config()
	save := m.save
	return func() tea.Msg {
		if err := save(cfg); err != nil {
			return themeSaveErrorMsg{err: err}
		}
		return themeSavedMsg{}
	}
}

func (m themePanelModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "theme", m.tenant)
	footer := components.Footer(m.width, []components.KeyBinding{
		{Key: "j/k", Desc: "group"},
		{Key: "h/l", Desc: "change"},
		{Key: "enter", Desc: "save"},
		{Key: "q", Desc: "quit"},
	})

	statusBar := ""
	if m.status != "" {
		statusBar = components.StatusBar(m.width, m.status, m.isError)
	}

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := lipgloss.Height(statusBar)
	contentH := m.height - headerH - footerH - statusH
	if contentH < 1 {
		contentH = 1
	}

	sections := []string{header, m.renderContent(contentH)}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m themePanelModel) renderContent(height int) string {
	cfg := m.setter.Config()
	mode := cfg.Theme

	cardWidth := min(m.width-4, 100)
	rowWidth := max(cardWidth-6, 20)

	rows := make([]string, 0, len(m.groups)*2+3)
	for i, g := range m.groups {
		selected := i == m.cursor
		current := g.get(cfg)

		title := styles.MutedText.Render(g.title)
		prefix := "  "
		if selected {
			title = styles.Label.Render(g.title)
			prefix = styles.AccentText.Render("> ")
		}
		rows = append(rows, prefix+title)

		opts := make([]string, len(g.options))
		for j, opt := range g.options {
			label := opt
			if g.swatch != nil {
				label = styles.Swatch(g.swatch(opt, mode)) + " " + opt
			}
			if opt == current {
				opts[j] = styles.OptionSelected.Render(label)
			} else {
				opts[j] = styles.OptionIdle.Render(label)
			}
		}
		line := "    " + strings.Join(opts, "")
		if selected {
			line = "    " + visibleWindow(opts, indexOf(g.options, current), rowWidth-5)
		}
		rows = append(rows, ansi.Truncate(line, rowWidth, "…"))
	}

	accent, gray := theme.Palette(cfg)
	rows = append(rows,
		"",
		styles.MutedText.Render("  accent ")+styles.Strip(accent[:]),
		styles.MutedText.Render("  gray   ")+styles.Strip(gray[:]),
	)

	title := styles.Title.Render("Theme")
	card := styles.Card.Width(cardWidth).Render(strings.Join(rows, "\n"))
	combined := lipgloss.JoinVertical(lipgloss.Center, title, "", card)

	return lipgloss.Place(
		m.width, height,
		lipgloss.Center, lipgloss.Center,
		combined,
	)
}

// visibleWindow joins rendered options starting early enough that the
// selected one fits within width.
func visibleWindow(opts []string, selected, width int) string {
	if selected < 0 {
		selected = 0
	}
	start := 0
	for start < selected && lipgloss.Width(strings.Join(opts[start:selected+1], "")) > width {
		start++
	}
	line := strings.Join(opts[start:], "")
	if start > 0 {
		line = "…" + line
	}
	return line
}

func indexOf(options []string, value string) int {
	for i, opt := range options {
		if opt == value {
			return i
		}
	}
	return 0
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
