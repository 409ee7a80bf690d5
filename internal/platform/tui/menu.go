package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/game"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// menuKind distinguishes what a menu entry does.
type menuKind int

const (
	menuPlay menuKind = iota
	menuRuns
	menuQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Title      string
	Detail     string
	Difficulty config.Difficulty // Set for play entries
	kind       menuKind
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user selects a difficulty
	openRuns  bool      // True if user asked for the run history
}

// NewMenuModel creates a new menu model. The cursor starts on the
// configured default difficulty.
func NewMenuModel(mcfg config.MazeConfig, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(config.Difficulties())+2)
	cursor := 0
	for _, d := range config.Difficulties() {
		size, err := mcfg.Size(d)
		if err != nil {
			continue
		}
		if d == mcfg.Game.DefaultDifficulty {
			cursor = len(items)
		}
		items = append(items, MenuItem{
			Title:      d.Title(),
			Detail:     menuDetail(store, d, size),
			Difficulty: d,
			kind:       menuPlay,
		})
	}
	items = append(items,
		MenuItem{Title: "Run history", kind: menuRuns},
		MenuItem{Title: "Quit", kind: menuQuit},
	)

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// menuDetail describes a difficulty: its grid size and, when the journal
// has runs for it, the fastest one.
func menuDetail(store *storage.Store, d config.Difficulty, size int) string {
	detail := fmt.Sprintf("%d×%d", size, size)
	if store == nil {
		return detail
	}
	st, err := store.Stats(string(d))
	if err != nil || st.Runs == 0 {
		return detail
	}
	return fmt.Sprintf("%s  fastest %s", detail, game.FormatSeconds(st.Fastest))
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Difficulty shortcuts
	if d, err := config.ParseDifficulty(msg.String()); err == nil {
		for i, item := range m.items {
			if item.kind == menuPlay && item.Difficulty == d {
				m.cursor = i
				return m.selectCurrent()
			}
		}
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		return m.selectCurrent()

	case MenuActionRuns:
		m.openRuns = true
		return m, tea.Quit // Exit menu to show run history
	}

	return m, nil
}

func (m MenuModel) selectCurrent() (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	item := m.items[m.cursor]
	switch item.kind {
	case menuRuns:
		m.openRuns = true
	case menuQuit:
		m.quitting = true
	default:
		m.selected = &item
	}
	return m, tea.Quit
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  M A Z E  ", m.width, menuTitleStyle))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a difficulty", m.width, menuDimStyle))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		style := lipgloss.NewStyle()
		if i == m.cursor {
			line = "> " + item.Title
			style = menuCursorStyle
		}
		if item.Detail != "" {
			line = fmt.Sprintf("%-14s %s", line, item.Detail)
		}
		b.WriteString(centerText(line, m.width, style))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter or 1/2/3: Play  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(controls, m.width, menuDimStyle))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsRuns returns true if user requested the run history.
func (m MenuModel) WantsRuns() bool {
	return m.openRuns
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width and applies the style.
func centerText(text string, width int, style lipgloss.Style) string {
	w := lipgloss.Width(text)
	if w >= width {
		return style.Render(text)
	}
	return strings.Repeat(" ", (width-w)/2) + style.Render(text)
}
