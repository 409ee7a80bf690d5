package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// helpRows is the number of terminal rows reserved below the game screen.
const helpRows = 1

// Options carries the collaborators shared by the game and menu models.
type Options struct {
	Store  *storage.Store // Run journal; nil disables saving
	Logger *log.Logger    // Nil discards output
	Player string         // Recorded with each saved run
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// Model is the Bubble Tea model for playing the maze.
type Model struct {
	game       core.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	loop       uint64
	lastTick   time.Time
	quitting   bool
	backToMenu bool
	savedRuns  int
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		loop:       newTickLoop(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.closeGame()
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		m.closeGame()
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The game lays itself out on
// every render, so the run in progress is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks. Key presses received since the
// previous tick are all in the frame; the frame covers the wall time since
// that tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if !m.lastTick.IsZero() && msg.At.After(m.lastTick) {
		m.inputFrame.Delta = msg.At.Sub(m.lastTick)
	}
	if !msg.At.IsZero() {
		m.lastTick = msg.At
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Run != nil {
		m.saveRun(result.Run)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveRun records a finished run in the journal. A failed save is logged
// and the game continues.
func (m *Model) saveRun(r *core.RunSummary) {
	logger := m.opts.logger()
	if m.opts.Store == nil {
		return
	}
	id, err := m.opts.Store.SaveRun(storage.Run{
		Difficulty: r.Difficulty,
		Size:       r.Size,
		Algorithm:  r.Algorithm,
		Seed:       r.Seed,
		Moves:      r.Moves,
		Seconds:    r.Seconds,
		Player:     m.opts.Player,
	})
	if err != nil {
		logger.Error("save run", "err", err)
		return
	}
	m.savedRuns++
	logger.Debug("run saved", "id", id, "difficulty", r.Difficulty, "seconds", r.Seconds)
}

func (m *Model) closeGame() {
	if c, ok := m.game.(interface{ Close() }); ok {
		c.Close()
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.logger().Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".maze", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.logger().Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.logger().Warn("screenshot", "err", err)
		return
	}
	m.opts.logger().Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// SavedRuns returns how many runs this model wrote to the journal.
func (m Model) SavedRuns() int {
	return m.savedRuns
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
