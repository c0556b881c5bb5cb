package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kokaton/internal/core"
)

// footerRows is the number of screen rows reserved below the play area.
const footerRows = 1

// playRows returns the rows left for the play area on a terminal of the
// given height.
func playRows(height int) int {
	return core.Max(height-footerRows, 1)
}

// Options configures a terminal session.
type Options struct {
	KeyHold   time.Duration // How long a direction stays held after a press
	DeathHold time.Duration // How long the fatal frame stays on screen
	Logger    *log.Logger
}

// Model is the Bubble Tea model for a Fight Kokaton session.
type Model struct {
	game       core.Game
	screen     *core.Screen
	canvas     *ScaledCanvas
	keys       *KeyMapper
	help       help.Model
	held       *heldKeys
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	holding    bool // Showing the fatal frame
	quitting   bool
	logger     *log.Logger
}

// NewModel creates a model and starts a new session of the game.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	screen := core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH))
	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     screen,
		canvas:     NewScaledCanvas(screen, game.Viewport(), screen.Height()),
		keys:       NewKeyMapper(DefaultKeyMap()),
		help:       help.New(),
		held:       newHeldKeys(opts.KeyHold),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case HoldDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The fatal frame cannot be skipped.
	if m.holding {
		return m, nil
	}

	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.MapKey(msg); {
	case a.IsDirection():
		m.held.Press(a, time.Now())
	case a != core.ActionNone:
		m.inputFrame.Set(a)
	}
	return m, nil
}

// handleResize processes window resize events.
// The viewport is fixed, so only the scaling changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.canvas.SetRows(m.screen.Height())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.holding || m.quitting {
		return m, nil
	}

	m.held.Apply(&m.inputFrame, now)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.logger.Debug("event", "kind", ev.Kind, "x", ev.At.X, "y", ev.At.Y, "tick", result.State.Tick)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	if !m.gameState.GameOver {
		return m, tickCmd(m.config.TickRate)
	}

	switch m.gameState.Outcome {
	case core.OutcomeHit:
		m.holding = true
		m.held.Reset()
		return m, holdCmd(m.opts.DeathHold)
	default:
		m.quitting = true
		return m, tea.Quit
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".kokaton", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the current frame into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()
	m.game.Render(m.canvas)
	if m.holding {
		drawGameOver(m.screen, m.canvas.Rows(), m.gameState)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run plays one session in the terminal and returns its final state.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model.State(), fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return model.State(), nil
}
