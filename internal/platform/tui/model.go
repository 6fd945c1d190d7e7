package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reblhell/internal/config"
	"github.com/vovakirdan/reblhell/internal/core"
	"github.com/vovakirdan/reblhell/internal/registry"
)

// footerHeight is the number of rows below the game screen: health bar and
// help line.
const footerHeight = 2

// Options configures the front-end.
type Options struct {
	HoldWindow time.Duration
	Logger     *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	health     progress.Model
	held       *HeldKeys
	inputFrame core.InputFrame
	pointer    *core.Pointer
	gameState  core.GameState
	logger     *log.Logger
	now        func() time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	bar := progress.New(progress.WithSolidFill("#d7005f"), progress.WithoutPercentage())
	bar.Width = max(cfg.ScreenW-24, 10)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		health:     bar,
		held:       NewHeldKeys(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		now:        time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Directions feed the held-key
// tracker; everything else is a one-shot action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "kills", m.gameState.Score)
		return m, tea.Quit
	case IsDirection(action):
		m.held.Press(action, m.now())
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse tracks the pointer in game-screen cells.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.pointer == nil {
		m.pointer = &core.Pointer{}
	}
	m.pointer.X = msg.X
	m.pointer.Y = msg.Y
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.pointer.Down = true
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	m.health.Width = max(msg.Width-24, 10)

	// Games that cannot relayout start over
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, gameHeight(msg.Height))
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}
	m.logger.Debug("resize", "w", msg.Width, "h", msg.Height)

	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.Apply(&m.inputFrame, m.now())
	if m.pointer != nil {
		p := *m.pointer
		m.inputFrame.Pointer = &p
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.gameState.Phase != prev.Phase {
		m.held.Reset()
	}

	// Clear input for next frame
	m.inputFrame.Clear()
	m.inputFrame.Pointer = nil
	if m.pointer != nil {
		m.pointer.Down = false
	}

	return m, tickCmd(m.config.TickRate)
}

// gameConfig is the runtime config with the footer rows removed.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteByte('\n')
	b.WriteString(renderHealth(m.gameState, m.health))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func gameHeight(h int) int {
	return max(h-footerHeight, 1)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
