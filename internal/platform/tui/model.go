package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lava-tower/internal/core"
	"github.com/vovakirdan/lava-tower/internal/registry"
	"github.com/vovakirdan/lava-tower/internal/storage"
)

// Options configure how a game is run.
type Options struct {
	// Logger receives run outcomes and failures. Nil discards everything.
	Logger *log.Logger

	// Debug logs invariant violations reported by the game.
	Debug bool

	// Embedded makes Back hand control to a surrounding session instead
	// of quitting the program.
	Embedded bool
}

// violationReporter is implemented by games that check their own
// invariants each tick.
type violationReporter interface {
	Violation() error
}

// configReporter is implemented by games whose configuration can fail to
// load and fall back to built-in defaults.
type configReporter interface {
	ConfigError() error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	debug      bool
	embedded   bool
	keyMapper  *KeyMapper
	latch      *KeyLatch
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current finished run has been stored
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		logger:     logger.With("game", game.ID()),
		debug:      opts.Debug,
		embedded:   opts.Embedded,
		keyMapper:  NewKeyMapper(),
		latch:      NewKeyLatch(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if c, ok := m.game.(configReporter); ok {
		if err := c.ConfigError(); err != nil {
			m.logger.Error("custom config rejected, playing defaults", "err", err)
		}
	}
	m.logger.Debug("game started", "seed", m.config.Seed, "size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.SetClick(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The game keeps running; the next render fits the new size
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		// Esc pauses a running game; leaving needs a paused or finished
		// one, or the title screen
		st := m.game.State()
		if !st.GameOver && !st.Paused && !st.Menu {
			m.latch.Press(core.ActionPause)
			return m, nil
		}
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}
		return m, nil
	}

	m.latch.Press(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.latch.Fill(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.debug {
		if v, ok := m.game.(violationReporter); ok {
			if err := v.Violation(); err != nil {
				m.logger.Error("invariant violated", "err", err)
			}
		}
	}

	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.finishRun()
		m.runSaved = true
	case !m.gameState.GameOver:
		m.runSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finishRun logs and stores a run that has just ended.
func (m *Model) finishRun() {
	st := m.gameState
	outcome := storage.OutcomeLost
	if st.Won {
		outcome = storage.OutcomeWon
	}
	m.logger.Info("run finished", "outcome", outcome, "score", st.Score, "ticks", st.Ticks)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(m.game.ID(), st.Score, outcome, st.Ticks); err != nil {
		m.logger.Error("could not save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".lava-tower", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
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
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
