package tower

import (
	"github.com/vovakirdan/lava-tower/internal/config"
	"github.com/vovakirdan/lava-tower/internal/core"
	"github.com/vovakirdan/lava-tower/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// checkInvariants enables per-tick invariant checks (debug runs)
var checkInvariants bool

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok {
		difficultyPreset = p
		return
	}
	difficultyPreset = ""
}

// SetInvariantChecks turns per-tick invariant checks on or off.
func SetInvariantChecks(on bool) {
	checkInvariants = on
}

// Game adapts an Engine to the platform's registry.Game interface.
type Game struct {
	variant string
	title   string

	cfg       config.TowerConfig
	engine    *Engine
	view      Viewport
	violation error
	configErr error
}

// New creates the classic variant.
func New() *Game {
	return &Game{variant: config.VariantClassic, title: "Lava Tower"}
}

// NewPlus creates the variant with a start menu and a pause button.
func NewPlus() *Game {
	return &Game{variant: config.VariantPlus, title: "Lava Tower+"}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and starts a fresh engine. A custom
// configuration that fails to load is reported by ConfigError and the
// built-in defaults are played instead.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTower(g.variant, configPath)
	g.configErr = err
	if err != nil {
		cfg, _ = config.DefaultFor(g.variant)
	}
	config.ApplyTowerPreset(&cfg, difficultyPreset)

	g.cfg = cfg
	g.engine = NewEngine(cfg, NewRand(runtime.Seed))
	g.view = NewViewport(runtime.ScreenW, runtime.ScreenH, cfg.Playfield.Width, cfg.Playfield.Height)
	g.violation = nil
}

// ConfigError returns the error of the last configuration load, if any.
func (g *Game) ConfigError() error {
	return g.configErr
}

// Engine exposes the simulation, mainly for tests and tooling.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	input := Input{
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Jump:    in.Has(core.ActionJump),
		Start:   in.Has(core.ActionConfirm) || in.Has(core.ActionJump),
		Pause:   in.Has(core.ActionPause),
		Restart: in.Has(core.ActionRestart),
	}
	if in.Click != nil {
		p := g.view.Point(in.Click.X, in.Click.Y)
		input.Click = &p
	}

	if checkInvariants {
		prev := g.engine.Snapshot()
		g.engine.Step(input)
		if err := CheckTransition(&g.cfg, prev, g.engine.Snapshot()); err != nil {
			g.violation = err
		}
	} else {
		g.engine.Step(input)
	}

	return core.StepResult{State: g.State()}
}

// Violation returns and clears the last invariant violation, if any.
func (g *Game) Violation() error {
	err := g.violation
	g.violation = nil
	return err
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	g.view = NewViewport(dst.Width(), dst.Height(), g.cfg.Playfield.Width, g.cfg.Playfield.Height)
	snap := g.engine.Snapshot()
	Render(dst, &g.cfg, &snap, g.view, g.engine.Level())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	mode := g.engine.Mode()
	w := &g.engine.world
	return core.GameState{
		Score:    w.Player.Score,
		GameOver: mode.Terminal(),
		Won:      mode == ModeWon,
		Paused:   g.engine.Paused(),
		Menu:     mode == ModeMenu,
		Ticks:    w.Tick,
	}
}

// Register the variants with the registry
func init() {
	registry.Register(config.VariantClassic, func() registry.Game {
		return New()
	})
	registry.Register(config.VariantPlus, func() registry.Game {
		return NewPlus()
	})
}
