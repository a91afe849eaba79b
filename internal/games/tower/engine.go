// Package tower implements Lava Tower: climb a ladder of platforms ahead of
// rising lava, dodge falling rocks, collect every coin to reveal the key and
// escape through the door.
//
// The simulation is a fixed-tick state machine with no I/O. An Engine owns
// the World exclusively; presentation reads deep-copied snapshots between
// ticks and feeds input back only through Input.
package tower

import (
	"github.com/vovakirdan/lava-tower/internal/config"
	"github.com/vovakirdan/lava-tower/internal/core"
)

// Input is what one tick consumes. Left, Right and Jump are held keys;
// Start, Pause and Restart are presses since the previous tick.
type Input struct {
	Left, Right, Jump     bool
	Start, Pause, Restart bool

	// Click is a primary-button press in playfield coordinates.
	Click *core.Vec
}

// Engine runs one game variant.
type Engine struct {
	cfg        config.TowerConfig
	rng        Rand
	difficulty *config.DifficultyManager

	world     World
	machine   Machine
	menuTicks int // Cosmetic animation counter while in the menu
	runs      int // Level setups performed, identifies a run
}

// NewEngine creates an engine and lays out the first level.
func NewEngine(cfg config.TowerConfig, rng Rand) *Engine {
	e := &Engine{
		cfg:        cfg,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		machine:    NewMachine(cfg.Controls.Menu),
	}
	e.setup()
	return e
}

// Config returns the tuning record the engine runs with.
func (e *Engine) Config() config.TowerConfig {
	return e.cfg
}

// Mode returns the current coarse mode.
func (e *Engine) Mode() Mode {
	return e.machine.Mode()
}

// Paused reports whether the run is paused.
func (e *Engine) Paused() bool {
	return e.machine.Paused()
}

// Level returns the current difficulty level in [0, 1].
func (e *Engine) Level() float64 {
	return e.difficulty.Level(e.world.Player.Score, e.world.Tick)
}

// Reset lays out a new level and returns to the initial mode.
func (e *Engine) Reset() {
	e.machine = NewMachine(e.cfg.Controls.Menu)
	e.menuTicks = 0
	e.setup()
}

// Step advances the game by one tick. A tick that changes the mode through
// a control does not also advance the simulation.
func (e *Engine) Step(in Input) {
	if e.handleControls(in) {
		return
	}

	if !e.machine.Running() {
		if e.machine.Mode() == ModeMenu {
			e.menuTicks++
		}
		return
	}

	e.simulate(in)
}

func (e *Engine) setup() {
	e.world.Setup(&e.cfg, e.rng, e.difficulty)
	e.runs++
}
