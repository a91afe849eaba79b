package tower

import (
	"github.com/vovakirdan/lava-tower/internal/config"
	"github.com/vovakirdan/lava-tower/internal/core"
)

// Control identifies a clickable region.
type Control int

const (
	ControlNone Control = iota
	ControlStart
	ControlPause
	ControlRestart
)

// String returns the button label.
func (c Control) String() string {
	switch c {
	case ControlStart:
		return "Start"
	case ControlPause:
		return "Pause"
	case ControlRestart:
		return "Restart"
	default:
		return ""
	}
}

// Region returns the playfield rectangle of a control.
func Region(cfg *config.TowerConfig, c Control) core.Box {
	var r config.Region
	switch c {
	case ControlStart:
		r = cfg.Controls.Start
	case ControlPause:
		r = cfg.Controls.Pause
	case ControlRestart:
		r = cfg.Controls.Restart
	default:
		return core.Box{}
	}
	return core.Box{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// VisibleControl returns the control shown in the given mode, if any.
func VisibleControl(cfg *config.TowerConfig, mode Mode) Control {
	switch {
	case mode == ModeMenu:
		return ControlStart
	case mode == ModePlaying && cfg.Controls.PauseButton:
		return ControlPause
	case mode.Terminal():
		return ControlRestart
	}
	return ControlNone
}

// clicked reports whether the input carries a click inside the control
// that is visible in the current mode.
func (e *Engine) clicked(in Input, c Control) bool {
	if in.Click == nil || VisibleControl(&e.cfg, e.machine.Mode()) != c {
		return false
	}
	return Region(&e.cfg, c).Contains(*in.Click)
}

// handleControls applies mode transitions requested by keys or clicks and
// reports whether one happened.
func (e *Engine) handleControls(in Input) bool {
	switch e.machine.Mode() {
	case ModeMenu:
		if in.Start || e.clicked(in, ControlStart) {
			e.machine.Start()
			e.setup()
			return true
		}
	case ModePlaying:
		if in.Pause || e.clicked(in, ControlPause) {
			return e.machine.TogglePause()
		}
	case ModeWon, ModeLost:
		if in.Restart || e.clicked(in, ControlRestart) {
			e.machine.Restart()
			e.setup()
			return true
		}
	}
	return false
}
