package tower

// Mode is the coarse game mode.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeWon
	ModeLost
)

// String returns a lowercase name used in logs and storage.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeWon:
		return "won"
	case ModeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has ended.
func (m Mode) Terminal() bool {
	return m == ModeWon || m == ModeLost
}

// Machine holds the mode and the paused flag, and owns every transition
// between them. Paused only exists inside ModePlaying.
type Machine struct {
	mode   Mode
	paused bool
}

// NewMachine returns a machine in the menu, or already playing when the
// variant has no menu.
func NewMachine(withMenu bool) Machine {
	if withMenu {
		return Machine{mode: ModeMenu}
	}
	return Machine{mode: ModePlaying}
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode { return m.mode }

// Paused reports whether a playing run is frozen.
func (m *Machine) Paused() bool { return m.paused }

// Running reports whether the simulation advances this tick.
func (m *Machine) Running() bool {
	return m.mode == ModePlaying && !m.paused
}

// Start leaves the menu. The caller must set up the level when it returns true.
func (m *Machine) Start() bool {
	if m.mode != ModeMenu {
		return false
	}
	m.mode = ModePlaying
	m.paused = false
	return true
}

// TogglePause flips the paused flag of a playing run.
func (m *Machine) TogglePause() bool {
	if m.mode != ModePlaying {
		return false
	}
	m.paused = !m.paused
	return true
}

// Restart re-enters play after a win or a loss. The caller must set up the
// level when it returns true.
func (m *Machine) Restart() bool {
	if !m.mode.Terminal() {
		return false
	}
	m.mode = ModePlaying
	m.paused = false
	return true
}

// Lose ends a playing run.
func (m *Machine) Lose() bool {
	if m.mode != ModePlaying {
		return false
	}
	m.mode = ModeLost
	return true
}

// Win ends a playing run.
func (m *Machine) Win() bool {
	if m.mode != ModePlaying {
		return false
	}
	m.mode = ModeWon
	return true
}
