package tower

import "math"

// Snapshot is a read-only view of the game between two ticks. It owns deep
// copies of every collection, so holding on to one never aliases the
// engine's state.
type Snapshot struct {
	Mode      Mode
	Paused    bool
	MenuTicks int
	Run       int // Increments on every level setup
	World     World
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Mode:      e.machine.Mode(),
		Paused:    e.machine.Paused(),
		MenuTicks: e.menuTicks,
		Run:       e.runs,
		World:     e.world.clone(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	var h uint64 = 17
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixB := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	w := &s.World
	mix(uint64(s.Mode))           //#nosec G115 -- hash computation
	mix(uint64(w.Tick))           //#nosec G115 -- hash computation
	mix(uint64(w.Player.Lives))   //#nosec G115 -- hash computation
	mix(uint64(w.Player.Score))   //#nosec G115 -- hash computation
	mix(uint64(w.Player.PowerUp)) //#nosec G115 -- hash computation
	mixB(s.Paused)
	mixF(w.Player.X)
	mixF(w.Player.Y)
	mixF(w.Player.VelocityY)
	mixF(w.Lava.Height)
	mixF(w.Lava.Speed)

	for _, p := range w.Platforms {
		mixF(p.X)
		mixB(p.Destroyed)
	}
	for _, c := range w.Coins {
		mixF(c.X)
		mixB(c.Collected)
	}
	for _, r := range w.Rocks {
		mixF(r.X)
		mixF(r.Y)
		mixF(r.Speed)
		mixB(r.Active)
	}
	for _, p := range w.PowerUps {
		mixF(p.X)
		mixF(p.Y)
		mix(uint64(p.Timer)) //#nosec G115 -- hash computation
		mixB(p.Collected)
	}
	mixB(w.Key.Spawned)
	mixB(w.Key.Collected)
	mixB(w.Door.Unlocked)
	return h
}
