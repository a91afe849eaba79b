package tower

import "github.com/vovakirdan/lava-tower/internal/core"

// PowerKind is the effect category of a power-up. The player holds at most
// one at a time.
type PowerKind int

const (
	PowerNone     PowerKind = iota
	PowerShield             // Rocks bounce off a widened hitbox
	PowerSlowLava           // Lava rises at a fraction of its speed
)

// String returns the HUD label of the kind.
func (k PowerKind) String() string {
	switch k {
	case PowerShield:
		return "Shield"
	case PowerSlowLava:
		return "Slow lava"
	default:
		return "None"
	}
}

// Player is the climber. X is the horizontal centre and Y the feet.
type Player struct {
	X, Y          float64
	Width, Height float64
	VelocityY     float64
	Jumping       bool
	Lives         int
	Score         int
	HasKey        bool
	PowerUp       PowerKind
	PowerTicks    int
}

// Body is the player's bounding box.
func (p Player) Body() core.Box {
	return core.Box{X: p.X - p.Width/2, Y: p.Y, W: p.Width, H: p.Height}
}

// Feet is the thin landing probe under the player.
func (p Player) Feet(probe float64) core.Box {
	return core.Box{X: p.X - p.Width/2, Y: p.Y, W: p.Width, H: probe}
}

// Hitbox is the collision circle around the player's centre, widened by bonus.
func (p Player) Hitbox(bonus float64) core.Circle {
	return core.Circle{X: p.X, Y: p.Y + p.Height/2, R: p.Width/2 + bonus}
}

// Platform is one rung of the tower. Destroyed is one-way until setup.
type Platform struct {
	X, Y          float64
	Width, Height float64
	Destroyed     bool
}

// Box returns the platform's bounds.
func (p Platform) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Top is the strip around the upper surface that the feet probe lands on.
func (p Platform) Top(probe float64) core.Box {
	return core.Box{X: p.X, Y: p.Y + p.Height - probe, W: p.Width, H: 2 * probe}
}

// Coin is a collectable. Once Collected it stays collected.
type Coin struct {
	X, Y      float64
	Size      float64
	Collected bool
	Rotation  float64
}

// Circle returns the coin's collision circle.
func (c Coin) Circle() core.Circle {
	return core.Circle{X: c.X, Y: c.Y, R: c.Size}
}

// Rock is a falling hazard. Inactive rocks never move, collide or render.
type Rock struct {
	ID     int
	X, Y   float64
	Size   float64
	Speed  float64
	Active bool
}

// Circle returns the rock's collision circle.
func (r Rock) Circle() core.Circle {
	return core.Circle{X: r.X, Y: r.Y, R: r.Size}
}

// PowerUp is a pickup waiting to be collected. Timer counts the ticks left
// before it expires on its own.
type PowerUp struct {
	ID        int
	X, Y      float64
	Size      float64
	Kind      PowerKind
	Collected bool
	Timer     int
	Rotation  float64
}

// Circle returns the power-up's collision circle.
func (p PowerUp) Circle() core.Circle {
	return core.Circle{X: p.X, Y: p.Y, R: p.Size}
}

// Key appears once every coin is collected.
type Key struct {
	X, Y      float64
	Size      float64
	Spawned   bool
	Collected bool
	Rotation  float64
}

// Circle returns the key's collision circle.
func (k Key) Circle() core.Circle {
	return core.Circle{X: k.X, Y: k.Y, R: k.Size}
}

// Door is the exit. Opening animates from 0 to 1 after it is unlocked.
type Door struct {
	X, Y          float64
	Width, Height float64
	Unlocked      bool
	Opening       float64
}

// Box returns the door's bounds.
func (d Door) Box() core.Box {
	return core.Box{X: d.X, Y: d.Y, W: d.Width, H: d.Height}
}

// Lava is the rising hazard. Ramp is added to Speed every playing tick.
type Lava struct {
	Height float64
	Speed  float64
	Ramp   float64
}
