package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that every randomized placement formula has a non-empty
// range and that the level fits in the playfield.
func (c TowerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	pf := c.Playfield
	check(pf.Width > 0 && pf.Height > 0, "playfield must have a positive size, got %vx%v", pf.Width, pf.Height)
	check(pf.Floor >= 0 && pf.Floor < pf.Height, "floor %v must lie inside the playfield", pf.Floor)
	check(pf.TickMs > 0, "tick_ms must be positive")

	check(c.Player.Width > 0 && c.Player.Width < pf.Width, "player width %v must fit the playfield", c.Player.Width)
	check(c.Player.Height > 0, "player height must be positive")
	check(c.Player.Lives > 0, "lives must be positive, got %d", c.Player.Lives)
	check(c.Player.Gravity >= 0, "gravity must not be negative")

	check(len(c.Platforms.Widths) > 0, "at least one platform is required")
	for i, w := range c.Platforms.Widths {
		check(w >= 1 && w < pf.Width, "platform %d width %v must be in [1, %v)", i, w, pf.Width)
	}
	check(c.Platforms.ProbeHeight > 0, "probe_height must be positive")

	// Landing snaps the feet to a surface, the ceiling clamp must not undo it
	if n := len(c.Platforms.Widths); n > 0 {
		top := c.Platforms.StartY + float64(n-1)*c.Platforms.Spacing + c.Platforms.Height
		check(top <= pf.Height, "top platform surface %v is above the playfield height %v", top, pf.Height)

		doorY := c.Platforms.StartY + float64(n)*c.Platforms.Spacing + c.Door.OffsetY
		check(doorY >= pf.Floor && doorY+c.Door.Height <= pf.Height,
			"door at y=%v must fit between the floor and the playfield height", doorY)
	}

	check(c.Coins.Count >= 1, "at least one coin is required to spawn the key, got %d", c.Coins.Count)
	check(pf.Width-2*c.Coins.Margin >= 1, "coin margin %v leaves no room", c.Coins.Margin)

	check(c.Lava.InitialSpeed >= 0 && c.Lava.Ramp >= 0, "lava speed and ramp must not be negative")
	check(c.Lava.SlowFactor >= 0 && c.Lava.SlowFactor <= 1, "slow_factor must be in [0, 1]")

	check(c.Rocks.SpawnBase >= 0 && c.Rocks.SpawnJitter >= 0, "rock spawn timing must not be negative")
	check(c.Rocks.MinSpeed > 0 && c.Rocks.SpeedRange >= 0, "rock speed must be positive")

	check(c.PowerUps.MaxAlive >= 0, "powerups max_alive must not be negative")
	check(pf.Width-2*c.PowerUps.Margin >= 1, "powerup margin %v leaves no room", c.PowerUps.Margin)
	check(c.PowerUps.HeightRange >= 0, "powerup height_range must not be negative")

	check(c.Door.OpenRate > 0, "door open_rate must be positive")

	return errors.Join(errs...)
}
