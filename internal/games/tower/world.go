package tower

import "github.com/vovakirdan/lava-tower/internal/config"

// World is the aggregate of every entity and counter of one run. It is
// owned by an Engine and rebuilt from scratch by Setup.
type World struct {
	Player    Player
	Platforms []Platform
	Coins     []Coin
	Rocks     []Rock
	PowerUps  []PowerUp
	Key       Key
	Door      Door
	Lava      Lava

	Tick             int // Playing ticks since setup
	LastRockSpawn    int // Tick of the last rock spawn
	RockDelay        int // Ticks that must pass before the next rock
	LastPowerUpSpawn int // Tick of the last power-up spawn
	PowerUpSpawns    int // Power-ups spawned so far, drives kind alternation
	RockSpawns       int // Rocks spawned so far, used as rock IDs
}

// Setup clears the world and lays out a fresh level. It touches nothing
// outside the world; repeated calls differ only in the random placements.
func (w *World) Setup(cfg *config.TowerConfig, rng Rand, dm *config.DifficultyManager) {
	pf := cfg.Playfield

	*w = World{}

	w.Player = Player{
		X:      pf.Width / 2,
		Y:      cfg.Player.StartY,
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
		Lives:  cfg.Player.Lives,
	}

	cursor := cfg.Platforms.StartY
	w.Platforms = make([]Platform, 0, len(cfg.Platforms.Widths))
	for _, width := range cfg.Platforms.Widths {
		w.Platforms = append(w.Platforms, Platform{
			X:      float64(intn(rng, int(pf.Width-width))),
			Y:      cursor,
			Width:  width,
			Height: cfg.Platforms.Height,
		})
		cursor += cfg.Platforms.Spacing
	}

	w.Coins = make([]Coin, 0, cfg.Coins.Count)
	for i := range cfg.Coins.Count {
		w.Coins = append(w.Coins, Coin{
			X:    float64(intn(rng, int(pf.Width-2*cfg.Coins.Margin))) + cfg.Coins.Margin,
			Y:    cfg.Coins.StartY + float64(i)*cfg.Coins.Spacing,
			Size: cfg.Coins.Size,
		})
	}

	w.Door = Door{
		X:      pf.Width/2 - cfg.Door.Width/2,
		Y:      cursor + cfg.Door.OffsetY,
		Width:  cfg.Door.Width,
		Height: cfg.Door.Height,
	}
	w.Key = Key{Size: cfg.Key.Size}

	w.Lava = Lava{
		Height: cfg.Lava.InitialHeight,
		Speed:  dm.LavaSpeed(cfg.Lava.InitialSpeed),
		Ramp:   dm.LavaRamp(cfg.Lava.Ramp),
	}

	w.RockDelay = nextRockDelay(cfg, rng, dm, 0, 0)
}

// nextRockDelay draws the cooldown before the next rock.
func nextRockDelay(cfg *config.TowerConfig, rng Rand, dm *config.DifficultyManager, score, tick int) int {
	return dm.RockSpawnBase(cfg.Rocks.SpawnBase, score, tick) + intn(rng, cfg.Rocks.SpawnJitter)
}

// CoinsLeft returns the number of coins not yet collected.
func (w *World) CoinsLeft() int {
	n := 0
	for _, c := range w.Coins {
		if !c.Collected {
			n++
		}
	}
	return n
}

// alivePowerUps returns the number of uncollected power-ups.
func (w *World) alivePowerUps() int {
	n := 0
	for _, p := range w.PowerUps {
		if !p.Collected {
			n++
		}
	}
	return n
}

// compact drops spent rocks and power-ups in place.
func (w *World) compact() {
	rocks := w.Rocks[:0]
	for _, r := range w.Rocks {
		if r.Active {
			rocks = append(rocks, r)
		}
	}
	clear(w.Rocks[len(rocks):])
	w.Rocks = rocks

	powerUps := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		if !p.Collected {
			powerUps = append(powerUps, p)
		}
	}
	clear(w.PowerUps[len(powerUps):])
	w.PowerUps = powerUps
}

// clone returns a deep copy of the world.
func (w *World) clone() World {
	c := *w
	c.Platforms = append([]Platform(nil), w.Platforms...)
	c.Coins = append([]Coin(nil), w.Coins...)
	c.Rocks = append([]Rock(nil), w.Rocks...)
	c.PowerUps = append([]PowerUp(nil), w.PowerUps...)
	return c
}
