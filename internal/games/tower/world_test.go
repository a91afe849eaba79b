package tower

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/lava-tower/internal/config"
)

func TestSetupLayout(t *testing.T) {
	cfg := config.DefaultTowerConfig()
	dm := config.NewDifficultyManager(cfg.Difficulty)
	var w World
	w.Setup(&cfg, NewRand(7), dm)

	if len(w.Platforms) != len(cfg.Platforms.Widths) {
		t.Fatalf("platforms = %d, expected %d", len(w.Platforms), len(cfg.Platforms.Widths))
	}
	for i, p := range w.Platforms {
		if p.Width != cfg.Platforms.Widths[i] {
			t.Errorf("platform %d width %v, expected %v", i, p.Width, cfg.Platforms.Widths[i])
		}
		if p.X < 0 || p.X+p.Width > cfg.Playfield.Width {
			t.Errorf("platform %d at x=%v sticks out of the playfield", i, p.X)
		}
		if i > 0 && p.Y <= w.Platforms[i-1].Y {
			t.Errorf("platform %d at y=%v is not above the previous one", i, p.Y)
		}
	}

	if len(w.Coins) != cfg.Coins.Count {
		t.Fatalf("coins = %d, expected %d", len(w.Coins), cfg.Coins.Count)
	}
	for i, c := range w.Coins {
		if c.X < cfg.Coins.Margin || c.X >= cfg.Playfield.Width-cfg.Coins.Margin {
			t.Errorf("coin %d at x=%v outside the margins", i, c.X)
		}
		if want := cfg.Coins.StartY + float64(i)*cfg.Coins.Spacing; c.Y != want {
			t.Errorf("coin %d at y=%v, expected %v", i, c.Y, want)
		}
	}

	top := cfg.Platforms.StartY + float64(len(cfg.Platforms.Widths))*cfg.Platforms.Spacing
	if w.Door.Y != top+cfg.Door.OffsetY || w.Door.X != cfg.Playfield.Width/2-cfg.Door.Width/2 {
		t.Errorf("door at (%v, %v)", w.Door.X, w.Door.Y)
	}

	p := w.Player
	if p.X != cfg.Playfield.Width/2 || p.Y != cfg.Player.StartY || p.Lives != cfg.Player.Lives {
		t.Errorf("player = %+v", p)
	}
	if w.RockDelay < cfg.Rocks.SpawnBase || w.RockDelay >= cfg.Rocks.SpawnBase+cfg.Rocks.SpawnJitter {
		t.Errorf("rock delay %d outside [%d, %d)", w.RockDelay, cfg.Rocks.SpawnBase, cfg.Rocks.SpawnBase+cfg.Rocks.SpawnJitter)
	}
}

func TestSetupIsIdempotent(t *testing.T) {
	cfg := config.DefaultTowerPlusConfig()
	dm := config.NewDifficultyManager(cfg.Difficulty)

	var once, twice World
	once.Setup(&cfg, NewRand(42), dm)
	twice.Setup(&cfg, NewRand(42), dm)
	twice.Setup(&cfg, NewRand(42), dm)
	if !reflect.DeepEqual(once, twice) {
		t.Error("setting up twice with the same draws should equal setting up once")
	}

	// A played world is fully reset, apart from the fresh random placements
	e := NewEngine(cfg, NewRand(1))
	e.Step(Input{Start: true})
	for range 700 {
		e.Step(Input{Right: true, Jump: true})
	}
	e.world.Setup(&cfg, NewRand(99), dm)
	var fresh World
	fresh.Setup(&cfg, NewRand(1234), dm)

	w := e.world
	if w.Tick != fresh.Tick || w.LastRockSpawn != 0 || w.LastPowerUpSpawn != 0 ||
		w.PowerUpSpawns != 0 || w.RockSpawns != 0 ||
		len(w.Rocks) != 0 || len(w.PowerUps) != 0 ||
		w.Lava != fresh.Lava || w.Key != fresh.Key || w.Door != fresh.Door {
		t.Errorf("counters not reset:\n got %+v\nwant %+v", w, fresh)
	}
	w.Player.X, fresh.Player.X = 0, 0
	if w.Player != fresh.Player {
		t.Errorf("player not reset: %+v", w.Player)
	}
	for i := range w.Platforms {
		if w.Platforms[i].Destroyed || w.Platforms[i].Y != fresh.Platforms[i].Y {
			t.Errorf("platform %d not reset: %+v", i, w.Platforms[i])
		}
	}
	for i := range w.Coins {
		if w.Coins[i].Collected || w.Coins[i].Rotation != 0 {
			t.Errorf("coin %d not reset: %+v", i, w.Coins[i])
		}
	}
}

func TestCompact(t *testing.T) {
	w := World{
		Rocks: []Rock{
			{ID: 1, Active: false},
			{ID: 2, Active: true},
			{ID: 3, Active: false},
			{ID: 4, Active: true},
		},
		PowerUps: []PowerUp{
			{ID: 1, Collected: true},
			{ID: 2},
		},
	}

	w.compact()

	if len(w.Rocks) != 2 || w.Rocks[0].ID != 2 || w.Rocks[1].ID != 4 {
		t.Errorf("rocks after compact = %+v", w.Rocks)
	}
	if len(w.PowerUps) != 1 || w.PowerUps[0].ID != 2 {
		t.Errorf("power-ups after compact = %+v", w.PowerUps)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	e := NewEngine(quietConfig(), &seqRand{})
	e.world.Rocks = []Rock{{ID: 1, Active: true, Y: 300}}

	snap := e.Snapshot()
	snap.World.Rocks[0].Y = -1
	snap.World.Platforms[0].Destroyed = true
	snap.World.Coins[0].Collected = true

	if e.world.Rocks[0].Y != 300 || e.world.Platforms[0].Destroyed || e.world.Coins[0].Collected {
		t.Error("mutating a snapshot must not reach the engine")
	}
}
