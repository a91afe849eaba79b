package tower

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/lava-tower/internal/config"
)

// ErrInvariant is wrapped by every violation CheckTransition reports.
// A violation is a defect in the simulation, never a player-facing error.
var ErrInvariant = errors.New("tower: invariant violated")

// CheckTransition verifies the rules that must hold between two consecutive
// snapshots of one engine. Monotonic properties are only compared within
// the same run.
func CheckTransition(cfg *config.TowerConfig, prev, next Snapshot) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: tick %d: "+format,
			append([]any{ErrInvariant, next.World.Tick}, args...)...))
	}

	np := next.World.Player
	half := np.Width / 2
	if np.X < half || np.X > cfg.Playfield.Width-half {
		fail("player x %.2f outside [%.2f, %.2f]", np.X, half, cfg.Playfield.Width-half)
	}
	if np.Y > cfg.Playfield.Height {
		fail("player y %.2f above the playfield", np.Y)
	}
	if np.Lives < 0 {
		fail("negative lives %d", np.Lives)
	}
	if np.Score < 0 {
		fail("negative score %d", np.Score)
	}

	if prev.Run != next.Run {
		return errors.Join(errs...)
	}

	pw, nw := &prev.World, &next.World

	if prev.Mode == ModePlaying && next.Mode != ModeMenu {
		if nw.Lava.Height < pw.Lava.Height {
			fail("lava fell from %.4f to %.4f", pw.Lava.Height, nw.Lava.Height)
		}
		if nw.Lava.Speed < pw.Lava.Speed {
			fail("lava slowed from %.6f to %.6f", pw.Lava.Speed, nw.Lava.Speed)
		}
	}

	for i := range min(len(pw.Platforms), len(nw.Platforms)) {
		if pw.Platforms[i].Destroyed && !nw.Platforms[i].Destroyed {
			fail("platform %d restored", i)
		}
	}
	for i := range min(len(pw.Coins), len(nw.Coins)) {
		if pw.Coins[i].Collected && !nw.Coins[i].Collected {
			fail("coin %d uncollected", i)
		}
	}
	if pw.Key.Collected && !nw.Key.Collected {
		fail("key uncollected")
	}
	if pw.Door.Unlocked && !nw.Door.Unlocked {
		fail("door locked again")
	}
	if nw.Door.Opening < pw.Door.Opening || nw.Door.Opening > 1 {
		fail("door opening went from %.2f to %.2f", pw.Door.Opening, nw.Door.Opening)
	}

	spent := make(map[int]bool)
	for _, pu := range pw.PowerUps {
		if pu.Collected {
			spent[pu.ID] = true
		}
	}
	for _, pu := range nw.PowerUps {
		if spent[pu.ID] && !pu.Collected {
			fail("power-up %d uncollected", pu.ID)
		}
	}
	if nw.alivePowerUps() > cfg.PowerUps.MaxAlive {
		fail("%d power-ups alive, limit %d", nw.alivePowerUps(), cfg.PowerUps.MaxAlive)
	}

	if !pw.Key.Spawned && nw.Key.Spawned && nw.CoinsLeft() != 0 {
		fail("key spawned with %d coins left", nw.CoinsLeft())
	}

	if prev.Mode != ModeWon && next.Mode == ModeWon && !nw.Door.Unlocked {
		fail("won through a locked door")
	}
	if prev.Mode != ModeLost && next.Mode == ModeLost &&
		np.Lives != 0 && np.Y >= nw.Lava.Height+cfg.Lava.Margin {
		fail("lost with %d lives at y %.2f above lava %.2f", np.Lives, np.Y, nw.Lava.Height)
	}

	return errors.Join(errs...)
}
