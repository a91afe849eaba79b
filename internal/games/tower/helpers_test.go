package tower

import (
	"math"

	"github.com/vovakirdan/lava-tower/internal/config"
)

// seqRand replays a fixed sequence of draws, reduced modulo n.
// An empty sequence always draws 0.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

// quietConfig is the classic variant with no rocks, no power-ups and a
// fixed difficulty, so tests can inject exactly the entities they need.
func quietConfig() config.TowerConfig {
	cfg := config.DefaultTowerConfig()
	cfg.Rocks.SpawnBase = 1 << 30
	cfg.PowerUps.SpawnInterval = 1 << 30
	cfg.Difficulty.Enabled = false
	return cfg
}

// frozenLava stops the lava so long tests are not cut short.
func frozenLava(cfg config.TowerConfig) config.TowerConfig {
	cfg.Lava.InitialSpeed = 0
	cfg.Lava.Ramp = 0
	return cfg
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// aliveRocks counts the rocks still falling.
func (w *World) aliveRocks() int {
	n := 0
	for _, r := range w.Rocks {
		if r.Active {
			n++
		}
	}
	return n
}
