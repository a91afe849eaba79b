package tower

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/lava-tower/internal/config"
)

// randomInput draws held keys often and control presses rarely.
func randomInput(r *rand.Rand) Input {
	return Input{
		Left:  r.Intn(3) == 0,
		Right: r.Intn(3) == 0,
		Jump:  r.Intn(4) == 0,
		Start: r.Intn(20) == 0,
		Pause: r.Intn(200) == 0,
	}
}

func TestInvariantsHoldOverLongRuns(t *testing.T) {
	variants := []struct {
		name string
		cfg  config.TowerConfig
	}{
		{"classic", config.DefaultTowerConfig()},
		{"plus", config.DefaultTowerPlusConfig()},
	}

	for _, v := range variants {
		for seed := int64(1); seed <= 3; seed++ {
			t.Run(v.name, func(t *testing.T) {
				e := NewEngine(v.cfg, NewRand(seed))
				inputs := rand.New(rand.NewSource(seed * 7919)) //#nosec G404 -- test input
				endings := 0

				prev := e.Snapshot()
				for range 20000 {
					in := randomInput(inputs)
					if prev.Mode.Terminal() {
						endings++
						in.Restart = true
					}
					e.Step(in)
					next := e.Snapshot()
					if err := CheckTransition(&v.cfg, prev, next); err != nil {
						t.Fatalf("seed %d: %v", seed, err)
					}
					prev = next
				}
				if endings == 0 {
					t.Errorf("seed %d: expected at least one run to end", seed)
				}
			})
		}
	}
}

func TestCheckTransitionReportsViolations(t *testing.T) {
	cfg := config.DefaultTowerConfig()
	e := NewEngine(cfg, NewRand(1))
	for range 5 {
		e.Step(Input{})
	}
	prev := e.Snapshot()
	prev.World.Coins[0].Collected = true

	next := e.Snapshot()
	next.World.Lava.Height = prev.World.Lava.Height - 1
	next.World.Player.Lives = -1
	next.World.Player.X = cfg.Playfield.Width + 50

	err := CheckTransition(&cfg, prev, next)
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrInvariant, got %v", err)
	}
	for _, want := range []string{"lava fell", "coin 0 uncollected", "negative lives", "player x"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}

	if err := CheckTransition(&cfg, prev, prev); err != nil {
		t.Errorf("unchanged snapshot reported %v", err)
	}
}

func TestCheckTransitionAcrossRuns(t *testing.T) {
	cfg := quietConfig()
	e := NewEngine(cfg, &seqRand{})
	e.world.Lava.Height = 200
	e.world.Coins[0].Collected = true
	e.machine.Lose()
	prev := e.Snapshot()

	e.Step(Input{Restart: true})
	next := e.Snapshot()
	if next.Run != prev.Run+1 {
		t.Fatalf("run = %d, expected %d", next.Run, prev.Run+1)
	}
	if err := CheckTransition(&cfg, prev, next); err != nil {
		t.Errorf("a restart may reset monotonic state, got %v", err)
	}
}

func TestDeterminism(t *testing.T) {
	run := func(seed int64) []uint64 {
		e := NewEngine(config.DefaultTowerPlusConfig(), NewRand(seed))
		inputs := rand.New(rand.NewSource(99)) //#nosec G404 -- test input
		hashes := make([]uint64, 0, 3000)
		for range 3000 {
			in := randomInput(inputs)
			in.Restart = true
			e.Step(in)
			snap := e.Snapshot()
			hashes = append(hashes, snap.Hash())
		}
		return hashes
	}

	a, b := run(42), run(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at tick %d", i)
		}
	}

	c := run(43)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical runs")
	}
}
