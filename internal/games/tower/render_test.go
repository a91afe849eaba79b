package tower

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lava-tower/internal/config"
	"github.com/vovakirdan/lava-tower/internal/core"
)

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(80, 24, 800, 600)
	if v.Cols != 80 || v.Rows != 23 || v.Top != 1 {
		t.Fatalf("viewport = %+v", v)
	}

	for y := v.Top; y < v.Top+v.Rows; y++ {
		for x := range v.Cols {
			cx, cy := v.Cell(v.Point(x, y))
			if cx != x || cy != y {
				t.Fatalf("Cell(Point(%d, %d)) = (%d, %d)", x, y, cx, cy)
			}
		}
	}

	// Bottom-left of the playfield is the bottom-left cell
	if x, y := v.Cell(core.Vec{X: 0, Y: 0}); x != 0 || y != 23 {
		t.Errorf("origin maps to (%d, %d)", x, y)
	}
	if x, y := v.Cell(core.Vec{X: 800, Y: 600}); x != 79 || y != 1 {
		t.Errorf("top-right maps to (%d, %d)", x, y)
	}
}

func TestViewportRect(t *testing.T) {
	v := NewViewport(80, 24, 800, 600)

	tests := []struct {
		name string
		box  core.Box
		want core.Rect
	}{
		{"tiny box still covers a cell", core.Box{X: 401, Y: 301, W: 1, H: 1}, core.NewRect(40, 12, 1, 1)},
		{"aligned box", core.Box{X: 100, Y: 0, W: 100, H: 600}, core.NewRect(10, 1, 10, 23)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.Rect(tc.box); got != tc.want {
				t.Errorf("Rect(%+v) = %+v, expected %+v", tc.box, got, tc.want)
			}
		})
	}
}

// renderEngine renders the engine's current snapshot onto a w x h screen.
func renderEngine(e *Engine, w, h int) *core.Screen {
	cfg := e.Config()
	screen := core.NewScreen(w, h)
	snap := e.Snapshot()
	view := NewViewport(w, h, cfg.Playfield.Width, cfg.Playfield.Height)
	Render(screen, &cfg, &snap, view, e.Level())
	return screen
}

func TestRender(t *testing.T) {
	t.Run("hud", func(t *testing.T) {
		e := NewEngine(config.DefaultTowerConfig(), NewRand(1))
		screen := renderEngine(e, 80, 24)
		hud := screen.Row(0)
		for _, want := range []string{"♥♥♥", "Score 0", "Coins 0/7", "Heat 0%"} {
			if !strings.Contains(hud, want) {
				t.Errorf("HUD %q does not contain %q", hud, want)
			}
		}
		if !strings.ContainsRune(screen.String(), PlayerChar) {
			t.Error("player not drawn")
		}
	})

	t.Run("menu", func(t *testing.T) {
		e := NewEngine(config.DefaultTowerPlusConfig(), NewRand(1))
		out := renderEngine(e, 100, 30).String()
		for _, want := range []string{"LAVA TOWER+", "Start"} {
			if !strings.Contains(out, want) {
				t.Errorf("menu does not contain %q", want)
			}
		}
		if strings.ContainsRune(out, PlayerChar) {
			t.Error("menu should not draw the playfield")
		}
	})

	t.Run("paused", func(t *testing.T) {
		e := NewEngine(config.DefaultTowerPlusConfig(), NewRand(1))
		e.Step(Input{Start: true})
		e.Step(Input{Pause: true})
		out := renderEngine(e, 100, 30).String()
		if !strings.Contains(out, "PAUSED") || !strings.Contains(out, "Resume") {
			t.Errorf("paused screen:\n%s", out)
		}
	})

	t.Run("lost to lava", func(t *testing.T) {
		e := NewEngine(quietConfig(), &seqRand{})
		e.machine.Lose()
		out := renderEngine(e, 80, 24).String()
		if !strings.Contains(out, "THE LAVA GOT YOU") || !strings.Contains(out, "Restart") {
			t.Errorf("lost screen:\n%s", out)
		}
	})

	t.Run("crushed", func(t *testing.T) {
		e := NewEngine(quietConfig(), &seqRand{})
		e.world.Player.Lives = 0
		e.machine.Lose()
		out := renderEngine(e, 80, 24).String()
		if !strings.Contains(out, "CRUSHED BY ROCKS") {
			t.Errorf("lost screen:\n%s", out)
		}
	})

	t.Run("won", func(t *testing.T) {
		e := NewEngine(quietConfig(), &seqRand{})
		e.world.Player.Score = 70
		e.machine.Win()
		out := renderEngine(e, 80, 24).String()
		if !strings.Contains(out, "YOU ESCAPED!") || !strings.Contains(out, "Final score: 70") {
			t.Errorf("won screen:\n%s", out)
		}
	})

	t.Run("too small", func(t *testing.T) {
		e := NewEngine(config.DefaultTowerConfig(), NewRand(1))
		out := renderEngine(e, 30, 10).String()
		if !strings.Contains(out, "Window too small") {
			t.Errorf("small screen:\n%s", out)
		}
	})
}

func TestDangerBar(t *testing.T) {
	tests := []struct {
		frac float64
		want string
	}{
		{0, "░░░░"},
		{0.5, "▓▓░░"},
		{1, "▓▓▓▓"},
		{2, "▓▓▓▓"},
		{-1, "░░░░"},
	}
	for _, tc := range tests {
		if got := dangerBar(tc.frac, 4); got != tc.want {
			t.Errorf("dangerBar(%v) = %q, expected %q", tc.frac, got, tc.want)
		}
	}
}
