package tui

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lava-tower/internal/core"
	"github.com/vovakirdan/lava-tower/internal/storage"
)

// stubGame records the frames it receives and reports a scripted state.
type stubGame struct {
	frames    []core.InputFrame
	state     core.GameState
	resets    int
	violation error
	configErr error
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Violation() error { return g.violation }
func (g *stubGame) ConfigError() error { return g.configErr }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, copyFrame(in))
	g.state.Ticks++
	return core.StepResult{State: g.state}
}

// copyFrame keeps a frame after the runner clears it for the next tick.
func copyFrame(in core.InputFrame) core.InputFrame {
	out := core.NewInputFrame()
	for a, on := range in.Actions {
		out.Actions[a] = on
	}
	if in.Click != nil {
		c := *in.Click
		out.Click = &c
	}
	return out
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func newTestModel(g *stubGame, store *storage.Store, embedded bool) Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(g, store, cfg, Options{Embedded: embedded})
	m.Init()
	return m
}

func TestModelLatchesMovement(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil, false)
	if g.resets != 1 {
		t.Fatalf("Init should reset the game once, got %d", g.resets)
	}

	m, _ = update(t, m, runeKey('a'))
	for range 3 {
		m, _ = update(t, m, TickMsg{})
	}
	for i, f := range g.frames {
		if !f.Has(core.ActionLeft) {
			t.Errorf("tick %d: left not held", i)
		}
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, TickMsg{})
	last := g.frames[len(g.frames)-1]
	if last.Has(core.ActionLeft) || !last.Has(core.ActionRight) {
		t.Errorf("right arrow should replace left: %v", last.Actions)
	}
}

func TestModelClick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil, false)

	m, _ = update(t, m, tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionMotion})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	if c := g.frames[0].Click; c == nil || c.X != 12 || c.Y != 7 {
		t.Errorf("first frame click = %+v", c)
	}
	if g.frames[1].Click != nil {
		t.Error("a click must only reach one tick")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil, false)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.resets != 1 {
		t.Error("resizing must not reset the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelSavesEachRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{}
	m := newTestModel(g, store, false)

	g.state = core.GameState{Score: 70, GameOver: true, Won: true}
	for range 5 {
		m, _ = update(t, m, TickMsg{})
	}

	// Restarted and lost
	g.state = core.GameState{}
	m, _ = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 20, GameOver: true}
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 stored runs, got %d", len(scores))
	}
	if scores[0].Outcome != storage.OutcomeWon || scores[0].Ticks != 1 {
		t.Errorf("first run = %+v", scores[0])
	}
	if scores[1].Outcome != storage.OutcomeLost || scores[1].Score != 20 {
		t.Errorf("second run = %+v", scores[1])
	}
}

func TestModelBackAndQuit(t *testing.T) {
	tests := []struct {
		name     string
		state    core.GameState
		embedded bool
		key      tea.KeyMsg
		back     bool
		quit     bool
		pause    bool
	}{
		{"esc while playing pauses", core.GameState{}, true, tea.KeyMsg{Type: tea.KeyEsc}, false, false, true},
		{"esc when paused leaves", core.GameState{Paused: true}, true, tea.KeyMsg{Type: tea.KeyEsc}, true, false, false},
		{"esc after game over leaves", core.GameState{GameOver: true}, true, tea.KeyMsg{Type: tea.KeyEsc}, true, false, false},
		{"esc on the title screen leaves", core.GameState{Menu: true}, true, tea.KeyMsg{Type: tea.KeyEsc}, true, false, false},
		{"standalone esc on the title screen ends the program", core.GameState{Menu: true}, false, tea.KeyMsg{Type: tea.KeyEsc}, true, false, false},
		{"standalone back ends the program", core.GameState{GameOver: true}, false, runeKey('b'), true, false, false},
		{"q quits", core.GameState{}, true, runeKey('q'), false, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &stubGame{state: tc.state}
			m := newTestModel(g, nil, tc.embedded)
			m, _ = update(t, m, TickMsg{})

			m, cmd := update(t, m, tc.key)
			if m.BackToMenu() != tc.back || m.IsQuitting() != tc.quit {
				t.Errorf("back=%v quit=%v", m.BackToMenu(), m.IsQuitting())
			}
			wantQuitCmd := tc.quit || (tc.back && !tc.embedded)
			if (cmd != nil) != wantQuitCmd {
				t.Errorf("cmd = %v, expected quit command %v", cmd != nil, wantQuitCmd)
			}

			m, _ = update(t, m, TickMsg{})
			if got := g.frames[len(g.frames)-1].Has(core.ActionPause); got != tc.pause {
				t.Errorf("pause delivered = %v, expected %v", got, tc.pause)
			}
		})
	}
}

func TestModelDebugDrainsViolations(t *testing.T) {
	g := &stubGame{violation: errors.New("boom")}
	cfg := core.DefaultConfig()
	m := NewModel(g, nil, cfg, Options{Debug: true})
	m.Init()

	// The discard logger swallows the report; the tick must still run
	m, _ = update(t, m, TickMsg{})
	if len(g.frames) != 1 {
		t.Errorf("expected one tick, got %d", len(g.frames))
	}
	if m.View() == "" {
		t.Error("view should render the game")
	}
}

func TestModelLogsRejectedConfig(t *testing.T) {
	var buf bytes.Buffer
	g := &stubGame{configErr: errors.New("config: invalid: lives must be positive, got 0")}
	m := NewModel(g, nil, core.DefaultConfig(), Options{Logger: log.New(&buf)})
	m.Init()

	out := buf.String()
	if !strings.Contains(out, "custom config rejected") || !strings.Contains(out, "lives must be positive") {
		t.Errorf("log = %q, expected the rejected config to be reported", out)
	}
}
