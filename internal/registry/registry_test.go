package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/lava-tower/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return stubGame{id: "aa_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("aa_stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "aa_stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	list := List()
	if len(list) < 2 || list[0].ID != "aa_stub" || list[0].Title != "Stub aa_stub" {
		t.Errorf("List() not sorted or missing titles: %+v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(unknown) err = %v, want ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })
}
