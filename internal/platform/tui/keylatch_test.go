package tui

import (
	"testing"

	"github.com/vovakirdan/lava-tower/internal/core"
)

// heldFor counts the consecutive ticks an action is present, starting now.
func heldFor(l *KeyLatch, a core.Action, limit int) int {
	n := 0
	for range limit {
		frame := core.NewInputFrame()
		l.Fill(&frame)
		if !frame.Has(a) {
			break
		}
		n++
	}
	return n
}

func TestKeyLatchHoldsAPress(t *testing.T) {
	l := NewKeyLatch()
	l.Press(core.ActionLeft)
	if got := heldFor(l, core.ActionLeft, 100); got != pressHold {
		t.Errorf("single press held for %d ticks, expected %d", got, pressHold)
	}
}

func TestKeyLatchRepeats(t *testing.T) {
	l := NewKeyLatch()
	l.Press(core.ActionRight)

	// Run down the first window, then repeat near its end
	frame := core.NewInputFrame()
	for range pressHold - 2 {
		l.Fill(&frame)
	}
	l.Press(core.ActionRight)
	if got := heldFor(l, core.ActionRight, 100); got != repeatHold {
		t.Errorf("repeat extended the hold to %d ticks, expected %d", got, repeatHold)
	}

	// A repeat early in the window does not shorten it
	l.Press(core.ActionRight)
	l.Fill(&frame)
	l.Press(core.ActionRight)
	if got := heldFor(l, core.ActionRight, 100); got != pressHold-1 {
		t.Errorf("early repeat left %d ticks, expected %d", got, pressHold-1)
	}
}

func TestKeyLatchOppositeReleases(t *testing.T) {
	l := NewKeyLatch()
	l.Press(core.ActionLeft)
	l.Press(core.ActionRight)

	frame := core.NewInputFrame()
	l.Fill(&frame)
	if frame.Has(core.ActionLeft) || !frame.Has(core.ActionRight) {
		t.Errorf("frame = %v, expected only right", frame.Actions)
	}
}

func TestKeyLatchOneShots(t *testing.T) {
	l := NewKeyLatch()
	l.Press(core.ActionPause)
	l.Press(core.ActionConfirm)
	l.Press(core.ActionJump)

	first := core.NewInputFrame()
	l.Fill(&first)
	for _, a := range []core.Action{core.ActionPause, core.ActionConfirm, core.ActionJump} {
		if !first.Has(a) {
			t.Errorf("first frame is missing %v", a)
		}
	}

	second := core.NewInputFrame()
	l.Fill(&second)
	if second.Has(core.ActionPause) || second.Has(core.ActionConfirm) {
		t.Error("one-shot actions must only be delivered once")
	}
	if !second.Has(core.ActionJump) {
		t.Error("jump should stay latched for a few ticks")
	}
	if got := heldFor(l, core.ActionJump, 100); got != jumpHold-2 {
		t.Errorf("jump held for %d more ticks, expected %d", got, jumpHold-2)
	}
}

func TestKeyLatchRelease(t *testing.T) {
	l := NewKeyLatch()
	l.Press(core.ActionLeft)
	l.Press(core.ActionJump)
	l.Press(core.ActionRestart)
	l.Release()

	frame := core.NewInputFrame()
	l.Fill(&frame)
	if len(frame.Actions) != 0 {
		t.Errorf("released latch produced %v", frame.Actions)
	}
}
