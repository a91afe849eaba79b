package tui

import "github.com/vovakirdan/lava-tower/internal/core"

// Latch windows in ticks at 60 ticks per second. A first press has to
// bridge the terminal's initial auto-repeat delay; later repeats arrive
// every few ticks.
const (
	pressHold  = 30
	repeatHold = 6
	jumpHold   = 4
)

// KeyLatch turns key presses into held actions. Terminals report presses
// and auto-repeats but never releases, so a movement key counts as held
// for a window after each press and an opposite direction releases it.
// Other actions are delivered once, on the next frame.
type KeyLatch struct {
	left, right, jump int
	once              []core.Action
}

// NewKeyLatch creates an empty latch.
func NewKeyLatch() *KeyLatch {
	return &KeyLatch{}
}

// Press records a key press.
func (l *KeyLatch) Press(a core.Action) {
	switch a {
	case core.ActionNone:
	case core.ActionLeft:
		l.left = refresh(l.left)
		l.right = 0
	case core.ActionRight:
		l.right = refresh(l.right)
		l.left = 0
	case core.ActionJump:
		l.jump = jumpHold
	default:
		l.once = append(l.once, a)
	}
}

// refresh extends a latch for a new press: a fresh press gets the full
// window, a repeat keeps the key alive until the next repeat.
func refresh(remaining int) int {
	if remaining == 0 {
		return pressHold
	}
	return max(remaining, repeatHold)
}

// Fill writes the actions of the current tick into frame and advances the
// latch by one tick.
func (l *KeyLatch) Fill(frame *core.InputFrame) {
	if l.left > 0 {
		frame.Set(core.ActionLeft)
		l.left--
	}
	if l.right > 0 {
		frame.Set(core.ActionRight)
		l.right--
	}
	if l.jump > 0 {
		frame.Set(core.ActionJump)
		l.jump--
	}
	for _, a := range l.once {
		frame.Set(a)
	}
	l.once = l.once[:0]
}

// Release drops every held and pending action.
func (l *KeyLatch) Release() {
	l.left, l.right, l.jump = 0, 0, 0
	l.once = l.once[:0]
}
