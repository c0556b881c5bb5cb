package tui

import (
	"time"

	"github.com/vovakirdan/kokaton/internal/core"
)

// DefaultKeyHold is how long a directional key counts as held after its
// last press or auto-repeat.
const DefaultKeyHold = 250 * time.Millisecond

// heldKeys turns terminal key presses into a held-key snapshot.
// Terminals report presses and auto-repeats but never releases, so a key
// stays held for a short window after it was last seen.
type heldKeys struct {
	window time.Duration
	last   map[core.Action]time.Time
}

func newHeldKeys(window time.Duration) *heldKeys {
	if window <= 0 {
		window = DefaultKeyHold
	}
	return &heldKeys{
		window: window,
		last:   make(map[core.Action]time.Time, 4),
	}
}

// Press records a directional key. Pressing a direction releases the
// opposite one so turning around is immediate.
func (h *heldKeys) Press(a core.Action, now time.Time) {
	if !a.IsDirection() {
		return
	}
	delete(h.last, opposite(a))
	h.last[a] = now
}

// Apply marks every key still inside its window as held in the frame and
// forgets the rest.
func (h *heldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.last {
		if now.Sub(t) < h.window {
			frame.Hold(a)
		} else {
			delete(h.last, a)
		}
	}
}

// Reset releases every key.
func (h *heldKeys) Reset() {
	clear(h.last)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
