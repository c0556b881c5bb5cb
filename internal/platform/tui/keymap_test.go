package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kokaton/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"a", runeKey('a'), core.ActionLeft},
		{"s", runeKey('s'), core.ActionDown},
		{"d", runeKey('d'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"q", runeKey('q'), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %s, expected %s", tc.msg.String(), got, tc.want)
			}
		})
	}

	if !km.IsScreenshot(tea.KeyMsg{Type: tea.KeyCtrlS}) {
		t.Error("ctrl+s should request a screenshot")
	}
	if km.IsScreenshot(runeKey('s')) {
		t.Error("plain s is a direction, not a screenshot")
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 7 {
		t.Errorf("FullHelp lists %d bindings, expected 7", total)
	}
}

func TestHeldKeysWindow(t *testing.T) {
	h := newHeldKeys(200 * time.Millisecond)
	start := time.Unix(1000, 0)

	h.Press(core.ActionUp, start)
	h.Press(core.ActionFire, start) // not a direction, ignored

	frame := core.NewInputFrame()
	h.Apply(&frame, start.Add(100*time.Millisecond))
	if !frame.IsHeld(core.ActionUp) {
		t.Error("up should be held inside the window")
	}
	if frame.IsHeld(core.ActionFire) {
		t.Error("fire is never held")
	}

	frame.Clear()
	h.Apply(&frame, start.Add(250*time.Millisecond))
	if frame.IsHeld(core.ActionUp) {
		t.Error("up should be released after the window")
	}

	// Auto-repeat keeps the key alive.
	h.Press(core.ActionRight, start)
	h.Press(core.ActionRight, start.Add(150*time.Millisecond))
	frame.Clear()
	h.Apply(&frame, start.Add(300*time.Millisecond))
	if !frame.IsHeld(core.ActionRight) {
		t.Error("a repeated key should stay held")
	}
}

func TestHeldKeysOpposites(t *testing.T) {
	h := newHeldKeys(0)
	now := time.Unix(1000, 0)

	h.Press(core.ActionLeft, now)
	h.Press(core.ActionUp, now)
	h.Press(core.ActionRight, now)

	frame := core.NewInputFrame()
	h.Apply(&frame, now)
	if frame.IsHeld(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !frame.IsHeld(core.ActionRight) || !frame.IsHeld(core.ActionUp) {
		t.Errorf("expected up+right held, got %v", frame.Held)
	}

	h.Reset()
	frame.Clear()
	h.Apply(&frame, now)
	if len(frame.Held) != 0 {
		t.Errorf("Reset should release everything, got %v", frame.Held)
	}
}
