// Package tui runs Fight Kokaton in the terminal with Bubble Tea.
// It handles the terminal UI loop, input mapping, and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// HoldDoneMsg is sent when the fatal frame has been shown long enough.
type HoldDoneMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdCmd fires HoldDoneMsg after d.
func holdCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return HoldDoneMsg{} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return HoldDoneMsg{}
	})
}
