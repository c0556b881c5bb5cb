package core

import "fmt"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (terminal platform only)
	ScreenH  int   // Terminal height in characters (terminal platform only)
	TickRate int   // Simulation ticks per second (default 50)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome describes why a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota // Session still running
	OutcomeQuit                // Player asked to quit
	OutcomeHit                 // Player collided with an obstacle
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "running"
	case OutcomeQuit:
		return "quit"
	case OutcomeHit:
		return "hit"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Tick     int     // Frames advanced since Reset
	GameOver bool    // Whether the session has terminated
	Outcome  Outcome // Why it terminated
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventBeamFired EventKind = iota
	EventBombDestroyed
	EventPlayerHit
	EventQuit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBeamFired:
		return "beam_fired"
	case EventBombDestroyed:
		return "bomb_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is a notable occurrence during a tick, located at a viewport point.
type Event struct {
	Kind EventKind
	At   Vec
}

// String formats the event for logs.
func (e Event) String() string {
	return fmt.Sprintf("%s@(%d,%d)", e.Kind, e.At.X, e.At.Y)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
