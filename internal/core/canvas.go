package core

// SpriteKind names a drawable by its logical role. Platforms decide how
// each role looks; the game never refers to image files.
type SpriteKind int

const (
	SpriteBird      SpriteKind = iota // Player character, oriented by Dir
	SpriteBirdDead                    // Player character after a fatal hit
	SpriteBeam                        // Projectile, rotated by Angle
	SpriteBomb                        // Filled disc in Color
	SpriteExplosion                   // Two-frame effect, Frame 1 is mirrored
)

// String returns a human-readable name for the sprite kind.
func (k SpriteKind) String() string {
	switch k {
	case SpriteBird:
		return "bird"
	case SpriteBirdDead:
		return "bird_dead"
	case SpriteBeam:
		return "beam"
	case SpriteBomb:
		return "bomb"
	case SpriteExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Sprite is an opaque drawable keyed by role plus the parameters that
// select its variant.
type Sprite struct {
	Kind  SpriteKind
	Dir   Vec     // Facing or travel direction
	Angle float64 // Rotation in degrees, counter-clockwise
	Frame int     // Animation frame
	Color Color   // Fill color
}

// Canvas is the 2D drawing target the game renders onto, sized to the
// game's viewport. Presenting the finished frame is the platform's job.
type Canvas interface {
	// Blit draws the sprite so that it occupies the given viewport rectangle.
	Blit(s Sprite, at Rect)

	// Text draws a label with its top-left corner at viewport point (x, y).
	Text(x, y int, text string, c Color)
}

// Game is the interface the platforms drive.
// Games contain pure logic with no external dependencies.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Viewport returns the fixed play area size in pixels.
	Viewport() Viewport

	// Reset initializes the session state.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state onto the canvas.
	// The canvas is pre-cleared before this call.
	Render(dst Canvas)

	// State returns the current game state.
	State() GameState
}
