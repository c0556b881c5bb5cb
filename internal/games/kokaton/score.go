package kokaton

import (
	"fmt"

	"github.com/vovakirdan/kokaton/internal/core"
)

// Score counts destroyed bombs and draws its own label.
type Score struct {
	value int
	x, y  int
	color core.Color
}

// NewScore creates a zero score whose label sits at (x, y).
func NewScore(x, y int, color core.Color) *Score {
	return &Score{x: x, y: y, color: color}
}

// Add increases the score. Negative amounts are ignored so the score
// never decreases.
func (s *Score) Add(n int) {
	if n > 0 {
		s.value += n
	}
}

// Value returns the current score.
func (s *Score) Value() int { return s.value }

// Label returns the text shown on screen.
func (s *Score) Label() string {
	return fmt.Sprintf("Score: %d", s.value)
}

// Render draws the label onto the canvas.
func (s *Score) Render(dst core.Canvas) {
	dst.Text(s.x, s.y, s.Label(), s.color)
}
