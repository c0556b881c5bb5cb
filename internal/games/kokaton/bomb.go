package kokaton

import (
	"math/rand"

	"github.com/vovakirdan/kokaton/internal/core"
)

// Bomb is a disc that bounces off the viewport edges.
type Bomb struct {
	rect  core.Rect
	vel   core.Vec
	color core.Color
}

// NewBomb creates a bomb of the given radius centered on a random point of
// the viewport, edges included. Bombs near an edge may start partly
// outside; the first updates push them back in.
func NewBomb(rng *rand.Rand, vp core.Viewport, radius, speed int, color core.Color) *Bomb {
	cx := rng.Intn(vp.W + 1)
	cy := rng.Intn(vp.H + 1)
	return &Bomb{
		rect:  core.RectAt(cx, cy, 2*radius, 2*radius),
		vel:   core.Vec{X: speed, Y: speed},
		color: color,
	}
}

// Update reflects the velocity on every axis where the bomb is currently
// out of bounds, then moves it. Position is never clamped.
func (o *Bomb) Update(vp core.Viewport) {
	horizontal, vertical := core.CheckBound(o.rect, vp)
	if !horizontal {
		o.vel.X = -o.vel.X
	}
	if !vertical {
		o.vel.Y = -o.vel.Y
	}
	o.rect.Move(o.vel)
}

// Rect returns the bomb's collision rectangle.
func (o *Bomb) Rect() core.Rect { return o.rect }

// Velocity returns the per-frame movement.
func (o *Bomb) Velocity() core.Vec { return o.vel }

// Sprite returns the bomb drawable.
func (o *Bomb) Sprite() core.Sprite {
	return core.Sprite{Kind: core.SpriteBomb, Color: o.color}
}
