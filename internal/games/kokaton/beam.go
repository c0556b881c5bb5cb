package kokaton

import "github.com/vovakirdan/kokaton/internal/core"

// Beam is a projectile travelling in a straight line at constant velocity.
type Beam struct {
	rect  core.Rect
	vel   core.Vec
	angle float64
}

// NewBeam fires a beam along the bird's facing direction. The beam starts
// at the bird's edge, offset from its center by half the bird's size on
// each moving axis. w×h is the unrotated sprite size; the collision
// rectangle is the bounding box of the rotated sprite.
func NewBeam(b *Bird, w, h int) *Beam {
	vel := b.Dir()
	angle := vel.Angle()

	bw, bh := core.RotatedBounds(w, h, angle)
	cx, cy := b.Rect().Center()
	cx += b.Rect().W / 2 * core.Sign(vel.X)
	cy += b.Rect().H / 2 * core.Sign(vel.Y)

	return &Beam{
		rect:  core.RectAt(cx, cy, bw, bh),
		vel:   vel,
		angle: angle,
	}
}

// Update advances the beam by its velocity.
func (p *Beam) Update() {
	p.rect.Move(p.vel)
}

// Rect returns the beam's collision rectangle.
func (p *Beam) Rect() core.Rect { return p.rect }

// Velocity returns the per-frame movement.
func (p *Beam) Velocity() core.Vec { return p.vel }

// Angle returns the sprite rotation in degrees, counter-clockwise.
func (p *Beam) Angle() float64 { return p.angle }

// Sprite returns the beam drawable.
func (p *Beam) Sprite() core.Sprite {
	return core.Sprite{Kind: core.SpriteBeam, Dir: p.vel.Unit(), Angle: p.angle}
}
