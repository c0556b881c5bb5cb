package kokaton

import "github.com/vovakirdan/kokaton/internal/core"

// Explosion is a short two-frame effect left where a bomb was destroyed.
type Explosion struct {
	rect  core.Rect
	life  int
	frame int
}

// NewExplosion centers a w×h explosion on the bomb, living for life updates.
func NewExplosion(o *Bomb, life, w, h int) *Explosion {
	cx, cy := o.Rect().Center()
	return &Explosion{
		rect: core.RectAt(cx, cy, w, h),
		life: life,
	}
}

// Update selects the frame by the parity of the remaining life, then
// counts down one frame.
func (e *Explosion) Update() {
	e.frame = e.life % 2
	e.life--
}

// Alive reports whether the explosion still has frames left.
func (e *Explosion) Alive() bool { return e.life > 0 }

// Life returns the remaining frames.
func (e *Explosion) Life() int { return e.life }

// Frame returns the current visual frame: 0 or 1 (mirrored).
func (e *Explosion) Frame() int { return e.frame }

// Rect returns the area the explosion covers.
func (e *Explosion) Rect() core.Rect { return e.rect }

// Sprite returns the explosion drawable.
func (e *Explosion) Sprite() core.Sprite {
	return core.Sprite{Kind: core.SpriteExplosion, Frame: e.frame}
}
