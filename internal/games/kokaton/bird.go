package kokaton

import "github.com/vovakirdan/kokaton/internal/core"

// keyDeltas maps each directional key to its unit movement.
var keyDeltas = []struct {
	action core.Action
	delta  core.Vec
}{
	{core.ActionUp, core.Vec{X: 0, Y: -1}},
	{core.ActionDown, core.Vec{X: 0, Y: 1}},
	{core.ActionLeft, core.Vec{X: -1, Y: 0}},
	{core.ActionRight, core.Vec{X: 1, Y: 0}},
}

// Bird is the player character. It moves in eight directions and
// remembers the last direction it moved in, which is where beams go.
type Bird struct {
	rect     core.Rect
	dir      core.Vec
	step     int
	dead     bool
	headings map[core.Vec]core.Sprite
}

// NewBird places a w×h bird centered on (cx, cy), facing right.
func NewBird(cx, cy, w, h, step int) *Bird {
	b := &Bird{
		rect:     core.RectAt(cx, cy, w, h),
		dir:      core.Vec{X: step, Y: 0},
		step:     step,
		headings: make(map[core.Vec]core.Sprite, 8),
	}
	for _, d := range core.Directions(step) {
		b.headings[d] = core.Sprite{Kind: core.SpriteBird, Dir: d.Unit()}
	}
	return b
}

// Update moves the bird by the sum of the held directional keys.
// A move that would leave the viewport is undone, but the facing
// direction still follows the keys.
func (b *Bird) Update(in core.InputFrame, vp core.Viewport) {
	if b.dead {
		return
	}

	var sum core.Vec
	for _, k := range keyDeltas {
		if in.IsHeld(k.action) {
			sum.X += k.delta.X * b.step
			sum.Y += k.delta.Y * b.step
		}
	}

	b.rect.Move(sum)
	if !core.InBounds(b.rect, vp) {
		b.rect.Move(sum.Neg())
	}
	if !sum.IsZero() {
		b.dir = sum
	}
}

// Kill switches the bird to its dead visual. It no longer moves.
func (b *Bird) Kill() {
	b.dead = true
}

// Rect returns the bird's collision rectangle.
func (b *Bird) Rect() core.Rect { return b.rect }

// Dir returns the facing direction; both components are 0 or ±step.
func (b *Bird) Dir() core.Vec { return b.dir }

// Dead reports whether the bird has been hit.
func (b *Bird) Dead() bool { return b.dead }

// Sprite returns the drawable for the bird's current state.
func (b *Bird) Sprite() core.Sprite {
	if b.dead {
		return core.Sprite{Kind: core.SpriteBirdDead, Dir: b.dir.Unit()}
	}
	return b.headings[b.dir]
}
