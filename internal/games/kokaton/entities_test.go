package kokaton

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/kokaton/internal/core"
)

var testViewport = core.Viewport{W: 1100, H: 650}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func TestBirdStartsFacingRight(t *testing.T) {
	b := NewBird(300, 200, 90, 90, 5)

	if x, y := b.Rect().Center(); x != 300 || y != 200 {
		t.Errorf("center = (%d, %d), expected (300, 200)", x, y)
	}
	if b.Dir() != (core.Vec{X: 5, Y: 0}) {
		t.Errorf("initial direction = %v, expected (5, 0)", b.Dir())
	}
	if s := b.Sprite(); s.Kind != core.SpriteBird || s.Dir != (core.Vec{X: 1, Y: 0}) {
		t.Errorf("initial sprite = %+v", s)
	}
}

func TestBirdUpdate(t *testing.T) {
	tests := []struct {
		name    string
		keys    []core.Action
		wantPos core.Vec // center after one update
		wantDir core.Vec
	}{
		{"no keys", nil, core.Vec{X: 300, Y: 200}, core.Vec{X: 5, Y: 0}},
		{"up", []core.Action{core.ActionUp}, core.Vec{X: 300, Y: 195}, core.Vec{X: 0, Y: -5}},
		{"down", []core.Action{core.ActionDown}, core.Vec{X: 300, Y: 205}, core.Vec{X: 0, Y: 5}},
		{"left", []core.Action{core.ActionLeft}, core.Vec{X: 295, Y: 200}, core.Vec{X: -5, Y: 0}},
		{"up right", []core.Action{core.ActionUp, core.ActionRight}, core.Vec{X: 305, Y: 195}, core.Vec{X: 5, Y: -5}},
		{"down left", []core.Action{core.ActionDown, core.ActionLeft}, core.Vec{X: 295, Y: 205}, core.Vec{X: -5, Y: 5}},
		{"opposing keys cancel", []core.Action{core.ActionUp, core.ActionDown}, core.Vec{X: 300, Y: 200}, core.Vec{X: 5, Y: 0}},
		{"three keys", []core.Action{core.ActionLeft, core.ActionRight, core.ActionDown}, core.Vec{X: 300, Y: 205}, core.Vec{X: 0, Y: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBird(300, 200, 90, 90, 5)
			b.Update(held(tc.keys...), testViewport)

			if got := center(b.Rect()); got != tc.wantPos {
				t.Errorf("center = %v, expected %v", got, tc.wantPos)
			}
			if b.Dir() != tc.wantDir {
				t.Errorf("direction = %v, expected %v", b.Dir(), tc.wantDir)
			}
		})
	}
}

func TestBirdBlockedAtEdgeStillTurns(t *testing.T) {
	// Top edge flush with the viewport.
	b := NewBird(300, 45, 90, 90, 5)
	if b.Rect().Y != 0 {
		t.Fatalf("setup: top = %d, expected 0", b.Rect().Y)
	}

	b.Update(held(core.ActionUp), testViewport)
	if b.Rect().Y != 0 {
		t.Errorf("bird left the viewport: top = %d", b.Rect().Y)
	}
	if b.Dir() != (core.Vec{X: 0, Y: -5}) {
		t.Errorf("direction = %v, expected (0, -5) even though the move was undone", b.Dir())
	}

	// A diagonal into the top edge is undone as a whole.
	b.Update(held(core.ActionUp, core.ActionRight), testViewport)
	if got := center(b.Rect()); got != (core.Vec{X: 300, Y: 45}) {
		t.Errorf("center = %v, expected the diagonal move to be fully undone", got)
	}
	if b.Dir() != (core.Vec{X: 5, Y: -5}) {
		t.Errorf("direction = %v, expected (5, -5)", b.Dir())
	}
}

func TestBirdStaysInBounds(t *testing.T) {
	b := NewBird(300, 200, 90, 90, 5)
	keys := [][]core.Action{
		{core.ActionLeft}, {core.ActionUp}, {core.ActionRight, core.ActionDown}, {core.ActionDown},
	}
	for _, k := range keys {
		for range 300 {
			b.Update(held(k...), testViewport)
			if !core.InBounds(b.Rect(), testViewport) {
				t.Fatalf("bird out of bounds at %+v holding %v", b.Rect(), k)
			}
		}
	}
}

func TestBirdHeadingSprites(t *testing.T) {
	b := NewBird(300, 200, 90, 90, 5)
	seen := make(map[core.Vec]bool)

	for _, d := range core.Directions(5) {
		b.dir = d
		s := b.Sprite()
		if s.Kind != core.SpriteBird {
			t.Errorf("kind = %s, expected bird", s.Kind)
		}
		if s.Dir != d.Unit() {
			t.Errorf("sprite dir for %v = %v, expected %v", d, s.Dir, d.Unit())
		}
		seen[s.Dir] = true
	}
	if len(seen) != 8 {
		t.Errorf("expected 8 distinct headings, got %d", len(seen))
	}

	b.Kill()
	if s := b.Sprite(); s.Kind != core.SpriteBirdDead {
		t.Errorf("dead bird sprite = %s", s.Kind)
	}
	before := b.Rect()
	b.Update(held(core.ActionLeft), testViewport)
	if b.Rect() != before {
		t.Error("a dead bird should not move")
	}
}

func TestBeamFiredRight(t *testing.T) {
	b := NewBird(300, 200, 90, 90, 5)
	p := NewBeam(b, 40, 12)

	if got := center(p.Rect()); got != (core.Vec{X: 345, Y: 200}) {
		t.Errorf("spawn center = %v, expected (345, 200)", got)
	}
	if p.Velocity() != (core.Vec{X: 5, Y: 0}) {
		t.Errorf("velocity = %v, expected (5, 0)", p.Velocity())
	}
	if p.Rect().W != 40 || p.Rect().H != 12 {
		t.Errorf("size = %dx%d, expected 40x12", p.Rect().W, p.Rect().H)
	}

	for range 4 {
		p.Update()
	}
	if got := center(p.Rect()); got != (core.Vec{X: 365, Y: 200}) {
		t.Errorf("center after 4 updates = %v, expected (365, 200)", got)
	}
}

func TestBeamAllDirections(t *testing.T) {
	wantAngle := map[core.Vec]float64{
		{X: 5, Y: 0}:   0,
		{X: 5, Y: -5}:  45,
		{X: 0, Y: -5}:  90,
		{X: -5, Y: -5}: 135,
		{X: -5, Y: 0}:  180,
		{X: -5, Y: 5}:  -135,
		{X: 0, Y: 5}:   -90,
		{X: 5, Y: 5}:   -45,
	}

	for _, d := range core.Directions(5) {
		b := NewBird(550, 325, 90, 90, 5)
		b.dir = d
		p := NewBeam(b, 40, 12)

		want := core.Vec{X: 550 + 45*core.Sign(d.X), Y: 325 + 45*core.Sign(d.Y)}
		if got := center(p.Rect()); got != want {
			t.Errorf("dir %v: spawn center = %v, expected %v", d, got, want)
		}
		if math.Abs(p.Angle()-wantAngle[d]) > 1e-9 {
			t.Errorf("dir %v: angle = %v, expected %v", d, p.Angle(), wantAngle[d])
		}

		for i := range 20 {
			start := center(p.Rect())
			p.Update()
			if p.Velocity() != d {
				t.Fatalf("dir %v: velocity changed to %v", d, p.Velocity())
			}
			if moved := center(p.Rect()); moved != start.Add(d) {
				t.Fatalf("dir %v, update %d: moved from %v to %v", d, i, start, moved)
			}
		}
	}
}

func TestBeamRotatedHitbox(t *testing.T) {
	b := NewBird(550, 325, 90, 90, 5)
	b.dir = core.Vec{X: 0, Y: -5}
	p := NewBeam(b, 40, 12)
	if p.Rect().W != 12 || p.Rect().H != 40 {
		t.Errorf("vertical beam = %dx%d, expected 12x40", p.Rect().W, p.Rect().H)
	}
}

func TestBombMovesWhenInBounds(t *testing.T) {
	o := &Bomb{rect: core.NewRect(0, 0, 20, 20), vel: core.Vec{X: 5, Y: 5}}
	o.Update(testViewport)

	if o.Rect().X != 5 || o.Rect().Y != 5 {
		t.Errorf("position = (%d, %d), expected (5, 5)", o.Rect().X, o.Rect().Y)
	}
	if o.Velocity() != (core.Vec{X: 5, Y: 5}) {
		t.Errorf("velocity = %v, expected unchanged (5, 5)", o.Velocity())
	}
}

func TestBombReflection(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		vel     core.Vec
		wantVel core.Vec
		wantX   int
		wantY   int
	}{
		{"overshot right", 1083, 300, core.Vec{X: 5, Y: 5}, core.Vec{X: -5, Y: 5}, 1078, 305},
		{"overshot left", -3, 300, core.Vec{X: -5, Y: -5}, core.Vec{X: 5, Y: -5}, 2, 295},
		{"overshot bottom", 500, 633, core.Vec{X: -5, Y: 5}, core.Vec{X: -5, Y: -5}, 495, 628},
		{"corner", 1084, 634, core.Vec{X: 5, Y: 5}, core.Vec{X: -5, Y: -5}, 1079, 629},
		{"flush with edge", 1080, 630, core.Vec{X: 5, Y: 5}, core.Vec{X: 5, Y: 5}, 1085, 635},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := &Bomb{rect: core.NewRect(tc.x, tc.y, 20, 20), vel: tc.vel}
			o.Update(testViewport)

			if o.Velocity() != tc.wantVel {
				t.Errorf("velocity = %v, expected %v", o.Velocity(), tc.wantVel)
			}
			if o.Rect().X != tc.wantX || o.Rect().Y != tc.wantY {
				t.Errorf("position = (%d, %d), expected (%d, %d)", o.Rect().X, o.Rect().Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestBombFlipsOncePerCrossing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	vp := core.Viewport{W: 300, H: 200}

	for range 20 {
		// Start fully inside so no bomb begins wedged past an edge.
		o := &Bomb{
			rect: core.NewRect(rng.Intn(vp.W-20), rng.Intn(vp.H-20), 20, 20),
			vel:  core.Vec{X: 5, Y: 5},
		}
		for frame := range 2000 {
			prev := o.Velocity()
			h, v := core.CheckBound(o.Rect(), vp)
			o.Update(vp)

			if (prev.X != o.Velocity().X) == h {
				t.Fatalf("frame %d: x flip %v with horizontal in-bounds %v", frame, prev.X != o.Velocity().X, h)
			}
			if (prev.Y != o.Velocity().Y) == v {
				t.Fatalf("frame %d: y flip %v with vertical in-bounds %v", frame, prev.Y != o.Velocity().Y, v)
			}
			if !h {
				// Directly after a flip the bomb is back inside on that axis.
				if h2, _ := core.CheckBound(o.Rect(), vp); !h2 {
					t.Fatalf("frame %d: still out horizontally after reflecting: %+v", frame, o.Rect())
				}
			}
			if !v {
				if _, v2 := core.CheckBound(o.Rect(), vp); !v2 {
					t.Fatalf("frame %d: still out vertically after reflecting: %+v", frame, o.Rect())
				}
			}
		}
	}
}

func TestNewBombSpawn(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 500 {
		o := NewBomb(rng, testViewport, 10, 5, core.ColorRed)
		cx, cy := o.Rect().Center()
		if cx < 0 || cx > testViewport.W || cy < 0 || cy > testViewport.H {
			t.Fatalf("center (%d, %d) outside the viewport", cx, cy)
		}
		if o.Rect().W != 20 || o.Rect().H != 20 {
			t.Fatalf("size = %dx%d, expected 20x20", o.Rect().W, o.Rect().H)
		}
		if o.Velocity() != (core.Vec{X: 5, Y: 5}) {
			t.Fatalf("velocity = %v, expected (5, 5)", o.Velocity())
		}
		if s := o.Sprite(); s.Kind != core.SpriteBomb || s.Color != core.ColorRed {
			t.Fatalf("sprite = %+v", s)
		}
	}
}

func TestExplosionLifecycle(t *testing.T) {
	o := &Bomb{rect: core.RectAt(400, 300, 20, 20)}
	e := NewExplosion(o, 10, 60, 60)

	if got := center(e.Rect()); got != (core.Vec{X: 400, Y: 300}) {
		t.Errorf("center = %v, expected the bomb center", got)
	}

	for k := range 10 {
		if !e.Alive() {
			t.Fatalf("expired early before update %d", k)
		}
		e.Update()
		if want := (10 - k) % 2; e.Frame() != want {
			t.Errorf("update %d: frame = %d, expected %d", k, e.Frame(), want)
		}
		if s := e.Sprite(); s.Kind != core.SpriteExplosion || s.Frame != e.Frame() {
			t.Errorf("update %d: sprite = %+v", k, s)
		}
	}
	if e.Alive() {
		t.Errorf("still alive after 10 updates, life = %d", e.Life())
	}
}

type recordingCanvas struct {
	blits []core.Sprite
	rects []core.Rect
	texts []string
	at    []core.Vec
	color []core.Color
}

func (c *recordingCanvas) Blit(s core.Sprite, at core.Rect) {
	c.blits = append(c.blits, s)
	c.rects = append(c.rects, at)
}

func (c *recordingCanvas) Text(x, y int, text string, col core.Color) {
	c.texts = append(c.texts, text)
	c.at = append(c.at, core.Vec{X: x, Y: y})
	c.color = append(c.color, col)
}

func TestScore(t *testing.T) {
	s := NewScore(30, 600, core.ColorBlue)
	if s.Value() != 0 || s.Label() != "Score: 0" {
		t.Fatalf("new score = %d %q", s.Value(), s.Label())
	}

	s.Add(1)
	s.Add(2)
	s.Add(-5)
	if s.Value() != 3 {
		t.Errorf("value = %d, expected 3", s.Value())
	}

	var c recordingCanvas
	s.Render(&c)
	if len(c.texts) != 1 || c.texts[0] != "Score: 3" {
		t.Fatalf("rendered %q", c.texts)
	}
	if c.at[0] != (core.Vec{X: 30, Y: 600}) || c.color[0] != core.ColorBlue {
		t.Errorf("label at %v in %s, expected (30, 600) in blue", c.at[0], c.color[0])
	}
}
