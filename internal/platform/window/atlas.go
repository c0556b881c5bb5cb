package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/kokaton/internal/core"
)

// Reference sprite sizes. Sprites are scaled to whatever rectangle the
// game asks for, so these only set the drawing resolution.
const (
	birdSize      = 90
	beamW, beamH  = 40, 12
	explosionSize = 60
)

// heading selects the source image and rotation for one facing direction.
// Left-facing headings start from the mirrored image so the bird is never
// drawn upside down.
type heading struct {
	mirror  bool
	degrees float64 // Counter-clockwise
}

var headings = map[core.Vec]heading{
	{X: 1, Y: 0}:   {mirror: false, degrees: 0},
	{X: 1, Y: -1}:  {mirror: false, degrees: 45},
	{X: 0, Y: -1}:  {mirror: false, degrees: 90},
	{X: -1, Y: -1}: {mirror: true, degrees: -45},
	{X: -1, Y: 0}:  {mirror: true, degrees: 0},
	{X: -1, Y: 1}:  {mirror: true, degrees: 45},
	{X: 0, Y: 1}:   {mirror: false, degrees: -90},
	{X: 1, Y: 1}:   {mirror: false, degrees: -45},
}

// Atlas holds every sprite image, built once before the first frame.
type Atlas struct {
	birds     map[core.Vec]*ebiten.Image
	dead      *ebiten.Image
	beam      *ebiten.Image
	explosion [2]*ebiten.Image
}

// NewAtlas draws all sprites.
func NewAtlas() *Atlas {
	base := drawBird(colornames.Gold, false)

	a := &Atlas{
		birds: make(map[core.Vec]*ebiten.Image, len(headings)),
		dead:  drawBird(colornames.Gray, true),
		beam:  drawBeam(),
	}
	for dir, h := range headings {
		a.birds[dir] = rotated(base, h.mirror, h.degrees)
	}

	blast := drawExplosion()
	a.explosion[0] = blast
	a.explosion[1] = rotated(blast, true, 0)
	return a
}

// Bird returns the image for a facing direction given as a unit vector.
func (a *Atlas) Bird(dir core.Vec) *ebiten.Image {
	if img, ok := a.birds[dir]; ok {
		return img
	}
	return a.birds[core.Vec{X: 1, Y: 0}]
}

// rotated returns src, optionally mirrored, rotated counter-clockwise
// about its center onto an image large enough to hold it.
func rotated(src *ebiten.Image, mirror bool, degrees float64) *ebiten.Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	rw, rh := core.RotatedBounds(w, h, degrees)
	dst := ebiten.NewImage(rw, rh)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	if mirror {
		op.GeoM.Scale(-1, 1)
	}
	// Screen y grows downward, so a counter-clockwise turn is a negative angle.
	op.GeoM.Rotate(-degrees * math.Pi / 180)
	op.GeoM.Translate(float64(rw)/2, float64(rh)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}

// drawBird paints a round bird facing right.
func drawBird(body color.Color, dead bool) *ebiten.Image {
	img := ebiten.NewImage(birdSize, birdSize)
	const c = birdSize / 2

	vector.DrawFilledCircle(img, c-4, c+4, 34, body, true)
	vector.DrawFilledCircle(img, c-18, c+10, 14, colornames.Whitesmoke, true) // wing

	// Beak
	orange := colornames.Darkorange
	vector.FillRect(img, c+24, c-5, 10, 14, orange, true)
	vector.FillRect(img, c+34, c-2, 9, 8, orange, true)

	if dead {
		vector.StrokeLine(img, c+4, c-16, c+16, c-4, 3, colornames.Black, true)
		vector.StrokeLine(img, c+4, c-4, c+16, c-16, 3, colornames.Black, true)
	} else {
		vector.DrawFilledCircle(img, c+10, c-10, 6, colornames.White, true)
		vector.DrawFilledCircle(img, c+12, c-10, 3, colornames.Black, true)
	}
	return img
}

// drawBeam paints a glowing bar pointing right.
func drawBeam() *ebiten.Image {
	img := ebiten.NewImage(beamW, beamH)
	vector.FillRect(img, 0, 0, beamW, beamH, colornames.Deepskyblue, true)
	vector.FillRect(img, 2, beamH/2-2, beamW-4, 4, colornames.White, true)
	return img
}

// drawExplosion paints a lopsided burst so its mirror image differs.
func drawExplosion() *ebiten.Image {
	img := ebiten.NewImage(explosionSize, explosionSize)
	const c = explosionSize / 2

	vector.DrawFilledCircle(img, c, c, 24, colornames.Orangered, true)
	vector.DrawFilledCircle(img, c+8, c-6, 16, colornames.Orange, true)
	vector.DrawFilledCircle(img, c+12, c-10, 8, colornames.Yellow, true)
	for i := range 8 {
		angle := float64(i) * math.Pi / 4
		r := float32(22 + 6*(i%2))
		x := c + r*float32(math.Cos(angle))
		y := c + r*float32(math.Sin(angle))
		vector.DrawFilledCircle(img, x, y, 4, colornames.Gold, true)
	}
	return img
}
