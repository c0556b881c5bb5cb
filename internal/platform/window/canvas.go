package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/kokaton/internal/core"
)

// labelScale enlarges the 7×13 bitmap font to a readable score size.
const labelScale = 2

// palette maps game colors to screen colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       colornames.Black,
	core.ColorRed:           colornames.Red,
	core.ColorGreen:         colornames.Green,
	core.ColorYellow:        colornames.Yellow,
	core.ColorBlue:          colornames.Blue,
	core.ColorMagenta:       colornames.Magenta,
	core.ColorCyan:          colornames.Cyan,
	core.ColorWhite:         colornames.White,
	core.ColorBrightRed:     colornames.Tomato,
	core.ColorBrightGreen:   colornames.Lime,
	core.ColorBrightYellow:  colornames.Gold,
	core.ColorBrightBlue:    colornames.Dodgerblue,
	core.ColorBrightMagenta: colornames.Violet,
	core.ColorBrightCyan:    colornames.Aqua,
	core.ColorBrightWhite:   colornames.Whitesmoke,
	core.ColorOrange:        colornames.Orange,
	core.ColorGray:          colornames.Gray,
}

// rgba returns the screen color for a game color.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return colornames.Black
}

// imageCanvas draws sprites from the atlas onto an ebiten image.
type imageCanvas struct {
	dst   *ebiten.Image
	atlas *Atlas
	face  ebtext.Face
}

func newImageCanvas(dst *ebiten.Image, atlas *Atlas) *imageCanvas {
	return &imageCanvas{
		dst:   dst,
		atlas: atlas,
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// Blit draws the sprite so that it fills at.
func (c *imageCanvas) Blit(s core.Sprite, at core.Rect) {
	switch s.Kind {
	case core.SpriteBird:
		c.drawCentered(c.atlas.Bird(s.Dir), at, float64(at.W)/birdSize, float64(at.H)/birdSize, 0)
	case core.SpriteBirdDead:
		c.drawCentered(c.atlas.dead, at, float64(at.W)/birdSize, float64(at.H)/birdSize, 0)
	case core.SpriteBeam:
		// at is the rotated bounding box; recover the scale of the bar itself.
		rw, _ := core.RotatedBounds(beamW, beamH, s.Angle)
		scale := float64(at.W) / float64(max(rw, 1))
		c.drawCentered(c.atlas.beam, at, scale, scale, s.Angle)
	case core.SpriteBomb:
		cx, cy := at.Center()
		r := float32(min(at.W, at.H)) / 2
		vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), r, rgba(s.Color), true)
	case core.SpriteExplosion:
		img := c.atlas.explosion[s.Frame&1]
		c.drawCentered(img, at, float64(at.W)/explosionSize, float64(at.H)/explosionSize, 0)
	}
}

// drawCentered draws img scaled and rotated counter-clockwise about the
// center of at.
func (c *imageCanvas) drawCentered(img *ebiten.Image, at core.Rect, sx, sy, degrees float64) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	cx, cy := at.Center()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(sx, sy)
	if degrees != 0 {
		op.GeoM.Rotate(-degrees * math.Pi / 180)
	}
	op.GeoM.Translate(float64(cx), float64(cy))
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

// Text draws a label with its top-left corner at (x, y).
func (c *imageCanvas) Text(x, y int, text string, col core.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(labelScale, labelScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(rgba(col))
	ebtext.Draw(c.dst, text, c.face, op)
}
