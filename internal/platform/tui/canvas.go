package tui

import (
	"github.com/vovakirdan/kokaton/internal/core"
)

// Glyphs used to draw sprites in terminal cells.
const (
	BirdFill      = '▒'
	DeadGlyph     = '✖'
	BombGlyph     = '●'
	ExplosionA    = '✹'
	ExplosionB    = '✸'
	beamFallback  = '•'
	birdFallback  = '@'
	explosionFill = '·'
)

// birdGlyphs points the bird's beak along its heading.
var birdGlyphs = map[core.Vec]rune{
	{X: 1, Y: 0}:   '▶',
	{X: 1, Y: -1}:  '◥',
	{X: 0, Y: -1}:  '▲',
	{X: -1, Y: -1}: '◤',
	{X: -1, Y: 0}:  '◀',
	{X: -1, Y: 1}:  '◣',
	{X: 0, Y: 1}:   '▼',
	{X: 1, Y: 1}:   '◢',
}

// beamGlyphs draws a beam as a line along its travel direction.
var beamGlyphs = map[core.Vec]rune{
	{X: 1, Y: 0}:   '─',
	{X: -1, Y: 0}:  '─',
	{X: 0, Y: 1}:   '│',
	{X: 0, Y: -1}:  '│',
	{X: 1, Y: -1}:  '╱',
	{X: -1, Y: 1}:  '╱',
	{X: -1, Y: -1}: '╲',
	{X: 1, Y: 1}:   '╲',
}

// ScaledCanvas draws a pixel viewport onto the top rows of a terminal
// screen, scaling both axes independently to fill the area.
type ScaledCanvas struct {
	screen *core.Screen
	vp     core.Viewport
	cols   int
	rows   int
}

// NewScaledCanvas maps vp onto the first rows of the screen.
func NewScaledCanvas(s *core.Screen, vp core.Viewport, rows int) *ScaledCanvas {
	c := &ScaledCanvas{screen: s, vp: vp}
	c.SetRows(rows)
	return c
}

// SetRows changes how many screen rows the viewport occupies, for example
// after a terminal resize.
func (c *ScaledCanvas) SetRows(rows int) {
	c.cols = c.screen.Width()
	c.rows = core.Clamp(rows, 0, c.screen.Height())
}

// Rows returns the number of rows the viewport occupies.
func (c *ScaledCanvas) Rows() int {
	return c.rows
}

// cellX converts a viewport x coordinate to a column.
func (c *ScaledCanvas) cellX(x int) int {
	return floorDiv(x*c.cols, c.vp.W)
}

// cellY converts a viewport y coordinate to a row.
func (c *ScaledCanvas) cellY(y int) int {
	return floorDiv(y*c.rows, c.vp.H)
}

// CellRect returns the cells covered by a viewport rectangle, clipped to
// the canvas. Anything non-empty covers at least one cell.
func (c *ScaledCanvas) CellRect(r core.Rect) core.Rect {
	x0, y0 := c.cellX(r.X), c.cellY(r.Y)
	x1, y1 := c.cellX(r.Right()-1), c.cellY(r.Bottom()-1)
	x1, y1 = core.Max(x0, x1), core.Max(y0, y1)

	x0, x1 = core.Max(x0, 0), core.Min(x1, c.cols-1)
	y0, y1 = core.Max(y0, 0), core.Min(y1, c.rows-1)
	if x1 < x0 || y1 < y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}

// CellAt returns the cell containing a viewport point.
func (c *ScaledCanvas) CellAt(x, y int) (int, int) {
	return c.cellX(x), c.cellY(y)
}

// Blit draws a sprite over the cells covering at.
func (c *ScaledCanvas) Blit(s core.Sprite, at core.Rect) {
	cells := c.CellRect(at)
	if cells.W == 0 || cells.H == 0 {
		return
	}
	cx, cy := cells.Center()

	switch s.Kind {
	case core.SpriteBird:
		c.screen.DrawRect(cells, BirdFill, core.ColorYellow)
		c.screen.SetCell(cx, cy, glyphOr(birdGlyphs, s.Dir, birdFallback), core.ColorBrightYellow)
	case core.SpriteBirdDead:
		c.screen.DrawRect(cells, BirdFill, core.ColorGray)
		c.screen.SetCell(cx, cy, DeadGlyph, core.ColorBrightRed)
	case core.SpriteBeam:
		c.screen.DrawRect(cells, glyphOr(beamGlyphs, s.Dir, beamFallback), core.ColorBrightCyan)
	case core.SpriteBomb:
		// Bombs are smaller than a cell at typical sizes; one glyph at the center.
		bx, by := c.CellAt(at.Center())
		if bx >= 0 && bx < c.cols && by >= 0 && by < c.rows {
			c.screen.SetCell(bx, by, BombGlyph, s.Color)
		}
	case core.SpriteExplosion:
		glyph, fill := ExplosionA, core.ColorOrange
		if s.Frame%2 == 1 {
			glyph, fill = ExplosionB, core.ColorBrightYellow
		}
		c.screen.DrawRect(cells, explosionFill, fill)
		c.screen.SetCell(cx, cy, glyph, fill)
	}
}

// Text draws a label whose top-left corner is at viewport point (x, y).
func (c *ScaledCanvas) Text(x, y int, text string, col core.Color) {
	cx, cy := c.CellAt(x, y)
	if cy < 0 || cy >= c.rows {
		return
	}
	c.screen.DrawTextColor(cx, cy, text, col)
}

func glyphOr(table map[core.Vec]rune, dir core.Vec, fallback rune) rune {
	if g, ok := table[dir]; ok {
		return g
	}
	return fallback
}

// floorDiv divides rounding toward negative infinity so that points just
// left of or above the viewport map outside the canvas.
func floorDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
