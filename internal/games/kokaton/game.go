// Package kokaton implements Fight Kokaton: a bird flies around the screen
// shooting beams at bouncing bombs, and the session ends when a bomb
// reaches the bird.
package kokaton

import (
	"math/rand"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
)

// Game implements core.Game for a single Fight Kokaton session.
type Game struct {
	cfg        config.KokatonConfig
	vp         core.Viewport
	bombColor  core.Color
	scoreColor core.Color

	rng        *rand.Rand
	bird       *Bird
	bombs      []*Bomb
	beams      []*Beam
	explosions []*Explosion
	score      *Score

	tick     int
	blasts   int // Explosions created this session
	gameOver bool
	outcome  core.Outcome
}

// New creates a game with the given session parameters.
// The configuration is expected to have passed Validate.
func New(cfg config.KokatonConfig) *Game {
	g := &Game{
		cfg: cfg,
		vp:  cfg.ViewportSize(),
	}
	g.bombColor, _ = core.ParseColor(cfg.Bombs.Color)
	g.scoreColor, _ = core.ParseColor(cfg.Score.Color)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "kokaton"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fight Kokaton"
}

// Viewport returns the play area in pixels.
func (g *Game) Viewport() core.Viewport {
	return g.vp
}

// Reset starts a new session. Bomb positions are drawn from an RNG seeded
// with cfg.Seed, so equal seeds and inputs replay identically.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	a := g.cfg.Actor
	g.bird = NewBird(a.SpawnX, a.SpawnY, a.Width, a.Height, a.Step)

	g.bombs = make([]*Bomb, 0, g.cfg.Bombs.Count)
	for range g.cfg.Bombs.Count {
		g.bombs = append(g.bombs, NewBomb(g.rng, g.vp, g.cfg.Bombs.Radius, g.cfg.Bombs.Speed, g.bombColor))
	}

	g.beams = nil
	g.explosions = nil
	g.score = NewScore(g.cfg.Score.X, g.cfg.Score.Y, g.scoreColor)

	g.tick = 0
	g.blasts = 0
	g.gameOver = false
	g.outcome = core.OutcomeNone
}

// Step advances the session by one frame.
//
// Order within a frame: quit, fire, move the bird, move bombs and beams,
// resolve beam hits, check the bird, age explosions, drop beams that left
// the screen. A quit or a fatal hit ends the frame early.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event

	if in.Has(core.ActionQuit) {
		g.finish(core.OutcomeQuit)
		events = append(events, core.Event{Kind: core.EventQuit, At: center(g.bird.Rect())})
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionFire) {
		p := NewBeam(g.bird, g.cfg.Beam.Width, g.cfg.Beam.Height)
		g.beams = append(g.beams, p)
		events = append(events, core.Event{Kind: core.EventBeamFired, At: center(p.Rect())})
	}

	g.bird.Update(in, g.vp)
	for _, o := range g.bombs {
		o.Update(g.vp)
	}
	for _, p := range g.beams {
		p.Update()
	}

	events = g.resolveBeamHits(events)

	for _, o := range g.bombs {
		if g.bird.Rect().Intersects(o.Rect()) {
			g.bird.Kill()
			g.finish(core.OutcomeHit)
			events = append(events, core.Event{Kind: core.EventPlayerHit, At: center(g.bird.Rect())})
			return core.StepResult{State: g.State(), Events: events}
		}
	}

	for _, e := range g.explosions {
		e.Update()
	}
	g.explosions = filter(g.explosions, func(_ int, e *Explosion) bool { return e.Alive() })
	g.beams = filter(g.beams, func(_ int, p *Beam) bool { return core.InBounds(p.Rect(), g.vp) })

	g.tick++
	return core.StepResult{State: g.State(), Events: events}
}

// resolveBeamHits pairs every beam with at most one bomb. Each hit scores,
// leaves an explosion, and removes both parties once the scan is done.
func (g *Game) resolveBeamHits(events []core.Event) []core.Event {
	if len(g.beams) == 0 || len(g.bombs) == 0 {
		return events
	}

	spent := make([]bool, len(g.beams))
	destroyed := make([]bool, len(g.bombs))

	for i, p := range g.beams {
		for j, o := range g.bombs {
			if destroyed[j] || !p.Rect().Intersects(o.Rect()) {
				continue
			}
			spent[i], destroyed[j] = true, true
			g.score.Add(g.cfg.Score.Increment)
			g.explosions = append(g.explosions,
				NewExplosion(o, g.cfg.Explosion.Lifetime, g.cfg.Explosion.Width, g.cfg.Explosion.Height))
			g.blasts++
			events = append(events, core.Event{Kind: core.EventBombDestroyed, At: center(o.Rect())})
			break
		}
	}

	g.beams = filter(g.beams, func(i int, _ *Beam) bool { return !spent[i] })
	g.bombs = filter(g.bombs, func(j int, _ *Bomb) bool { return !destroyed[j] })
	return events
}

func (g *Game) finish(outcome core.Outcome) {
	g.gameOver = true
	g.outcome = outcome
}

// Render draws the session onto the canvas.
func (g *Game) Render(dst core.Canvas) {
	if g.bird == nil {
		return
	}

	dst.Blit(g.bird.Sprite(), g.bird.Rect())
	for _, o := range g.bombs {
		dst.Blit(o.Sprite(), o.Rect())
	}
	for _, p := range g.beams {
		dst.Blit(p.Sprite(), p.Rect())
	}
	for _, e := range g.explosions {
		dst.Blit(e.Sprite(), e.Rect())
	}
	g.score.Render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.score != nil {
		score = g.score.Value()
	}
	return core.GameState{
		Score:    score,
		Tick:     g.tick,
		GameOver: g.gameOver,
		Outcome:  g.outcome,
	}
}

// filter keeps the items for which keep returns true, reusing the backing array.
func filter[T any](items []T, keep func(int, T) bool) []T {
	out := items[:0]
	for i, it := range items {
		if keep(i, it) {
			out = append(out, it)
		}
	}
	clear(items[len(out):])
	return out
}

func center(r core.Rect) core.Vec {
	x, y := r.Center()
	return core.Vec{X: x, Y: y}
}
