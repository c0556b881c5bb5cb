// Package window runs Fight Kokaton in a desktop window with Ebitengine.
package window

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/kokaton/internal/core"
)

// background fills the play area behind all sprites.
var background = color.RGBA{0xcd, 0xe8, 0xf6, 0xff}

// heldKeys are polled every frame for the held-direction snapshot.
var heldKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
}

// pressKeys produce one event on the frame they go down.
var pressKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionFire},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// Options configures a window session.
type Options struct {
	DeathHold time.Duration // How long the fatal frame stays on screen
	Logger    *log.Logger
}

// Runner adapts a core.Game to ebiten.Game.
type Runner struct {
	game      core.Game
	atlas     *Atlas
	config    core.RuntimeConfig
	opts      Options
	frame     core.InputFrame
	state     core.GameState
	holdTicks int // Frames left to show the fatal frame
	logger    *log.Logger
}

// NewRunner creates a runner and starts a new session of the game.
func NewRunner(game core.Game, cfg core.RuntimeConfig, opts Options) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	game.Reset(cfg)
	return &Runner{
		game:   game,
		config: cfg,
		opts:   opts,
		frame:  core.NewInputFrame(),
		state:  game.State(),
		logger: logger,
	}
}

// holdFrames converts the death hold to a whole number of frames.
func holdFrames(d time.Duration, tickRate int) int {
	if d <= 0 || tickRate <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds() * float64(tickRate)))
}

// Update polls input and advances the game by one frame.
func (r *Runner) Update() error {
	if r.state.GameOver {
		// The fatal frame stays up for the full hold; closing is ignored.
		if r.holdTicks > 0 {
			r.holdTicks--
			return nil
		}
		return ebiten.Termination
	}

	r.frame.Clear()
	for _, b := range heldKeys {
		if ebiten.IsKeyPressed(b.key) {
			r.frame.Hold(b.action)
		}
	}
	for _, b := range pressKeys {
		if inpututil.IsKeyJustPressed(b.key) {
			r.frame.Set(b.action)
		}
	}
	if ebiten.IsWindowBeingClosed() {
		r.frame.Set(core.ActionQuit)
	}

	return r.step()
}

// step feeds the current frame to the game.
func (r *Runner) step() error {
	result := r.game.Step(r.frame)
	r.state = result.State
	for _, ev := range result.Events {
		r.logger.Debug("event", "kind", ev.Kind, "x", ev.At.X, "y", ev.At.Y, "tick", result.State.Tick)
	}

	if !r.state.GameOver {
		return nil
	}
	if r.state.Outcome == core.OutcomeHit {
		r.holdTicks = holdFrames(r.opts.DeathHold, r.config.TickRate)
		return nil
	}
	return ebiten.Termination
}

// Draw renders the current frame.
func (r *Runner) Draw(screen *ebiten.Image) {
	if r.atlas == nil {
		r.atlas = NewAtlas()
	}
	screen.Fill(background)
	r.game.Render(newImageCanvas(screen, r.atlas))
}

// Layout keeps the logical screen at the game's viewport size and lets
// ebiten scale it to the window.
func (r *Runner) Layout(_, _ int) (int, int) {
	vp := r.game.Viewport()
	return vp.W, vp.H
}

// State returns the last observed game state.
func (r *Runner) State() core.GameState {
	return r.state
}

// Run plays one session in a window and returns its final state.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	vp := game.Viewport()
	ebiten.SetWindowSize(vp.W, vp.H)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TickRate)

	r := NewRunner(game, cfg, opts)
	if err := ebiten.RunGame(r); err != nil {
		return r.State(), fmt.Errorf("window: %w", err)
	}
	return r.State(), nil
}
