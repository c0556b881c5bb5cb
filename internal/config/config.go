// Package config provides YAML-based session configuration loading for
// Fight Kokaton.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/kokaton/internal/core"
)

// KokatonConfig contains all session parameters.
type KokatonConfig struct {
	Viewport  ViewportConfig  `yaml:"viewport"`
	TickRate  int             `yaml:"tick_rate"`  // Frames per second
	DeathHold time.Duration   `yaml:"death_hold"` // How long the fatal frame stays on screen
	Actor     ActorConfig     `yaml:"actor"`
	Beam      BeamConfig      `yaml:"beam"`
	Bombs     BombConfig      `yaml:"bombs"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Score     ScoreConfig     `yaml:"score"`
}

// ViewportConfig defines the play area in pixels.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ActorConfig defines the player character.
type ActorConfig struct {
	SpawnX int `yaml:"spawn_x"` // Center at session start
	SpawnY int `yaml:"spawn_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Step   int `yaml:"step"` // Per-axis movement per frame for each held key
}

// BeamConfig defines the unrotated projectile sprite size.
type BeamConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BombConfig defines the obstacle pool.
type BombConfig struct {
	Count  int    `yaml:"count"`
	Radius int    `yaml:"radius"`
	Color  string `yaml:"color"`
	Speed  int    `yaml:"speed"` // Per-axis velocity magnitude
}

// ExplosionConfig defines the destruction effect.
type ExplosionConfig struct {
	Lifetime int `yaml:"lifetime"` // Frames
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
}

// ScoreConfig defines the score counter and its label.
type ScoreConfig struct {
	Increment int    `yaml:"increment"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Color     string `yaml:"color"`
}

// ViewportSize returns the viewport as a core value.
func (c KokatonConfig) ViewportSize() core.Viewport {
	return core.Viewport{W: c.Viewport.Width, H: c.Viewport.Height}
}

// Validate checks that every parameter yields a playable session.
// All problems are reported together.
func (c KokatonConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("viewport.width", c.Viewport.Width)
	positive("viewport.height", c.Viewport.Height)
	positive("tick_rate", c.TickRate)
	if c.DeathHold < 0 {
		errs = append(errs, fmt.Errorf("death_hold must not be negative, got %s", c.DeathHold))
	}

	positive("actor.width", c.Actor.Width)
	positive("actor.height", c.Actor.Height)
	positive("actor.step", c.Actor.Step)
	spawn := core.RectAt(c.Actor.SpawnX, c.Actor.SpawnY, c.Actor.Width, c.Actor.Height)
	if c.Viewport.Width > 0 && c.Viewport.Height > 0 && !core.InBounds(spawn, c.ViewportSize()) {
		errs = append(errs, fmt.Errorf("actor at (%d, %d) does not fit inside the %dx%d viewport",
			c.Actor.SpawnX, c.Actor.SpawnY, c.Viewport.Width, c.Viewport.Height))
	}

	positive("beam.width", c.Beam.Width)
	positive("beam.height", c.Beam.Height)

	if c.Bombs.Count < 0 {
		errs = append(errs, fmt.Errorf("bombs.count must not be negative, got %d", c.Bombs.Count))
	}
	positive("bombs.radius", c.Bombs.Radius)
	positive("bombs.speed", c.Bombs.Speed)
	if _, ok := core.ParseColor(c.Bombs.Color); !ok {
		errs = append(errs, fmt.Errorf("bombs.color: unknown color %q", c.Bombs.Color))
	}

	positive("explosion.lifetime", c.Explosion.Lifetime)
	positive("explosion.width", c.Explosion.Width)
	positive("explosion.height", c.Explosion.Height)

	positive("score.increment", c.Score.Increment)
	if _, ok := core.ParseColor(c.Score.Color); !ok {
		errs = append(errs, fmt.Errorf("score.color: unknown color %q", c.Score.Color))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
