package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/kokaton.yaml
var defaultKokatonYAML []byte

// DefaultKokatonConfig returns the default session configuration.
func DefaultKokatonConfig() KokatonConfig {
	return KokatonConfig{
		Viewport: ViewportConfig{
			Width:  1100,
			Height: 650,
		},
		TickRate:  50,
		DeathHold: time.Second,
		Actor: ActorConfig{
			SpawnX: 300,
			SpawnY: 200,
			Width:  90,
			Height: 90,
			Step:   5,
		},
		Beam: BeamConfig{
			Width:  40,
			Height: 12,
		},
		Bombs: BombConfig{
			Count:  5,
			Radius: 10,
			Color:  "red",
			Speed:  5,
		},
		Explosion: ExplosionConfig{
			Lifetime: 10,
			Width:    60,
			Height:   60,
		},
		Score: ScoreConfig{
			Increment: 1,
			X:         30,
			Y:         600, // 50px above the bottom edge
			Color:     "blue",
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultKokatonYAML
}
