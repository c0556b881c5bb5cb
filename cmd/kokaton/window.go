package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/games/kokaton"
	"github.com/vovakirdan/kokaton/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a session in a desktop window at the full 1100x650 resolution.

Controls:
  Arrows/WASD  - Fly
  Space        - Fire a beam
  Q/Esc        - Quit

Examples:
  kokaton window
  kokaton window --fps 60 --bombs 10`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	rc := core.RuntimeConfig{
		TickRate: cfg.TickRate,
		Seed:     resolveSeed(flagSeed),
	}
	logger = sessionLogger(logger, "window")
	logger.Info("session start", "seed", rc.Seed, "fps", rc.TickRate, "bombs", cfg.Bombs.Count)

	start := time.Now()
	state, err := window.Run(kokaton.New(cfg), rc, window.Options{
		DeathHold: cfg.DeathHold,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("session failed", "error", err)
		fail("%v", err)
	}

	logSummary(logger, state, time.Since(start))
	printSummary(os.Stdout, state)
}
