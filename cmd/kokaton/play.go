package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/games/kokaton"
	"github.com/vovakirdan/kokaton/internal/platform/tui"
)

var flagKeyHold time.Duration

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a session in the terminal.

Controls:
  Arrows/WASD  - Fly (keys stay held briefly after each press)
  Space        - Fire a beam
  Ctrl+S       - Save a text screenshot to ~/.kokaton/screenshots
  Q/Esc        - Quit

Terminals do not report key releases, so a direction counts as held for
--key-hold after its last press or auto-repeat.

Examples:
  kokaton play
  kokaton play --bombs 8 --seed 7
  kokaton play --key-hold 400ms`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().DurationVar(&flagKeyHold, "key-hold", tui.DefaultKeyHold, "How long a direction stays held after a key press")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	// The terminal belongs to the game, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     resolveSeed(flagSeed),
	}
	logger = sessionLogger(logger, "terminal")
	logger.Info("session start", "seed", rc.Seed, "fps", rc.TickRate, "bombs", cfg.Bombs.Count,
		"terminal", []int{width, height})

	start := time.Now()
	state, err := tui.Run(kokaton.New(cfg), rc, tui.Options{
		KeyHold:   flagKeyHold,
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
