package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
)

// overrides holds command-line values that replace config settings.
type overrides struct {
	fps      int // 0 keeps the config value
	bombs    int
	bombsSet bool
}

// loadConfig loads the session config and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.KokatonConfig, error) {
	cfg, err := config.LoadKokaton(flagConfig)
	if err != nil {
		return cfg, err
	}
	o := overrides{
		fps:      flagFPS,
		bombs:    flagBombs,
		bombsSet: cmd.Flags().Changed("bombs"),
	}
	return applyOverrides(cfg, o)
}

func applyOverrides(cfg config.KokatonConfig, o overrides) (config.KokatonConfig, error) {
	if o.fps > 0 {
		cfg.TickRate = o.fps
	}
	if o.bombsSet {
		cfg.Bombs.Count = o.bombs
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// resolveSeed returns the seed to play with; 0 picks one from the clock.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// newLogger builds the process logger. Logs go to the log file when one is
// given and to fallback otherwise.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "kokaton",
		Level:           level,
	})
	return logger, closeFn, nil
}

// sessionLogger tags every line with a fresh session id.
func sessionLogger(logger *log.Logger, platform string) *log.Logger {
	return logger.With("session", uuid.New().String(), "platform", platform)
}

// logSummary reports how a session ended.
func logSummary(logger *log.Logger, st core.GameState, elapsed time.Duration) {
	logger.Info("session over",
		"outcome", st.Outcome,
		"score", st.Score,
		"frames", st.Tick,
		"elapsed", elapsed.Round(time.Millisecond),
	)
}

// printSummary writes the result for the player after the screen is restored.
func printSummary(w io.Writer, st core.GameState) {
	switch st.Outcome {
	case core.OutcomeHit:
		fmt.Fprintf(w, "Game over! Score: %d\n", st.Score)
	default:
		fmt.Fprintf(w, "Bye! Score: %d\n", st.Score)
	}
}

// fail prints the error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
