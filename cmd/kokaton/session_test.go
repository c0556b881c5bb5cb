package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
)

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name      string
		o         overrides
		wantFPS   int
		wantBombs int
		wantErr   bool
	}{
		{"none", overrides{}, 50, 5, false},
		{"fps", overrides{fps: 30}, 30, 5, false},
		{"bombs", overrides{bombs: 9, bombsSet: true}, 50, 9, false},
		{"no bombs", overrides{bombs: 0, bombsSet: true}, 50, 0, false},
		{"unset bombs ignored", overrides{bombs: 9}, 50, 5, false},
		{"negative bombs", overrides{bombs: -1, bombsSet: true}, 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := applyOverrides(config.DefaultKokatonConfig(), tc.o)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.TickRate != tc.wantFPS || cfg.Bombs.Count != tc.wantBombs {
				t.Errorf("got fps=%d bombs=%d, expected fps=%d bombs=%d",
					cfg.TickRate, cfg.Bombs.Count, tc.wantFPS, tc.wantBombs)
			}
		})
	}
}

func TestResolveSeed(t *testing.T) {
	if got := resolveSeed(42); got != 42 {
		t.Errorf("resolveSeed(42) = %d", got)
	}
	if got := resolveSeed(0); got == 0 {
		t.Error("a zero seed should be replaced")
	}
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name    string
		st      core.GameState
		want    string
	}{
		{"hit", core.GameState{Score: 4, Outcome: core.OutcomeHit}, "Game over! Score: 4\n"},
		{"quit", core.GameState{Score: 2, Outcome: core.OutcomeQuit}, "Bye! Score: 2\n"},
		{"quit before scoring", core.GameState{Outcome: core.OutcomeQuit}, "Bye! Score: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			printSummary(&buf, tc.st)
			if buf.String() != tc.want {
				t.Errorf("got %q, expected %q", buf.String(), tc.want)
			}
		})
	}
}

func TestSessionLoggerTagsLines(t *testing.T) {
	var buf bytes.Buffer
	sessionLogger(log.New(&buf), "window").Info("hello")
	sessionLogger(log.New(&buf), "window").Info("hello")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %q", buf.String())
	}
	if lines[0] == lines[1] {
		t.Error("every session should get its own id")
	}
	if out := lines[0]; !strings.Contains(out, "session=") || !strings.Contains(out, "platform=window") {
		t.Errorf("log line missing session tags: %q", out)
	}
}
