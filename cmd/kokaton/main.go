// kokaton is the Fight Kokaton arcade game: fly the bird, shoot the
// bombs, and don't let them touch you.
//
// Usage:
//
//	kokaton [play]      - Play in the terminal
//	kokaton window      - Play in a desktop window
//	kokaton config      - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Session config YAML (default search: ~/.kokaton/configs, ./configs)
//	--fps <rate>        - Override tick rate (default from config: 50)
//	--seed <value>      - Set RNG seed for reproducible bomb placement
//	--bombs <n>         - Override number of bombs
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagBombs    int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kokaton",
	Short: "Fight Kokaton - shoot the bombs before they reach you",
	Long: `Fight Kokaton is a small arcade game. Fly the bird around the screen,
fire beams at the bouncing bombs, and score a point for every bomb you
destroy. The game ends when a bomb touches the bird.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  kokaton
  kokaton window --bombs 10
  kokaton play --seed 42 --log-file kokaton.log --log-level debug
  kokaton config --config ./my-kokaton.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagBombs, "bombs", 0, "Number of bombs override")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
