package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a session would use, after the config file
search and any flag overrides, as YAML. Redirect it to a file to start a
custom config.

Examples:
  kokaton config > ~/.kokaton/configs/kokaton.yaml
  kokaton config --bombs 12
  kokaton config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // Nothing to do if stdout is gone
		return
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data) //nolint:errcheck // Nothing to do if stdout is gone
}
