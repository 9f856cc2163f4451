package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-shmup/internal/config"
)

var flagPrintDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the configuration a game would start with, after the search order
and the difficulty preset are applied. Use --print-default to get the
built-in file as a starting point for ~/.shmup/configs/shmup.yaml.

Examples:
  shmup config
  shmup config --difficulty hard
  shmup config --print-default > ~/.shmup/configs/shmup.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagPrintDefault, "print-default", false, "Print the built-in default config file")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) {
	var err error
	if flagPrintDefault {
		_, err = os.Stdout.Write(config.DefaultYAML())
	} else {
		err = writeEffectiveConfig(os.Stdout, flagConfig, flagDifficulty)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeEffectiveConfig loads the config the way a game does and writes it as YAML.
func writeEffectiveConfig(w io.Writer, path, difficulty string) error {
	cfg, err := config.LoadShmup(path)
	if err != nil {
		return err
	}
	if difficulty != "" {
		preset, ok := config.ParseDifficultyPreset(difficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q", difficulty)
		}
		config.ApplyShmupPreset(&cfg, preset)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
