package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/games/shmup"
	"github.com/vovakirdan/tui-shmup/internal/platform/tui"
	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/replay"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRecord     string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: shmup).

Controls:
  Arrows/WASD  - Move
  Space/Z      - Fire
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Extra lives and longer invulnerability
  normal - Default lives, difficulty ramps with the wave
  hard   - Fewer lives, starts at wave 2 or later
  fixed  - No progression, stays at config's initial level

A session can be recorded with --record and played back later with
'shmup replay'. Recording stops at the first game over.

Examples:
  shmup play
  shmup play shmup_rush
  shmup play --difficulty hard
  shmup play --config ./my-shmup.yaml
  shmup play --seed 42 --record run.replay`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the session to this replay file")
}

// terminalRuntime builds the runtime config from the terminal size and global flags.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) {
	mode := "shmup"
	if len(args) > 0 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'shmup list' to see available modes.")
		os.Exit(1)
	}

	// The alt screen owns stdout, so logs only go to --log-file
	logger, closeLog := mustLogger(io.Discard)
	defer closeLog()

	cfg := terminalRuntime()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	shmup.SetConfigPath(flagConfig)
	shmup.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{Logger: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	opts.Store = store

	if flagRecord != "" {
		rec, recErr := replay.Create(flagRecord, replay.Header{
			Mode:       mode,
			Seed:       cfg.Seed,
			ConfigPath: flagConfig,
			Difficulty: flagDifficulty,
			TickRate:   cfg.TickRate,
			ScreenW:    cfg.ScreenW,
			ScreenH:    cfg.ScreenH,
		})
		if recErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", recErr)
			os.Exit(1)
		}
		opts.Recorder = rec
	}

	runErr := tui.Run(game, cfg, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if flagRecord != "" {
		fmt.Printf("Replay saved to %s (seed %d)\n", flagRecord, cfg.Seed)
	}
}
