package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shmup/internal/games/shmup"
	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Play back a recorded session headless",
	Long: `Feed a recorded session to a fresh game without a terminal UI and
print the outcome. The game is rebuilt with the recorded mode, seed,
config path and difficulty, so the result matches the original run as
long as the config file is unchanged. Recordings that end with a state
hash are checked against it and the command fails if playback diverged.

Examples:
  shmup play --record run.replay
  shmup replay run.replay`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	logger, closeLog := mustLogger(os.Stderr)
	defer closeLog()

	r, err := replay.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer r.Close()

	h := r.Header()
	shmup.SetConfigPath(h.ConfigPath)
	shmup.SetDifficultyPreset(h.Difficulty)

	game, err := registry.Create(h.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Debug("replay started", "mode", h.Mode, "seed", h.Seed)
	res, err := replay.Run(ctx, r, game)
	diverged := errors.Is(err, replay.ErrDiverged)
	if err != nil && !diverged {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Mode:      %s\n", h.Mode)
	fmt.Printf("Seed:      %d\n", h.Seed)
	fmt.Printf("Ticks:     %d\n", res.Ticks)
	fmt.Printf("Score:     %d\n", res.State.Score)
	fmt.Printf("Wave:      %d\n", res.State.Wave)
	fmt.Printf("Game over: %v\n", res.State.GameOver)

	if g, ok := game.(*shmup.Game); ok {
		snap := g.Snapshot()
		fmt.Printf("Enemies:   %d\n", snap.Enemies)
		fmt.Printf("Bullets:   %d enemy, %d player\n", snap.EnemyBullets, snap.PlayerBullets)
		fmt.Printf("Hash:      %016x\n", snap.Hash())
	}

	switch {
	case diverged:
		fmt.Printf("Verified:  no (%v)\n", err)
		os.Exit(1)
	case res.Verified:
		fmt.Println("Verified:  yes")
	default:
		fmt.Println("Verified:  no trailer")
	}
}
