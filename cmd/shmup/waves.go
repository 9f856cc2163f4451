package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shmup/internal/games/shmup/logic"
)

var flagPositions bool

var wavesCmd = &cobra.Command{
	Use:   "waves [from] [to]",
	Short: "Print the enemy roster of each wave",
	Long: `Print the difficulty target and the allocated roster of waves from..to
(default 1..10). Rosters depend only on the wave number.

Examples:
  shmup waves
  shmup waves 5
  shmup waves 1 30 --positions`,
	Args: cobra.MaximumNArgs(2),
	Run:  runWaves,
}

func init() {
	wavesCmd.Flags().BoolVar(&flagPositions, "positions", false, "Print the spawn position of every enemy")
}

// waveRange parses the optional from/to arguments.
func waveRange(args []string) (from, to uint32, err error) {
	from, to = 1, 10
	if len(args) > 0 {
		v, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid wave %q: %w", args[0], err)
		}
		from, to = uint32(v), uint32(v)
	}
	if len(args) > 1 {
		v, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid wave %q: %w", args[1], err)
		}
		to = uint32(v)
	}
	if to < from {
		return 0, 0, fmt.Errorf("wave range %d..%d is empty", from, to)
	}
	return from, to, nil
}

func runWaves(_ *cobra.Command, args []string) {
	from, to, err := waveRange(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-5s  %-6s  %-5s  %-5s  %s\n", "Wave", "Target", "Total", "Count", "Roster")
	fmt.Printf("  %-5s  %-6s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "------")

	for w := from; ; w++ {
		roster := logic.Allocate(w)
		types := make([]logic.EnemyType, len(roster))
		names := make([]string, len(roster))
		for i, e := range roster {
			types[i] = e.Type
			names[i] = e.Type.String()
			if flagPositions {
				names[i] += fmt.Sprintf("@(%.0f,%.0f)", e.Position.X, e.Position.Y)
			}
		}

		fmt.Printf("  %-5d  %-6d  %-5d  %-5d  %s\n",
			w, logic.TargetDifficulty(w), logic.Accumulated(types), len(roster), strings.Join(names, " "))

		// Guards the uint32 wrap when to is the maximum wave
		if w == to {
			break
		}
	}
}
