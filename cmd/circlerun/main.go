// circlerun is a side-scrolling terminal arcade game. A circle runs to the
// right through an endless field of wall obstacles, and every gap the
// generator places is guaranteed to be reachable given the jump physics.
//
// Usage:
//
//	circlerun play              - Play the game
//	circlerun scores            - Show high scores
//	circlerun simulate          - Run a headless deterministic simulation
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.circlerun/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "circlerun",
	Short: "Circle Run - A side-scrolling jump game for your terminal",
	Long: `Circle Run is a terminal side-scroller. Guide a circle through
gaps in endless walls. Every gap is placed so that it can actually be
reached with the jump physics, no matter the difficulty.

Available commands:
  play      - Start the game
  scores    - View high scores
  simulate  - Run a headless simulation for a given seed

Examples:
  circlerun play
  circlerun play --difficulty hard
  circlerun play --seed 42
  circlerun scores
  circlerun simulate --seed 42 --ticks 3600`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.circlerun/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
