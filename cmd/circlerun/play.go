package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkarpov/circlerun/internal/core"
	"github.com/mkarpov/circlerun/internal/game"
	"github.com/mkarpov/circlerun/internal/platform/tui"
	"github.com/mkarpov/circlerun/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlacement  string
	flagFall       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Circle Run",
	Long: `Start the game.

Controls:
  Space/Up/W - Jump
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a screenshot

Difficulty presets:
  easy   - Wide gaps, short distances between walls
  normal - Balanced gaps and spacing
  hard   - Tight gaps, walls placed near the jump range limit

Examples:
  circlerun play
  circlerun play --difficulty easy
  circlerun play --seed 42 --difficulty hard
  circlerun play --config ./my-circlerun.yaml
  circlerun play --placement uniform --fall conservative`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagPlacement, "placement", "", "Gap placement policy: uniform, extreme")
	playCmd.Flags().StringVar(&flagFall, "fall", "", "Fall reachability policy: conservative, edge-jump")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size for the render buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply config overrides before the game loads its settings
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)
	game.SetPlacementPolicy(flagPlacement)
	game.SetFallPolicy(flagFall)

	g := game.New()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
