package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing Snake. The game starts paused.

Controls:
  W/A/S/D, arrows - Steer
  Space           - Start / pause
  T               - Toggle walls (solid or wrap-around)
  R               - Restart (after game over)
  Esc/B           - Quit to shell
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slower start, speeds up every 20 points
  normal - Default speed and progression
  hard   - Faster start, speeds up every 20 points
  fixed  - No progression

Examples:
  snake play
  snake play snake_wrap
  snake play --difficulty hard --no-walls
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := string(snake.VariantClassic)
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	store := openStore()
	logger.Info("game started", "game", gameID)
	runErr := tui.Run(game, store, logger, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
