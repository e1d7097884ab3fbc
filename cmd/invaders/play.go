package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a match right away",
	Long: `Skip the menu and start playing.

Controls:
  Arrows/WASD  - Move the ship
  Space/F      - Fire (hold to keep shooting)
  N            - Fire the nuke when charged
  Mouse        - Press to fire, drag to steer
  P            - Pause
  R/Enter      - Restart (after game over)
  Esc          - Leave (after game over or while paused)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower enemies, more lives
  normal - Config values as-is (flat enemy speed by default)
  hard   - Enemies speed up every wave, fewer lives
  fixed  - No speed-up, even if the config enables it

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --seed 42 --fps 30
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	game, err := registry.Create(invaders.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	deps, release, err := localDeps()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, deps, runtimeConfig())

	// Release before potential exit
	release()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
