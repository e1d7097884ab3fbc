package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start at the title menu",
	Long: `Start at the title menu.

Use arrow keys or j/k to navigate, Enter to select, or click an item.
Starting a game plays a short loading transition. After a match you
return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  invaders menu
  invaders menu --fps 30
  invaders menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	deps, release, err := localDeps()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.RunSession(invaders.GameID, deps, runtimeConfig())
	release()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", runErr)
		os.Exit(1)
	}
}
