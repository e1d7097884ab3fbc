package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game configuration as YAML.

Save it to one of the search paths and edit it to tune the game:
  ~/.invaders/configs/invaders.yaml
  ./configs/invaders.yaml

Examples:
  invaders config > ~/.invaders/configs/invaders.yaml
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		data := config.GetDefaultYAML(invaders.GameID)
		if data == nil {
			fmt.Fprintln(os.Stderr, "Error: no default config")
			os.Exit(1)
		}
		os.Stdout.Write(data)
	},
}
