// invaders is a terminal Space Invaders shooter.
//
// Usage:
//
//	invaders play            - Play right away
//	invaders menu            - Start at the title menu
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show the best finished matches
//	invaders config          - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.invaders/scores.db)
//	--config <path>       - Load game tuning from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Write a log file
//	--sound               - Enable sound effects
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagLogLevel   string
	flagSound      bool
)

func main() {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `A single-player space shooter for the terminal.

Enemies fall in waves. Shoot them before they reach the bottom,
collect power-ups and save the nuke for a bad moment.

Available commands:
  play     - Start a match right away
  menu     - Title menu with high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default game config

Examples:
  invaders menu
  invaders play --difficulty hard
  invaders serve --ssh :2222
  invaders scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagConfig != "" {
			if _, err := config.LoadInvaders(flagConfig); err != nil {
				return err
			}
		}
		invaders.SetConfigPath(flagConfig)
		invaders.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound effects (or set INVADERS_AUDIO_ENABLED)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
