package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagLimit  int
	flagShowID int64
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished matches.

Each saved match keeps its final state; --show prints it.

Examples:
  invaders scores
  invaders scores --limit 20
  invaders scores --show 3
  invaders scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches to list")
	scoresCmd.Flags().Int64Var(&flagShowID, "show", 0, "Print the final state of a saved match")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved matches")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagClear:
		err = store.ClearScores(invaders.GameID)
		if err == nil {
			fmt.Println("Scores cleared.")
		}
	case flagShowID > 0:
		err = showMatch(store, flagShowID)
	default:
		err = listMatches(store)
	}

	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listMatches(store *storage.Store) error {
	matches, err := store.TopMatches(invaders.GameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := invaders.GameID
	if game, err := registry.Create(invaders.GameID); err == nil {
		title = game.Title()
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-8s  %-4s  %-5s  %s\n", "Rank", "ID", "Score", "Wave", "Kills", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-4s  %-5s  %s\n", "----", "--", "-----", "----", "-----", "----")

	for i, m := range matches {
		fmt.Printf("  %-4d  %-6d  %-8d  %-4d  %-5d  %s\n",
			i+1, m.ID, m.Score, m.Wave, m.Kills, m.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(invaders.GameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Avg: %.0f  Best wave: %d  Kills: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestWave, stats.TotalKills)
	}
	return nil
}

func showMatch(store *storage.Store, id int64) error {
	data, err := store.MatchSnapshot(id)
	if err != nil {
		return fmt.Errorf("loading match %d: %w", id, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("match %d has no saved state", id)
	}

	snap, err := invaders.DecodeSnapshot(data)
	if err != nil {
		return fmt.Errorf("decoding match %d: %w", id, err)
	}

	m := snap.Match
	fmt.Printf("Match #%d\n\n", id)
	fmt.Printf("  Score      %d\n", m.Score)
	fmt.Printf("  Wave       %d (%d/%d destroyed)\n", m.Wave, m.DestroyedInWave, m.PerWave)
	fmt.Printf("  Kills      %d\n", m.Kills)
	fmt.Printf("  Nukes used %d\n", m.NukesUsed)
	fmt.Printf("  Lasted     %d ticks\n", snap.Tick)

	fmt.Printf("  On field   %d enemies, %d shots, %d pickups\n",
		snap.Enemies(), snap.Projectiles(), snap.Pickups())
	fmt.Printf("  Hash       %016x\n", snap.Hash())
	return nil
}
