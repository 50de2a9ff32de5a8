package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 rounds for the given variant (default: plus).

Examples:
  snake scores
  snake scores classic
  snake scores -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all variants in a table")
}

func runScores(cmd *cobra.Command, args []string) {
	variantID := registry.DefaultVariant
	if len(args) == 1 {
		variantID = args[0]
	}

	variant, err := registry.Get(variantID)
	if err != nil {
		fail("unknown variant %q. Run 'snake list' to see available variants.", variantID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, variant.ID, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	scores, err := store.TopScores(variant.ID, 10)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", variant.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", variant.ID)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-5s  %-18s  %-12s  %s\n", "Rank", "Score", "Length", "Turns", "Ended", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-5s  %-18s  %-12s  %s\n", "----", "-----", "------", "-----", "-----", "------", "----")

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-5d  %-6d  %-5d  %-18s  %-12s  %s\n",
			i+1, e.Score, e.Length, e.Turns, e.Reason, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(variant.ID); err == nil {
		fmt.Printf("Best: %d  Rounds: %d  Average: %.1f  Longest snake: %d\n",
			stats.HighScore, stats.Rounds, stats.AvgScore, stats.MaxLength)
	}
}
