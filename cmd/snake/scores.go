package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show stored best scores",
	Long: `Display the best score of every variant, or of one variant.

Examples:
  snake scores
  snake scores snake_wrap
  snake scores snake --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stored best score of the given variant")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a variant")
			os.Exit(1)
		}
		printAllScores(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearHighScore(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared best score for %s\n", gameID)
		return
	}

	best, err := store.HighScore(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving score: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Best %s: %d\n", gameID, best)
}

func printAllScores(store *storage.Store) {
	entries, err := store.AllHighScores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Println("Best Scores")
	fmt.Println()
	fmt.Printf("  %-12s  %-6s  %s\n", "Variant", "Score", "Date")
	fmt.Printf("  %-12s  %-6s  %s\n", "-------", "-----", "----")
	for _, e := range entries {
		fmt.Printf("  %-12s  %-6d  %s\n", e.GameID, e.Score, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
