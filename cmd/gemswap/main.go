// gemswap is a terminal tile-swapping puzzle played with the mouse.
//
// Usage:
//
//	gemswap list              - List available variants
//	gemswap play <variant>    - Play a variant
//	gemswap menu              - Start menu to pick variants interactively
//	gemswap serve             - Start SSH server for remote play
//	gemswap scores <variant>  - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.gemswap/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/gemswap/gemswap/internal/games/gems"
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
	Use:   "gemswap",
	Short: "Gemswap - A tile-swapping puzzle in your terminal",
	Long: `Gemswap is a terminal puzzle where you click tiles to swap adjacent
gems on a match-free board.

Available commands:
  list     - Show all available variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  gemswap list
  gemswap play gems
  gemswap play gems --preset large
  gemswap menu
  gemswap serve --ssh :2222
  gemswap scores gems`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gemswap/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
