package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gemswap/gemswap/internal/core"
	"github.com/gemswap/gemswap/internal/games/gems"
	"github.com/gemswap/gemswap/internal/platform/tui"
	"github.com/gemswap/gemswap/internal/registry"
	"github.com/gemswap/gemswap/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Mouse click - Select a tile, then swap with an adjacent tile
  P           - Pause
  R           - New board (swap count is kept)
  Q/Ctrl+C    - Quit

Board presets:
  small    - 6x6 board with 5 gem kinds
  classic  - 8x8 board with 6 gem kinds
  large    - 10x10 board with 7 gem kinds

Examples:
  gemswap play gems
  gemswap play gems_instant
  gemswap play gems --preset large
  gemswap play gems --config ./my-board.yaml
  gemswap play gems --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset: small, classic, large")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gemswap list' to see available variants.")
		os.Exit(1)
	}

	// Get terminal size
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

	// Set config path and preset before creation
	gems.SetConfigPath(flagConfig)
	gems.SetPreset(flagPreset)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating variant: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
