package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazecaster/internal/core"
	"github.com/vovakirdan/mazecaster/internal/games/maze"
	"github.com/vovakirdan/mazecaster/internal/platform/tui"
	"github.com/vovakirdan/mazecaster/internal/registry"
	"github.com/vovakirdan/mazecaster/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a maze variant",
	Long: `Start playing the specified variant (default: maze).

Variants:
  maze          - Find the doorway out; some walls are only mirages
  maze_classic  - Free roaming with an overhead map toggle

Controls:
  W/Up, S/Down   - Walk forward / back
  A/Left, D/Right - Turn
  Space          - Jump
  M/Z            - Toggle map (classic)
  P              - Pause
  R              - Restart
  Esc/B          - Quit when paused or escaped
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Examples:
  mazecaster play
  mazecaster play maze --level mirage
  mazecaster play maze_classic --difficulty easy
  mazecaster play --levels ./levels --level my_level`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := maze.IDFull
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'mazecaster list' to see available games", gameID)
	}

	logger, err := newLogger("mazecaster", true)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, runtimeConfig(), tui.GameOptions{Logger: logger})
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}
