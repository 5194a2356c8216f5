package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazecaster/internal/platform/tui"
	"github.com/vovakirdan/mazecaster/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and level from a menu",
	Long: `Start mazecaster in interactive menu mode.

Use arrow keys or j/k to pick a variant and left/right or h/l to pick a
level. After a run, press Esc or B on the pause or victory screen to
return to the menu.

Controls:
  Up/Down/j/k     - Choose variant
  Left/Right/h/l  - Choose level
  Enter/Space     - Play
  Tab             - Scores and journal
  Q               - Quit

Examples:
  mazecaster menu
  mazecaster menu --fps 30
  mazecaster menu --levels ./levels`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("mazecaster", true)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(store, runtimeConfig(), tui.GameOptions{Logger: logger})
}
