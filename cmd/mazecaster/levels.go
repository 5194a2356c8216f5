package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazecaster/internal/core"
	"github.com/vovakirdan/mazecaster/internal/games/maze"
	mazecore "github.com/vovakirdan/mazecaster/internal/games/maze/core"
	"github.com/vovakirdan/mazecaster/internal/games/maze/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List built-in and custom levels",
	Long: `List every playable level. Levels from --levels override built-in
levels with the same ID.

Examples:
  mazecaster levels
  mazecaster levels --levels ./levels`,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	catalog, err := levels.Catalog(maze.GetLevelsDir())
	if err != nil {
		return err
	}

	maxIDLen := 2
	for _, l := range catalog {
		maxIDLen = core.Max(maxIDLen, len(l.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-7s  %-7s  %s\n", maxIDLen, "ID", "Size", "Mirages", "Name")
	fmt.Fprintf(out, "  %-*s  %-7s  %-7s  %s\n", maxIDLen, "--", "----", "-------", "----")
	for _, l := range catalog {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		mirages := "-"
		if tiles, err := l.ToTileMap(); err == nil {
			mirages = fmt.Sprintf("%d", tiles.Count(mazecore.TerrainMirage))
		}
		marker := " "
		if l.ID == maze.GetLevel() {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-*s  %-7s  %-7s  %s\n", marker, maxIDLen, l.ID, size, mirages, l.Name)
	}
	return nil
}
