// mazecaster is a first-person raycast maze for the terminal.
//
// Usage:
//
//	mazecaster list              - List available game variants
//	mazecaster play [game]       - Play a variant (default: maze)
//	mazecaster menu              - Pick variant and level interactively
//	mazecaster serve             - Start SSH server for remote play
//	mazecaster scores <game>     - Show escape times for a variant
//	mazecaster levels            - List built-in and custom levels
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.mazecaster/scores.db)
//	--config <path>       - Maze config YAML
//	--difficulty <name>   - easy, normal or hard
//	--levels <dir>        - Directory of custom YAML levels
//	--level <id>          - Level to start on
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazecaster/internal/config"
	"github.com/vovakirdan/mazecaster/internal/games/maze"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLevel      string
	flagLogLevel   string
	flagLogFile    string

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazecaster",
	Short: "Mazecaster - find the way out of a raycast maze in your terminal",
	Long: `Mazecaster renders a first-person maze with one ray per terminal column.
Walk the corridors, jump, and find the doorway out. Watch for mirages.

Available commands:
  list     - Show the game variants
  play     - Play a variant directly
  menu     - Interactive variant and level picker
  serve    - Start SSH server for remote play
  scores   - View escape scores
  levels   - List levels

Examples:
  mazecaster play
  mazecaster play maze_classic --level lighthouse
  mazecaster menu --levels ./my-levels
  mazecaster serve --ssh :2222
  mazecaster scores maze`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.StringVar(&flagDBPath, "db", "~/.mazecaster/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of custom YAML levels")
	pf.StringVar(&flagLevel, "level", "", "Level ID to play (default: lighthouse)")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// applyGlobalFlags validates shared flags and hands the selection to the game.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	maze.SetConfigPath(flagConfig)
	maze.SetDifficulty(preset)
	maze.SetLevelsDir(flagLevelsDir)
	maze.SetLevel(flagLevel)
	return nil
}

// newLogger builds the process logger. Full-screen commands pass
// interactive=true; without --log-file their logs are discarded so they
// cannot tear the alternate screen.
func newLogger(prefix string, interactive bool) (*log.Logger, error) {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		if logFile == nil {
			if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
				return nil, fmt.Errorf("--log-file: %w", err)
			}
			f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, fmt.Errorf("--log-file: %w", err)
			}
			logFile = f
		}
		w = logFile
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	log.SetDefault(logger)
	return logger, nil
}
