// Package levels provides level loading for the maze.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/mazecaster/internal/games/maze/core"
	"github.com/vovakirdan/mazecaster/internal/games/maze/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultID is the level played when none is selected.
const DefaultID = "lighthouse"

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Codes    []uint8
	Start    core.Pose
	Metadata map[string]string
	FilePath string // Empty for built-in levels
}

// ToTileMap creates a TileMap from the level.
func (l *Level) ToTileMap() (*core.TileMap, error) {
	return core.NewTileMap(l.Width, l.Height, l.Codes)
}

// Validate checks that the level can be played: the start pose must be on
// an open cell and at least one doorway must exist.
func (l *Level) Validate() error {
	tiles, err := l.ToTileMap()
	if err != nil {
		return fmt.Errorf("level %s: %w", l.ID, err)
	}
	if t := tiles.Read(l.Start.X, l.Start.Y); t != core.TerrainOpen {
		return fmt.Errorf("level %s: start (%.2f, %.2f) is on %v", l.ID, l.Start.X, l.Start.Y, t)
	}
	if tiles.Count(core.TerrainDoorway) == 0 {
		return fmt.Errorf("level %s: no doorway", l.ID)
	}
	return nil
}

// Marshal encodes the level in the YAML file format.
func (l *Level) Marshal() ([]byte, error) {
	return formats.MarshalYAML(formats.Level{
		ID:       l.ID,
		Name:     l.Name,
		Width:    l.Width,
		Height:   l.Height,
		Codes:    l.Codes,
		Start:    l.Start,
		Metadata: l.Metadata,
	})
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortLevels(levels)
	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	level, err := parse(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	level.FilePath = path

	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// Builtin returns the levels shipped with the binary, sorted by ID.
func Builtin() []Level {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: reading embedded levels: %v", err))
	}

	var levels []Level
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("levels: reading %s: %v", e.Name(), err))
		}
		level, err := parse(data, filepath.Ext(e.Name()))
		if err != nil {
			panic(fmt.Sprintf("levels: embedded %s: %v", e.Name(), err))
		}
		levels = append(levels, level)
	}

	sortLevels(levels)
	return levels
}

// Catalog returns the built-in levels merged with those found in dir.
// A level in dir replaces a built-in one with the same ID.
// An empty dir yields only the built-ins.
func Catalog(dir string) ([]Level, error) {
	byID := make(map[string]Level)
	for _, lvl := range Builtin() {
		byID[lvl.ID] = lvl
	}

	if dir != "" {
		custom, err := NewLoader(dir).LoadAll()
		if err != nil {
			return nil, err
		}
		for _, lvl := range custom {
			byID[lvl.ID] = lvl
		}
	}

	levels := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		levels = append(levels, lvl)
	}
	sortLevels(levels)
	return levels, nil
}

// Find looks up id in the catalog for dir.
func Find(dir, id string) (Level, error) {
	levels, err := Catalog(dir)
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s (available: %s)", id, strings.Join(ids(levels), ", "))
}

func parse(data []byte, ext string) (Level, error) {
	parsed, err := parseByExtension(data, strings.ToLower(ext))
	if err != nil {
		return Level{}, err
	}

	level := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Codes:    parsed.Codes,
		Start:    parsed.Start,
		Metadata: parsed.Metadata,
	}
	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

func sortLevels(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

func ids(levels []Level) []string {
	out := make([]string, len(levels))
	for i, lvl := range levels {
		out[i] = lvl.ID
	}
	return out
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
