// Package maze provides the raycast maze for mazecaster.
// It adapts the pure simulation in maze/core to the registry.Game interface
// and draws it into the platform screen buffer.
package maze

import (
	"fmt"

	"github.com/chewxy/math32"

	platformcore "github.com/vovakirdan/mazecaster/internal/core"
	"github.com/vovakirdan/mazecaster/internal/config"
	"github.com/vovakirdan/mazecaster/internal/games/maze/core"
	"github.com/vovakirdan/mazecaster/internal/games/maze/levels"
	"github.com/vovakirdan/mazecaster/internal/registry"
)

// Registered game IDs.
const (
	IDFull    = "maze"
	IDClassic = "maze_classic"
)

// Save signal tokens.
const (
	TokenStarted = "started"
	TokenEscaped = "escaped"
)

const (
	minScreenW = 20
	minScreenH = 8

	maxScore = 10000
	minScore = 100
)

// Game implements the maze for both variants.
type Game struct {
	variant core.Variant
	levelID string
	cfg     config.MazeConfig
	level   levels.Level
	state   *core.State
	signal  platformcore.SaveSignal
	strips  []core.WallStrip

	// Host frame loop
	screenW  int
	screenH  int
	tickRate int

	// Status
	tick     uint64
	score    int
	gameOver bool
	paused   bool
	tooSmall bool
	loadErr  error
	prev     platformcore.Buttons
}

// Package-level selection, set by the CLI before games are created.
var (
	selectedConfigPath string
	selectedPreset     config.DifficultyPreset
	selectedLevel      = levels.DefaultID
	selectedLevelsDir  string
)

// SetConfigPath sets an explicit maze config file. Empty uses the search path.
func SetConfigPath(path string) {
	selectedConfigPath = path
}

// SetDifficulty sets the preset applied on top of the loaded config.
func SetDifficulty(preset config.DifficultyPreset) {
	selectedPreset = preset
}

// SetLevel selects the level by ID. Empty selects the default level.
func SetLevel(id string) {
	if id == "" {
		id = levels.DefaultID
	}
	selectedLevel = id
}

// GetLevel returns the selected level ID.
func GetLevel() string {
	return selectedLevel
}

// SetLevelsDir sets a directory of custom levels merged over the built-ins.
func SetLevelsDir(dir string) {
	selectedLevelsDir = dir
}

// GetLevelsDir returns the custom levels directory.
func GetLevelsDir() string {
	return selectedLevelsDir
}

func init() {
	registry.Register(IDFull, func() registry.Game {
		return New(core.VariantFull)
	})
	registry.Register(IDClassic, func() registry.Game {
		return New(core.VariantClassic)
	})
}

// New creates a maze game for the given variant.
func New(v core.Variant) *Game {
	return &Game{variant: v, levelID: selectedLevel}
}

// SelectLevel picks the level loaded by the next Reset.
// Empty selects the default level.
func (g *Game) SelectLevel(id string) {
	if id == "" {
		id = levels.DefaultID
	}
	g.levelID = id
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == core.VariantClassic {
		return IDClassic
	}
	return IDFull
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == core.VariantClassic {
		return "Maze (classic)"
	}
	return "Maze"
}

// AttachSaveSignal sets the sink for one-shot save tokens.
func (g *Game) AttachSaveSignal(sig platformcore.SaveSignal) {
	g.signal = sig
}

// Reset loads config and level and starts from the level's spawn pose.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tickRate = rc.TickRate
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.prev = 0
	g.loadErr = nil
	g.state = nil

	cfg, err := config.LoadMaze(selectedConfigPath)
	if err != nil {
		g.loadErr = err
		cfg = config.DefaultMazeConfig()
	}
	if selectedPreset != "" {
		config.ApplyMazePreset(&cfg, selectedPreset)
	}
	g.cfg = cfg

	lvl, err := levels.Find(selectedLevelsDir, g.levelID)
	if err != nil {
		g.loadErr = err
		return
	}
	tiles, err := lvl.ToTileMap()
	if err != nil {
		g.loadErr = fmt.Errorf("level %s: %w", lvl.ID, err)
		return
	}
	g.level = lvl

	g.state = core.NewState(tiles, core.Options{
		Variant: g.variant,
		Physics: physicsFromConfig(cfg),
		Caster:  casterFromConfig(cfg),
		Start:   lvl.Start,
		Columns: platformcore.Max(rc.ScreenW, 1),
	})
	g.checkSize()

	g.emit(TokenStarted)
}

// Resize adapts the ray buffer to a new screen size and keeps the run.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.state != nil {
		g.state.SetColumns(platformcore.Max(width, 1))
	}
	g.checkSize()
}

func (g *Game) checkSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.Buttons) platformcore.StepResult {
	pressed := in.Pressed(g.prev)
	g.prev = in

	if pressed.Has(platformcore.ButtonRestart) && g.state != nil {
		g.restart()
		return platformcore.StepResult{State: g.State()}
	}

	if pressed.Has(platformcore.ButtonPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.state == nil {
		return platformcore.StepResult{State: g.State()}
	}

	g.tick++
	out := g.state.Update(inputFromButtons(in))
	if out.Escaped {
		g.score = escapeScore(g.tick, g.clockRate())
		g.gameOver = true
		g.emit(TokenEscaped)
	}

	return platformcore.StepResult{State: g.State()}
}

// restart returns to the spawn pose without reloading files.
func (g *Game) restart() {
	g.state.Reset()
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.emit(TokenStarted)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Err returns the config or level error from the last Reset, if any.
// A config error still leaves a playable game on default settings.
func (g *Game) Err() error {
	return g.loadErr
}

// KeyHoldTicks returns the configured key hold time from the last Reset.
func (g *Game) KeyHoldTicks() int {
	return g.cfg.Controls.KeyHoldTicks
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

func (g *Game) emit(token string) {
	if g.signal != nil {
		g.signal.Signal(g.ID(), token)
	}
}

// clockRate is the number of ticks per wall-clock second. The host loop
// sets it; physics keeps its configured step either way.
func (g *Game) clockRate() int {
	if g.tickRate > 0 {
		return g.tickRate
	}
	return g.cfg.Physics.TickRate
}

// escapeScore rewards fast escapes: 10 points off per second.
func escapeScore(ticks uint64, tickRate int) int {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	seconds := int(ticks / uint64(tickRate))
	return platformcore.Max(minScore, maxScore-10*seconds)
}

func inputFromButtons(b platformcore.Buttons) core.Input {
	return core.Input{
		Up:    b.Has(platformcore.ButtonUp),
		Down:  b.Has(platformcore.ButtonDown),
		Left:  b.Has(platformcore.ButtonLeft),
		Right: b.Has(platformcore.ButtonRight),
		Jump:  b.Has(platformcore.ButtonJump),
		Map:   b.Has(platformcore.ButtonMap),
	}
}

func physicsFromConfig(cfg config.MazeConfig) core.Physics {
	return core.Physics{
		StepSize:   cfg.Physics.StepSize,
		Gravity:    cfg.Physics.Gravity,
		JumpSpeed:  cfg.Physics.JumpSpeed,
		AirDamping: cfg.Physics.AirDamping,
		DT:         1 / float32(cfg.Physics.TickRate),
	}
}

func casterFromConfig(cfg config.MazeConfig) core.CasterConfig {
	return core.CasterConfig{
		FOV:                  math32.Pi / cfg.Camera.FOVDivisor,
		MaxSteps:             cfg.Camera.MaxSteps,
		WallHeight:           cfg.Camera.WallHeight,
		RefHeight:            cfg.Camera.ReferenceHeight,
		LegacySpecialTerrain: cfg.Render.LegacySpecialTerrain,
	}
}
