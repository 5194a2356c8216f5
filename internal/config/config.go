// Package config provides YAML-based game configuration loading and
// difficulty presets for mazecaster.
package config

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Physics  MazePhysics  `yaml:"physics"`
	Camera   MazeCamera   `yaml:"camera"`
	Render   MazeRender   `yaml:"render"`
	Controls MazeControls `yaml:"controls"`
}

// MazePhysics defines movement parameters. Distances are in map cells,
// speeds in cells (or radians) per tick unless noted.
type MazePhysics struct {
	StepSize   float32 `yaml:"step_size"`   // Linear and angular speed while grounded
	Gravity    float32 `yaml:"gravity"`     // Cells per second squared
	JumpSpeed  float32 `yaml:"jump_speed"`  // Initial vertical speed, cells per second
	AirDamping float32 `yaml:"air_damping"` // Per-tick velocity factor while airborne
	TickRate   int     `yaml:"tick_rate"`   // Simulation ticks per second (dt = 1/tick_rate)
}

// MazeCamera defines the projection.
type MazeCamera struct {
	FOVDivisor      float32 `yaml:"fov_divisor"`      // FOV = pi / fov_divisor
	WallHeight      float32 `yaml:"wall_height"`      // Projected height of a wall at distance 1
	ReferenceHeight int     `yaml:"reference_height"` // Virtual screen height WallHeight is measured in
	MaxSteps        int     `yaml:"max_steps"`        // DDA step cap per search
}

// MazeRender defines presentation switches.
type MazeRender struct {
	// LegacySpecialTerrain makes doorway and mirage cells read as plain
	// walls at a fixed far distance, as early builds did.
	LegacySpecialTerrain bool `yaml:"legacy_special_terrain"`
	ShowHUD              bool `yaml:"show_hud"`
}

// MazeControls defines how terminal key presses become held buttons.
type MazeControls struct {
	// KeyHoldTicks is how long a key press keeps its button held.
	// Terminals report presses and repeats but not releases.
	KeyHoldTicks int `yaml:"key_hold_ticks"`
}
