package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the hard-coded maze configuration.
// It matches defaults/maze.yaml and is used if that file fails to parse.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Physics: MazePhysics{
			StepSize:   0.045,
			Gravity:    6.0,
			JumpSpeed:  3.0,
			AirDamping: 0.975,
			TickRate:   60,
		},
		Camera: MazeCamera{
			FOVDivisor:      2.7,
			WallHeight:      100,
			ReferenceHeight: 160,
			MaxSteps:        256,
		},
		Render: MazeRender{
			LegacySpecialTerrain: false,
			ShowHUD:              true,
		},
		Controls: MazeControls{
			KeyHoldTicks: 8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "maze", "maze_classic":
		return defaultMazeYAML
	default:
		return nil
	}
}
