package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// speedForPreset returns the step-size multiplier for a preset.
// Easy is slower so tight corridors are easier to line up.
func speedForPreset(preset DifficultyPreset) float32 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.4
	default:
		return 1.0
	}
}

// ApplyMazePreset modifies the config based on a difficulty preset.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	mul := speedForPreset(preset)
	cfg.Physics.StepSize *= mul

	switch preset {
	case DifficultyEasy:
		cfg.Controls.KeyHoldTicks += 4
	case DifficultyHard:
		cfg.Physics.JumpSpeed *= 0.8
		if cfg.Controls.KeyHoldTicks > 4 {
			cfg.Controls.KeyHoldTicks -= 2
		}
	}
}
