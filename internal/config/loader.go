package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMaze loads maze configuration.
// Search order: customPath -> ~/.mazecaster/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
func LoadMaze(customPath string) (MazeConfig, error) {
	cfg := DefaultMazeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("maze.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
			cfg = DefaultMazeConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/maze.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
		cfg = DefaultMazeConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMazeYAML, &cfg); err != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c MazeConfig) Validate() error {
	switch {
	case c.Physics.TickRate <= 0:
		return fmt.Errorf("config: physics.tick_rate must be positive, got %d", c.Physics.TickRate)
	case c.Physics.StepSize < 0:
		return fmt.Errorf("config: physics.step_size must not be negative, got %v", c.Physics.StepSize)
	case c.Physics.AirDamping < 0 || c.Physics.AirDamping > 1:
		return fmt.Errorf("config: physics.air_damping must be within [0, 1], got %v", c.Physics.AirDamping)
	case c.Camera.FOVDivisor <= 0:
		return fmt.Errorf("config: camera.fov_divisor must be positive, got %v", c.Camera.FOVDivisor)
	case c.Camera.ReferenceHeight <= 0:
		return fmt.Errorf("config: camera.reference_height must be positive, got %d", c.Camera.ReferenceHeight)
	case c.Camera.MaxSteps <= 0:
		return fmt.Errorf("config: camera.max_steps must be positive, got %d", c.Camera.MaxSteps)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazecaster", "configs", filename)
}
