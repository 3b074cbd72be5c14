package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadStomper loads the stomper configuration.
// Search order: customPath -> ~/.stomper/configs/stomper.yaml ->
// ./configs/stomper.yaml -> embedded default
func LoadStomper(customPath string) (StomperConfig, error) {
	var cfg StomperConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("stomper.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/stomper.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultStomperYAML, &cfg); err != nil {
		return DefaultStomperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stomper", "configs", filename)
}

// ApplyStomperPreset modifies the config based on a difficulty preset.
func ApplyStomperPreset(cfg *StomperConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Harder presets also start with more and faster enemies.
	switch preset {
	case DifficultyHard:
		cfg.Enemies.MinCount++
		cfg.Enemies.MaxCount++
		cfg.Enemies.MinSpeed *= 1.2
		cfg.Enemies.MaxSpeed *= 1.2
	case DifficultyEasy:
		cfg.Enemies.MaxSpeed = (cfg.Enemies.MinSpeed + cfg.Enemies.MaxSpeed) / 2
	}
}
