package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadXonix loads Xonix configuration.
// Search order: customPath -> ~/.xonix/configs/xonix.yaml -> ./configs/xonix.yaml -> embedded default
func LoadXonix(customPath string) (XonixConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return XonixConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseXonix(data)
		if err != nil {
			return XonixConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("xonix.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseXonix(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/xonix.yaml"); err == nil {
		if cfg, err := parseXonix(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseXonix(defaultXonixYAML)
	if err != nil {
		return DefaultXonixConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseXonix decodes YAML on top of the defaults, so partial files only
// override what they mention, then validates the result.
func parseXonix(data []byte) (XonixConfig, error) {
	cfg := DefaultXonixConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return XonixConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return XonixConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".xonix", "configs", filename)
}

// ApplyXonixPreset modifies the config based on a difficulty preset.
// Normal keeps the configured values.
func ApplyXonixPreset(cfg *XonixConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.EnemiesOutside = 2
		cfg.Gameplay.AreaToWin = 70
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.EnemiesOutside = 5
		cfg.Gameplay.AreaToWin = 85
	}
}
