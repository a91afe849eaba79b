package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownVariant is returned when a variant has no built-in defaults.
var ErrUnknownVariant = errors.New("config: unknown variant")

// LoadTower loads the configuration of a game variant.
// Search order: customPath -> ~/.lava-tower/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default -> hard-coded default.
// Files are overlaid on the hard-coded default, so they may be partial.
func LoadTower(variant, customPath string) (TowerConfig, error) {
	base, ok := DefaultFor(variant)
	if !ok {
		return TowerConfig{}, fmt.Errorf("%w %q", ErrUnknownVariant, variant)
	}

	// A custom path is explicit, so failures are reported instead of skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := overlay(base, data)
		if err != nil {
			return base, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	filename := variant + ".yaml"
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := overlay(base, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if cfg, err := overlay(base, embeddedFor(variant)); err == nil {
		return cfg, nil
	}
	return base, nil // Fallback to hardcoded if embed fails
}

// overlay decodes YAML on top of a copy of base.
func overlay(base TowerConfig, data []byte) (TowerConfig, error) {
	cfg := base
	cfg.Platforms.Widths = append([]float64(nil), base.Platforms.Widths...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg TowerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lava-tower", "configs", filename)
}

// ApplyTowerPreset modifies the config based on a difficulty preset.
// The empty preset leaves the configuration as loaded.
func ApplyTowerPreset(cfg *TowerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Lava.SlowFactor = 0.2
	case DifficultyHard:
		cfg.Player.Lives = 2
	}
}
