package config

import "math"

// DifficultyManager calculates game parameters from the difficulty level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// LavaSpeed returns the initial lava speed for a new run.
func (d *DifficultyManager) LavaSpeed(base float64) float64 {
	return base * (1.0 + d.initialLevel*d.cfg.Scaling.SpeedMultiplier)
}

// LavaRamp returns the per-tick lava acceleration for a new run.
func (d *DifficultyManager) LavaRamp(base float64) float64 {
	return base * (1.0 + d.initialLevel*d.cfg.Scaling.RampMultiplier)
}

// RockSpawnBase returns the minimum number of ticks between rock spawns at
// the given point of a run.
func (d *DifficultyManager) RockSpawnBase(base int, score int, ticks int) int {
	level := d.Level(score, ticks)
	result := base - int(level*float64(d.cfg.Scaling.RockReduction))
	if floor := min(base, 30); result < floor { // Keep rocks dodgeable
		result = floor
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
