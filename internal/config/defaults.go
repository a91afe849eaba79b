package config

import (
	_ "embed"
)

// Variant identifiers. They double as registry IDs and config file names.
const (
	VariantClassic = "tower"
	VariantPlus    = "tower_plus"
)

//go:embed defaults/tower.yaml
var defaultTowerYAML []byte

//go:embed defaults/tower_plus.yaml
var defaultTowerPlusYAML []byte

// platformWidths is the width of each rung of the ladder, bottom to top.
var platformWidths = []float64{80, 120, 100, 90, 110, 85, 95, 105, 80, 90}

// DefaultTowerConfig returns the hard-coded classic variant: an 800x600
// field with no menu.
func DefaultTowerConfig() TowerConfig {
	const w, h = 800, 600
	return TowerConfig{
		Title: "Lava Tower",
		Playfield: TowerPlayfield{
			Width:  w,
			Height: h,
			Floor:  30,
			TickMs: 16,
		},
		Player: TowerPlayer{
			Width:       30,
			Height:      40,
			StartY:      50,
			MoveSpeed:   0.15,
			JumpImpulse: 0.6,
			Gravity:     0.0008,
			Lives:       3,
		},
		Platforms: TowerPlatforms{
			Widths:      append([]float64(nil), platformWidths...),
			Height:      15,
			StartY:      100,
			Spacing:     50,
			ProbeHeight: 5,
		},
		Coins: TowerCoins{
			Count:   7,
			Size:    15,
			Margin:  20,
			StartY:  150,
			Spacing: 70,
			Score:   10,
			Spin:    2,
		},
		Lava: TowerLava{
			InitialHeight: 0,
			InitialSpeed:  0.02,
			Ramp:          0.0001,
			SlowFactor:    0.3,
			Margin:        20,
		},
		Rocks: TowerRocks{
			SpawnBase:   120,
			SpawnJitter: 180,
			Size:        15,
			MinSpeed:    2,
			SpeedRange:  1,
			ShieldBonus: 10,
		},
		PowerUps: TowerPowerUps{
			SpawnInterval: 600,
			MaxAlive:      2,
			Size:          20,
			Lifetime:      300,
			Duration:      180,
			Spin:          5,
			Margin:        50,
			AboveLava:     150,
			HeightRange:   200,
		},
		Key: TowerKey{
			Size:       20,
			DoorOffset: 80,
			Spin:       3,
		},
		Door: TowerDoor{
			Width:    80,
			Height:   60,
			OffsetY:  -100,
			OpenRate: 0.02,
		},
		Controls: TowerControls{
			Menu:        false,
			PauseButton: false,
			Start:       Region{X: w/2 - 75, Y: h/2 - 20, W: 160, H: 50},
			Restart:     Region{X: w/2 - 50, Y: h/2 - 80, W: 100, H: 30},
			Pause:       Region{X: 20, Y: h - 100, W: 100, H: 35},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 3600,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				RampMultiplier:  1.0,
				RockReduction:   60,
			},
		},
	}
}

// DefaultTowerPlusConfig returns the hard-coded extended variant: a larger
// field with a start menu, a pause button and a faster lava ramp.
func DefaultTowerPlusConfig() TowerConfig {
	const w, h = 1200, 800
	cfg := DefaultTowerConfig()
	cfg.Title = "Lava Tower+"
	cfg.Playfield.Width = w
	cfg.Playfield.Height = h
	cfg.Platforms.Height = 20
	cfg.Platforms.Spacing = 55
	cfg.Lava.InitialSpeed = 0.01
	cfg.Lava.Ramp = 0.0003
	cfg.Key.DoorOffset = 50
	cfg.Controls = TowerControls{
		Menu:        true,
		PauseButton: true,
		Start:       Region{X: w/2 - 75, Y: h/2 - 20, W: 160, H: 50},
		Restart:     Region{X: w/2 - 75, Y: h/2 - 80, W: 150, H: 50},
		Pause:       Region{X: 20, Y: h - 100, W: 100, H: 35},
	}
	return cfg
}

// DefaultFor returns the hard-coded configuration of a variant.
func DefaultFor(variant string) (TowerConfig, bool) {
	switch variant {
	case VariantClassic:
		return DefaultTowerConfig(), true
	case VariantPlus:
		return DefaultTowerPlusConfig(), true
	}
	return TowerConfig{}, false
}

func embeddedFor(variant string) []byte {
	switch variant {
	case VariantClassic:
		return defaultTowerYAML
	case VariantPlus:
		return defaultTowerPlusYAML
	}
	return nil
}
