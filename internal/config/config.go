// Package config provides YAML-based configuration loading and difficulty
// management for the tower game variants.
package config

// TowerConfig is the complete tuning record of one game variant. Every
// constant the simulation uses lives here so that the two built-in variants
// differ only in data.
type TowerConfig struct {
	Title      string           `yaml:"title"`
	Playfield  TowerPlayfield   `yaml:"playfield"`
	Player     TowerPlayer      `yaml:"player"`
	Platforms  TowerPlatforms   `yaml:"platforms"`
	Coins      TowerCoins       `yaml:"coins"`
	Lava       TowerLava        `yaml:"lava"`
	Rocks      TowerRocks       `yaml:"rocks"`
	PowerUps   TowerPowerUps    `yaml:"powerups"`
	Key        TowerKey         `yaml:"key"`
	Door       TowerDoor        `yaml:"door"`
	Controls   TowerControls    `yaml:"controls"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TowerPlayfield defines the world bounds and the logical tick length.
type TowerPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Floor  float64 `yaml:"floor"`
	TickMs float64 `yaml:"tick_ms"` // Logical milliseconds per tick; scales speeds
}

// TowerPlayer defines the player body and movement.
type TowerPlayer struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StartY      float64 `yaml:"start_y"`
	MoveSpeed   float64 `yaml:"move_speed"`   // Units per millisecond
	JumpImpulse float64 `yaml:"jump_impulse"` // Units per millisecond, upwards
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration, units per ms^2
	Lives       int     `yaml:"lives"`
}

// TowerPlatforms defines the fixed platform ladder.
type TowerPlatforms struct {
	Widths      []float64 `yaml:"widths"`
	Height      float64   `yaml:"height"`
	StartY      float64   `yaml:"start_y"`
	Spacing     float64   `yaml:"spacing"`
	ProbeHeight float64   `yaml:"probe_height"` // Thickness of the landing probe
}

// TowerCoins defines the collectables.
type TowerCoins struct {
	Count   int     `yaml:"count"`
	Size    float64 `yaml:"size"`
	Margin  float64 `yaml:"margin"` // Minimum distance from the side walls
	StartY  float64 `yaml:"start_y"`
	Spacing float64 `yaml:"spacing"`
	Score   int     `yaml:"score"`
	Spin    float64 `yaml:"spin"`
}

// TowerLava defines the rising hazard.
type TowerLava struct {
	InitialHeight float64 `yaml:"initial_height"`
	InitialSpeed  float64 `yaml:"initial_speed"` // Units per tick
	Ramp          float64 `yaml:"ramp"`          // Added to the speed every tick
	SlowFactor    float64 `yaml:"slow_factor"`   // Speed multiplier while slow-lava is active
	Margin        float64 `yaml:"margin"`        // Player dies below lava height + margin
}

// TowerRocks defines the falling hazards.
type TowerRocks struct {
	SpawnBase   int     `yaml:"spawn_base"`   // Minimum ticks between spawns
	SpawnJitter int     `yaml:"spawn_jitter"` // Random extra ticks, [0, jitter)
	Size        float64 `yaml:"size"`
	MinSpeed    float64 `yaml:"min_speed"`   // Units per tick
	SpeedRange  float64 `yaml:"speed_range"` // Random extra speed, [0, range)
	ShieldBonus float64 `yaml:"shield_bonus"`
}

// TowerPowerUps defines the power-up spawner and effects.
type TowerPowerUps struct {
	SpawnInterval int     `yaml:"spawn_interval"`
	MaxAlive      int     `yaml:"max_alive"`
	Size          float64 `yaml:"size"`
	Lifetime      int     `yaml:"lifetime"` // Ticks before an uncollected power-up expires
	Duration      int     `yaml:"duration"` // Ticks the picked-up effect lasts
	Spin          float64 `yaml:"spin"`
	Margin        float64 `yaml:"margin"`       // Minimum distance from the side walls
	AboveLava     float64 `yaml:"above_lava"`   // Minimum spawn height above the lava
	HeightRange   int     `yaml:"height_range"` // Random extra height, [0, range)
}

// TowerKey defines the key that appears once every coin is collected.
type TowerKey struct {
	Size       float64 `yaml:"size"`
	DoorOffset float64 `yaml:"door_offset"` // Distance below the door's lower edge
	Spin       float64 `yaml:"spin"`
}

// TowerDoor defines the exit door.
type TowerDoor struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	OffsetY  float64 `yaml:"offset_y"` // Relative to the y just past the last platform
	OpenRate float64 `yaml:"open_rate"`
}

// Region is a control rectangle in playfield units (lower-left corner).
type Region struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// TowerControls defines the clickable control regions.
type TowerControls struct {
	Menu        bool   `yaml:"menu"`         // Start in the menu instead of playing
	PauseButton bool   `yaml:"pause_button"` // Show a clickable pause button
	Start       Region `yaml:"start"`
	Restart     Region `yaml:"restart"`
	Pause       Region `yaml:"pause"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how the difficulty level grows during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the initial lava speed at max level
	RampMultiplier  float64 `yaml:"ramp_multiplier"`  // Added to the lava ramp at max level
	RockReduction   int     `yaml:"rock_reduction"`   // Ticks removed from the rock spawn base at max level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. The empty string keeps the
// configuration untouched.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
