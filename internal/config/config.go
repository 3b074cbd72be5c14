// Package config provides YAML-based game configuration loading and
// difficulty management for the stomper platform.
package config

// StomperConfig contains all tuning for the stomper platformer.
type StomperConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the simulation space. All values are world units,
// not screen cells; the renderer projects them onto the terminal.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PhysicsConfig defines gravity and player movement parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Units/s^2, negative is down
	PlayerSpeed  float64 `yaml:"player_speed"`  // Horizontal units/s
	JumpVelocity float64 `yaml:"jump_velocity"` // Initial upward units/s
}

// PlayerConfig defines the player sprite footprint.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemiesConfig defines enemy sizing and spawn behavior.
type EnemiesConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	MinCount          int     `yaml:"min_count"`
	MaxCount          int     `yaml:"max_count"`
	MinSpeed          float64 `yaml:"min_speed"`
	MaxSpeed          float64 `yaml:"max_speed"`
	SpawnAttempts     int     `yaml:"spawn_attempts"`      // Rejection-sampling cap per enemy
	RespawnDelayTicks int     `yaml:"respawn_delay_ticks"` // Endless mode only
}

// ObstaclesConfig defines obstacle sizing and spawn counts.
type ObstaclesConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MinCount int     `yaml:"min_count"`
	MaxCount int     `yaml:"max_count"`
}

// ScoringConfig defines point awards.
type ScoringConfig struct {
	StompPoints int     `yaml:"stomp_points"`
	StompWindow float64 `yaml:"stomp_window"` // Vertical tolerance for a stomp, world units
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to enemy speed at max difficulty
	RespawnReduction int     `yaml:"respawn_reduction"` // Respawn-delay tick reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
