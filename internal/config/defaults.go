package config

import (
	_ "embed"
)

//go:embed defaults/stomper.yaml
var defaultStomperYAML []byte

// DefaultStomperConfig returns the default stomper configuration.
func DefaultStomperConfig() StomperConfig {
	return StomperConfig{
		World: WorldConfig{
			Width:        800,
			Height:       600,
			GroundHeight: 20,
		},
		Physics: PhysicsConfig{
			Gravity:      -500,
			PlayerSpeed:  200,
			JumpVelocity: 300,
		},
		Player: PlayerConfig{
			Width:  30,
			Height: 30,
		},
		Enemies: EnemiesConfig{
			Width:             30,
			Height:            30,
			MinCount:          2,
			MaxCount:          4,
			MinSpeed:          50,
			MaxSpeed:          150,
			SpawnAttempts:     200,
			RespawnDelayTicks: 180,
		},
		Obstacles: ObstaclesConfig{
			Width:    40,
			Height:   40,
			MinCount: 3,
			MaxCount: 6,
		},
		Scoring: ScoringConfig{
			StompPoints: 100,
			StompWindow: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.6,
				RespawnReduction: 120,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game mode.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "stomper", "stomper_endless":
		return defaultStomperYAML
	default:
		return nil
	}
}
