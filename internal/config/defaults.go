package config

import (
	_ "embed"
)

//go:embed defaults/blockbreaker.yaml
var defaultBlockBreakerYAML []byte

// DefaultConfig returns the default Block Breaker configuration.
func DefaultConfig() BlockBreakerConfig {
	return BlockBreakerConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:  100,
			Height: 20,
			Offset: 30,
		},
		Ball: BallConfig{
			Radius:      10,
			Speed:       5.0,
			ServeOffset: 50,
		},
		Blocks: BlocksConfig{
			Rows:       5,
			Cols:       9,
			Width:      80,
			Height:     30,
			Spacing:    5,
			TopMargin:  50,
			SideMargin: 20,
		},
		Gameplay: GameplayConfig{
			InitialLives:  3,
			ScorePerBlock: 10,
			Perturbation:  0.1,
		},
		RNGSeed: 0,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlockBreakerYAML
}
