package config

import (
	_ "embed"
)

//go:embed defaults/circlerun.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. Used as the last
// fallback if the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		World: World{
			Width:  500,
			Height: 800,
			Speed:  2.0,
		},
		Player: Player{
			X:                 50,
			Radius:            16,
			JumpImpulse:       -9.6,
			Gravity:           0.64,
			MaxJumpsPerSecond: 3,
		},
		Obstacles: Obstacles{
			MinWidth:          25,
			WidthJumpRatio:    0.8,
			MaxGapRatio:       2.2,
			MinClearanceRadii: 4.0,
		},
		Generation: Generation{
			Placement: "extreme",
			Fall:      "edge-jump",
		},
		Difficulty: Difficulty{
			Level: 1,
			Levels: []Factors{
				{GapFactor: 1.30, DistanceFactor: 0.80},
				{GapFactor: 1.15, DistanceFactor: 1.00},
				{GapFactor: 1.00, DistanceFactor: 1.15},
				{GapFactor: 0.90, DistanceFactor: 1.30},
				{GapFactor: 0.80, DistanceFactor: 1.45},
			},
		},
	}
}
