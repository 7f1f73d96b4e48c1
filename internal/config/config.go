// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// Config contains all tuning for the game.
type Config struct {
	World      World      `yaml:"world"`
	Player     Player     `yaml:"player"`
	Obstacles  Obstacles  `yaml:"obstacles"`
	Generation Generation `yaml:"generation"`
	Difficulty Difficulty `yaml:"difficulty"`
}

// World defines the logical simulation space. The simulation always runs in
// these units regardless of terminal size; the renderer scales down.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Leftward scroll in world units per tick
}

// Player defines the player circle and its kinematics.
type Player struct {
	X                 float64 `yaml:"x"`            // Fixed horizontal position
	Radius            float64 `yaml:"radius"`
	JumpImpulse       float64 `yaml:"jump_impulse"` // Negative = up
	Gravity           float64 `yaml:"gravity"`      // Downward accel per tick
	MaxJumpsPerSecond int     `yaml:"max_jumps_per_second"`
}

// Obstacles defines how obstacle dimensions are derived.
// Minimum gap and maximum width are computed from the jump arc at runtime,
// so the values here are ratios rather than absolute sizes.
type Obstacles struct {
	MinWidth          float64 `yaml:"min_width"`
	WidthJumpRatio    float64 `yaml:"width_jump_ratio"`    // Max width = jump distance * ratio
	MaxGapRatio       float64 `yaml:"max_gap_ratio"`       // Max gap = min gap * ratio
	MinClearanceRadii float64 `yaml:"min_clearance_radii"` // Min spacing = radius * this
}

// Generation selects the reachability policies.
type Generation struct {
	Placement string `yaml:"placement"` // "uniform" or "extreme"
	Fall      string `yaml:"fall"`      // "conservative" or "edge-jump"
}
