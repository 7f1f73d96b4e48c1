package config

// Factors are the per-level multipliers applied to generated obstacles.
// GapFactor scales the minimum gap (smaller = harder); DistanceFactor scales
// the spawn distance range (larger = harder).
type Factors struct {
	GapFactor      float64 `yaml:"gap_factor"`
	DistanceFactor float64 `yaml:"distance_factor"`
}

// Difficulty holds the active level and the per-level factor table.
// Lookups clamp the level into the table, so every integer level is defined.
type Difficulty struct {
	Level  int       `yaml:"level"`
	Levels []Factors `yaml:"levels"`
}

// Factors returns the multipliers for the given level. Levels outside the
// table clamp to its first or last entry; an empty table yields neutral
// factors.
func (d Difficulty) Factors(level int) Factors {
	if len(d.Levels) == 0 {
		return Factors{GapFactor: 1.0, DistanceFactor: 1.0}
	}
	if level < 0 {
		level = 0
	}
	if level >= len(d.Levels) {
		level = len(d.Levels) - 1
	}
	return d.Levels[level]
}

// Preset is a named difficulty shortcut exposed on the CLI.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// LevelForPreset maps a preset onto an integer difficulty level.
// The level is clamped into the table on lookup, so a short table is fine.
func LevelForPreset(preset Preset) int {
	switch preset {
	case PresetEasy:
		return 0
	case PresetNormal:
		return 1
	case PresetHard:
		return 3
	default:
		return 1
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset Preset) {
	cfg.Difficulty.Level = LevelForPreset(preset)
}
