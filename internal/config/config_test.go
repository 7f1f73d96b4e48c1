package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	def := Default()
	if cfg.World.Width != def.World.Width || cfg.World.Height != def.World.Height {
		t.Errorf("embedded world = %+v, hardcoded = %+v", cfg.World, def.World)
	}
	if cfg.Player.JumpImpulse != def.Player.JumpImpulse {
		t.Errorf("embedded jump impulse = %f, hardcoded = %f", cfg.Player.JumpImpulse, def.Player.JumpImpulse)
	}
	if len(cfg.Difficulty.Levels) != len(def.Difficulty.Levels) {
		t.Errorf("embedded has %d difficulty levels, hardcoded has %d",
			len(cfg.Difficulty.Levels), len(def.Difficulty.Levels))
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte("world:\n  width: 320\n  height: 240\n  speed: 1.5\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.World.Width != 320 || cfg.World.Height != 240 {
		t.Errorf("custom config not applied: %+v", cfg.World)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("missing custom config path should be an error")
	}
}

func TestDifficultyFactorsTotal(t *testing.T) {
	d := Default().Difficulty

	// Every integer level must be defined via clamping
	for _, level := range []int{-10, -1, 0, 1, 4, 5, 100} {
		f := d.Factors(level)
		if f.GapFactor <= 0 || f.DistanceFactor <= 0 {
			t.Errorf("level %d produced non-positive factors: %+v", level, f)
		}
	}

	// Below-range clamps to the first entry, above-range to the last
	if d.Factors(-5) != d.Levels[0] {
		t.Error("negative level should clamp to the first entry")
	}
	if d.Factors(99) != d.Levels[len(d.Levels)-1] {
		t.Error("oversized level should clamp to the last entry")
	}

	// Empty table is still total
	empty := Difficulty{}
	f := empty.Factors(3)
	if f.GapFactor != 1.0 || f.DistanceFactor != 1.0 {
		t.Errorf("empty table should yield neutral factors, got %+v", f)
	}
}

func TestDifficultyGetsHarderWithLevel(t *testing.T) {
	d := Default().Difficulty
	prev := d.Factors(0)
	for level := 1; level < len(d.Levels); level++ {
		f := d.Factors(level)
		if f.GapFactor > prev.GapFactor {
			t.Errorf("gap factor should not grow with level: level %d has %f after %f",
				level, f.GapFactor, prev.GapFactor)
		}
		if f.DistanceFactor < prev.DistanceFactor {
			t.Errorf("distance factor should not shrink with level: level %d has %f after %f",
				level, f.DistanceFactor, prev.DistanceFactor)
		}
		prev = f
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()

	ApplyPreset(&cfg, PresetEasy)
	if cfg.Difficulty.Level != 0 {
		t.Errorf("easy preset should set level 0, got %d", cfg.Difficulty.Level)
	}

	ApplyPreset(&cfg, PresetHard)
	if cfg.Difficulty.Level != 3 {
		t.Errorf("hard preset should set level 3, got %d", cfg.Difficulty.Level)
	}
}
