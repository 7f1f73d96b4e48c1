package game

import (
	"testing"

	"github.com/mkarpov/circlerun/internal/config"
)

func testGenerator(seed int64) (*Generator, config.Config, Kinematics) {
	cfg := config.Default()
	kin := Kinematics{
		JumpImpulse:       cfg.Player.JumpImpulse,
		Gravity:           cfg.Player.Gravity,
		Speed:             cfg.World.Speed,
		TickRate:          60,
		MaxJumpsPerSecond: cfg.Player.MaxJumpsPerSecond,
	}
	return NewGenerator(cfg, kin, seed), cfg, kin
}

// runGenerator advances the world by ticks and records every distinct
// obstacle the generator spawned, in spawn order.
func runGenerator(g *Generator, cfg config.Config, ticks int) []Obstacle {
	var history []Obstacle
	seen := make(map[float64]bool)

	offset := 0.0
	for i := 0; i < ticks; i++ {
		offset += cfg.World.Speed
		g.Update(offset)

		for _, o := range g.Obstacles() {
			if !seen[o.WorldX] {
				seen[o.WorldX] = true
				history = append(history, o)
			}
		}
	}
	return history
}

func TestGeneratorSpawnsReachableChain(t *testing.T) {
	g, cfg, kin := testGenerator(7)

	history := runGenerator(g, cfg, 5000)
	if len(history) < 10 {
		t.Fatalf("expected a long obstacle chain, got %d obstacles", len(history))
	}

	fall, err := ParseFallPolicy(cfg.Generation.Fall)
	if err != nil {
		t.Fatalf("default config has invalid fall policy: %v", err)
	}
	reach := Reach{Kin: kin, WorldH: cfg.World.Height, Fall: fall}

	for i, o := range history {
		if o.GapY < 0 || o.GapY+o.Gap > cfg.World.Height {
			t.Errorf("obstacle %d gap off screen: gapY=%f gap=%f", i, o.GapY, o.Gap)
		}
		if o.Width < cfg.Obstacles.MinWidth {
			t.Errorf("obstacle %d width %f below minimum %f", i, o.Width, cfg.Obstacles.MinWidth)
		}

		if i == 0 {
			continue
		}
		prev := history[i-1]
		d := o.WorldX - prev.WorldX - prev.Width
		if d <= 0 {
			t.Errorf("obstacle %d overlaps its predecessor: spacing %f", i, d)
			continue
		}

		// Every gap must sit inside the reachability window computed from
		// the previous gap and the actual spacing
		win := reach.Window(prev.GapY, d, o.Gap)
		if !win.Contains(o.GapY) {
			t.Errorf("obstacle %d gapY %f outside window %+v (prev %f, spacing %f)",
				i, o.GapY, win, prev.GapY, d)
		}
	}
}

func TestGeneratorSpacingRespectsMinimum(t *testing.T) {
	g, cfg, kin := testGenerator(11)

	history := runGenerator(g, cfg, 5000)

	minDist := cfg.Player.Radius * cfg.Obstacles.MinClearanceRadii
	if half := kin.JumpDistance() * 0.5; half > minDist {
		minDist = half
	}

	for i := 1; i < len(history); i++ {
		d := history[i].WorldX - history[i-1].WorldX - history[i-1].Width
		if d < minDist-1e-9 {
			t.Errorf("spacing %f between obstacles %d and %d below minimum %f", d, i-1, i, minDist)
		}
	}
}

func TestGeneratorDeterministicForSeed(t *testing.T) {
	g1, cfg, _ := testGenerator(42)
	g2, _, _ := testGenerator(42)

	h1 := runGenerator(g1, cfg, 3000)
	h2 := runGenerator(g2, cfg, 3000)

	if len(h1) != len(h2) {
		t.Fatalf("same seed produced different obstacle counts: %d vs %d", len(h1), len(h2))
	}
	for i := range h1 {
		if h1[i].WorldX != h2[i].WorldX || h1[i].GapY != h2[i].GapY ||
			h1[i].Gap != h2[i].Gap || h1[i].Width != h2[i].Width {
			t.Fatalf("same seed diverged at obstacle %d: %+v vs %+v", i, h1[i], h2[i])
		}
	}
}

func TestGeneratorSeedsDiffer(t *testing.T) {
	g1, cfg, _ := testGenerator(1)
	g2, _, _ := testGenerator(2)

	h1 := runGenerator(g1, cfg, 2000)
	h2 := runGenerator(g2, cfg, 2000)

	if len(h1) == 0 || len(h2) == 0 {
		t.Fatal("expected obstacles from both seeds")
	}

	same := len(h1) == len(h2)
	if same {
		for i := range h1 {
			if h1[i].WorldX != h2[i].WorldX || h1[i].GapY != h2[i].GapY {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical obstacle chains")
	}
}

func TestGeneratorRetiresOffscreenObstacles(t *testing.T) {
	g, cfg, _ := testGenerator(3)

	offset := 0.0
	for i := 0; i < 5000; i++ {
		offset += cfg.World.Speed
		g.Update(offset)
	}

	live := g.Obstacles()
	if len(live) == 0 {
		t.Fatal("expected live obstacles after a long run")
	}
	for _, o := range live {
		if o.ScreenX(offset)+o.Width <= 0 {
			t.Errorf("off-screen obstacle not retired: screenX=%f width=%f", o.ScreenX(offset), o.Width)
		}
	}

	// The live set stays bounded: spacing has a positive floor, so only a
	// limited number of obstacles fit the visible span at once
	if len(live) > 32 {
		t.Errorf("live obstacle count %d suggests retirement is not working", len(live))
	}
}

func TestGeneratorCountsPassedObstaclesOnce(t *testing.T) {
	g, cfg, _ := testGenerator(5)

	offset := 0.0
	totalPassed := 0
	for i := 0; i < 5000; i++ {
		offset += cfg.World.Speed
		totalPassed += g.Update(offset)
	}

	if totalPassed == 0 {
		t.Fatal("expected passed obstacles after a long run")
	}

	// Every live obstacle behind the player must be marked, every one ahead
	// must not
	for _, o := range g.Obstacles() {
		behind := o.ScreenX(offset)+o.Width < cfg.Player.X
		if behind != o.Passed {
			t.Errorf("obstacle at screenX %f: passed=%v, want %v", o.ScreenX(offset), o.Passed, behind)
		}
	}
}

func TestGeneratorResetClearsState(t *testing.T) {
	g, cfg, _ := testGenerator(9)

	runGenerator(g, cfg, 1000)
	if len(g.Obstacles()) == 0 {
		t.Fatal("expected obstacles before reset")
	}

	g.Reset(9)
	if len(g.Obstacles()) != 0 {
		t.Errorf("obstacles after reset: %d, want 0", len(g.Obstacles()))
	}

	// Same seed after reset replays the same chain
	h1 := runGenerator(g, cfg, 1000)
	g.Reset(9)
	h2 := runGenerator(g, cfg, 1000)

	if len(h1) != len(h2) {
		t.Fatalf("replay after reset differs: %d vs %d obstacles", len(h1), len(h2))
	}
	for i := range h1 {
		if h1[i].WorldX != h2[i].WorldX || h1[i].GapY != h2[i].GapY {
			t.Fatalf("replay diverged at obstacle %d", i)
		}
	}
}
