package game

import (
	"math"
	"math/rand"

	"github.com/mkarpov/circlerun/internal/config"
	"github.com/mkarpov/circlerun/internal/core"
)

// Generator owns the live obstacle set: it appends newly spawned obstacles
// and retires the ones that scroll off the left edge. Nothing else mutates
// the slice. Every spawn is placed inside the reachability window computed
// from the previous gap, so generated content is always passable.
type Generator struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.Config
	kin       Kinematics
	reach     Reach
	placement PlacementPolicy
	factors   config.Factors
	colorIdx  int
}

// NewGenerator creates a generator with the given RNG seed. Invalid policy
// names in the config fall back to the defaults (extreme placement,
// edge-jump fall).
func NewGenerator(cfg config.Config, kin Kinematics, seed int64) *Generator {
	g := &Generator{
		obstacles: make([]Obstacle, 0, 8),
	}
	g.UpdateConfig(cfg, kin)
	g.Reset(seed)
	return g
}

// UpdateConfig replaces the tuning and kinematics, e.g. after a reset with
// a different difficulty preset.
func (g *Generator) UpdateConfig(cfg config.Config, kin Kinematics) {
	g.cfg = cfg
	g.kin = kin
	g.factors = cfg.Difficulty.Factors(cfg.Difficulty.Level)

	placement, err := ParsePlacementPolicy(cfg.Generation.Placement)
	if err != nil {
		placement = PlacementExtreme
	}
	g.placement = placement

	fall, err := ParseFallPolicy(cfg.Generation.Fall)
	if err != nil {
		fall = FallEdgeJump
	}
	g.reach = Reach{Kin: kin, WorldH: cfg.World.Height, Fall: fall}
}

// Reset clears all obstacles and reseeds the RNG.
func (g *Generator) Reset(seed int64) {
	g.obstacles = g.obstacles[:0]
	g.rng = rand.New(rand.NewSource(seed))
	g.colorIdx = 0
}

// Obstacles returns the live obstacle set.
func (g *Generator) Obstacles() []Obstacle {
	return g.obstacles
}

// Update spawns and retires obstacles for the current world offset and
// returns how many obstacles the player passed this tick.
func (g *Generator) Update(worldOffset float64) int {
	// Spawn exactly one obstacle once the newest one has entered the
	// visible area
	if len(g.obstacles) == 0 {
		g.spawnFirst(worldOffset)
	} else if last := g.obstacles[len(g.obstacles)-1]; last.ScreenX(worldOffset) < g.cfg.World.Width {
		g.spawn(last)
	}

	// An obstacle counts as passed once its right edge scrolls behind the
	// player
	passed := 0
	for i := range g.obstacles {
		if !g.obstacles[i].Passed && g.obstacles[i].ScreenX(worldOffset)+g.obstacles[i].Width < g.cfg.Player.X {
			g.obstacles[i].Passed = true
			passed++
		}
	}

	// Retire obstacles fully off the left edge
	live := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.ScreenX(worldOffset)+o.Width > 0 {
			live = append(live, o)
		}
	}
	g.obstacles = live

	return passed
}

// gapHeight samples the opening size from the difficulty-scaled range.
// The minimum gap is derived from the jump apex so a single clean jump can
// always thread it; the gap factor shrinks it as difficulty rises.
func (g *Generator) gapHeight() float64 {
	minGap := (2*g.cfg.Player.Radius + g.kin.ApexRise()) * g.factors.GapFactor
	maxGap := minGap * g.cfg.Obstacles.MaxGapRatio
	if maxGap > g.cfg.World.Height {
		maxGap = g.cfg.World.Height
	}
	if maxGap < minGap {
		maxGap = minGap
	}
	return minGap + g.rng.Float64()*(maxGap-minGap)
}

// spawnDistance samples horizontal spacing from the jump-distance range.
// Never smaller than the radius-based clearance.
func (g *Generator) spawnDistance() float64 {
	jump := g.kin.JumpDistance()
	minDist := math.Max(g.cfg.Player.Radius*g.cfg.Obstacles.MinClearanceRadii, jump*0.5)
	maxDist := jump * g.factors.DistanceFactor
	if maxDist < minDist {
		maxDist = minDist
	}
	return minDist + g.rng.Float64()*(maxDist-minDist)
}

// obstacleWidth samples the width. The cap scales with the jump distance
// so wide obstacles stay fair.
func (g *Generator) obstacleWidth() float64 {
	minW := g.cfg.Obstacles.MinWidth
	maxW := math.Max(minW, g.kin.JumpDistance()*g.cfg.Obstacles.WidthJumpRatio)
	return minW + g.rng.Float64()*(maxW-minW)
}

func (g *Generator) nextColor() core.Color {
	c := core.Palette[g.colorIdx%len(core.Palette)]
	g.colorIdx++
	return c
}

// spawn places one obstacle after prev, inside the reachability window
// computed from prev's gap and the sampled spacing.
func (g *Generator) spawn(prev Obstacle) {
	h := g.gapHeight()
	d := g.spawnDistance()
	w := g.obstacleWidth()

	win := g.reach.Window(prev.GapY, d, h)
	gapY := win.Pick(g.placement, prev.GapY, g.rng)

	o, err := NewObstacle(prev.WorldX+prev.Width+d, w, h, gapY, g.cfg.World.Height, g.nextColor())
	if err != nil {
		return // Unreachable with positive samples; skip rather than panic
	}
	g.obstacles = append(g.obstacles, o)
}

// spawnFirst seeds a fresh run. There is no real predecessor, so the window
// is computed against a virtual one: gap top at mid-screen, right edge at
// the player's starting offset. The obstacle itself still enters from
// beyond the right screen edge.
func (g *Generator) spawnFirst(worldOffset float64) {
	h := g.gapHeight()
	d := g.spawnDistance()
	w := g.obstacleWidth()

	prevGapY := g.cfg.World.Height / 2
	playerWorldX := worldOffset + g.cfg.Player.X
	worldX := math.Max(worldOffset+g.cfg.World.Width, playerWorldX+d)

	win := g.reach.Window(prevGapY, worldX-playerWorldX, h)
	gapY := win.Pick(g.placement, prevGapY, g.rng)

	o, err := NewObstacle(worldX, w, h, gapY, g.cfg.World.Height, g.nextColor())
	if err != nil {
		return
	}
	g.obstacles = append(g.obstacles, o)
}
