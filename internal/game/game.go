// Package game implements the side-scrolling simulation: a physics-driven
// circle that must pass through procedurally generated gap obstacles while
// the world scrolls left at constant speed. Obstacle placement is guaranteed
// reachable by forward-simulating the player's jump arc.
package game

import (
	"fmt"

	"github.com/mkarpov/circlerun/internal/config"
	"github.com/mkarpov/circlerun/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '●'
	ObstacleChar = '█'
)

// Game implements core.Game. It owns all simulation state: the player, the
// generator's obstacle set, and the world scroll offset. No globals.
type Game struct {
	runtime   core.RuntimeConfig
	cfg       config.Config
	kin       Kinematics
	player    Player
	gen       *Generator
	worldX    float64 // Cumulative scroll offset, monotonically increasing
	score     int
	gameOver  bool
	paused    bool
	tickCount int
}

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.Preset
var placementOverride string
var fallOverride string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.PresetEasy
	case "normal":
		difficultyPreset = config.PresetNormal
	case "hard":
		difficultyPreset = config.PresetHard
	default:
		difficultyPreset = "" // Use config default
	}
}

// SetPlacementPolicy overrides the gap placement policy from the CLI.
func SetPlacementPolicy(policy string) {
	placementOverride = policy
}

// SetFallPolicy overrides the worst-case fall policy from the CLI.
func SetFallPolicy(policy string) {
	fallOverride = policy
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "circlerun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Circle Run"
}

// Reset initializes or restarts the run. The resulting state is identical
// regardless of prior history: player at the start position, zero
// obstacles, zero score.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if placementOverride != "" {
		cfg.Generation.Placement = placementOverride
	}
	if fallOverride != "" {
		cfg.Generation.Fall = fallOverride
	}
	g.cfg = cfg

	g.kin = Kinematics{
		JumpImpulse:       cfg.Player.JumpImpulse,
		Gravity:           cfg.Player.Gravity,
		Speed:             cfg.World.Speed,
		TickRate:          runtime.TickRate,
		MaxJumpsPerSecond: cfg.Player.MaxJumpsPerSecond,
	}

	g.player = Player{
		X:           cfg.Player.X,
		Y:           cfg.World.Height / 2,
		Radius:      cfg.Player.Radius,
		JumpImpulse: cfg.Player.JumpImpulse,
		Gravity:     cfg.Player.Gravity,
	}

	g.worldX = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	if g.gen == nil {
		g.gen = NewGenerator(cfg, g.kin, runtime.Seed)
	} else {
		g.gen.UpdateConfig(cfg, g.kin)
		g.gen.Reset(runtime.Seed)
	}
}

// Step advances the simulation by one tick: input, scroll, player physics,
// spawn/retire, collision. A collision moves the run to the terminal
// game-over state; restart is handled by the platform via Reset.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if in.Has(core.ActionJump) {
		g.player.Jump()
	}

	g.worldX += g.cfg.World.Speed
	g.player.UpdatePosition(g.cfg.World.Height)

	g.score += g.gen.Update(g.worldX)

	if collides(g.player, g.gen.Obstacles(), g.worldX, g.cfg.World.Height) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// State returns the current run state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Render draws the current state to the screen buffer, scaling the logical
// world down to terminal cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.Height

	for _, o := range g.gen.Obstacles() {
		g.drawObstacle(dst, o, sx, sy)
	}

	g.drawPlayer(dst, sx, sy)

	scoreText := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawText(2, 0, scoreText)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawObstacle renders both rectangles of one obstacle.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle, sx, sy float64) {
	screenX := o.ScreenX(g.worldX)
	x0 := int(screenX * sx)
	x1 := int((screenX + o.Width) * sx)
	if x1 <= x0 {
		x1 = x0 + 1 // Narrow obstacles still occupy one column
	}
	w := x1 - x0

	topH := int(o.GapY * sy)
	dst.FillRect(core.NewRect(x0, 0, w, topH), ObstacleChar, o.Color)

	bottomY := int((o.GapY + o.Gap) * sy)
	dst.FillRect(core.NewRect(x0, bottomY, w, dst.Height()-bottomY), ObstacleChar, o.Color)
}

// drawPlayer renders the circle by sampling cell centers against the
// player's radius in world units.
func (g *Game) drawPlayer(dst *core.Screen, sx, sy float64) {
	minX := int((g.player.X - g.player.Radius) * sx)
	maxX := int((g.player.X + g.player.Radius) * sx)
	minY := int((g.player.Y - g.player.Radius) * sy)
	maxY := int((g.player.Y + g.player.Radius) * sy)

	for cellY := minY; cellY <= maxY; cellY++ {
		for cellX := minX; cellX <= maxX; cellX++ {
			wx := (float64(cellX) + 0.5) / sx
			wy := (float64(cellY) + 0.5) / sy
			dx := (wx - g.player.X) / g.player.Radius
			dy := (wy - g.player.Y) / g.player.Radius
			if dx*dx+dy*dy <= 1 {
				dst.SetCell(cellX, cellY, PlayerChar, core.ColorWhite)
			}
		}
	}

	// The center cell is always visible even when the radius rounds to
	// less than one cell
	dst.SetCell(int(g.player.X*sx), int(g.player.Y*sy), PlayerChar, core.ColorWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
