package game

import (
	"fmt"

	"github.com/mkarpov/circlerun/internal/core"
)

// Obstacle is a vertical wall with a gap. Its world position and geometry
// are fixed at creation; only the Passed scoring flag changes afterwards.
type Obstacle struct {
	WorldX float64 // Left edge in world coordinates, never mutated
	Width  float64
	Gap    float64 // Height of the vertical opening
	GapY   float64 // Top edge of the opening
	Color  core.Color
	Passed bool // Whether the player has passed it (for scoring)
}

// NewObstacle validates and clamps obstacle parameters. Non-positive width
// or gap is rejected; gapY is clamped into [0, worldH-gap] so the two
// rectangles always cover the full vertical span outside the gap and never
// overlap.
func NewObstacle(worldX, width, gap, gapY, worldH float64, color core.Color) (Obstacle, error) {
	if width <= 0 {
		return Obstacle{}, fmt.Errorf("obstacle width must be positive, got %.2f", width)
	}
	if gap <= 0 {
		return Obstacle{}, fmt.Errorf("obstacle gap must be positive, got %.2f", gap)
	}
	if gap > worldH {
		gap = worldH
	}
	gapY = core.ClampF(gapY, 0, worldH-gap)

	return Obstacle{
		WorldX: worldX,
		Width:  width,
		Gap:    gap,
		GapY:   gapY,
		Color:  color,
	}, nil
}

// ScreenX projects the obstacle's left edge into screen space for the given
// world offset.
func (o Obstacle) ScreenX(worldOffset float64) float64 {
	return o.WorldX - worldOffset
}

// TopRect returns the rectangle above the gap at the given screen position.
func (o Obstacle) TopRect(screenX float64) core.RectF {
	return core.NewRectF(screenX, 0, o.Width, o.GapY)
}

// BottomRect returns the rectangle below the gap, extending to the floor.
func (o Obstacle) BottomRect(screenX, worldH float64) core.RectF {
	bottomY := o.GapY + o.Gap
	return core.NewRectF(screenX, bottomY, o.Width, worldH-bottomY)
}
