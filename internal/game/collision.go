package game

import "github.com/mkarpov/circlerun/internal/core"

// circleHitsRect reports whether the circle strictly overlaps the rectangle.
// The rect point nearest the circle center is found by clamping; overlap
// requires the squared distance to be strictly below radius squared, so a
// zero-radius circle touching an edge never hits.
func circleHitsRect(c core.CircleF, r core.RectF) bool {
	closestX := core.ClampF(c.X, r.X, r.Right())
	closestY := core.ClampF(c.Y, r.Y, r.Bottom())

	dx := c.X - closestX
	dy := c.Y - closestY
	return dx*dx+dy*dy < c.R*c.R
}

// collides reports whether the player hits either rectangle of any live
// obstacle at the given world offset.
func collides(p Player, obstacles []Obstacle, worldOffset, worldH float64) bool {
	c := p.Circle()
	for i := range obstacles {
		sx := obstacles[i].ScreenX(worldOffset)
		if circleHitsRect(c, obstacles[i].TopRect(sx)) {
			return true
		}
		if circleHitsRect(c, obstacles[i].BottomRect(sx, worldH)) {
			return true
		}
	}
	return false
}
