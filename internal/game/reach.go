package game

import (
	"fmt"
	"math"
	"math/rand"
)

// PlacementPolicy selects how a gap position is drawn from its
// reachability window.
type PlacementPolicy string

const (
	// PlacementUniform draws uniformly from the window.
	PlacementUniform PlacementPolicy = "uniform"
	// PlacementExtreme pins the gap to the window edge farther from the
	// previous gap, maximizing the required maneuver.
	PlacementExtreme PlacementPolicy = "extreme"
)

// ParsePlacementPolicy validates a placement policy name from config or CLI.
func ParsePlacementPolicy(s string) (PlacementPolicy, error) {
	switch PlacementPolicy(s) {
	case PlacementUniform, PlacementExtreme:
		return PlacementPolicy(s), nil
	case "":
		return PlacementExtreme, nil
	default:
		return "", fmt.Errorf("unknown placement policy %q (want %q or %q)", s, PlacementUniform, PlacementExtreme)
	}
}

// Window is the vertical band a new gap's top edge may occupy while staying
// reachable from the previous gap. Highest is the smaller y value.
type Window struct {
	Highest float64
	Lowest  float64
}

// Reach computes reachability windows for new gaps.
type Reach struct {
	Kin    Kinematics
	WorldH float64
	Fall   FallPolicy
}

// Window returns the feasible band for the top edge of a gap of height gapH
// placed distance world units after a gap whose top edge sat at prevGapY.
// The top bound comes from the best-case climb, the bottom bound from the
// worst-case drop and the screen edge. An inverted band (possible at input
// extremes) is swapped into a valid range rather than propagated.
func (r Reach) Window(prevGapY, distance, gapH float64) Window {
	highest := math.Max(0, prevGapY-r.Kin.MaxHeightIncrease(distance))
	lowest := math.Min(r.WorldH-gapH, prevGapY+r.Kin.MaxHeightDecrease(distance, r.Fall))
	if lowest < highest {
		highest, lowest = lowest, highest
	}
	return Window{Highest: highest, Lowest: lowest}
}

// Contains reports whether a gap top position lies inside the window.
func (w Window) Contains(gapY float64) bool {
	return gapY >= w.Highest && gapY <= w.Lowest
}

// Pick draws a gap position from the window under the given policy.
// The extreme pick chooses the edge farther from the previous gap; ties
// resolve to the top edge.
func (w Window) Pick(policy PlacementPolicy, prevGapY float64, rng *rand.Rand) float64 {
	if policy == PlacementUniform {
		return w.Highest + rng.Float64()*(w.Lowest-w.Highest)
	}
	if prevGapY-w.Highest >= w.Lowest-prevGapY {
		return w.Highest
	}
	return w.Lowest
}
