package game

import (
	"fmt"
	"math"
)

// Kinematics captures the player's jump physics plus the horizontal scroll
// speed, and answers reachability questions about the jump arc. All methods
// use the same discrete integration rule as the live player (gravity applied
// to the velocity before the position update), so generated obstacles and
// actual motion can never drift apart.
type Kinematics struct {
	JumpImpulse       float64 // Negative = up
	Gravity           float64 // Downward acceleration per tick
	Speed             float64 // Horizontal scroll in world units per tick
	TickRate          int     // Simulation ticks per second
	MaxJumpsPerSecond int     // Caps the simulated repeat-jump rate
}

// ApexRise returns the maximum upward excursion of a single jump, in world
// units. Closed form of the ascent displacement: the impulse decays to zero
// vertical velocity over |impulse|/gravity ticks.
func (k Kinematics) ApexRise() float64 {
	if k.Gravity <= 0 {
		return 0
	}
	t := math.Abs(k.JumpImpulse) / k.Gravity
	return math.Abs(k.JumpImpulse*t + 0.5*k.Gravity*t*t)
}

// AirTicks returns the tick count of a full jump arc, rise plus fall back
// to the starting height.
func (k Kinematics) AirTicks() int {
	if k.Gravity <= 0 {
		return 0
	}
	return int(2 * math.Abs(k.JumpImpulse) / k.Gravity)
}

// JumpDistance returns the horizontal ground covered by one full jump arc.
func (k Kinematics) JumpDistance() float64 {
	return float64(k.AirTicks()) * k.Speed
}

// jumpInterval returns the minimum tick spacing between impulses.
func (k Kinematics) jumpInterval() int {
	if k.MaxJumpsPerSecond <= 0 {
		return 1
	}
	interval := k.TickRate / k.MaxJumpsPerSecond
	if interval < 1 {
		interval = 1
	}
	return interval
}

// ticksFor returns how many ticks the scroll needs to cover the distance.
func (k Kinematics) ticksFor(distance float64) int {
	if k.Speed <= 0 {
		return 0
	}
	return int(distance / k.Speed)
}

// MaxHeightIncrease forward-simulates a player jumping at the maximum
// allowed rate while the world scrolls the given distance, and returns the
// magnitude of the best-case upward reach. Repeated impulses compound, so
// there is no closed form.
func (k Kinematics) MaxHeightIncrease(distance float64) float64 {
	ticks := k.ticksFor(distance)
	interval := k.jumpInterval()

	var y, v float64
	best := 0.0
	for i := 0; i < ticks; i++ {
		if i%interval == 0 {
			v = k.JumpImpulse
		}
		v += k.Gravity
		y += v
		if y < best {
			best = y
		}
	}
	return -best
}

// FallPolicy names the worst-case descent model used for the lower edge of
// the reachability window.
type FallPolicy string

const (
	// FallConservative assumes the player simply drops from the previous gap.
	FallConservative FallPolicy = "conservative"
	// FallEdgeJump assumes one last impulse at the edge of the previous gap
	// before the drop.
	FallEdgeJump FallPolicy = "edge-jump"
)

// ParseFallPolicy validates a fall policy name from config or CLI.
func ParseFallPolicy(s string) (FallPolicy, error) {
	switch FallPolicy(s) {
	case FallConservative, FallEdgeJump:
		return FallPolicy(s), nil
	case "":
		return FallEdgeJump, nil
	default:
		return "", fmt.Errorf("unknown fall policy %q (want %q or %q)", s, FallConservative, FallEdgeJump)
	}
}

// MaxHeightDecrease forward-simulates a player that takes no further action
// while the world scrolls the given distance, and returns the worst-case
// downward drift, clamped to zero.
func (k Kinematics) MaxHeightDecrease(distance float64, policy FallPolicy) float64 {
	ticks := k.ticksFor(distance)

	var y, v float64
	if policy == FallEdgeJump {
		v = k.JumpImpulse
	}
	worst := 0.0
	for i := 0; i < ticks; i++ {
		v += k.Gravity
		y += v
		if y > worst {
			worst = y
		}
	}
	return worst
}
