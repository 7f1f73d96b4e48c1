package game

import (
	"math"
	"testing"
)

func testKinematics() Kinematics {
	return Kinematics{
		JumpImpulse:       -12,
		Gravity:           0.8,
		Speed:             2,
		TickRate:          60,
		MaxJumpsPerSecond: 3,
	}
}

func TestApexRiseClosedForm(t *testing.T) {
	k := testKinematics()

	// impulse -12 at gravity 0.8 decays over 15 ticks:
	// |(-12)(15) + 0.5(0.8)(15^2)| = |-180 + 90| = 90
	got := k.ApexRise()
	if math.Abs(got-90) > 1e-9 {
		t.Errorf("ApexRise() = %f, want 90", got)
	}
}

func TestApexRiseZeroGravity(t *testing.T) {
	k := testKinematics()
	k.Gravity = 0

	if got := k.ApexRise(); got != 0 {
		t.Errorf("ApexRise() with zero gravity = %f, want 0", got)
	}
}

func TestAirTicksAndJumpDistance(t *testing.T) {
	k := testKinematics()

	if got := k.AirTicks(); got != 30 {
		t.Errorf("AirTicks() = %d, want 30", got)
	}
	if got := k.JumpDistance(); got != 60 {
		t.Errorf("JumpDistance() = %f, want 60", got)
	}
}

func TestGravityAppliedBeforePosition(t *testing.T) {
	k := testKinematics()

	// One tick of free fall from rest must move by exactly one gravity step,
	// not zero: velocity updates before position.
	got := k.MaxHeightDecrease(k.Speed, FallConservative)
	if math.Abs(got-k.Gravity) > 1e-9 {
		t.Errorf("one-tick fall = %f, want %f", got, k.Gravity)
	}
}

func TestMaxHeightIncreaseZeroDistance(t *testing.T) {
	k := testKinematics()

	if got := k.MaxHeightIncrease(0); got != 0 {
		t.Errorf("MaxHeightIncrease(0) = %f, want 0", got)
	}
}

func TestMaxHeightIncreaseCompounds(t *testing.T) {
	k := testKinematics()

	// Over one arc the discrete peak stays below the closed-form apex, but
	// repeated impulses compound well past it.
	oneArc := k.MaxHeightIncrease(k.JumpDistance())
	if oneArc <= 0 {
		t.Fatalf("single-arc climb = %f, want positive", oneArc)
	}
	if oneArc > k.ApexRise() {
		t.Errorf("single-arc climb %f exceeds apex %f", oneArc, k.ApexRise())
	}

	threeArcs := k.MaxHeightIncrease(3 * k.JumpDistance())
	if threeArcs <= k.ApexRise() {
		t.Errorf("repeated-jump climb %f should exceed apex %f", threeArcs, k.ApexRise())
	}
	if threeArcs <= oneArc {
		t.Errorf("climb over 3 arcs (%f) should exceed one arc (%f)", threeArcs, oneArc)
	}
}

func TestMaxHeightIncreaseMonotonic(t *testing.T) {
	k := testKinematics()

	prev := 0.0
	for d := 10.0; d <= 500; d += 10 {
		got := k.MaxHeightIncrease(d)
		if got < prev {
			t.Fatalf("MaxHeightIncrease(%f) = %f, less than %f at shorter distance", d, got, prev)
		}
		prev = got
	}
}

func TestMaxHeightDecreasePolicies(t *testing.T) {
	k := testKinematics()
	d := 4 * k.JumpDistance()

	conservative := k.MaxHeightDecrease(d, FallConservative)
	edgeJump := k.MaxHeightDecrease(d, FallEdgeJump)

	if conservative <= 0 {
		t.Fatalf("conservative fall = %f, want positive", conservative)
	}
	// An impulse at the edge always reduces the drop relative to free fall
	if edgeJump >= conservative {
		t.Errorf("edge-jump fall %f should be below conservative %f", edgeJump, conservative)
	}
}

func TestMaxHeightDecreaseNeverNegative(t *testing.T) {
	k := testKinematics()

	// A short edge-jump arc never descends below the starting height; the
	// worst case clamps to zero rather than going negative.
	got := k.MaxHeightDecrease(k.Speed*5, FallEdgeJump)
	if got != 0 {
		t.Errorf("short edge-jump fall = %f, want 0", got)
	}
}

func TestParseFallPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    FallPolicy
		wantErr bool
	}{
		{"conservative", FallConservative, false},
		{"edge-jump", FallEdgeJump, false},
		{"", FallEdgeJump, false},
		{"bogus", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFallPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFallPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFallPolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParsePlacementPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    PlacementPolicy
		wantErr bool
	}{
		{"uniform", PlacementUniform, false},
		{"extreme", PlacementExtreme, false},
		{"", PlacementExtreme, false},
		{"bogus", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePlacementPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePlacementPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePlacementPolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
