package game

import (
	"math/rand"
	"testing"
)

func testReach() Reach {
	return Reach{
		Kin:    testKinematics(),
		WorldH: 800,
		Fall:   FallEdgeJump,
	}
}

func TestWindowStaysOnScreen(t *testing.T) {
	r := testReach()
	gapH := 100.0

	for _, prevGapY := range []float64{0, 50, 400, 700} {
		for _, d := range []float64{60, 120, 240, 480} {
			w := r.Window(prevGapY, d, gapH)

			if w.Highest > w.Lowest {
				t.Errorf("window(prev=%f, d=%f) inverted: %+v", prevGapY, d, w)
			}
			if w.Highest < 0 {
				t.Errorf("window(prev=%f, d=%f) top above screen: %+v", prevGapY, d, w)
			}
			if w.Lowest > r.WorldH-gapH {
				t.Errorf("window(prev=%f, d=%f) bottom pushes gap off screen: %+v", prevGapY, d, w)
			}
		}
	}
}

func TestWindowGrowsWithDistance(t *testing.T) {
	r := testReach()

	near := r.Window(400, 60, 100)
	far := r.Window(400, 400, 100)

	if far.Highest > near.Highest {
		t.Errorf("longer distance should allow higher gaps: near=%+v far=%+v", near, far)
	}
	if far.Lowest < near.Lowest {
		t.Errorf("longer distance should allow lower gaps: near=%+v far=%+v", near, far)
	}
}

func TestWindowSwapsInvertedBand(t *testing.T) {
	r := testReach()

	// A gap nearly as tall as the world forces Lowest below the climb bound
	// when the previous gap sits deep. The band must come back ordered.
	w := r.Window(700, 0, 790)
	if w.Highest > w.Lowest {
		t.Errorf("inverted band not swapped: %+v", w)
	}
}

func TestWindowContains(t *testing.T) {
	w := Window{Highest: 100, Lowest: 300}

	for _, y := range []float64{100, 200, 300} {
		if !w.Contains(y) {
			t.Errorf("Contains(%f) = false, want true", y)
		}
	}
	for _, y := range []float64{99.9, 300.1} {
		if w.Contains(y) {
			t.Errorf("Contains(%f) = true, want false", y)
		}
	}
}

func TestUniformPickStaysInWindow(t *testing.T) {
	w := Window{Highest: 120, Lowest: 480}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		got := w.Pick(PlacementUniform, 300, rng)
		if !w.Contains(got) {
			t.Fatalf("uniform pick %f outside window %+v", got, w)
		}
	}
}

func TestExtremePickFartherEdge(t *testing.T) {
	w := Window{Highest: 100, Lowest: 500}
	rng := rand.New(rand.NewSource(1))

	// Previous gap near the bottom: the top edge is the harder target
	if got := w.Pick(PlacementExtreme, 450, rng); got != w.Highest {
		t.Errorf("pick near bottom = %f, want top edge %f", got, w.Highest)
	}

	// Previous gap near the top: the bottom edge is the harder target
	if got := w.Pick(PlacementExtreme, 150, rng); got != w.Lowest {
		t.Errorf("pick near top = %f, want bottom edge %f", got, w.Lowest)
	}

	// Equidistant resolves to the top edge
	if got := w.Pick(PlacementExtreme, 300, rng); got != w.Highest {
		t.Errorf("equidistant pick = %f, want top edge %f", got, w.Highest)
	}
}
