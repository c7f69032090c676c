// pkg/physics/constants_test.go
package physics

import (
	"math"
	"testing"
)

func TestSchwarzschildRadius_KnownMass(t *testing.T) {
	consts := DefaultConstants()

	// 2 * 6.67430e-11 * 8.54e36 / 299792458^2
	got := consts.SchwarzschildRadius(8.54e36)
	want := 2 * consts.G * 8.54e36 / (consts.C * consts.C)

	if got != want {
		t.Errorf("SchwarzschildRadius(8.54e36) = %v, want %v", got, want)
	}
	if math.Abs(got-1.269e10)/1.269e10 > 1e-3 {
		t.Errorf("SchwarzschildRadius(8.54e36) = %v, expected about 1.269e10 m", got)
	}
}

func TestSchwarzschildRadius_Deterministic(t *testing.T) {
	consts := DefaultConstants()
	first := consts.SchwarzschildRadius(3.2e35)
	for i := 0; i < 10; i++ {
		if consts.SchwarzschildRadius(3.2e35) != first {
			t.Fatal("SchwarzschildRadius is not deterministic for equal inputs")
		}
	}
}

func TestSchwarzschildRadius_ScalesLinearly(t *testing.T) {
	consts := DefaultConstants()
	base := consts.SchwarzschildRadius(1e36)
	doubled := consts.SchwarzschildRadius(2e36)

	if math.Abs(doubled-2*base)/base > 1e-12 {
		t.Errorf("expected linear scaling: rs(2m) = %v, 2*rs(m) = %v", doubled, 2*base)
	}
}

func TestScaleConversion_RoundTrip(t *testing.T) {
	consts := Constants{C: 299792458, G: 6.67430e-11, VisScale: 6e-9, TimeMultiplier: 1}

	visual := consts.ToVisual(1e10)
	if math.Abs(visual-60) > 1e-9 {
		t.Errorf("ToVisual(1e10) = %v, expected 60", visual)
	}

	back := consts.ToPhysical(visual)
	if math.Abs(back-1e10)/1e10 > 1e-12 {
		t.Errorf("round trip = %v, expected 1e10", back)
	}
}
