package chaoracle

import (
	"math"
	"testing"
)

// TestChaosCascade_Deterministic verifies identical inputs give bit-identical
// output: the cascade spreads, it must not surprise.
func TestChaosCascade_Deterministic(t *testing.T) {
	seeds := []float64{0, 0.000001, 0.123456789, 0.5, 0.987654321, 0.9999}
	iterations := []int{1, 6, 37, 100, 1001}

	for _, seed := range seeds {
		for _, n := range iterations {
			first := ChaosCascade(seed, n)
			second := ChaosCascade(seed, n)
			if first != second {
				t.Errorf("cascade(%v, %d) not deterministic: %v != %v", seed, n, first, second)
			}
		}
	}
}

// TestChaosCascade_ZeroIterations verifies the degenerate path: no map is
// applied and the clamped seed comes straight back.
func TestChaosCascade_ZeroIterations(t *testing.T) {
	seeds := []float64{0, 0.25, 0.9999, 1.5, -0.75, 42.42}

	for _, seed := range seeds {
		want := math.Mod(math.Abs(seed), 0.9999) + 0.0001
		got := ChaosCascade(seed, 0)
		if got != want {
			t.Errorf("cascade(%v, 0) = %v, want clamped seed %v", seed, got, want)
		}
	}
}

// TestChaosCascade_SingleIteration verifies the cycle starts with the
// logistic map.
func TestChaosCascade_SingleIteration(t *testing.T) {
	seed := 0.31830988618
	clamped := math.Mod(math.Abs(seed), 0.9999) + 0.0001

	want := Logistic(clamped)
	got := ChaosCascade(seed, 1)
	if got != want {
		t.Errorf("cascade(%v, 1) = %v, want Logistic(clamped) = %v", seed, got, want)
	}
}

// TestChaosCascade_Bounded sweeps seeds from the collector's output range
// and checks the orbit never escapes.
func TestChaosCascade_Bounded(t *testing.T) {
	for seed := 0.0; seed < 1.0; seed += 0.0137 {
		for _, n := range []int{5, 50, 100, 333} {
			x := ChaosCascade(seed, n)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				t.Fatalf("cascade(%v, %d) diverged: %v", seed, n, x)
			}
			if x < -0.1 || x > 1.1 {
				t.Errorf("cascade(%v, %d) = %v escaped the unit neighborhood", seed, n, x)
			}
		}
	}
}

func TestChaosMaps(t *testing.T) {
	if got := Gauss(0); got != 0 {
		t.Errorf("Gauss(0) = %v, want 0 (fixed point)", got)
	}

	if got := Logistic(0.5); math.Abs(got-0.999975) > 1e-12 {
		t.Errorf("Logistic(0.5) = %v, want 0.999975", got)
	}

	if got := Tent(0.5); math.Abs(got-0.99995) > 1e-12 {
		t.Errorf("Tent(0.5) = %v, want 0.99995", got)
	}
	if Tent(0.25) != Tent(0.75) {
		t.Errorf("Tent not symmetric: Tent(0.25)=%v, Tent(0.75)=%v", Tent(0.25), Tent(0.75))
	}

	if got := Sinusoidal(0.5); math.Abs(got-1) > 1e-15 {
		t.Errorf("Sinusoidal(0.5) = %v, want 1", got)
	}

	x, y := Henon(0.5, 0.2)
	wantX, wantY := 1-1.4*0.25+0.2, 0.3*0.5
	if x != wantX || y != wantY {
		t.Errorf("Henon(0.5, 0.2) = (%v, %v), want (%v, %v)", x, y, wantX, wantY)
	}

	for v := 0.0; v < 1.0; v += 0.09 {
		ax, ay := ArnoldCat(v, 1-v)
		if ax < 0 || ax >= 1 || ay < 0 || ay >= 1 {
			t.Errorf("ArnoldCat(%v, %v) = (%v, %v) left the unit torus", v, 1-v, ax, ay)
		}
	}
}

// TestChaosCascade_Avalanche checks that nearby seeds separate after a full
// cycle budget. Not a chaos proof, only a regression guard on the spread.
func TestChaosCascade_Avalanche(t *testing.T) {
	a := ChaosCascade(0.500000000, 100)
	b := ChaosCascade(0.500000001, 100)
	if a == b {
		t.Errorf("cascade collapsed nearby seeds to the same orbit: %v", a)
	}
	t.Logf("seed Δ=1e-9 → output Δ=%.6f", math.Abs(a-b))
}
