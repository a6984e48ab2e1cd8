package chaoracle

import "math"

// Map parameters. The one-dimensional maps run at the edge of chaos so a
// single iteration already produces strong avalanche.
const (
	logisticR = 3.9999 // just below the r = 4 boundary
	tentMu    = 1.9999
	henonA    = 1.4
	henonB    = 0.3
	gaussBeta = 6.2
)

// chaosMap enumerates the six maps in cascade cycle order.
type chaosMap int

const (
	mapLogistic chaosMap = iota
	mapTent
	mapSinusoidal
	mapGauss
	mapHenon
	mapArnoldCat
	mapCount
)

// Logistic applies x' = r·x·(1−x) with r = 3.9999.
func Logistic(x float64) float64 {
	return logisticR * x * (1 - x)
}

// Tent applies the tent map with μ = 1.9999.
func Tent(x float64) float64 {
	if x < 0.5 {
		return tentMu * x
	}
	return tentMu * (1 - x)
}

// Sinusoidal applies x' = sin(πx).
func Sinusoidal(x float64) float64 {
	return math.Sin(math.Pi * x)
}

// Gauss applies exp(−6.2/x²) + (x² mod 1). Zero is a fixed point; the
// special case avoids the division.
func Gauss(x float64) float64 {
	if x == 0 {
		return 0
	}
	return math.Exp(-gaussBeta/(x*x)) + math.Mod(x*x, 1)
}

// Henon advances the Hénon system one step (a = 1.4, b = 0.3).
func Henon(x, y float64) (float64, float64) {
	return 1 - henonA*x*x + y, henonB * x
}

// ArnoldCat applies Arnold's cat map on the unit torus.
func ArnoldCat(x, y float64) (float64, float64) {
	return math.Mod(2*x+y, 1), math.Mod(x+y, 1)
}

// ChaosCascade threads a seed through the six maps, cycling in the fixed
// order logistic → tent → sinusoidal → gauss → hénon → arnold. The seed is
// normalized into (0.0001, 1] before iterating; the Hénon x output is
// re-clamped via |x| mod 1 to keep the orbit bounded.
//
// The cascade is a pure function: identical seed and iteration count always
// give bit-identical output. It spreads the input, it does not hide it —
// unpredictability comes entirely from the entropy feeding the seed.
// Zero iterations returns the clamped seed unchanged.
func ChaosCascade(seed float64, iterations int) float64 {
	x := math.Mod(math.Abs(seed), 0.9999) + 0.0001
	y := math.Mod(seed*GoldenRatio, 0.9999) + 0.0001

	for i := 0; i < iterations; i++ {
		switch chaosMap(i) % mapCount {
		case mapLogistic:
			x = Logistic(x)
		case mapTent:
			x = Tent(x)
		case mapSinusoidal:
			x = Sinusoidal(x)
		case mapGauss:
			x = Gauss(x)
		case mapHenon:
			x, y = Henon(x, y)
			x = math.Mod(math.Abs(x), 1)
		case mapArnoldCat:
			x, y = ArnoldCat(x, y)
		}
	}

	return x
}
