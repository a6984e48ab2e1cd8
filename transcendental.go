package chaoracle

import "math"

// defaultZetaTerms bounds the zeta partial sum when a caller passes no term
// count of its own.
const defaultZetaTerms = 30

// RiemannZeta returns the partial sum Σ 1/n^s for n = 1..terms. Arguments at
// or below 1 are shifted to 1.0001 + (|s| mod 10) so the series stays in the
// convergent region.
func RiemannZeta(s float64, terms int) float64 {
	if s <= 1 {
		s = 1.0001 + math.Mod(math.Abs(s), 10)
	}

	sum := 0.0
	for n := 1; n <= terms; n++ {
		sum += 1 / math.Pow(float64(n), s)
	}
	return sum
}

// GammaStirling approximates Γ(x) with Stirling's formula sqrt(2π/x)·(x/e)^x.
// The argument is remapped to |x| + 0.5, which keeps the formula off the
// poles at non-positive integers.
func GammaStirling(x float64) float64 {
	x = math.Abs(x) + 0.5
	return math.Sqrt(2*math.Pi/x) * math.Pow(x/math.E, x)
}

// transcendentalSignals computes the five sub-signals blended by
// TranscendentalMix. Split out so the formula wiring is testable in
// isolation.
func transcendentalSignals(x float64, zetaTerms int) (a, b, c, d, g float64) {
	s := x*10 + 2

	a = math.Pow(math.Sin(s*math.Pi), 2)
	b = math.Pow(math.Cos(s*math.E), 2)
	c = (math.Tanh(s*GoldenRatio) + 1) / 2
	d = math.Mod(RiemannZeta(math.Mod(s, 5)+2, zetaTerms), 1)
	g = math.Mod(math.Log(GammaStirling(x+1)+1), 1)
	return a, b, c, d, g
}

// TranscendentalMix blends five transcendental sub-signals of x into one
// value in [0, 1): squared sine and cosine waves, a shifted tanh sigmoid, a
// zeta partial sum, and a log-gamma fold, averaged with the weights
// [φ, e, π, γ, ρ]. A zetaTerms of zero or less falls back to the package
// default of 30; the Oracle passes its configured count.
func TranscendentalMix(x float64, zetaTerms int) float64 {
	if zetaTerms <= 0 {
		zetaTerms = defaultZetaTerms
	}

	a, b, c, d, g := transcendentalSignals(x, zetaTerms)

	weights := [5]float64{GoldenRatio, math.E, math.Pi, EulerMascheroni, PlasticNumber}
	signals := [5]float64{a, b, c, d, g}

	var weighted, total float64
	for i := range weights {
		weighted += weights[i] * signals[i]
		total += weights[i]
	}

	return math.Mod(weighted/total, 1)
}
