package chaoracle

// The constants below feed every weighted stage of the pipeline. Their order
// matters: the modulation walk and the pairwise entropy collector both index
// MathConstants positionally, so reordering changes digests.

// GoldenRatio φ = (1+√5)/2. Also seeds the cascade's second coordinate.
const GoldenRatio = 1.618033988749895

// EulerMascheroni γ, the limit of the harmonic sum minus ln(n).
const EulerMascheroni = 0.5772156649015329

// PlasticNumber ρ, the real root of x³ = x + 1.
const PlasticNumber = 1.324717957244746

// FeigenbaumDelta δ ≈ 4.669, the universal period-doubling rate.
const FeigenbaumDelta = 4.66920160910299

// FeigenbaumAlpha α ≈ 2.503, the universal amplitude scaling factor.
const FeigenbaumAlpha = 2.502907875095893

// Khinchin K₀, the geometric mean of continued-fraction terms for almost
// every real number.
const Khinchin = 2.6854520010653064

// SilverRatio δ_S = 1 + √2.
const SilverRatio = 2.414213562373095

// ReciprocalFibonacci ψ = Σ 1/F_n.
const ReciprocalFibonacci = 3.3598856662431775

// MathConstants is the fixed, ordered constant set shared read-only by the
// mixing stages. Initialized once, never mutated.
var MathConstants = [10]float64{
	GoldenRatio,
	2.718281828459045, // e
	3.141592653589793, // π
	EulerMascheroni,
	PlasticNumber,
	FeigenbaumDelta,
	FeigenbaumAlpha,
	Khinchin,
	SilverRatio,
	ReciprocalFibonacci,
}
