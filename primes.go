package chaoracle

import "math"

// primeTable holds the first 100 primes (2..541). Shared read-only by both
// mixing functions; never mutated after process start.
var primeTable = [100]int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
	127, 131, 137, 139, 149, 151, 157, 163, 167, 173,
	179, 181, 191, 193, 197, 199, 211, 223, 227, 229,
	233, 239, 241, 251, 257, 263, 269, 271, 277, 281,
	283, 293, 307, 311, 313, 317, 331, 337, 347, 349,
	353, 359, 367, 373, 379, 383, 389, 397, 401, 409,
	419, 421, 431, 433, 439, 443, 449, 457, 461, 463,
	467, 479, 487, 491, 499, 503, 509, 521, 523, 541,
}

// PrimeSpiralValue mixes x through two prime-indexed lookups and returns a
// value in [0, 1). The first index walks the table by the third decimal of
// x, the second offsets it by floor(x·50), so nearby inputs land on distant
// primes.
func PrimeSpiralValue(x float64) float64 {
	// floor(|x·1000|) mod 100, reduced before the int conversion so large
	// inputs cannot overflow.
	idx := int(math.Mod(math.Abs(x*1000), 100))
	p := float64(primeTable[idx])

	r := math.Mod(x*p, 1)

	step := int(math.Floor(math.Mod(x*50, 100)))
	idx2 := ((idx+step)%100 + 100) % 100
	r = math.Mod(r+math.Sin(float64(primeTable[idx2])*x), 1)

	return math.Abs(r)
}

// PrimeHarmonicSum sums sin(x·p)/p over the first terms primes and
// normalizes into [0, 0.5]. Term counts beyond the table are clamped to it.
func PrimeHarmonicSum(x float64, terms int) float64 {
	if terms < 0 {
		terms = 0
	}
	if terms > len(primeTable) {
		terms = len(primeTable)
	}

	sum := 0.0
	for _, p := range primeTable[:terms] {
		sum += math.Sin(x*float64(p)) / float64(p)
	}

	// Each term is bounded by 1/p ≤ 1/2, so sum+terms is never negative and
	// the mod stays in [0, 1).
	return math.Mod(sum+float64(terms), 1) / 2
}
