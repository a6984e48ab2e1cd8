package chaoracle

import (
	"math"
	"testing"
)

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// TestPrimeTable verifies the table really holds the first 100 primes.
func TestPrimeTable(t *testing.T) {
	if primeTable[0] != 2 || primeTable[99] != 541 {
		t.Fatalf("table endpoints wrong: first=%d last=%d", primeTable[0], primeTable[99])
	}

	prev := 1
	for i, p := range primeTable {
		if !isPrime(p) {
			t.Errorf("primeTable[%d] = %d is not prime", i, p)
		}
		if p <= prev {
			t.Errorf("primeTable[%d] = %d not increasing (prev %d)", i, p, prev)
		}
		// No prime skipped between table entries.
		for q := prev + 1; q < p; q++ {
			if isPrime(q) {
				t.Errorf("prime %d missing before primeTable[%d] = %d", q, i, p)
			}
		}
		prev = p
	}
}

// TestPrimeSpiralValue_Range checks the output stays in [0, 1) across
// positive, negative, and large inputs.
func TestPrimeSpiralValue_Range(t *testing.T) {
	inputs := []float64{0, 0.0001, 0.5, 0.9999, -0.37, -5.2, 123.456, 1e9, -1e7}
	for x := -3.0; x < 3.0; x += 0.0173 {
		inputs = append(inputs, x)
	}

	for _, x := range inputs {
		v := PrimeSpiralValue(x)
		if math.IsNaN(v) || v < 0 || v >= 1 {
			t.Errorf("PrimeSpiralValue(%v) = %v outside [0, 1)", x, v)
		}
	}
}

// TestPrimeSpiralValue_WorkedExample recomputes the index and fold chain for
// x = 0.123 independently and compares against the implementation.
func TestPrimeSpiralValue_WorkedExample(t *testing.T) {
	const x = 0.123

	idx := int(math.Floor(math.Abs(x*1000))) % 100 // 123 mod 100 = 23
	if idx != 23 {
		t.Fatalf("index selection broken: got %d, want 23", idx)
	}
	p := float64(primeTable[idx])

	r := math.Mod(x*p, 1)
	idx2 := (idx + int(math.Floor(x*50))) % 100 // 23 + 6 = 29
	want := math.Abs(math.Mod(r+math.Sin(float64(primeTable[idx2])*x), 1))

	got := PrimeSpiralValue(x)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("PrimeSpiralValue(%v) = %v, independent computation gives %v", x, got, want)
	}
	t.Logf("x=%v → idx=%d (p=%v), idx2=%d (p=%d), value=%v", x, idx, p, idx2, primeTable[idx2], got)
}

// TestPrimeHarmonicSum_Range checks the normalized sum lands in [0, 0.5]
// for every term count, including counts past the table.
func TestPrimeHarmonicSum_Range(t *testing.T) {
	for _, terms := range []int{1, 5, 20, 100, 150} {
		for x := -4.0; x < 4.0; x += 0.057 {
			v := PrimeHarmonicSum(x, terms)
			if math.IsNaN(v) || v < 0 || v > 0.5 {
				t.Errorf("PrimeHarmonicSum(%v, %d) = %v outside [0, 0.5]", x, terms, v)
			}
		}
	}
}

// TestPrimeHarmonicSum_Deterministic: same input, same sum.
func TestPrimeHarmonicSum_Deterministic(t *testing.T) {
	if PrimeHarmonicSum(0.777, 20) != PrimeHarmonicSum(0.777, 20) {
		t.Error("PrimeHarmonicSum not deterministic")
	}
}
