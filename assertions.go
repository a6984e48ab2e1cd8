package chaoracle

import (
	"math"
	"testing"
)

// AssertUnitInterval fails the test if any sample falls outside [0, 1).
func AssertUnitInterval(t *testing.T, name string, samples []float64) {
	t.Helper()

	for i, v := range samples {
		if math.IsNaN(v) || v < 0 || v >= 1 {
			t.Errorf("%s: sample %d = %v outside [0, 1)", name, i, v)
			return
		}
	}

	t.Logf("✓ %s: %d samples in [0, 1)", name, len(samples))
}

// AssertUniform runs a Kolmogorov–Smirnov test of samples against U[0,1).
//
// The critical value uses the asymptotic approximation
//
//	D_crit = sqrt(-ln(α/2) / (2n))
//
// which is accurate for the sample sizes used here (n ≥ 100).
func AssertUniform(t *testing.T, samples []float64, alpha float64) {
	t.Helper()

	n := len(samples)
	if n < 100 {
		t.Fatalf("AssertUniform needs at least 100 samples, got %d", n)
	}

	d := ksStatistic(samples)
	crit := math.Sqrt(-math.Log(alpha/2) / (2 * float64(n)))

	if d > crit {
		t.Errorf("Distribution not uniform: KS D = %.5f exceeds critical %.5f (n=%d, α=%g)",
			d, crit, n, alpha)
		return
	}

	t.Logf("✓ Uniform over [0, 1): KS D = %.5f (critical: %.5f, n=%d)", d, crit, n)
}

// AssertBalanced runs a two-sided binomial test (normal approximation) that
// yes out of total is consistent with p = 0.5. The z threshold is
// deliberately wide — 4.5σ, false-failure odds below 1 in 10⁵ — so the
// suite does not flake on honest randomness.
func AssertBalanced(t *testing.T, yes, total int) {
	t.Helper()

	if total == 0 {
		t.Fatalf("AssertBalanced needs at least one trial")
	}

	z := (float64(yes) - float64(total)/2) / math.Sqrt(float64(total)/4)

	const maxZ = 4.5
	if math.Abs(z) > maxZ {
		t.Errorf("Decision split not balanced: %d/%d yes, z = %.2f (|z| max: %.1f)",
			yes, total, z, maxZ)
		return
	}

	t.Logf("✓ Balanced: %d/%d yes (%.2f%%, z = %.2f)",
		yes, total, 100*float64(yes)/float64(total), z)
}

// PrintDistribution outputs a sampling report to the test log.
func PrintDistribution(t *testing.T, report Report) {
	t.Helper()

	t.Logf("\n=== Distribution Report ===")
	t.Logf("Samples: %d", report.Samples)
	t.Logf("  Yes: %d (%.2f%%)", report.Yes, 100*float64(report.Yes)/float64(report.Samples))
	t.Logf("  No:  %d (%.2f%%)", report.No, 100*float64(report.No)/float64(report.Samples))
	t.Logf("Raw values:")
	t.Logf("  Mean: %.6f (uniform expectation: 0.5)", report.Mean)
	t.Logf("  Min:  %.6f", report.Min)
	t.Logf("  Max:  %.6f", report.Max)
	t.Logf("  KS D: %.5f", report.KSStatistic)
}
