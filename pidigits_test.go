package chaoracle

import (
	"strconv"
	"strings"
	"testing"
)

func TestPiRunCount_Range(t *testing.T) {
	for i := 0; i < 50; i++ {
		n, err := PiRunCount(5)
		if err != nil {
			t.Fatalf("PiRunCount: %v", err)
		}
		if n < 10000 || n > 99999 {
			t.Errorf("PiRunCount(5) = %d, want 5 significant digits", n)
		}
	}
}

// TestPiRunCount_WindowFromPi: the count is an actual window of the stored
// mantissa. No leading zero means Itoa round-trips the window exactly.
func TestPiRunCount_WindowFromPi(t *testing.T) {
	for i := 0; i < 20; i++ {
		n, err := PiRunCount(3)
		if err != nil {
			t.Fatalf("PiRunCount: %v", err)
		}
		if !strings.Contains(piMantissa, strconv.Itoa(n)) {
			t.Errorf("PiRunCount(3) = %d is not a window of π", n)
		}
	}
}

func TestPiRunCount_InvalidDigits(t *testing.T) {
	for _, d := range []int{0, -1, 10, 100} {
		if _, err := PiRunCount(d); err == nil {
			t.Errorf("PiRunCount accepted digit count %d", d)
		}
	}
}
