package chaoracle

import (
	"context"
	"fmt"
	"sort"
)

// SampleConfig controls batch sampling.
type SampleConfig struct {
	Samples int // decisions to draw
}

// DefaultSampleConfig returns a batch size large enough for the
// distribution statistics to be meaningful.
func DefaultSampleConfig() SampleConfig {
	return SampleConfig{Samples: 10000}
}

// Report summarizes the distribution of a batch of decisions.
type Report struct {
	Samples     int
	Yes         int
	No          int
	Mean        float64
	Min         float64
	Max         float64
	KSStatistic float64   // sup distance of the raw values from U[0,1)
	Values      []float64 // raw mixed values, in draw order
}

// Sample draws cfg.Samples decisions from the oracle and returns the
// distribution report. The context is checked between draws, so a batch can
// be cancelled without waiting for it to finish.
func Sample(ctx context.Context, o *Oracle, cfg SampleConfig) (Report, error) {
	if cfg.Samples <= 0 {
		return Report{}, fmt.Errorf("sample count must be positive, got %d", cfg.Samples)
	}

	report := Report{
		Samples: cfg.Samples,
		Min:     1,
		Values:  make([]float64, 0, cfg.Samples),
	}

	var sum float64
	for i := 0; i < cfg.Samples; i++ {
		select {
		case <-ctx.Done():
			return Report{}, ctx.Err()
		default:
		}

		r, err := o.Decide()
		if err != nil {
			return Report{}, fmt.Errorf("sample %d: %w", i, err)
		}

		if r.IsYes() {
			report.Yes++
		} else {
			report.No++
		}
		sum += r.RawValue
		if r.RawValue < report.Min {
			report.Min = r.RawValue
		}
		if r.RawValue > report.Max {
			report.Max = r.RawValue
		}
		report.Values = append(report.Values, r.RawValue)
	}

	report.Mean = sum / float64(cfg.Samples)
	report.KSStatistic = ksStatistic(report.Values)
	return report, nil
}

// ksStatistic computes the Kolmogorov–Smirnov sup distance between the
// empirical distribution of samples and the uniform CDF on [0, 1).
func ksStatistic(samples []float64) float64 {
	n := len(samples)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	d := 0.0
	for i, v := range sorted {
		// Uniform CDF is the identity; compare against both step edges.
		lo := v - float64(i)/float64(n)
		hi := float64(i+1)/float64(n) - v
		if lo > d {
			d = lo
		}
		if hi > d {
			d = hi
		}
	}
	return d
}
