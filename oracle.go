package chaoracle

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
)

// Answer labels for the two decision bits.
const (
	AnswerYes = "Yes"
	AnswerNo  = "No"
)

// Config fixes the pipeline parameters at Oracle construction. Values are
// never mutated afterwards.
type Config struct {
	// ChaosIterations is the cascade length for the first pass; the second
	// pass runs half as long. Zero is the documented degenerate case where
	// the cascade returns its clamped seed; negative values are rejected.
	ChaosIterations int

	// PrimeTerms is the length of the prime harmonic series. Must be positive.
	PrimeTerms int

	// ZetaTerms is the length of the zeta partial sums. Must be positive.
	ZetaTerms int

	// Logger receives debug-level stage traces. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the canonical pipeline parameters.
func DefaultConfig() Config {
	return Config{
		ChaosIterations: 100,
		PrimeTerms:      20,
		ZetaTerms:       50,
	}
}

// Result is an immutable snapshot of one decision, owned by the caller.
type Result struct {
	Decision        int     // 0 or 1
	Answer          string  // "Yes" when Decision == 1, "No" otherwise
	RawValue        float64 // final mixed value in [0, 1)
	EntropySources  int     // distinct entropy classes that fed the pipeline
	ChaosIterations int     // configured cascade length
}

// IsYes reports whether the decision bit is set.
func (r Result) IsYes() bool { return r.Decision == 1 }

// Bit returns the raw decision bit.
func (r Result) Bit() int { return r.Decision }

// Oracle runs the full entropy-collection-and-mixing pipeline:
//
//	entropy → cascade → prime spiral → prime harmonic → transcendental mix
//	        → cascade (half length) → constant modulation → final hash → bit
//
// One collector pool and one query counter are mutated per call, so an
// Oracle is not safe for concurrent use without external locking; give each
// goroutine its own instance.
type Oracle struct {
	cfg       Config
	collector *EntropyCollector
	queries   uint64
	log       *slog.Logger
}

// New validates cfg and constructs an Oracle.
func New(cfg Config) (*Oracle, error) {
	if cfg.ChaosIterations < 0 {
		return nil, fmt.Errorf("chaos iterations must not be negative, got %d", cfg.ChaosIterations)
	}
	if cfg.PrimeTerms <= 0 {
		return nil, fmt.Errorf("prime terms must be positive, got %d", cfg.PrimeTerms)
	}
	if cfg.ZetaTerms <= 0 {
		return nil, fmt.Errorf("zeta terms must be positive, got %d", cfg.ZetaTerms)
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Oracle{
		cfg:       cfg,
		collector: NewEntropyCollector(),
		log:       log,
	}, nil
}

// Decide runs one query through the pipeline and returns the decision.
// An entropy-source failure aborts the call; nothing is retried.
func (o *Oracle) Decide() (Result, error) {
	o.queries++

	base, err := o.collector.RandomFloat()
	if err != nil {
		return Result{}, err
	}

	mixed := ChaosCascade(base, o.cfg.ChaosIterations)
	mixed = PrimeSpiralValue(mixed)
	mixed = (mixed + PrimeHarmonicSum(mixed, o.cfg.PrimeTerms)) / 2
	mixed = TranscendentalMix(mixed, o.cfg.ZetaTerms)
	mixed = ChaosCascade(mixed, o.cfg.ChaosIterations/2)

	modulated := o.modulate(mixed)

	final, err := o.finalMix(modulated)
	if err != nil {
		return Result{}, err
	}

	o.log.Debug("oracle query",
		"query", o.queries,
		"base", base,
		"mixed", mixed,
		"final", final,
	)

	decision, answer := 0, AnswerNo
	if final >= 0.5 {
		decision, answer = 1, AnswerYes
	}

	return Result{
		Decision:        decision,
		Answer:          answer,
		RawValue:        final,
		EntropySources:  entropySourceCount,
		ChaosIterations: o.cfg.ChaosIterations,
	}, nil
}

// Ask returns one decision bit.
func (o *Oracle) Ask() (int, error) {
	r, err := o.Decide()
	if err != nil {
		return 0, err
	}
	return r.Decision, nil
}

// AskVerbose returns the full result value object for one decision.
func (o *Oracle) AskVerbose() (Result, error) {
	return o.Decide()
}

// modulate walks the constant set in order, folding a sine of the value at
// even indexes and a cosine at odd ones, mod 1 each step, absolute value at
// the end.
func (o *Oracle) modulate(v float64) float64 {
	for i, c := range MathConstants {
		if i%2 == 0 {
			v = math.Mod(v+math.Sin(c*v*math.Pi), 1)
		} else {
			v = math.Mod(v+math.Cos(c*v*math.E), 1)
		}
	}
	return math.Abs(v)
}

// finalMix re-hashes the modulated value with the query counter and 16
// fresh secure bytes through SHA-256, then maps the leading 64 bits to
// [0, 1). The fresh bytes make the final value unpredictable even to a
// reader of the whole mixing chain.
func (o *Oracle) finalMix(modulated float64) (float64, error) {
	payload := make([]byte, 0, 32)
	payload = binary.BigEndian.AppendUint64(payload, math.Float64bits(modulated))
	payload = binary.BigEndian.AppendUint64(payload, o.queries)

	fresh := make([]byte, 16)
	if _, err := rand.Read(fresh); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	payload = append(payload, fresh...)

	sum := sha256.Sum256(payload)
	return float64(binary.BigEndian.Uint64(sum[:8])) / (1 << 64), nil
}
