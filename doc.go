// Package chaoracle produces well-distributed binary decisions by passing
// cryptographically strong entropy through chaotic, number-theoretic, and
// transcendental mixing stages.
//
// # Overview
//
// chaoracle is a randomness-quality amplifier: it takes an already-secure
// source (the OS CSPRNG) and runs it through a fixed pipeline of purely
// mathematical transforms so that even partial knowledge of any one stage
// does not predict the output. It is NOT a cryptographic primitive and is
// not suitable for key generation; the mixing stages obfuscate and spread,
// they do not add provable hardness.
//
// # Pipeline
//
// Each decision flows through a strictly linear chain:
//
//	EntropyCollector → ChaosCascade → PrimeSpiralValue → PrimeHarmonicSum
//	                 → TranscendentalMix → ChaosCascade (half length)
//	                 → constant modulation → final SHA-256 mix → threshold
//
// No stage depends on another's internal state except through the float
// values passed along the chain. The chaotic cascade cycles six maps
// (logistic, tent, sinusoidal, gauss, Hénon, Arnold cat); the prime mixers
// key off a table of the first 100 primes; the transcendental mixer blends
// zeta and Stirling-gamma approximations weighted by ten classical
// mathematical constants.
//
// # Quick Start
//
// Ask a single yes/no question:
//
//	oracle, err := chaoracle.New(chaoracle.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := oracle.AskVerbose()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("%s (raw value %.15f)\n", result.Answer, result.RawValue)
//
// # Concurrency
//
// An Oracle mutates its entropy pool and query counter in place and is not
// safe for concurrent use. Use one Oracle per goroutine or guard calls with
// a lock. The constant set and prime table are read-only and safely shared.
//
// # Testing
//
// The package exports statistical assertion helpers in the spirit of
// property-based benchmarks:
//
//	report, _ := chaoracle.Sample(ctx, oracle, chaoracle.DefaultSampleConfig())
//	chaoracle.AssertBalanced(t, report.Yes, report.Samples)
//	chaoracle.AssertUniform(t, report.Values, 0.001)
//
// # Failure Semantics
//
// The only runtime failure is an unavailable OS entropy source, reported as
// ErrEntropyUnavailable. It aborts the in-flight decision and is never
// retried; a process without a working CSPRNG cannot proceed safely.
package chaoracle
