package chaoracle

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"time"
	"unsafe"
)

// ErrEntropyUnavailable reports that the OS secure random source could not
// supply bytes. It aborts the in-flight decision and is never retried: a
// retry loop would only mask a broken environment.
var ErrEntropyUnavailable = errors.New("system entropy source unavailable")

// entropySourceCount is the number of distinct entropy classes feeding the
// pool: CSPRNG bytes, timestamp, pid, allocation address, constant pairs.
const entropySourceCount = 5

// EntropyCollector accumulates raw bytes from system and mathematical
// sources in a pool and reduces the pool to a SHA-512 digest on demand. The
// pool is fully consumed by every digest; a monotonic counter folded into
// the digest input guarantees no two digests ever hash identical bytes.
//
// A collector is not safe for concurrent use: the pool and counter are
// mutated in place. Use one per goroutine or serialize calls.
type EntropyCollector struct {
	pool    []byte
	counter uint64
}

// NewEntropyCollector returns a collector with an empty pool.
func NewEntropyCollector() *EntropyCollector {
	return &EntropyCollector{pool: make([]byte, 0, 512)}
}

func (c *EntropyCollector) appendUint64(v uint64) {
	c.pool = binary.BigEndian.AppendUint64(c.pool, v)
}

// CollectSystemEntropy appends, in fixed order: 32 CSPRNG bytes, the 8-byte
// big-endian nanosecond timestamp, the 4-byte big-endian pid, and 8 bytes
// derived from the address of a fresh allocation (allocator/layout jitter).
// The only failure path is the OS random source itself.
func (c *EntropyCollector) CollectSystemEntropy() error {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	c.pool = append(c.pool, buf...)

	c.appendUint64(uint64(time.Now().UnixNano()))
	c.pool = binary.BigEndian.AppendUint32(c.pool, uint32(os.Getpid()))

	fresh := new(uint64)
	c.appendUint64(uint64(uintptr(unsafe.Pointer(fresh))))

	return nil
}

// CollectMathEntropy appends sin(cᵢ·cⱼ)·cos(cᵢ/cⱼ) for every unordered pair
// i < j of the ten constants: 45 pairs, 360 bytes per call. Deterministic
// filler that pads the pool between the unpredictable sources.
func (c *EntropyCollector) CollectMathEntropy() {
	for i := 0; i < len(MathConstants); i++ {
		for j := i + 1; j < len(MathConstants); j++ {
			ci, cj := MathConstants[i], MathConstants[j]
			c.appendUint64(math.Float64bits(math.Sin(ci*cj) * math.Cos(ci/cj)))
		}
	}
}

// MixedEntropy runs both collectors, folds in the collection counter,
// reduces the pool with SHA-512, and returns the first n digest bytes
// (1 ≤ n ≤ 64). On return the pool is empty and the counter has advanced by
// exactly one.
func (c *EntropyCollector) MixedEntropy(n int) ([]byte, error) {
	if n <= 0 || n > sha512.Size {
		return nil, fmt.Errorf("digest length %d out of range 1..%d", n, sha512.Size)
	}

	if err := c.CollectSystemEntropy(); err != nil {
		return nil, err
	}
	c.CollectMathEntropy()

	c.counter++
	c.appendUint64(c.counter)

	sum := sha512.Sum512(c.pool)
	c.pool = c.pool[:0]

	return sum[:n], nil
}

// RandomFloat reduces one full collection round to a uniform value in
// [0, 1) with full 64-bit granularity: the leading 8 digest bytes as a
// big-endian integer, divided by 2⁶⁴.
func (c *EntropyCollector) RandomFloat() (float64, error) {
	digest, err := c.MixedEntropy(8)
	if err != nil {
		return 0, err
	}
	return float64(binary.BigEndian.Uint64(digest)) / (1 << 64), nil
}
