// Package bigint implements arbitrary-precision unsigned integer arithmetic.
// This file contains the numeric constants the limb representation and the
// decimal parser are built on.
package bigint

// ─────────────────────────────────────────────────────────────────────────────
// Representation Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// Base is the limb radix, 2^32. Every limb holds one base-2^32 digit.
	//
	// The radix is chosen so that the widest intermediate value any limb
	// loop can produce — a full limb product plus an incoming carry,
	// (2^32−1)² + (2^32−1) — is strictly below 2^64 and therefore always
	// fits the uint64 accumulators used throughout this package. This
	// headroom bound is what makes overflow a design-time invariant rather
	// than a runtime error path; overflow_test.go pins it down.
	Base uint64 = 1 << 32

	// parseStep is the number of decimal digits per parser chunk.
	//
	// Eight digits keep the chunked long division within uint64 range: a
	// carry is always a remainder modulo Base, so the largest combined
	// value a division step can see is (2^32−1)·10^8 + (10^8−1), roughly
	// 4.3·10^17, well below 2^64. Nine digits would still fit; eight keeps
	// the chunk values below 2^32 as well, which is convenient when
	// reasoning about the first division pass.
	parseStep = 8
)

// ─────────────────────────────────────────────────────────────────────────────
// Parallelism Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultParallelThreshold is the default operand size, in limbs, at
	// which ProductParallel stops delegating to the sequential schoolbook
	// loop and fans the partial products out across goroutines.
	//
	// Below this size the cost of goroutine creation and the final
	// partial-sum merge exceeds the gain from parallelism. 64 limbs
	// (2048 bits) is a conservative crossover for the quadratic schoolbook
	// algorithm on modern multi-core CPUs.
	DefaultParallelThreshold = 64
)
