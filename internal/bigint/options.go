// Package bigint implements arbitrary-precision unsigned integer arithmetic.
// This file contains configuration options for the parallel multiplication
// path.
package bigint

import "runtime"

// Options configures ProductParallel.
type Options struct {
	// ParallelThreshold is the operand size, in limbs, below which the
	// computation stays sequential. Both operands must reach the threshold
	// for the parallel path to engage.
	// If 0, DefaultParallelThreshold is used.
	ParallelThreshold int
	// Workers caps the number of goroutines computing partial products.
	// If 0, runtime.GOMAXPROCS(0) is used.
	Workers int
}

// normalizeOptions returns a copy of opts with default values filled in for
// zero values, so every code path sees consistent thresholds.
//
// Parameters:
//   - opts: The options to normalize.
//
// Returns:
//   - Options: A normalized copy of opts with defaults applied.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.ParallelThreshold <= 0 {
		normalized.ParallelThreshold = DefaultParallelThreshold
	}
	if normalized.Workers <= 0 {
		normalized.Workers = runtime.GOMAXPROCS(0)
	}
	return normalized
}
