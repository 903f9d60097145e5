// Package bigint implements arbitrary-precision unsigned integer arithmetic
// over fixed-width base-2^32 limbs, without relying on math/big for the
// values themselves. It exposes a small surface — construction from decimal
// text, equality, addition, and multiplication — backed by carry-propagating
// limb loops whose intermediate results always fit a uint64 accumulator.
// The package integrates the application's observability stack: operation
// counters and duration histograms (Prometheus), structured debug logging
// (zerolog), and tracing for the parallel multiplication path (OpenTelemetry).
package bigint

// BigInt is an arbitrary-precision unsigned integer, stored as a sequence of
// 32-bit limbs in little-endian limb order: the value is Σ limbs[i]·2^(32·i).
//
// The representation is not canonical: trailing zero limbs are permitted, so
// two BigInt values of different limb lengths may denote the same number.
// Every consumer therefore reads limbs through get, which treats indices
// beyond the slice as zero. Use Eq (or Equal) to compare values; comparing
// the structs directly compares representations, not numbers.
//
// A BigInt is immutable once returned by this package. The zero value is
// ready to use and denotes the number zero.
type BigInt struct {
	limbs []uint32
}

// Zero returns the number zero as an empty limb sequence.
//
// Returns:
//   - BigInt: A BigInt with no limbs, denoting zero.
func Zero() BigInt {
	return BigInt{}
}

// get returns the limb at index i, or 0 when i lies beyond the stored
// limbs. This is what makes every operation insensitive to trailing zero
// limbs in either operand.
func (b BigInt) get(i int) uint32 {
	if i < len(b.limbs) {
		return b.limbs[i]
	}
	return 0
}

// Eq reports whether b and other denote the same number.
//
// Limbs are compared position by position up to the longer of the two
// representations, with missing positions reading as zero, so the relation
// is invariant under appending or removing trailing zero limbs. It is
// reflexive, symmetric, and transitive.
//
// Parameters:
//   - other: The value to compare against.
//
// Returns:
//   - bool: true if both values denote the same number.
func (b BigInt) Eq(other BigInt) bool {
	largest := max(len(b.limbs), len(other.limbs))
	for i := 0; i < largest; i++ {
		if b.get(i) != other.get(i) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b denote the same number. It is the
// free-function form of Eq.
//
// Parameters:
//   - a: The first value.
//   - b: The second value.
//
// Returns:
//   - bool: true if both values denote the same number.
func Equal(a, b BigInt) bool {
	return a.Eq(b)
}
