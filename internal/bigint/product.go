// Package bigint implements arbitrary-precision unsigned integer arithmetic.
// This file contains schoolbook multiplication.
package bigint

import "time"

// Product returns a × b via the schoolbook method: for each nonzero limb d
// of b at index i, the single-limb product a·d is accumulated into the
// result at a limb offset of i (equivalent to multiplying by 2^(32·i)).
// Skipping zero limbs of b is purely an optimization; it cannot change the
// result, since their partial products are zero.
//
// Complexity is O(len(a)·len(b)) single-limb multiplications plus one
// accumulation pass per nonzero limb of b. Product is a pure function of
// its inputs and never fails. For large operands consider ProductParallel.
//
// Parameters:
//   - a: The first factor.
//   - b: The second factor.
//
// Returns:
//   - BigInt: The product a × b.
func Product(a, b BigInt) BigInt {
	start := time.Now()
	result := mul(a, b)
	observe(opProduct, start, nil)
	return result
}

// mul is the uninstrumented core of Product, shared with ProductParallel's
// sequential fallback.
func mul(a, b BigInt) BigInt {
	result := Zero()
	for i, d := range b.limbs {
		if d == 0 {
			continue
		}
		result = addShifted(result, atomicProduct(a, d), i)
	}
	return result
}

// atomicProduct returns a × d for a single limb d.
//
// Each step widens limb·d plus the incoming carry into a uint64; the
// maximum such value, (2^32−1)² + (2^32−1), stays below 2^64, so the
// accumulator cannot overflow. The low 32 bits become the output limb and
// the high bits carry into the next position; a final carry becomes one
// extra limb.
func atomicProduct(a BigInt, d uint32) BigInt {
	limbs := make([]uint32, 0, len(a.limbs)+1)
	var carry uint64
	for _, da := range a.limbs {
		digitProduct := uint64(da)*uint64(d) + carry
		limbs = append(limbs, uint32(digitProduct%Base))
		carry = digitProduct / Base
	}
	if carry > 0 {
		limbs = append(limbs, uint32(carry))
	}
	return BigInt{limbs: limbs}
}
