// Package bigint implements arbitrary-precision unsigned integer arithmetic.
// This file contains limb-wise addition.
package bigint

import "time"

// Sum returns a + b.
//
// Addition walks limb positions from least to most significant, widening
// both limbs and the incoming carry into a uint64; a position's sum is at
// most 2·(2^32−1)+1 < 2^33, so the accumulator never overflows. A final
// carry, if any, becomes one extra limb. The output length is the longer of
// the two inputs, plus one when that final carry occurs. Sum never fails.
//
// Parameters:
//   - a: The first addend.
//   - b: The second addend.
//
// Returns:
//   - BigInt: The sum a + b.
func Sum(a, b BigInt) BigInt {
	start := time.Now()
	result := add(a, b)
	observe(opSum, start, nil)
	return result
}

// add is the uninstrumented core of Sum, shared with the multiplication
// accumulation loops.
func add(a, b BigInt) BigInt {
	largest := max(len(a.limbs), len(b.limbs))
	limbs := make([]uint32, 0, largest+1)
	var carry uint64
	for i := 0; i < largest; i++ {
		digitSum := uint64(a.get(i)) + uint64(b.get(i)) + carry
		if digitSum >= Base {
			limbs = append(limbs, uint32(digitSum-Base))
			carry = 1
		} else {
			limbs = append(limbs, uint32(digitSum))
			carry = 0
		}
	}
	if carry == 1 {
		limbs = append(limbs, 1)
	}
	return BigInt{limbs: limbs}
}

// addShifted returns acc + p·Base^shift.
//
// Rather than materializing the shifted operand by prepending shift zero
// limbs, the loop reads p at an index offset, which keeps every partial
// product accumulation in Product a single pass with no copying.
func addShifted(acc, p BigInt, shift int) BigInt {
	largest := max(len(acc.limbs), len(p.limbs)+shift)
	limbs := make([]uint32, 0, largest+1)
	var carry uint64
	for i := 0; i < largest; i++ {
		digitSum := uint64(acc.get(i)) + carry
		if i >= shift {
			digitSum += uint64(p.get(i - shift))
		}
		if digitSum >= Base {
			limbs = append(limbs, uint32(digitSum-Base))
			carry = 1
		} else {
			limbs = append(limbs, uint32(digitSum))
			carry = 0
		}
	}
	if carry == 1 {
		limbs = append(limbs, 1)
	}
	return BigInt{limbs: limbs}
}
