// Package refbits implements a deliberately naive unsigned big-integer
// variant that stores one bit per limb. It exists purely as a correctness
// oracle for the optimized base-2^32 core: the algorithms here are simple
// enough to verify by inspection, so agreement between the two
// implementations on random inputs is strong evidence for the optimized
// limb loops. Nothing outside cross-check tests should depend on this
// package.
package refbits

import "fmt"

// BigInt is an unsigned integer stored one bit per limb, least-significant
// bit first: the value is Σ bits[i]·2^i. Like the optimized representation,
// it is not canonical — trailing zero bits are permitted and ignored by Eq.
type BigInt struct {
	bits []uint8
}

// Zero returns the number zero as an empty bit sequence.
func Zero() BigInt {
	return BigInt{}
}

// FromBinaryString converts a string of '0' and '1' characters into a
// BigInt. The i-th character carries weight 2^i, i.e. the string is read
// least-significant bit first. Any other character is an error.
func FromBinaryString(s string) (BigInt, error) {
	bits := make([]uint8, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '0' && c != '1' {
			return BigInt{}, fmt.Errorf("refbits: invalid binary digit %q at offset %d", c, i)
		}
		bits = append(bits, c-'0')
	}
	return BigInt{bits: bits}, nil
}

// FromBits builds a BigInt from a bit slice, least-significant first. The
// slice is copied; every element must be 0 or 1.
func FromBits(bits []uint8) (BigInt, error) {
	for i, b := range bits {
		if b > 1 {
			return BigInt{}, fmt.Errorf("refbits: invalid bit value %d at index %d", b, i)
		}
	}
	out := make([]uint8, len(bits))
	copy(out, bits)
	return BigInt{bits: out}, nil
}

// Len returns the number of stored bits, including trailing zeros.
func (b BigInt) Len() int {
	return len(b.bits)
}

// Bit returns the bit at index i, or 0 when i lies beyond the stored bits.
func (b BigInt) Bit(i int) uint8 {
	if i < len(b.bits) {
		return b.bits[i]
	}
	return 0
}

// Eq reports whether b and other denote the same number, ignoring trailing
// zero bits.
func (b BigInt) Eq(other BigInt) bool {
	largest := max(len(b.bits), len(other.bits))
	for i := 0; i < largest; i++ {
		if b.Bit(i) != other.Bit(i) {
			return false
		}
	}
	return true
}

// timesTwo doubles the value by inserting a zero at the least-significant
// position. This is the bit-level analogue of the index-offset write the
// optimized multiplier uses for limb shifts.
func (b BigInt) timesTwo() BigInt {
	bits := make([]uint8, 0, len(b.bits)+1)
	bits = append(bits, 0)
	bits = append(bits, b.bits...)
	return BigInt{bits: bits}
}

// Sum returns a + b by full-adder recurrence over bit positions.
func Sum(a, b BigInt) BigInt {
	largest := max(len(a.bits), len(b.bits))
	bits := make([]uint8, 0, largest+1)
	var carry uint8
	for i := 0; i < largest; i++ {
		t := a.Bit(i) + b.Bit(i) + carry
		bits = append(bits, t%2)
		carry = t / 2
	}
	if carry == 1 {
		bits = append(bits, 1)
	}
	return BigInt{bits: bits}
}

// Product returns a × b by double-and-add: for each set bit of b, the
// running doubling of a is added into the result.
func Product(a, b BigInt) BigInt {
	result := Zero()
	temp := a
	for _, bit := range b.bits {
		if bit == 1 {
			result = Sum(result, temp)
		}
		temp = temp.timesTwo()
	}
	return result
}
