// Package bigint implements arbitrary-precision unsigned integer arithmetic.
// This file contains the decimal parser: chunked long division by the limb
// base, which converts a digit string of any length into limb form.
package bigint

import (
	"time"

	"github.com/rs/zerolog/log"
)

// pow10 holds 10^0 through 10^parseStep, indexed by exponent. It is how a
// carry is scaled back onto a chunk: injecting a carry before a chunk whose
// original width is w is exactly carry·10^w plus the chunk's current value.
var pow10 = [parseStep + 1]uint64{
	1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000,
}

// FromString converts a string of ASCII decimal digits into a BigInt.
//
// The empty string is valid and denotes zero. Any byte outside '0'–'9' makes
// the whole call fail with a *ParseError; no partial value is returned.
//
// The conversion performs long division in chunks: the input is split into
// 8-digit groups, and each pass divides the whole number by 2^32, chunk by
// chunk from most to least significant, carrying the remainder across chunk
// boundaries. Each pass emits one limb (the final remainder) until every
// chunk's quotient has reached zero. Working in chunks bounds the cost of a
// pass by the chunk count instead of re-reading the full digit string, so
// inputs of hundreds or thousands of digits parse without ever holding the
// whole value in a native integer.
//
// Parameters:
//   - s: The decimal digit string to convert. May be empty.
//
// Returns:
//   - BigInt: The parsed value.
//   - error: A *ParseError if s contains a non-digit byte.
func FromString(s string) (BigInt, error) {
	start := time.Now()

	chunks, widths, err := splitDigits(s)
	if err != nil {
		observe(opParse, start, err)
		log.Debug().Err(err).Int("digits", len(s)).Msg("decimal parse rejected")
		return BigInt{}, err
	}

	result := Zero()
	// Each pass divides the chunked number by Base and emits the remainder
	// as the next limb. The loop body always runs at least once, so the
	// empty input still yields a single zero limb — equal to Zero() under
	// Eq, though the representations differ in length.
	for {
		var carry uint64
		for i := range chunks {
			v := chunks[i]
			if carry > 0 {
				// Scale the carry by the chunk's ORIGINAL digit width, not
				// the printed width of its current (shrinking) quotient.
				// Scaling by the wrong width misaligns place value across
				// the chunk boundary and corrupts the result silently.
				v += carry * pow10[widths[i]]
			}
			chunks[i] = v / Base
			carry = v % Base
		}
		result.limbs = append(result.limbs, uint32(carry))
		if allZero(chunks) {
			break
		}
	}

	observe(opParse, start, nil)
	log.Debug().
		Int("digits", len(s)).
		Int("limbs", len(result.limbs)).
		Msg("decimal parse completed")
	return result, nil
}

// MustFromString is like FromString but panics on malformed input. It is
// intended for constants, tests, and benchmarks.
//
// Parameters:
//   - s: The decimal digit string to convert.
//
// Returns:
//   - BigInt: The parsed value.
func MustFromString(s string) BigInt {
	b, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// splitDigits partitions s left to right into parseStep-digit chunks (the
// final chunk may be shorter) and decodes each to a uint64. It returns the
// chunk values together with each chunk's original digit width, which the
// division passes need for carry scaling. A non-digit byte aborts the split
// with a *ParseError.
func splitDigits(s string) (chunks []uint64, widths []int, err error) {
	for begin := 0; begin < len(s); begin += parseStep {
		end := min(begin+parseStep, len(s))
		var v uint64
		for i := begin; i < end; i++ {
			c := s[i]
			if c < '0' || c > '9' {
				return nil, nil, &ParseError{Offset: i, Byte: c}
			}
			v = v*10 + uint64(c-'0')
		}
		chunks = append(chunks, v)
		widths = append(widths, end-begin)
	}
	return chunks, widths, nil
}

// allZero reports whether every chunk quotient has reached zero, which is
// the parser's termination condition.
func allZero(chunks []uint64) bool {
	for _, c := range chunks {
		if c > 0 {
			return false
		}
	}
	return true
}
