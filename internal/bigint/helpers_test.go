package bigint

import "math/big"

// fromLimbs builds a BigInt directly from limb values, least-significant
// first. Tests use it to pin down exact representations.
func fromLimbs(limbs ...uint32) BigInt {
	return BigInt{limbs: limbs}
}

// toBig converts a BigInt to a math/big value for oracle comparisons.
func toBig(b BigInt) *big.Int {
	x := new(big.Int)
	for i := len(b.limbs) - 1; i >= 0; i-- {
		x.Lsh(x, 32)
		x.Or(x, new(big.Int).SetUint64(uint64(b.limbs[i])))
	}
	return x
}
