package exactfloat

import "math/big"

// natural is the arbitrary-precision unsigned integer backing the
// mantissa. It wraps math/big behind the handful of operations the
// floating-point layer needs (construction from uint64, shifts,
// add/sub/mul, bit tests, comparison), so the backend could be swapped
// without touching any floating-point logic.
//
// The zero value is the number zero. Operations return fresh values; a
// natural is never mutated after construction.
type natural struct {
	bits *big.Int
}

var (
	natOne  = natFromUint64(1)
	natFive = natFromUint64(5)
)

func natFromUint64(v uint64) natural {
	return natural{new(big.Int).SetUint64(v)}
}

func (n natural) val() *big.Int {
	if n.bits == nil {
		return new(big.Int)
	}
	return n.bits
}

func (n natural) isZero() bool {
	return n.bits == nil || n.bits.Sign() == 0
}

// bitLen returns the number of significant bits, which is zero iff n
// is zero.
func (n natural) bitLen() int {
	if n.bits == nil {
		return 0
	}
	return n.bits.BitLen()
}

// bit returns the i'th bit, with bit 0 the least significant. Bits
// beyond bitLen are zero.
func (n natural) bit(i int) uint {
	if n.bits == nil {
		return 0
	}
	return n.bits.Bit(i)
}

// trailingZeros returns the number of consecutive zero bits at the low
// end, or 0 if n is zero.
func (n natural) trailingZeros() int {
	if n.isZero() {
		return 0
	}
	return int(n.bits.TrailingZeroBits())
}

func (n natural) shl(k int) natural {
	return natural{new(big.Int).Lsh(n.val(), uint(k))}
}

func (n natural) shr(k int) natural {
	return natural{new(big.Int).Rsh(n.val(), uint(k))}
}

func (n natural) add(o natural) natural {
	return natural{new(big.Int).Add(n.val(), o.val())}
}

// sub returns n - o. It requires n >= o.
func (n natural) sub(o natural) natural {
	return natural{new(big.Int).Sub(n.val(), o.val())}
}

func (n natural) mul(o natural) natural {
	return natural{new(big.Int).Mul(n.val(), o.val())}
}

func (n natural) cmp(o natural) int {
	return n.val().Cmp(o.val())
}

// uint64 returns the value as a uint64. It requires bitLen() <= 64.
func (n natural) uint64() uint64 {
	return n.val().Uint64()
}

// decimal returns the value formatted in base 10.
func (n natural) decimal() string {
	return n.val().String()
}

// natPow5 returns 5**k for k >= 0.
func natPow5(k int) natural {
	return natural{new(big.Int).Exp(natFive.bits, big.NewInt(int64(k)), nil)}
}
