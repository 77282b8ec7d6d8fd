// Package exactfloat implements an arbitrary-precision binary
// floating-point number type for exact geometric computation.
//
// An [ExactFloat] consists of a sign, an arbitrary-precision integer
// mantissa, and a bounded integer exponent. Addition, subtraction, and
// multiplication are exact: unlike float64 or [math/big.Float], results
// are never rounded. The type exists to decide signs and comparisons of
// low-degree polynomial expressions, so only the operations needed for
// that are provided; there is no division and there are no
// transcendental functions.
//
// Exactness has a deliberate safety valve: an operation whose exact
// result would need more than [MaxPrec] mantissa bits yields NaN rather
// than a silently rounded value, and NaN then poisons every subsequent
// operation that consumes it. Callers that need a definite answer check
// [ExactFloat.IsNaN] at the end rather than after every step.
//
// Special values (signed zero, signed infinity, NaN) follow IEEE
// 754-2008: Inf - Inf and Inf * 0 are NaN, signed-zero addition
// preserves the usual sign rules, NaN compares unordered with
// everything including itself, and positive and negative zero compare
// equal.
package exactfloat

import "math"

const (
	// MaxPrec is the maximum number of mantissa bits. An exact result
	// needing more bits becomes NaN. The limit is far beyond what
	// low-degree polynomials of float64 inputs can produce; reaching it
	// indicates inputs of astronomically disparate scale.
	MaxPrec = 64 << 20

	// MinExp and MaxExp bound the binary exponent of normal values
	// (as returned by [ExactFloat.Exp]). Results below MinExp
	// underflow to signed zero; results above MaxExp overflow to
	// signed infinity. The range is narrow enough that exponent
	// arithmetic below never overflows an int32 (2*MaxExp and
	// 2*(MinExp-MaxPrec) are both well in range).
	MinExp = -200000000
	MaxExp = 200000000

	// mantissaBits is the number of mantissa bits in a float64,
	// including the implicit leading one.
	mantissaBits = 53
)

// Special values are encoded as reserved exponent sentinels so that
// dispatching on "is this value special" is O(1). Normal exponents are
// confined to [MinExp-MaxPrec, MaxExp] and cannot collide.
const (
	expZero     = math.MaxInt32 - 2
	expInfinity = math.MaxInt32 - 1
	expNaN      = math.MaxInt32
)

// An ExactFloat is an immutable arbitrary-precision binary
// floating-point value. Its methods return new values and never mutate
// their receiver or operands, so ExactFloats may be freely copied and
// shared across goroutines.
//
// Normal values are kept in canonical form: the mantissa is nonzero and
// odd (trailing zero bits are folded into the exponent at construction
// time), so equal values have identical representations.
//
// The zero value of ExactFloat behaves as +0.
type ExactFloat struct {
	// sign is the sign of the value (+1 or -1; the zero value's 0 is
	// treated as +1). It is meaningful even for zero and infinity, but
	// not for NaN.
	sign int8
	// exp is the base-2 exponent of the mantissa's least significant
	// bit, i.e. the value is sign * mant * 2**exp, or one of the
	// reserved sentinels above.
	exp int32
	// mant is the unsigned mantissa. It is zero for zero, infinity,
	// and NaN.
	mant natural
}

// New returns the ExactFloat representing v exactly. Every float64 is
// representable, including subnormals, signed zeros, infinities, and
// NaN.
func New(v float64) ExactFloat {
	sign := int8(1)
	if math.Signbit(v) {
		sign = -1
	}
	switch {
	case math.IsNaN(v):
		return NaN()
	case math.IsInf(v, 0):
		return Inf(int(sign))
	}
	// Frexp yields a fraction in [0.5, 1); shifting it left by the
	// width of a float64 mantissa always gives an integer. This
	// handles subnormals and zero without any bit masking.
	f, exp := math.Frexp(math.Abs(v))
	m := uint64(math.Ldexp(f, mantissaBits))
	r := ExactFloat{sign: sign, exp: int32(exp - mantissaBits), mant: natFromUint64(m)}
	return r.canon()
}

// NewInt returns the ExactFloat representing v exactly.
func NewInt(v int64) ExactFloat {
	sign := int8(1)
	mag := uint64(v)
	if v < 0 {
		sign = -1
		mag = -mag
	}
	r := ExactFloat{sign: sign, mant: natFromUint64(mag)}
	return r.canon()
}

// SignedZero returns +0 if sign >= 0 and -0 otherwise.
func SignedZero(sign int) ExactFloat {
	return ExactFloat{sign: signOf(sign), exp: expZero}
}

// Inf returns +Inf if sign >= 0 and -Inf otherwise.
func Inf(sign int) ExactFloat {
	return ExactFloat{sign: signOf(sign), exp: expInfinity}
}

// NaN returns a NaN value.
func NaN() ExactFloat {
	return ExactFloat{sign: 1, exp: expNaN}
}

func signOf(sign int) int8 {
	if sign < 0 {
		return -1
	}
	return 1
}

// signum returns the receiver's sign bit as +1 or -1, regardless of
// whether the value is zero, infinite, or NaN.
func (x ExactFloat) signum() int {
	if x.sign < 0 {
		return -1
	}
	return 1
}

// isNormal reports whether x is finite and nonzero. The mantissa test
// only matters for the zero value of the type, which carries a normal
// exponent and an empty mantissa.
func (x ExactFloat) isNormal() bool {
	return x.exp < expZero && !x.mant.isZero()
}

// IsZero reports whether x is zero (of either sign).
func (x ExactFloat) IsZero() bool {
	return x.exp == expZero || (x.exp < expZero && x.mant.isZero())
}

// IsInf reports whether x is an infinity (of either sign).
func (x ExactFloat) IsInf() bool {
	return x.exp == expInfinity
}

// IsNaN reports whether x is NaN.
func (x ExactFloat) IsNaN() bool {
	return x.exp == expNaN
}

// Signbit reports whether x is negative or negative zero. It is false
// for NaN.
func (x ExactFloat) Signbit() bool {
	return !x.IsNaN() && x.sign < 0
}

// Sign returns -1, 0, or +1 according to the sign of x. It is 0 for
// both zeros and for NaN.
func (x ExactFloat) Sign() int {
	if x.IsZero() || x.IsNaN() {
		return 0
	}
	return x.signum()
}

// Prec returns the number of significant mantissa bits, which is zero
// for zero, infinity, and NaN.
func (x ExactFloat) Prec() int {
	return x.mant.bitLen()
}

// Exp returns the binary exponent of x, i.e. the smallest e such that
// |x| < 2**e. It requires a normal (finite, nonzero) value and returns
// 0 otherwise.
func (x ExactFloat) Exp() int {
	if !x.isNormal() {
		return 0
	}
	return int(x.exp) + x.mant.bitLen()
}

// canon restores canonical form: a zero mantissa or an exponent below
// MinExp becomes signed zero, an exponent above MaxExp becomes signed
// infinity, trailing zero mantissa bits are folded into the exponent,
// and a mantissa wider than MaxPrec becomes NaN to signal that an
// inexact computation would otherwise have occurred.
func (x ExactFloat) canon() ExactFloat {
	if x.exp >= expZero {
		return x
	}
	if x.mant.isZero() || x.Exp() < MinExp {
		return SignedZero(x.signum())
	}
	if x.Exp() > MaxExp {
		return Inf(x.signum())
	}
	if shift := x.mant.trailingZeros(); shift > 0 {
		x.mant = x.mant.shr(shift)
		x.exp += int32(shift)
	}
	if x.mant.bitLen() > MaxPrec {
		return NaN()
	}
	return x
}

// withSign returns a copy of x with the given sign.
func (x ExactFloat) withSign(sign int) ExactFloat {
	x.sign = signOf(sign)
	return x
}

// Neg returns -x.
func (x ExactFloat) Neg() ExactFloat {
	return x.withSign(-x.signum())
}

// Abs returns |x|.
func (x ExactFloat) Abs() ExactFloat {
	return x.withSign(+1)
}

// CopySign returns x with the sign of y.
func (x ExactFloat) CopySign(y ExactFloat) ExactFloat {
	return x.withSign(y.signum())
}

// Add returns the exact sum x + y.
func (x ExactFloat) Add(y ExactFloat) ExactFloat {
	return signedSum(x.signum(), x, y.signum(), y)
}

// Sub returns the exact difference x - y.
func (x ExactFloat) Sub(y ExactFloat) ExactFloat {
	return signedSum(x.signum(), x, -y.signum(), y)
}

// signedSum returns asign*|a| + bsign*|b| exactly.
func signedSum(asign int, a ExactFloat, bsign int, b ExactFloat) ExactFloat {
	if !a.isNormal() || !b.isNormal() {
		// Zero, infinity, and NaN follow IEEE 754-2008.
		switch {
		case a.IsNaN():
			return a
		case b.IsNaN():
			return b
		case a.IsInf():
			// Opposite-signed infinities sum to NaN.
			if b.IsInf() && asign != bsign {
				return NaN()
			}
			return Inf(asign)
		case b.IsInf():
			return Inf(bsign)
		case a.IsZero():
			if !b.IsZero() {
				return b.withSign(bsign)
			}
			// Two zeros of the same sign keep it; opposite signs
			// give +0.
			if asign == bsign {
				return SignedZero(asign)
			}
			return SignedZero(+1)
		default:
			return a.withSign(asign)
		}
	}
	// Line the mantissas up on the smaller exponent, with "a" the
	// value holding the larger one.
	if a.exp < b.exp {
		asign, bsign = bsign, asign
		a, b = b, a
	}
	am := a.mant
	if a.exp > b.exp {
		am = am.shl(int(a.exp - b.exp))
	}
	r := ExactFloat{exp: b.exp}
	if asign == bsign {
		r.mant = am.add(b.mant)
		r.sign = signOf(asign)
	} else {
		switch am.cmp(b.mant) {
		case 1:
			r.mant = am.sub(b.mant)
			r.sign = signOf(asign)
		case -1:
			r.mant = b.mant.sub(am)
			r.sign = signOf(bsign)
		default:
			// Exact cancellation yields +0.
			return SignedZero(+1)
		}
	}
	return r.canon()
}

// Mul returns the exact product x * y.
func (x ExactFloat) Mul(y ExactFloat) ExactFloat {
	sign := x.signum() * y.signum()
	if !x.isNormal() || !y.isNormal() {
		// Zero, infinity, and NaN follow IEEE 754-2008.
		switch {
		case x.IsNaN():
			return x
		case y.IsNaN():
			return y
		case x.IsInf():
			// Infinity times zero is NaN.
			if y.IsZero() {
				return NaN()
			}
			return Inf(sign)
		case y.IsInf():
			if x.IsZero() {
				return NaN()
			}
			return Inf(sign)
		default:
			return SignedZero(sign)
		}
	}
	r := ExactFloat{sign: signOf(sign), exp: x.exp + y.exp, mant: x.mant.mul(y.mant)}
	return r.canon()
}

// Eq reports whether x == y. NaN is not equal to anything, including
// itself; positive and negative zero are equal.
func (x ExactFloat) Eq(y ExactFloat) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	if x.IsZero() || y.IsZero() {
		return x.IsZero() && y.IsZero()
	}
	// Canonical form strips trailing zero mantissa bits, so equal
	// values (normal or infinite) have equal exponents.
	if x.exp != y.exp || x.signum() != y.signum() {
		return false
	}
	return x.mant.cmp(y.mant) == 0
}

// Less reports whether x < y. NaN is unordered: the result is false
// whenever either operand is NaN.
func (x ExactFloat) Less(y ExactFloat) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	if x.IsZero() && y.IsZero() {
		return false
	}
	// Anything negative is less than anything positive.
	if x.signum() != y.signum() {
		return x.signum() < y.signum()
	}
	if x.signum() > 0 {
		return x.absLess(y)
	}
	return y.absLess(x)
}

// absLess reports whether |x| < |y|, for non-NaN operands.
func (x ExactFloat) absLess(y ExactFloat) bool {
	if x.IsInf() || y.IsZero() {
		return false
	}
	if x.IsZero() || y.IsInf() {
		return true
	}
	// If the high-order bit positions differ, the comparison is done.
	if d := x.Exp() - y.Exp(); d != 0 {
		return d < 0
	}
	// Otherwise shift the value with the larger exponent so both
	// mantissas are expressed against the same one.
	if x.exp >= y.exp {
		return x.mant.shl(int(x.exp-y.exp)).cmp(y.mant) < 0
	}
	return y.mant.shl(int(y.exp-x.exp)).cmp(x.mant) > 0
}

// Min returns the smaller of x and y, preferring -0 over +0 when they
// are equal. If one operand is NaN the other is returned.
func (x ExactFloat) Min(y ExactFloat) ExactFloat {
	if x.IsNaN() {
		return y
	}
	if y.IsNaN() {
		return x
	}
	if x.signum() != y.signum() {
		if x.signum() < y.signum() {
			return x
		}
		return y
	}
	if x.Less(y) {
		return x
	}
	return y
}

// Max returns the larger of x and y, preferring +0 over -0 when they
// are equal. If one operand is NaN the other is returned.
func (x ExactFloat) Max(y ExactFloat) ExactFloat {
	if x.IsNaN() {
		return y
	}
	if y.IsNaN() {
		return x
	}
	if x.signum() != y.signum() {
		if x.signum() < y.signum() {
			return y
		}
		return x
	}
	if x.Less(y) {
		return y
	}
	return x
}

// Ldexp returns x * 2**exp.
func (x ExactFloat) Ldexp(exp int) ExactFloat {
	if !x.isNormal() {
		return x
	}
	// Clamp the shift so the exponent arithmetic stays in range; any
	// clamped result canonicalizes to zero or infinity anyway.
	e := x.Exp()
	exp = min(MaxExp+1-e, max(MinExp-1-e, exp))
	x.exp += int32(exp)
	return x.canon()
}

// Frexp splits x into a fraction in [0.5, 1) and a power of two such
// that x == frac * 2**exp. It returns (x, 0) if x is zero, infinite,
// or NaN.
func (x ExactFloat) Frexp() (frac ExactFloat, exp int) {
	if !x.isNormal() {
		return x, 0
	}
	exp = x.Exp()
	return x.Ldexp(-exp), exp
}

// Ilogb returns the binary exponent of x as if the mantissa were a
// fraction in [1, 2), i.e. floor(log2(|x|)). Following C99 ilogb, it
// returns math.MinInt32 for zero, math.MaxInt32 for infinity and NaN.
func (x ExactFloat) Ilogb() int {
	if x.IsZero() {
		return math.MinInt32
	}
	if !x.isNormal() {
		return math.MaxInt32
	}
	return x.Exp() - 1
}

// Float64 returns the float64 value nearest to x, rounding ties to
// even. Values beyond the float64 range become infinities; tiny values
// underflow to a signed zero.
func (x ExactFloat) Float64() float64 {
	// Round to a float64 mantissa first; the rest of the conversion is
	// then exact except for the exponent range mapping.
	if x.Prec() > mantissaBits {
		x = x.RoundToPrec(mantissaBits, ToNearestEven)
	}
	if !x.isNormal() {
		switch {
		case x.IsNaN():
			return math.NaN()
		case x.IsInf():
			return math.Inf(x.signum())
		default:
			return math.Copysign(0, float64(x.signum()))
		}
	}
	// math.Ldexp handles overflow and underflow, producing a signed
	// infinity or zero, and rounds correctly into the subnormal range
	// (the mantissa is already integral, so it rounds only once).
	return float64(x.signum()) * math.Ldexp(float64(x.mant.uint64()), int(x.exp))
}

// Int64 returns the integer nearest to x under the given rounding
// mode, clamping to [math.MinInt64, math.MaxInt64] on overflow. NaN
// maps to math.MaxInt64.
func (x ExactFloat) Int64(mode RoundingMode) int64 {
	r := x.RoundToExp(0, mode)
	switch {
	case r.IsNaN():
		return math.MaxInt64
	case r.IsZero():
		return 0
	}
	if !r.IsInf() && r.Exp() <= 63 {
		mag := r.mant.uint64() << uint(r.exp)
		if r.signum() < 0 {
			return -int64(mag)
		}
		return int64(mag)
	}
	if r.signum() < 0 {
		return math.MinInt64
	}
	return math.MaxInt64
}

// Int32 is like Int64 but clamps to the int32 range; NaN maps to
// math.MaxInt32.
func (x ExactFloat) Int32(mode RoundingMode) int32 {
	v := x.Int64(mode)
	switch {
	case v < math.MinInt32:
		return math.MinInt32
	case v > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(v)
}
