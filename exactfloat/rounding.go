package exactfloat

// A RoundingMode selects how a value is rounded when it is narrowed to
// fewer mantissa bits. The mode names match those of [math/big].
type RoundingMode uint8

const (
	// ToNearestEven rounds to the nearest value, breaking ties toward
	// the value with an even last mantissa bit (IEEE 754 default).
	ToNearestEven RoundingMode = iota
	// ToNearestAway rounds to the nearest value, breaking ties away
	// from zero.
	ToNearestAway
	// ToZero rounds toward zero (truncation).
	ToZero
	// AwayFromZero rounds away from zero.
	AwayFromZero
	// ToNegativeInf rounds toward negative infinity.
	ToNegativeInf
	// ToPositiveInf rounds toward positive infinity.
	ToPositiveInf
)

func (m RoundingMode) String() string {
	switch m {
	case ToNearestEven:
		return "ToNearestEven"
	case ToNearestAway:
		return "ToNearestAway"
	case ToZero:
		return "ToZero"
	case AwayFromZero:
		return "AwayFromZero"
	case ToNegativeInf:
		return "ToNegativeInf"
	case ToPositiveInf:
		return "ToPositiveInf"
	}
	return "RoundingMode(unknown)"
}

// RoundToPrec returns x rounded to at most prec mantissa bits. If x
// already fits (including zero, infinity, and NaN) it is returned
// unchanged.
func (x ExactFloat) RoundToPrec(prec int, mode RoundingMode) ExactFloat {
	if x.Prec() <= prec {
		return x
	}
	return x.RoundToExp(x.Exp()-prec, mode)
}

// RoundToExp returns x rounded to a multiple of 2**exp. Zero,
// infinity, and NaN are returned unchanged, as is any x that is
// already such a multiple.
func (x ExactFloat) RoundToExp(exp int, mode RoundingMode) ExactFloat {
	if !x.isNormal() {
		return x
	}
	shift := exp - int(x.exp)
	if shift <= 0 {
		return x
	}
	// The directed modes depend on the sign of the value, not its
	// magnitude, so resolve them to a magnitude rule first.
	switch mode {
	case ToNegativeInf:
		if x.signum() < 0 {
			mode = AwayFromZero
		} else {
			mode = ToZero
		}
	case ToPositiveInf:
		if x.signum() < 0 {
			mode = ToZero
		} else {
			mode = AwayFromZero
		}
	}
	// Decide whether the truncated magnitude must be incremented.
	// bit(shift-1) is the first discarded bit; the discarded tail is
	// nonzero below it iff the lowest set bit sits under shift-1.
	var increment bool
	switch mode {
	case ToZero:
		// never increments
	case AwayFromZero:
		increment = x.mant.trailingZeros() < shift
	case ToNearestAway:
		increment = x.mant.bit(shift-1) == 1
	case ToNearestEven:
		increment = x.mant.bit(shift-1) == 1 &&
			(x.mant.bit(shift) == 1 || x.mant.trailingZeros() < shift-1)
	}
	r := ExactFloat{sign: x.sign, exp: x.exp + int32(shift), mant: x.mant.shr(shift)}
	if increment {
		r.mant = r.mant.add(natOne)
	}
	return r.canon()
}

// Ceil returns the smallest integral value not less than x.
func (x ExactFloat) Ceil() ExactFloat {
	return x.RoundToExp(0, ToPositiveInf)
}

// Floor returns the largest integral value not greater than x.
func (x ExactFloat) Floor() ExactFloat {
	return x.RoundToExp(0, ToNegativeInf)
}

// Trunc returns x with any fractional part discarded.
func (x ExactFloat) Trunc() ExactFloat {
	return x.RoundToExp(0, ToZero)
}

// Round returns the integral value nearest to x, rounding half-way
// cases away from zero.
func (x ExactFloat) Round() ExactFloat {
	return x.RoundToExp(0, ToNearestAway)
}

// RoundToEven returns the integral value nearest to x, rounding
// half-way cases to the nearest even integer.
func (x ExactFloat) RoundToEven() ExactFloat {
	return x.RoundToExp(0, ToNearestEven)
}
