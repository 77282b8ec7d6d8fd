package exactfloat

import (
	"fmt"
	"math"
	"strings"
)

// minSignificantDigits is the fewest significant digits String will
// produce, chosen so that short values still read naturally.
const minSignificantDigits = 10

// numSignificantDigitsForPrec returns how many decimal digits are
// needed to distinguish any two values with the given number of
// mantissa bits.
func numSignificantDigitsForPrec(prec int) int {
	return 1 + int(math.Ceil(float64(prec)*(math.Ln2/math.Ln10)))
}

// String formats x with enough significant digits to uniquely identify
// the value, but no fewer than minSignificantDigits.
func (x ExactFloat) String() string {
	return x.Text(max(minSignificantDigits, numSignificantDigitsForPrec(x.Prec())))
}

// DebugString formats x with full precision together with its mantissa
// width, so that distinct representations are distinguishable even
// when they print identically.
func (x ExactFloat) DebugString() string {
	return fmt.Sprintf("%s<%d>", x.String(), x.Prec())
}

// Text formats x with at most maxDigits significant digits, switching
// between fixed and exponential notation the way %g does. Trailing
// zeros are stripped; digits beyond maxDigits round half to even.
func (x ExactFloat) Text(maxDigits int) string {
	if !x.isNormal() {
		switch {
		case x.IsNaN():
			return "nan"
		case x.IsInf():
			if x.signum() < 0 {
				return "-inf"
			}
			return "inf"
		default:
			if x.signum() < 0 {
				return "-0"
			}
			return "0"
		}
	}
	digits, exp10 := x.decimalDigits(maxDigits)
	var b strings.Builder
	if x.signum() < 0 {
		b.WriteByte('-')
	}
	// %g switches to exponential when the exponent is below -4 or at
	// least the requested precision. Those rules assume a mantissa in
	// [1, 10), whereas exp10 places ours in [0.1, 1), hence the off-by-
	// one adjustments.
	switch {
	case exp10 <= -4 || exp10 > maxDigits:
		b.WriteByte(digits[0])
		if len(digits) > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		fmt.Fprintf(&b, "e%+02d", exp10-1)
	case exp10 <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -exp10))
		b.WriteString(digits)
	case exp10 >= len(digits):
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", exp10-len(digits)))
	default:
		b.WriteString(digits[:exp10])
		b.WriteByte('.')
		b.WriteString(digits[exp10:])
	}
	return b.String()
}

// decimalDigits returns the significant decimal digits of |x| (at most
// maxDigits of them, rounded half to even, trailing zeros stripped)
// and the exponent exp10 such that |x| == 0.digits * 10**exp10.
func (x ExactFloat) decimalDigits(maxDigits int) (string, int) {
	// Rewrite mant * 2**exp as an integer times a power of ten:
	// for exp >= 0 shift the mantissa up; for exp < 0 multiply by
	// 5**-exp, which turns the factor 2**exp into 10**exp.
	var n natural
	exp10 := 0
	if x.exp >= 0 {
		n = x.mant.shl(int(x.exp))
	} else {
		n = x.mant.mul(natPow5(int(-x.exp)))
		exp10 = int(x.exp)
	}
	all := n.decimal()
	exp10 += len(all)
	if len(all) > maxDigits {
		kept := all[:maxDigits]
		disc := all[maxDigits]
		tailNonzero := strings.ContainsFunc(all[maxDigits+1:], func(r rune) bool { return r != '0' })
		if disc > '5' || (disc == '5' && (tailNonzero || (kept[maxDigits-1]-'0')%2 == 1)) {
			kept = incrementDecimal(kept)
			// A carry out of the top digit lengthens the string and
			// bumps the exponent ("999" rounds to "1000").
			exp10 += len(kept) - maxDigits
		}
		all = kept
	}
	return strings.TrimRight(all, "0"), exp10
}

// incrementDecimal adds one to a string of decimal digits.
func incrementDecimal(s string) string {
	d := []byte(s)
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] != '9' {
			d[i]++
			return string(d)
		}
		d[i] = '0'
	}
	return "1" + string(d)
}
