package exactfloat

import (
	"math"
	"testing"
)

func TestFloat64RoundTrip(t *testing.T) {
	values := []float64{
		0, 1, -1, 0.5, -0.5, 1.5, 2, 1024, 1e300, -1e300,
		1e-300, math.Pi, -math.E, 1.0 / 3.0,
		math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
		math.Ldexp(1, -1000), math.Ldexp(0x1fffffffffffff, 971),
	}
	for _, v := range values {
		got := New(v).Float64()
		if got != v {
			t.Errorf("New(%g).Float64() = %g", v, got)
		}
	}
}

func TestFloat64RoundTripSpecial(t *testing.T) {
	if got := New(math.NaN()); !got.IsNaN() || !math.IsNaN(got.Float64()) {
		t.Errorf("NaN did not round-trip")
	}
	for _, sign := range []int{-1, 1} {
		inf := math.Inf(sign)
		got := New(inf)
		if !got.IsInf() || got.Float64() != inf {
			t.Errorf("New(%g).Float64() = %g", inf, got.Float64())
		}
		zero := math.Copysign(0, float64(sign))
		gz := New(zero).Float64()
		if gz != 0 || math.Signbit(gz) != math.Signbit(zero) {
			t.Errorf("New(%g).Float64() = %g", zero, gz)
		}
	}
}

func TestZeroValue(t *testing.T) {
	var x ExactFloat
	if !x.IsZero() || x.Signbit() || x.Sign() != 0 {
		t.Errorf("zero value is not +0")
	}
	diff(t, 7.0, x.Add(New(7)).Float64())
	diff(t, 0.0, x.Mul(New(7)).Float64())
	diff(t, "0", x.String())
}

func TestExactArithmetic(t *testing.T) {
	diff(t, 15.0, New(3).Mul(New(5)).Float64())
	diff(t, int64(15), NewInt(3).Mul(NewInt(5)).Int64(ToNearestEven))

	// (a + b) - b == a holds exactly even when float64 would round.
	a, b := New(1e30), New(1e-30)
	diff(t, true, a.Add(b).Sub(b).Eq(a))
	if a.Add(b).Eq(a) {
		t.Errorf("1e30 + 1e-30 lost the small term")
	}

	// The sum of a double and its negation is exactly zero.
	diff(t, 0, New(math.Pi).Add(New(-math.Pi)).Sign())
}

func TestPrecisionGrows(t *testing.T) {
	// Squaring doubles the mantissa width rather than rounding.
	x := New(1.0 / 3.0)
	diff(t, 53, x.Prec())
	diff(t, 105, x.Mul(x).Prec())

	// A sum of values 2**MaxPrec apart needs MaxPrec+1 bits.
	if got := New(1).Ldexp(MaxPrec).Add(New(1)); !got.IsNaN() {
		t.Errorf("over-wide sum = %s, want nan", got)
	}
	// One bit under the limit is still exact.
	if got := New(1).Ldexp(MaxPrec - 1).Add(New(1)); got.IsNaN() {
		t.Errorf("sum within precision limit became nan")
	}

	// A product overflows the limit too: squaring a value one bit over
	// half the maximum width needs MaxPrec+1 bits.
	half := MaxPrec / 2
	v := New(1).Add(New(1).Ldexp(-half))
	diff(t, half+1, v.Prec())
	diff(t, true, v.Mul(v).IsNaN())
	w := New(1).Add(New(1).Ldexp(-(half - 1)))
	diff(t, half, w.Prec())
	diff(t, MaxPrec-1, w.Mul(w).Prec())
}

func TestSignedZero(t *testing.T) {
	pz, nz := SignedZero(+1), SignedZero(-1)
	diff(t, false, pz.Signbit())
	diff(t, true, nz.Signbit())
	diff(t, true, pz.Eq(nz))

	// IEEE addition: same-signed zeros keep the sign, mixed give +0.
	diff(t, true, nz.Add(nz).Signbit())
	diff(t, false, nz.Add(pz).Signbit())
	diff(t, false, pz.Sub(pz).Signbit())
	diff(t, true, New(-1).Mul(pz).Signbit())

	// Exact cancellation of nonzero values gives +0.
	diff(t, false, New(2.5).Sub(New(2.5)).Signbit())
}

func TestSpecialValueArithmetic(t *testing.T) {
	inf := Inf(+1)
	if got := inf.Sub(inf); !got.IsNaN() {
		t.Errorf("inf - inf = %s, want nan", got)
	}
	if got := inf.Mul(SignedZero(+1)); !got.IsNaN() {
		t.Errorf("inf * 0 = %s, want nan", got)
	}
	diff(t, true, inf.Add(New(1)).IsInf())
	diff(t, true, inf.Mul(New(-2)).IsInf())
	diff(t, true, inf.Mul(New(-2)).Signbit())
	if got := NaN().Add(New(1)); !got.IsNaN() {
		t.Errorf("nan + 1 = %s, want nan", got)
	}
}

func TestComparisons(t *testing.T) {
	for _, tc := range []struct {
		x, y float64
		less bool
	}{
		{1, 2, true},
		{2, 1, false},
		{-2, -1, true},
		{-1, 1, true},
		{0, math.SmallestNonzeroFloat64, true},
		{-math.SmallestNonzeroFloat64, 0, true},
		{math.Inf(-1), -math.MaxFloat64, true},
		{math.MaxFloat64, math.Inf(1), true},
		{1.5, 1.5, false},
	} {
		diff(t, tc.less, New(tc.x).Less(New(tc.y)))
	}

	// Equal values with different exponents (24 = 3*2^3 = 6*2^2)
	// compare equal after canonicalization.
	diff(t, true, NewInt(24).Eq(New(24)))
	diff(t, false, NewInt(24).Less(New(24)))

	// NaN is unordered with everything, including itself.
	diff(t, false, NaN().Less(New(1)))
	diff(t, false, New(1).Less(NaN()))
	diff(t, false, NaN().Eq(NaN()))
}

func TestMinMax(t *testing.T) {
	pz, nz := SignedZero(+1), SignedZero(-1)
	diff(t, true, pz.Min(nz).Signbit())
	diff(t, false, pz.Max(nz).Signbit())
	diff(t, -3.0, New(-3).Min(New(2)).Float64())
	diff(t, 2.0, New(-3).Max(New(2)).Float64())
	diff(t, 5.0, NaN().Min(New(5)).Float64())
	diff(t, 5.0, New(5).Max(NaN()).Float64())
}

func TestLdexpFrexp(t *testing.T) {
	diff(t, 48.0, New(3).Ldexp(4).Float64())
	diff(t, 0.75, New(3).Ldexp(-2).Float64())

	frac, exp := New(48).Frexp()
	diff(t, 0.75, frac.Float64())
	diff(t, 6, exp)

	// Shifting past the exponent bounds saturates.
	diff(t, true, New(1).Ldexp(MaxExp+1).IsInf())
	diff(t, true, New(-1).Ldexp(MinExp-2).IsZero())
	diff(t, true, New(-1).Ldexp(MinExp-2).Signbit())

	diff(t, 5, New(48).Ilogb())
	diff(t, math.MinInt32, SignedZero(+1).Ilogb())
	diff(t, math.MaxInt32, Inf(-1).Ilogb())
}

func TestFloat64Narrowing(t *testing.T) {
	// 2^60 + 1 needs 61 bits; the nearest double is 2^60.
	x := New(1).Ldexp(60).Add(New(1))
	diff(t, math.Ldexp(1, 60), x.Float64())

	// Values beyond the double range become infinities.
	diff(t, math.Inf(1), New(math.MaxFloat64).Mul(New(2)).Float64())
	diff(t, math.Inf(-1), New(-math.MaxFloat64).Mul(New(2)).Float64())

	// Values below the subnormal range underflow to a signed zero.
	tiny := New(-math.SmallestNonzeroFloat64).Ldexp(-2)
	diff(t, 0.0, tiny.Float64())
	diff(t, true, math.Signbit(tiny.Float64()))
}

func TestIntNarrowing(t *testing.T) {
	diff(t, int64(2), New(2.5).Int64(ToNearestEven))
	diff(t, int64(3), New(2.5).Int64(ToNearestAway))
	diff(t, int64(2), New(2.5).Int64(ToZero))
	diff(t, int64(-3), New(-2.5).Int64(AwayFromZero))
	diff(t, int64(math.MaxInt64), New(1e30).Int64(ToNearestEven))
	diff(t, int64(math.MinInt64), New(-1e30).Int64(ToNearestEven))
	diff(t, int64(math.MaxInt64), NaN().Int64(ToNearestEven))
	diff(t, int32(math.MaxInt32), New(1e10).Int32(ToNearestEven))
	diff(t, int32(-7), New(-6.7).Int32(ToNearestAway))
}
