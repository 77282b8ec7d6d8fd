package sphere

import (
	"math"

	"github.com/exactgeo/sphere/exactfloat"
	"github.com/golang/geo/r3"
)

// CompareDistances returns -1, 0, or +1 according to whether the
// angular distance from x to a is less than, equal to, or greater than
// the distance from x to b. The result is 0 only when a == b or x is
// exactly equidistant from the two.
func CompareDistances(x, a, b r3.Vector) int { return std.CompareDistances(x, a, b) }

// CompareDistances compares the distances XA and XB. See the
// package-level function.
func (p *Predicates) CompareDistances(x, a, b r3.Vector) int {
	p.checkUnit(x, a, b)
	if s := triageCompareCosDistances(x, a, b); s != 0 {
		return s
	}
	// sin² separates small distances far better than cos, but the
	// comparison is only monotonic when both angles are acute.
	if x.Dot(a) > 0 && x.Dot(b) > 0 {
		if s := triageCompareSin2Distances(x, a, b); s != 0 {
			return s
		}
	}
	return exactCompareDistances(exactVectorOf(x), exactVectorOf(a), exactVectorOf(b))
}

// CompareDistance returns -1, 0, or +1 according to whether the
// angular distance from x to y is less than, equal to, or greater than
// the threshold r.
func CompareDistance(x, y r3.Vector, r ChordAngle) int { return std.CompareDistance(x, y, r) }

// CompareDistance compares the distance XY against r. See the
// package-level function.
func (p *Predicates) CompareDistance(x, y r3.Vector, r ChordAngle) int {
	p.checkUnit(x, y)
	p.checkRadius(r)
	r2 := float64(r)
	if s := triageCompareCosDistance(x, y, r2); s != 0 {
		return s
	}
	// The sin² comparison requires both the distance and the
	// threshold to be acute.
	if r2 < 2 {
		if s := triageCompareSin2Distance(x, y, r2); s != 0 {
			return s
		}
	}
	return exactCompareDistance(exactVectorOf(x), exactVectorOf(y), exactfloat.New(r2))
}

// cosDistance returns cos(XA) for unit vectors together with a bound
// on its absolute rounding error.
func cosDistance(a, x r3.Vector) (cos, err float64) {
	cos = a.Dot(x)
	return cos, 9.5*dblError*math.Abs(cos) + 1.5*dblError
}

// sin2Distance returns sin²(XA) for unit vectors together with a bound
// on its absolute rounding error. The identity (a-x)×(a+x) = 2·(a×x)
// is used because the difference form has small relative error even
// when the two points nearly coincide or are nearly antipodal.
func sin2Distance(a, x r3.Vector) (sin2, err float64) {
	n := a.Sub(x).Cross(a.Add(x))
	sin2 = 0.25 * n.Norm2()
	err = ((21+4*sqrt3)*dblError*sin2 +
		32*sqrt3*dblError*dblError*math.Sqrt(sin2) +
		768*dblError*dblError*dblError*dblError)
	return sin2, err
}

func triageCompareCosDistances(x, a, b r3.Vector) int {
	cosAX, cosAXErr := cosDistance(a, x)
	cosBX, cosBXErr := cosDistance(b, x)
	// A larger cosine means a smaller distance.
	return -triageSignValue(cosAX-cosBX, cosAXErr+cosBXErr)
}

func triageCompareSin2Distances(x, a, b r3.Vector) int {
	sin2AX, sin2AXErr := sin2Distance(a, x)
	sin2BX, sin2BXErr := sin2Distance(b, x)
	return triageSignValue(sin2AX-sin2BX, sin2AXErr+sin2BXErr)
}

// exactCompareDistances compares XA with XB in exact arithmetic,
// without assuming the inputs are exactly unit length: it compares the
// normalized cosines cos(XA)·|b| and cos(XB)·|a| via their signs and
// squares.
func exactCompareDistances(x, a, b exactVector) int {
	cosAX := a.dot(x)
	cosBX := b.dot(x)
	aSign, bSign := signOf(cosAX), signOf(cosBX)
	if aSign != bSign {
		// The side with the positive cosine is closer.
		if aSign > bSign {
			return -1
		}
		return 1
	}
	cmp := cosBX.Mul(cosBX).Mul(a.norm2()).Sub(cosAX.Mul(cosAX).Mul(b.norm2()))
	return aSign * signOf(cmp)
}

func triageCompareCosDistance(x, y r3.Vector, r2 float64) int {
	cosXY, cosXYErr := cosDistance(x, y)
	// 0.5*r2 is exact; the subtraction errs by at most half an ulp of
	// a result no larger than 1.
	cosR := 1 - 0.5*r2
	return -triageSignValue(cosXY-cosR, cosXYErr+dblError)
}

func triageCompareSin2Distance(x, y r3.Vector, r2 float64) int {
	sin2XY, sin2XYErr := sin2Distance(x, y)
	// sin²(r) = r²(1 - r²/4) in the chord representation; two rounded
	// operations on top of the exact quartering.
	sin2R := r2 * (1 - 0.25*r2)
	return triageSignValue(sin2XY-sin2R, sin2XYErr+3*dblError*sin2R)
}

func exactCompareDistance(x, y exactVector, r2 exactfloat.ExactFloat) int {
	cosXY := x.dot(y)
	cosR := exactfloat.New(1).Sub(exactfloat.New(0.5).Mul(r2))
	xySign, rSign := signOf(cosXY), signOf(cosR)
	if xySign != rSign {
		if xySign > rSign {
			return -1
		}
		return 1
	}
	cmp := cosR.Mul(cosR).Mul(x.norm2()).Mul(y.norm2()).Sub(cosXY.Mul(cosXY))
	return xySign * signOf(cmp)
}
