package sphere

import (
	"math"

	"github.com/golang/geo/r3"
)

// edgeNormal returns a vector normal to the great circle through a0
// and a1, equal to 2·(a0×a1) but computed from the endpoint sum and
// difference so that the relative error stays small even when the
// endpoints nearly coincide or are nearly antipodal.
func edgeNormal(a0, a1 r3.Vector) r3.Vector {
	return a0.Sub(a1).Cross(a0.Add(a1))
}

// CompareEdgeDirections returns +1 if the great circles through edges
// A0A1 and B0B1 turn in the same direction (their normals point into
// the same hemisphere), -1 if they turn in opposite directions, and 0
// if the normals are exactly orthogonal, which includes the case of
// either edge being degenerate.
func CompareEdgeDirections(a0, a1, b0, b1 r3.Vector) int {
	return std.CompareEdgeDirections(a0, a1, b0, b1)
}

// CompareEdgeDirections compares the turning directions of two edges.
// See the package-level function.
func (p *Predicates) CompareEdgeDirections(a0, a1, b0, b1 r3.Vector) int {
	p.checkUnit(a0, a1, b0, b1)
	if s := triageCompareEdgeDirections(a0, a1, b0, b1); s != 0 {
		return s
	}
	xa0, xa1 := exactVectorOf(a0), exactVectorOf(a1)
	xb0, xb1 := exactVectorOf(b0), exactVectorOf(b1)
	return signOf(xa0.cross(xa1).dot(xb0.cross(xb1)))
}

func triageCompareEdgeDirections(a0, a1, b0, b1 r3.Vector) int {
	na := edgeNormal(a0, a1)
	nb := edgeNormal(b0, b1)
	naLen, nbLen := math.Sqrt(na.Norm2()), math.Sqrt(nb.Norm2())
	cos := na.Dot(nb)
	maxError := ((5+4*sqrt3)*naLen*nbLen + 32*sqrt3*dblError*(naLen+nbLen)) * dblError
	return triageSignValue(cos, maxError)
}

// SignDotProd returns +1 if the angle between a and b is acute, -1 if
// it is obtuse, and 0 if the vectors are exactly orthogonal.
func SignDotProd(a, b r3.Vector) int { return std.SignDotProd(a, b) }

// SignDotProd returns the sign of the dot product a·b. See the
// package-level function.
func (p *Predicates) SignDotProd(a, b r3.Vector) int {
	p.checkFinite(a, b)
	if s := triageSignDotProd(a, b); s != 0 {
		return s
	}
	return signOf(exactVectorOf(a).dot(exactVectorOf(b)))
}

func triageSignDotProd(a, b r3.Vector) int {
	// Each product errs by half an ulp of its magnitude and each of
	// the two additions by half an ulp of a partial sum bounded by the
	// sum of magnitudes; 4 ulps of the magnitude sum covers all five.
	sum := a.Dot(b)
	maxError := 4 * dblError * (math.Abs(a.X*b.X) + math.Abs(a.Y*b.Y) + math.Abs(a.Z*b.Z))
	return triageSignValue(sum, maxError)
}
