package sphere

import (
	"math"

	"github.com/exactgeo/sphere/exactfloat"
	"github.com/golang/geo/r3"
)

// CompareEdgeDistance returns -1, 0, or +1 according to whether the
// minimum angular distance from x to the edge A0A1 is less than,
// equal to, or greater than r. The edge is the geodesic segment
// between its endpoints, which must not be antipodal.
func CompareEdgeDistance(x, a0, a1 r3.Vector, r ChordAngle) int {
	return std.CompareEdgeDistance(x, a0, a1, r)
}

// CompareEdgeDistance compares the distance from x to edge A0A1
// against r. See the package-level function.
func (p *Predicates) CompareEdgeDistance(x, a0, a1 r3.Vector, r ChordAngle) int {
	p.checkUnit(x, a0, a1)
	p.checkRadius(r)
	if s := triageCompareEdgeDistance(x, a0, a1, float64(r)); s != 0 {
		return s
	}
	return p.exactCompareEdgeDistance(x, a0, a1, r)
}

// triageCompareEdgeDistance decides the comparison in float64 where
// possible. It exploits two one-sided bounds that hold regardless of
// where the closest point lies: the distance to the full great circle
// never exceeds the distance to the edge, and the distance to the
// nearer endpoint is never below it.
func triageCompareEdgeDistance(x, a0, a1 r3.Vector, r2 float64) int {
	// Nearer endpoint within r: so is the edge.
	endCmp := minSign(compareDistanceTriage(x, a0, r2), compareDistanceTriage(x, a1, r2))
	if endCmp < 0 {
		return -1
	}
	n := edgeNormal(a0, a1)
	lineCmp := triageCompareLineDistance(x, n, r2)
	// Great circle beyond r: so is the edge.
	if lineCmp > 0 {
		return 1
	}
	// Otherwise the answer depends on whether the closest point is
	// interior to the edge. w0 > 0 and w1 > 0 put x inside the wedge
	// bounded by the planes through each endpoint and the edge normal.
	nLen := math.Sqrt(n.Norm2())
	wedgeError := dblError * (10*nLen + 16)
	w0 := triageSignValue(n.Dot(a0.Cross(x)), wedgeError)
	w1 := triageSignValue(n.Dot(x.Cross(a1)), wedgeError)
	switch {
	case w0 > 0 && w1 > 0:
		return lineCmp
	case w0 < 0 || w1 < 0:
		return endCmp
	}
	return 0
}

// compareDistanceTriage is the triage portion of CompareDistance.
func compareDistanceTriage(x, y r3.Vector, r2 float64) int {
	if s := triageCompareCosDistance(x, y, r2); s != 0 {
		return s
	}
	if r2 < 2 {
		return triageCompareSin2Distance(x, y, r2)
	}
	return 0
}

// minSign combines two three-valued comparisons of distances against a
// common threshold into the comparison of their minimum, treating 0 as
// "uncertain or equal" (the combination is the same either way).
func minSign(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// triageCompareLineDistance compares the distance from x to the great
// circle with normal n against r, via sin² of the distance.
func triageCompareLineDistance(x, n r3.Vector, r2 float64) int {
	if r2 > 2 {
		// No point is more than 90 degrees from a great circle.
		return -1
	}
	xDotN := x.Dot(n)
	lhs := xDotN * xDotN
	n2 := n.Norm2()
	rhs := r2 * (1 - 0.25*r2) * n2
	// The computed normal errs by up to 16 ulps absolute and the
	// squared terms by a few ulps relative; folding |x·n| <= |n| into
	// the bound leaves everything proportional to |n| and |n|².
	nLen := math.Sqrt(n2)
	maxError := dblError * (64*nLen + 20*n2)
	return triageSignValue(lhs-rhs, maxError)
}

// exactCompareEdgeDistance splits on whether the closest point of the
// edge is interior (compare against the great circle) or an endpoint
// (compare against the nearer endpoint).
func (p *Predicates) exactCompareEdgeDistance(x, a0, a1 r3.Vector, r ChordAngle) int {
	if p.CompareEdgeDirections(a0, a1, a0, x) > 0 && p.CompareEdgeDirections(a0, a1, x, a1) > 0 {
		return exactCompareLineDistance(exactVectorOf(x), exactVectorOf(a0), exactVectorOf(a1),
			exactfloat.New(float64(r)))
	}
	return minSign(p.CompareDistance(x, a0, r), p.CompareDistance(x, a1, r))
}

func exactCompareLineDistance(x, a0, a1 exactVector, r2 exactfloat.ExactFloat) int {
	if exactfloat.New(2).Less(r2) {
		return -1
	}
	n := a0.cross(a1)
	xDotN := x.dot(n)
	sin2R := r2.Mul(exactfloat.New(1).Sub(exactfloat.New(0.25).Mul(r2)))
	cmp := xDotN.Mul(xDotN).Sub(sin2R.Mul(x.norm2()).Mul(n.norm2()))
	return signOf(cmp)
}
