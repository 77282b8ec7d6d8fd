package sphere

import (
	"math"

	"github.com/golang/geo/r3"
)

// An edge AB that crosses the great circle with normal n does so at
// the point sign(a·n) · ((a×b)×n) = |a·n|·b + |b·n|·a, a positive
// combination of the endpoints and therefore on the segment. The
// predicates below reason about that point without normalizing it.

// CircleEdgeIntersectionSign returns the sign of x·P, where P is the
// point at which edge AB crosses the great circle with normal n.
// Requires the endpoints of AB to be strictly on opposite sides of
// the circle; WithValidation checks this.
func CircleEdgeIntersectionSign(a, b, n, x r3.Vector) int {
	return std.CircleEdgeIntersectionSign(a, b, n, x)
}

// CircleEdgeIntersectionSign returns the sign of x relative to the
// crossing point of AB with circle n. See the package-level function.
func (p *Predicates) CircleEdgeIntersectionSign(a, b, n, x r3.Vector) int {
	p.checkUnit(a, b)
	p.checkFinite(n, x)
	aSign := p.SignDotProd(a, n)
	if p.validate && aSign*p.SignDotProd(b, n) >= 0 {
		panic("sphere: edge must cross the circle")
	}
	if s := triageCircleEdgeIntersectionSign(a, b, n, x); s != 0 {
		return aSign * s
	}
	xa, xb := exactVectorOf(a), exactVectorOf(b)
	return aSign * signOf(exactVectorOf(x).dot(xa.cross(xb).cross(exactVectorOf(n))))
}

func triageCircleEdgeIntersectionSign(a, b, n, x r3.Vector) int {
	pf := a.Cross(b).Cross(n)
	nLen := math.Sqrt(n.Norm2())
	xLen := math.Sqrt(x.Norm2())
	return triageSignValue(x.Dot(pf), 16*dblError*nLen*xLen)
}

// IntersectionOrdering orders the points at which edges AB and CD
// cross the great circle with normal n. Angular positions are measured
// counterclockwise around n starting at the reference point m, which
// must lie on the circle (or at least off its axis). The result is -1
// if AB's crossing comes first, +1 if CD's comes first, and 0 if the
// two edges cross the circle at exactly the same point. Requires both
// edges to cross the circle; WithValidation checks this.
func IntersectionOrdering(a, b, c, d, m, n r3.Vector) int {
	return std.IntersectionOrdering(a, b, c, d, m, n)
}

// IntersectionOrdering orders two edge crossings along circle n. See
// the package-level function.
func (p *Predicates) IntersectionOrdering(a, b, c, d, m, n r3.Vector) int {
	p.checkUnit(a, b, c, d)
	p.checkFinite(m, n)
	aSign := p.SignDotProd(a, n)
	cSign := p.SignDotProd(c, n)
	if p.validate {
		if aSign*p.SignDotProd(b, n) >= 0 || cSign*p.SignDotProd(d, n) >= 0 {
			panic("sphere: both edges must cross the circle")
		}
	}
	sinP, cosP := p.crossingAngleSigns(a, b, m, n, aSign)
	sinQ, cosQ := p.crossingAngleSigns(c, d, m, n, cSign)
	rankP, rankQ := octantRank(sinP, cosP), octantRank(sinQ, cosQ)
	switch {
	case rankP < rankQ:
		return -1
	case rankP > rankQ:
		return 1
	case rankP%2 == 0:
		// Both crossings sit exactly on the reference axis of the
		// shared octant, hence coincide.
		return 0
	}
	// Same open quadrant: the crossings are within a quarter turn of
	// each other, so the rotation from P to Q around n settles it.
	return -p.crossingPairSign(a, b, c, d, n, aSign*cSign)
}

// crossingAngleSigns places the crossing point of AB at an angle θ
// from m around n and returns the signs of sin θ and cos θ.
func (p *Predicates) crossingAngleSigns(a, b, m, n r3.Vector, edgeSign int) (sin, cos int) {
	sin, cos = triageCrossingAngleSigns(a, b, m, n)
	if sin == 0 || cos == 0 {
		xa, xb := exactVectorOf(a), exactVectorOf(b)
		xm, xn := exactVectorOf(m), exactVectorOf(n)
		xp := xa.cross(xb).cross(xn)
		if sin == 0 {
			sin = signOf(xm.cross(xp).dot(xn))
		}
		if cos == 0 {
			cos = signOf(xm.dot(xp))
		}
	}
	return edgeSign * sin, edgeSign * cos
}

func triageCrossingAngleSigns(a, b, m, n r3.Vector) (sin, cos int) {
	pf := a.Cross(b).Cross(n)
	mLen := math.Sqrt(m.Norm2())
	nLen := math.Sqrt(n.Norm2())
	sin = triageSignValue(m.Cross(pf).Dot(n), 32*dblError*mLen*nLen*nLen)
	cos = triageSignValue(m.Dot(pf), 16*dblError*mLen*nLen)
	return sin, cos
}

// octantRank maps the signs of sin θ and cos θ to a rank that
// increases with θ over [0, 2π), with even ranks for the four exact
// axis positions.
func octantRank(sin, cos int) int {
	switch {
	case sin == 0 && cos > 0:
		return 0
	case sin > 0 && cos > 0:
		return 1
	case sin > 0 && cos == 0:
		return 2
	case sin > 0:
		return 3
	case sin == 0 && cos < 0:
		return 4
	case cos < 0:
		return 5
	case cos == 0:
		return 6
	}
	return 7
}

// crossingPairSign returns the sign of (P×Q)·n for the two crossing
// points, positive when rotating P toward Q is counterclockwise
// around n.
func (p *Predicates) crossingPairSign(a, b, c, d, n r3.Vector, pairSign int) int {
	if s := triageCrossingPairSign(a, b, c, d, n); s != 0 {
		return pairSign * s
	}
	xn := exactVectorOf(n)
	xp := exactVectorOf(a).cross(exactVectorOf(b)).cross(xn)
	xq := exactVectorOf(c).cross(exactVectorOf(d)).cross(xn)
	return pairSign * signOf(xp.cross(xq).dot(xn))
}

func triageCrossingPairSign(a, b, c, d, n r3.Vector) int {
	pf := a.Cross(b).Cross(n)
	qf := c.Cross(d).Cross(n)
	n2 := n.Norm2()
	return triageSignValue(pf.Cross(qf).Dot(n), 64*dblError*n2*math.Sqrt(n2))
}
