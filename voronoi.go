package sphere

import (
	"math"

	"github.com/exactgeo/sphere/exactfloat"
	"github.com/golang/geo/r3"
)

// Excluded is the result of VoronoiSiteExclusion.
type Excluded uint8

const (
	// ExcludedNeither means each site covers some edge point the
	// other does not strictly dominate.
	ExcludedNeither Excluded = iota
	// ExcludedFirst means every edge point within distance r of the
	// first site is strictly closer to the second.
	ExcludedFirst
	// ExcludedSecond means every edge point within distance r of the
	// second site is strictly closer to the first.
	ExcludedSecond
)

func (e Excluded) String() string {
	switch e {
	case ExcludedNeither:
		return "Neither"
	case ExcludedFirst:
		return "First"
	case ExcludedSecond:
		return "Second"
	}
	return "Excluded(unknown)"
}

// VoronoiSiteExclusion reports whether one of the sites a, b is
// redundant for the edge X0X1: a site is excluded when every point of
// the edge within distance r of it is strictly closer to the other
// site. If the two sites cover identical edge regions at identical
// distances (for example a == b), the second is reported excluded.
//
// Requires r to be at most 90 degrees (chord² <= 2) and both sites to
// be within distance r of the edge; WithValidation checks this.
func VoronoiSiteExclusion(a, b, x0, x1 r3.Vector, r ChordAngle) Excluded {
	return std.VoronoiSiteExclusion(a, b, x0, x1, r)
}

// VoronoiSiteExclusion reports whether either site is redundant for
// the edge. See the package-level function.
func (p *Predicates) VoronoiSiteExclusion(a, b, x0, x1 r3.Vector, r ChordAngle) Excluded {
	p.checkUnit(a, b, x0, x1)
	p.checkRadius(r)
	if p.validate {
		if float64(r) > 2 {
			panic("sphere: exclusion radius must be at most 90 degrees")
		}
		if p.CompareEdgeDistance(a, x0, x1, r) > 0 || p.CompareEdgeDistance(b, x0, x1, r) > 0 {
			panic("sphere: both sites must be within distance r of the edge")
		}
	}
	aExcluded := p.siteExcluded(a, b, x0, x1, r)
	bExcluded := p.siteExcluded(b, a, x0, x1, r)
	switch {
	case !aExcluded && !bExcluded && sitesEquidistantOnCircle(a, b, x0, x1):
		// Neither site strictly dominates because they are exactly
		// equidistant from every point of the edge's great circle
		// (for example a == b, or mirror images across its plane).
		// One of them is still redundant; drop the second.
		return ExcludedSecond
	case aExcluded && bExcluded:
		// Identical coverage with strict dominance both ways cannot
		// happen on a connected region; this branch is only reachable
		// through disjoint coverage regions, where either site could
		// be dropped. Dropping the second keeps the result a function
		// of the argument order alone.
		return ExcludedSecond
	case aExcluded:
		return ExcludedFirst
	case bExcluded:
		return ExcludedSecond
	}
	return ExcludedNeither
}

// sitesEquidistantOnCircle reports whether a and b are exactly the
// same angular distance from every point of the great circle through
// x0 and x1. That holds exactly when the crossing direction
// √β·(n×a) - √α·(n×b) vanishes componentwise.
func sitesEquidistantOnCircle(a, b, x0, x1 r3.Vector) bool {
	// Distinct bisector directions are visible in float64 almost
	// always; only a vanishing one needs exact confirmation.
	nf := x0.Cross(x1)
	d := nf.Cross(a.Sub(b))
	maxError := dblError * (32 + 32*math.Sqrt(nf.Norm2()))
	if math.Abs(d.X) > maxError || math.Abs(d.Y) > maxError || math.Abs(d.Z) > maxError {
		return false
	}
	s, t := exactVectorOf(a), exactVectorOf(b)
	n := exactVectorOf(x0).cross(exactVectorOf(x1))
	ns, nt := n.cross(s), n.cross(t)
	alpha, beta := s.norm2(), t.norm2()
	for _, c := range [][2]exactfloat.ExactFloat{
		{ns.x, nt.x}, {ns.y, nt.y}, {ns.z, nt.z},
	} {
		if exactSqrtSumSign(c[0], beta, c[1].Neg(), alpha) != 0 {
			return false
		}
	}
	return true
}

// siteExcluded reports whether t strictly dominates s over the whole
// region of the edge covered by s. The region is a connected arc, so
// by continuity it suffices that t wins at one witness point inside
// the region and that no point of the region is exactly equidistant.
// Both conditions run their float64 tier first; exact arithmetic is
// reached only when a sign lands inside its error bound.
func (p *Predicates) siteExcluded(s, t, x0, x1 r3.Vector, r ChordAngle) bool {
	// Witness: the point of the edge closest to s, which the
	// precondition places inside s's coverage.
	var witnessCloser bool
	if p.CompareEdgeDirections(x0, x1, x0, s) > 0 && p.CompareEdgeDirections(x0, x1, s, x1) > 0 {
		witnessCloser = p.circleWitnessCloser(s, t, x0, x1)
	} else {
		witness := x0
		if p.CompareDistances(s, x0, x1) > 0 {
			witness = x1
		}
		witnessCloser = p.CompareDistances(witness, t, s) < 0
	}
	if !witnessCloser {
		return false
	}
	if crosses, ok := triageBisectorCrossesCoverage(s, t, x0, x1, float64(r)); ok {
		return !crosses
	}
	return !p.bisectorCrossesCoverage(exactVectorOf(s), exactVectorOf(t), x0, x1, r)
}

// circleWitnessCloser reports whether t is strictly closer than s to
// the projection of s onto the edge's great circle.
func (p *Predicates) circleWitnessCloser(s, t, x0, x1 r3.Vector) bool {
	if sign := triageCircleWitnessCloser(s, t, x0, x1); sign != 0 {
		return sign > 0
	}
	xs, xt := exactVectorOf(s), exactVectorOf(t)
	n := exactVectorOf(x0).cross(exactVectorOf(x1))
	q := xs.scale(n.norm2()).sub(n.scale(n.dot(xs)))
	if q.isZero() {
		// s is a pole of the edge's great circle; every point of the
		// circle is equally close.
		q = exactVectorOf(x0)
	}
	return exactCompareDistances(q, xt, xs) < 0
}

// triageCircleWitnessCloser compares the witness distances in float64:
// positive means t is strictly closer, negative strictly not closer,
// zero undecidable. For near-unit sites the comparison is the sign of
// q·(t-s) with q = |n|²s - (n·s)n; every term is bounded by |n|² and
// the only absolute errors enter through the computed edge normal, so
// the bound carries one term per scale.
func triageCircleWitnessCloser(s, t, x0, x1 r3.Vector) int {
	n := x0.Cross(x1)
	n2 := n.Norm2()
	q := s.Mul(n2).Sub(n.Mul(n.Dot(s)))
	maxError := dblError * (128*math.Sqrt(n2) + 256*n2)
	return triageSignValue(q.Dot(t.Sub(s)), maxError)
}

// triageBisectorCrossesCoverage is the float64 tier of
// bisectorCrossesCoverage. For near-unit sites √α and √β are 1 up to
// rounding, so each sqrt-sum sign collapses to an ordinary difference
// and the coverage test to the sign of g² - cos²(r)·|n×(t-s)|². ok
// reports whether every sign needed for the answer cleared its error
// bound; when it is false the exact tier decides.
func triageBisectorCrossesCoverage(s, t, x0, x1 r3.Vector, r2 float64) (crosses, ok bool) {
	n := x0.Cross(x1)
	n2 := n.Norm2()
	nLen := math.Sqrt(n2)
	ns, nt := n.Cross(s), n.Cross(t)
	nx0, nx1 := n.Cross(x0), x1.Cross(n)
	u0, v0 := ns.Dot(nx0), nt.Dot(nx0)
	u1, v1 := ns.Dot(nx1), nt.Dot(nx1)
	segError := 128 * dblError * nLen
	g := nt.Dot(s)
	gSign := triageSignValue(g, 48*dblError)
	cr := 1 - 0.5*r2
	dc := n.Cross(t.Sub(s))
	cov := triageSignValue(g*g-cr*cr*dc.Norm2(), dblError*(256*nLen+64*n2))
	for _, sigma := range []int{1, -1} {
		signs := [4]int{
			triageSignValue(float64(sigma)*(u0-v0), segError),
			triageSignValue(float64(sigma)*(u1-v1), segError),
			-sigma * gSign,
			cov,
		}
		in, out := true, false
		for _, sg := range signs {
			if sg <= 0 {
				in = false
			}
			if sg < 0 {
				out = true
			}
		}
		if in {
			// Strictly inside both the segment and the coverage arc.
			return true, true
		}
		if !out {
			// No test strictly fails and at least one is undecided.
			return false, false
		}
	}
	return false, true
}

// bisectorCrossesCoverage reports whether either point where the
// bisector of s and t meets the edge's great circle lies within both
// the edge segment and s's coverage arc. The two crossings are
// P = ±(√β·(n×s) - √α·(n×t)) with α = |s|² and β = |t|²; every
// membership test below is the sign of a dot product with P and hence
// a two-term sqrt-sum sign.
func (p *Predicates) bisectorCrossesCoverage(s, t exactVector, x0v, x1v r3.Vector, r ChordAngle) bool {
	x0, x1 := exactVectorOf(x0v), exactVectorOf(x1v)
	n := x0.cross(x1)
	ns, nt := n.cross(s), n.cross(t)
	alpha, beta := s.norm2(), t.norm2()

	// Wedge directions for the segment membership tests.
	nx0, nx1 := n.cross(x0), x1.cross(n)
	u0, v0 := ns.dot(nx0), nt.dot(nx0)
	u1, v1 := ns.dot(nx1), nt.dot(nx1)

	// Coverage: P·s >= cos(r)·|P|·|s| with cos(r) = 1 - r²/2 >= 0.
	// P·s = -σ·√α·g has no radical in its square, and the squared
	// comparison takes the form K + L·√(αβ) >= 0.
	one := exactfloat.New(1)
	cosR := one.Sub(exactfloat.New(0.5 * float64(r)))
	g := nt.dot(s)
	d2 := alpha.Mul(g).Mul(g)
	cr2a := cosR.Mul(cosR).Mul(alpha)
	k := d2.Sub(cr2a.Mul(alpha.Mul(nt.norm2()).Add(beta.Mul(ns.norm2()))))
	l := exactfloat.New(2).Mul(cr2a).Mul(nt.dot(ns))
	alphaBeta := alpha.Mul(beta)
	inCoverageSquared := exactSqrtSumSign(k, one, l, alphaBeta) >= 0

	for _, sigma := range []int{1, -1} {
		if sigma*exactSqrtSumSign(u0, beta, v0.Neg(), alpha) < 0 {
			continue
		}
		if sigma*exactSqrtSumSign(u1, beta, v1.Neg(), alpha) < 0 {
			continue
		}
		if -sigma*signOf(g) < 0 {
			continue
		}
		if inCoverageSquared {
			return true
		}
	}
	return false
}
