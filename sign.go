package sphere

import (
	"math"

	"github.com/golang/geo/r3"
)

const (
	// maxDetError bounds the rounding error of (a×b)·c for
	// unit-length inputs: the cross product is computed with at most
	// 2.5 ulp of error per component, and the dot product adds three
	// more rounded products.
	maxDetError = 1.8274 * dblError

	// detErrorMultiplier bounds the error of the translated
	// determinant used by stableSign, per unit of the product of the
	// two shortest edge lengths.
	detErrorMultiplier = 3.2321 * dblError
)

// Sign returns +1 if the points a, b, c are counterclockwise, -1 if
// they are clockwise, and 0 if any two points are the same. The result
// is exact: it is unaffected by rounding, and points that are merely
// collinear are deterministically assigned to one side by an
// infinitesimal symbolic perturbation, so that for all distinct
// points the result is antisymmetric under any swap of arguments.
func Sign(a, b, c r3.Vector) int { return std.Sign(a, b, c) }

// Sign returns the orientation of the points a, b, c. See the
// package-level function.
func (p *Predicates) Sign(a, b, c r3.Vector) int {
	p.checkUnit(a, b, c)
	return p.signWithCross(a, b, c, a.Cross(b))
}

// SignWithCross is Sign for callers that have already computed a×b.
func SignWithCross(a, b, c, aCrossB r3.Vector) int {
	return std.SignWithCross(a, b, c, aCrossB)
}

// SignWithCross is Sign for callers that have already computed a×b.
func (p *Predicates) SignWithCross(a, b, c, aCrossB r3.Vector) int {
	p.checkUnit(a, b, c)
	return p.signWithCross(a, b, c, aCrossB)
}

func (p *Predicates) signWithCross(a, b, c, aCrossB r3.Vector) int {
	if s := triageSign(c, aCrossB); s != 0 {
		return s
	}
	return expensiveSign(a, b, c)
}

func triageSign(c, aCrossB r3.Vector) int {
	return triageSignValue(aCrossB.Dot(c), maxDetError)
}

// expensiveSign handles the nearly-degenerate cases the simple
// determinant cannot decide. It is called a vanishing fraction of the
// time for random inputs, so it favors correctness over speed.
func expensiveSign(a, b, c r3.Vector) int {
	// Coincident points have no determinate orientation.
	if a == b || b == c || c == a {
		return 0
	}
	if s := stableSign(a, b, c); s != 0 {
		return s
	}
	return exactSign(a, b, c, true)
}

// stableSign recomputes the determinant as ((A-C)×(B-C))·C using the
// two shortest edges. Translating the origin this way makes the error
// proportional to the product of the short edge lengths rather than
// absolute, which decides most inputs where the three points are close
// together.
func stableSign(a, b, c r3.Vector) int {
	ab, bc, ca := b.Sub(a), c.Sub(b), a.Sub(c)
	ab2, bc2, ca2 := ab.Norm2(), bc.Norm2(), ca.Norm2()
	var det, maxError float64
	switch {
	case ab2 >= bc2 && ab2 >= ca2:
		det = -ca.Cross(bc).Dot(c)
		maxError = detErrorMultiplier * math.Sqrt(ca2*bc2)
	case bc2 >= ca2:
		det = -ab.Cross(ca).Dot(a)
		maxError = detErrorMultiplier * math.Sqrt(ab2*ca2)
	default:
		det = -bc.Cross(ab).Dot(b)
		maxError = detErrorMultiplier * math.Sqrt(bc2*ab2)
	}
	return triageSignValue(det, maxError)
}

// exactSign computes the determinant in exact arithmetic. If it is
// zero and perturb is set, the points are distinct but linearly
// dependent and the sign is resolved symbolically.
func exactSign(a, b, c r3.Vector, perturb bool) int {
	// Sort into coordinate order, tracking the permutation parity, so
	// that the symbolic perturbation sees a canonical argument order
	// and the result is consistent across all six call orders.
	permSign := 1
	if a.Cmp(b) > 0 {
		a, b = b, a
		permSign = -permSign
	}
	if b.Cmp(c) > 0 {
		b, c = c, b
		permSign = -permSign
	}
	if a.Cmp(b) > 0 {
		a, b = b, a
		permSign = -permSign
	}
	xa, xb, xc := exactVectorOf(a), exactVectorOf(b), exactVectorOf(c)
	bCrossC := xb.cross(xc)
	detSign := signOf(xa.dot(bCrossC))
	if detSign == 0 && perturb {
		detSign = symbolicallyPerturbedSign(xa, xb, xc, bCrossC)
	}
	return permSign * detSign
}

// symbolicallyPerturbedSign resolves the orientation of three
// distinct, linearly dependent points. Each point is notionally
// displaced by an infinitesimal amount, with the displacement of a
// dominating b's and b's dominating c's (a < b < c in coordinate
// order, a perturbed most). Expanding det(a+da, b+db, c+dc)
// and discarding terms dominated by earlier ones yields the sequence
// of tests below; the result is the sign of the first nonzero term.
// The final constant term guarantees a nonzero answer.
//
// Requires a < b < c in coordinate order and det(a, b, c) == 0.
func symbolicallyPerturbedSign(a, b, c, bCrossC exactVector) int {
	if s := signOf(bCrossC.z); s != 0 {
		return s
	}
	if s := signOf(bCrossC.y); s != 0 {
		return s
	}
	if s := signOf(bCrossC.x); s != 0 {
		return s
	}
	if s := signOf(c.x.Mul(a.y).Sub(c.y.Mul(a.x))); s != 0 {
		return s
	}
	if s := signOf(c.x); s != 0 {
		return s
	}
	if s := signOf(c.y); s != 0 {
		return -s
	}
	if s := signOf(c.z.Mul(a.x).Sub(c.x.Mul(a.z))); s != 0 {
		return s
	}
	if s := signOf(c.z); s != 0 {
		return s
	}
	if s := signOf(a.x.Mul(b.y).Sub(a.y.Mul(b.x))); s != 0 {
		return s
	}
	if s := signOf(b.x); s != 0 {
		return -s
	}
	if s := signOf(b.y); s != 0 {
		return s
	}
	if s := signOf(a.x); s != 0 {
		return s
	}
	return 1
}

// OrderedCCW reports whether the edges OA, OB, and OC are encountered
// in that order while sweeping counterclockwise around the point o,
// i.e. whether b lies in the closed wedge from a to c. The result is
// true if a == b or b == c, but not necessarily if a == c.
func OrderedCCW(a, b, c, o r3.Vector) bool { return std.OrderedCCW(a, b, c, o) }

// OrderedCCW reports whether b lies in the closed counterclockwise
// wedge from a to c around o. See the package-level function.
func (p *Predicates) OrderedCCW(a, b, c, o r3.Vector) bool {
	// At most one of the three orientations can be clockwise when b is
	// inside the wedge.
	sum := 0
	if p.Sign(b, o, a) >= 0 {
		sum++
	}
	if p.Sign(c, o, b) >= 0 {
		sum++
	}
	if p.Sign(a, o, c) > 0 {
		sum++
	}
	return sum >= 2
}
