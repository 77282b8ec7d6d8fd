package sphere

import (
	"math"

	"github.com/golang/geo/r3"
)

// EdgeCircumcenterSign returns +1 if the circumcenter of triangle ABC
// is on the positive side of the great circle through the edge X0X1
// (the side its normal x0×x1 points toward), -1 if it is on the
// negative side, and 0 only in the fully degenerate case where all
// five points lie on that great circle. The circumcenter is the center
// of the circle through A, B, and C that lies in the same hemisphere
// as the triangle; it does not depend on the order of the vertices.
// A circumcenter lying exactly on the circle is
// assigned a side by the same symbolic perturbation that Sign uses, so
// the result is consistent with Sign and with the distance predicates.
func EdgeCircumcenterSign(x0, x1, a, b, c r3.Vector) int {
	return std.EdgeCircumcenterSign(x0, x1, a, b, c)
}

// EdgeCircumcenterSign returns which side of edge X the circumcenter
// of ABC is on. See the package-level function.
func (p *Predicates) EdgeCircumcenterSign(x0, x1, a, b, c r3.Vector) int {
	p.checkUnit(x0, x1, a, b, c)
	abcSign := p.Sign(a, b, c)
	if abcSign == 0 {
		// Coincident vertices: no circumcenter.
		return 0
	}
	if s := triageEdgeCircumcenterSign(x0, x1, a, b, c, abcSign); s != 0 {
		return s
	}
	if s := exactEdgeCircumcenterSign(exactVectorOf(x0), exactVectorOf(x1),
		exactVectorOf(a), exactVectorOf(b), exactVectorOf(c), abcSign); s != 0 {
		return s
	}
	return p.symbolicEdgeCircumcenterSign(x0, x1, a, b, c)
}

func triageEdgeCircumcenterSign(x0, x1, a, b, c r3.Vector, abcSign int) int {
	// For unit vertices the circumcenter is parallel to
	// (B-A)×(C-B) = B×C + C×A + A×B, with the triangle orientation
	// picking which of the two antipodal candidates is meant.
	n := edgeNormal(x0, x1)
	z := b.Sub(a).Cross(c.Sub(b))
	det := n.Dot(z)
	nLen, zLen := math.Sqrt(n.Norm2()), math.Sqrt(z.Norm2())
	maxError := dblError * (16*zLen + (16+6*zLen)*nLen)
	return abcSign * triageSignValue(det, maxError)
}

// exactEdgeCircumcenterSign evaluates the sign without assuming unit
// inputs: the equidistant point is proportional to
// |A|·(B×C) + |B|·(C×A) + |C|·(A×B), so its dot product with the edge
// normal M = X0×X1 is √α·u + √β·v + √γ·w with α = |A|² and so on.
func exactEdgeCircumcenterSign(x0, x1, a, b, c exactVector, abcSign int) int {
	m := x0.cross(x1)
	u := m.dot(b.cross(c))
	v := m.dot(c.cross(a))
	w := m.dot(a.cross(b))
	return abcSign * exactSqrtSumSign3(u, a.norm2(), v, b.norm2(), w, c.norm2())
}

// symbolicEdgeCircumcenterSign handles a circumcenter lying exactly on
// the great circle through X. Each vertex is notionally raised on an
// infinitesimal pedestal, largest for the vertex that is smallest in
// coordinate order; that pulls the circumcenter off the circle toward
// that vertex, so the answer is the side the vertex itself is on.
// Vertices on the circle contribute no pull and defer to the next.
func (p *Predicates) symbolicEdgeCircumcenterSign(x0, x1, a, b, c r3.Vector) int {
	if a.Cmp(b) > 0 {
		a, b = b, a
	}
	if b.Cmp(c) > 0 {
		b, c = c, b
	}
	if a.Cmp(b) > 0 {
		a, b = b, a
	}
	if s := p.Sign(x0, x1, a); s != 0 {
		return s
	}
	if s := p.Sign(x0, x1, b); s != 0 {
		return s
	}
	return p.Sign(x0, x1, c)
}
