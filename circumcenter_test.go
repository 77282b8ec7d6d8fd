package sphere

import (
	"math/rand/v2"
	"testing"
)

func TestEdgeCircumcenterSignBasic(t *testing.T) {
	x0, x1 := pt(1, 0, 0), pt(0, 1, 0)
	// The circumcenter of the octant triangle is normalize(1,1,1),
	// north of the equator edge.
	diff(t, 1, EdgeCircumcenterSign(x0, x1, pt(1, 0, 0), pt(0, 1, 0), pt(0, 0, 1)))
	// Reflecting the triangle through the equator flips the side.
	diff(t, -1, EdgeCircumcenterSign(x0, x1, pt(1, 0, 0), pt(0, 1, 0), pt(0, 0, -1)))
	// The circumcenter does not depend on the vertex order.
	diff(t, 1, EdgeCircumcenterSign(x0, x1, pt(0, 1, 0), pt(1, 0, 0), pt(0, 0, 1)))
}

func TestEdgeCircumcenterSignSmallTriangle(t *testing.T) {
	x0, x1 := pt(1, 0, 0), pt(0, 1, 0)
	// A tiny triangle well north of the edge.
	a := normalized(1, 1, 2)
	b := normalized(1.001, 1, 2)
	c := normalized(1, 1.001, 2)
	got := EdgeCircumcenterSign(x0, x1, a, b, c)
	diff(t, 1, got)
	diff(t, 1, EdgeCircumcenterSign(x0, x1, a, c, b))
}

func TestEdgeCircumcenterSignSymbolic(t *testing.T) {
	x0, x1 := pt(1, 0, 0), pt(0, 1, 0)
	// a and b mirror each other across the equator and c lies on it,
	// so the circumcenter is exactly on the edge's great circle. The
	// perturbation defers from c (on the circle, no pull) to b, which
	// is south of it.
	a := pt(0.8, 0, 0.6)
	b := pt(0.8, 0, -0.6)
	c := pt(0, 1, 0)
	got := EdgeCircumcenterSign(x0, x1, a, b, c)
	diff(t, -1, got)
	for range 10 {
		diff(t, got, EdgeCircumcenterSign(x0, x1, a, b, c))
	}
}

func TestEdgeCircumcenterSignDegenerate(t *testing.T) {
	x0, x1 := pt(1, 0, 0), pt(0, 1, 0)
	a := normalized(1, 2, 3)
	diff(t, 0, EdgeCircumcenterSign(x0, x1, a, a, normalized(3, 2, 1)))
}

func TestEdgeCircumcenterSignTriageConsistency(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 1))
	for range 1000 {
		u, v, w := circleFrame(rng)
		x0 := perturbedCirclePoint(u, v, w, 0, 0)
		x1 := perturbedCirclePoint(u, v, w, 1, 0)
		// Triangle vertices straddling the edge's great circle keep
		// the circumcenter close to it.
		a := perturbedCirclePoint(u, v, w, 2+rng.Float64(), tinyEps(rng))
		b := perturbedCirclePoint(u, v, w, 3+rng.Float64(), tinyEps(rng))
		c := perturbedCirclePoint(u, v, w, 4+rng.Float64(), tinyEps(rng))
		abcSign := Sign(a, b, c)
		if abcSign == 0 {
			continue
		}
		want := exactEdgeCircumcenterSign(exactVectorOf(x0), exactVectorOf(x1),
			exactVectorOf(a), exactVectorOf(b), exactVectorOf(c), abcSign)
		if s := triageEdgeCircumcenterSign(x0, x1, a, b, c, abcSign); s != 0 && s != want {
			t.Fatalf("triage = %d, exact = %d for x0=%v x1=%v a=%v b=%v c=%v",
				s, want, x0, x1, a, b, c)
		}
	}
}
