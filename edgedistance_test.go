package sphere

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/golang/geo/r3"
)

// quarterEdge is the equator edge from (1,0,0) to (0,1,0).
var quarterEdge = [2]r3.Vector{pt(1, 0, 0), pt(0, 1, 0)}

func TestCompareEdgeDistanceInterior(t *testing.T) {
	a0, a1 := quarterEdge[0], quarterEdge[1]
	// The closest point to x is interior to the edge; the distance is
	// the latitude, about 35.26 degrees.
	x := normalized(1, 1, 1)
	d := math.Asin(1 / math.Sqrt(3))
	diff(t, -1, CompareEdgeDistance(x, a0, a1, ChordAngleFromAngle(d+0.01)))
	diff(t, 1, CompareEdgeDistance(x, a0, a1, ChordAngleFromAngle(d-0.01)))
	// A point on the edge itself.
	diff(t, -1, CompareEdgeDistance(normalized(1, 1, 0), a0, a1, ChordAngleFromAngle(0.01)))
	diff(t, 0, CompareEdgeDistance(normalized(1, 1, 0), a0, a1, 0))
}

func TestCompareEdgeDistanceEndpoint(t *testing.T) {
	a0, a1 := quarterEdge[0], quarterEdge[1]
	// x is west of a0, so the closest point is the endpoint a0, 45
	// degrees away.
	x := normalized(1, -1, 0)
	diff(t, -1, CompareEdgeDistance(x, a0, a1, ChordAngleFromAngle(math.Pi/3)))
	diff(t, 1, CompareEdgeDistance(x, a0, a1, ChordAngleFromAngle(math.Pi/6)))
	diff(t, 0, CompareEdgeDistance(a0, a0, a1, 0))
}

func TestCompareEdgeDistancePole(t *testing.T) {
	// The pole is exactly 90 degrees from every point of an equator
	// edge.
	a0, a1 := quarterEdge[0], quarterEdge[1]
	diff(t, 0, CompareEdgeDistance(pt(0, 0, 1), a0, a1, ChordAngle(2)))
	diff(t, -1, CompareEdgeDistance(pt(0, 0, 1), a0, a1, ChordAngle(2.5)))
	diff(t, 1, CompareEdgeDistance(pt(0, 0, 1), a0, a1, ChordAngle(1.5)))
}

func TestCompareEdgeDistanceTriageConsistency(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 1))
	p := New()
	for range 1000 {
		u, v, w := circleFrame(rng)
		a0 := perturbedCirclePoint(u, v, w, 0, 0)
		a1 := perturbedCirclePoint(u, v, w, 0.5+rng.Float64(), 0)
		x := randomPoint(rng)
		// Thresholds at or near the endpoint and line distances.
		candidates := []float64{
			x.Sub(a0).Norm2(),
			x.Sub(a1).Norm2(),
		}
		if sin := x.Dot(w); math.Abs(sin) < 1 {
			d := math.Asin(math.Abs(sin))
			candidates = append(candidates, float64(ChordAngleFromAngle(d)))
		}
		for _, base := range candidates {
			r2 := base * (1 + tinyEps(rng))
			if r2 < 0 || r2 > 4 {
				continue
			}
			want := p.exactCompareEdgeDistance(x, a0, a1, ChordAngle(r2))
			if s := triageCompareEdgeDistance(x, a0, a1, r2); s != 0 && s != want {
				t.Fatalf("triage = %d, exact = %d for x=%v a0=%v a1=%v r2=%v",
					s, want, x, a0, a1, r2)
			}
		}
	}
}

func TestCompareEdgeDirections(t *testing.T) {
	e := pt(1, 0, 0)
	n := pt(0, 1, 0)
	w := pt(-1, 0, 0)
	up := pt(0, 0, 1)
	// Same great circle, same direction.
	diff(t, 1, CompareEdgeDirections(e, n, n, w))
	// Same great circle, opposite direction.
	diff(t, -1, CompareEdgeDirections(e, n, w, n))
	// Orthogonal great circles.
	diff(t, 0, CompareEdgeDirections(e, n, up, e))
	// Nearly parallel circles with inexact points.
	a := normalized(1, 0.2, 0.3)
	b := normalized(-0.4, 1, 0.1)
	diff(t, 1, CompareEdgeDirections(a, b, a, b))
	diff(t, -1, CompareEdgeDirections(a, b, b, a))
}

func TestCompareEdgeDirectionsTriageConsistency(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 2))
	for range 1000 {
		u, v, w := circleFrame(rng)
		// Both edges near the same great circle: normals nearly
		// parallel or antiparallel.
		a0 := perturbedCirclePoint(u, v, w, 3*rng.Float64(), tinyEps(rng))
		a1 := perturbedCirclePoint(u, v, w, 3*rng.Float64(), tinyEps(rng))
		b0 := perturbedCirclePoint(u, v, w, 3*rng.Float64(), tinyEps(rng))
		b1 := perturbedCirclePoint(u, v, w, 3*rng.Float64(), tinyEps(rng))
		if a0 == a1 || b0 == b1 {
			continue
		}
		want := signOf(exactVectorOf(a0).cross(exactVectorOf(a1)).
			dot(exactVectorOf(b0).cross(exactVectorOf(b1))))
		if s := triageCompareEdgeDirections(a0, a1, b0, b1); s != 0 && s != want {
			t.Fatalf("triage = %d, exact = %d for %v %v %v %v", s, want, a0, a1, b0, b1)
		}
	}
}

func TestSignDotProd(t *testing.T) {
	diff(t, 0, SignDotProd(pt(1, 0, 0), pt(0, 1, 0)))
	diff(t, 1, SignDotProd(pt(1, 0, 0), pt(1e-300, 1, 0)))
	diff(t, -1, SignDotProd(pt(1, 0, 0), pt(-1e-300, 1, 0)))
	diff(t, 1, SignDotProd(normalized(1, 2, 3), normalized(1, 2, 3)))
	// Cancellation that float64 summation gets wrong without care:
	// the three products cancel exactly.
	diff(t, 0, SignDotProd(pt(1, 1, -1), pt(0.5, 0.5, 1)))
}
