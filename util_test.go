package sphere

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func pt(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}

func normalized(x, y, z float64) r3.Vector {
	return pt(x, y, z).Normalize()
}

// lonLat returns the unit vector at the given longitude and latitude
// in radians.
func lonLat(lon, lat float64) r3.Vector {
	return pt(math.Cos(lat)*math.Cos(lon), math.Cos(lat)*math.Sin(lon), math.Sin(lat))
}

func randomPoint(rng *rand.Rand) r3.Vector {
	for {
		v := pt(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		if n2 := v.Norm2(); n2 > 0.1 && n2 <= 1 {
			return v.Mul(1 / math.Sqrt(n2))
		}
	}
}

// circleFrame returns an orthonormal frame (u, v, w) with w the
// normal of a random great circle and u, v spanning its plane.
func circleFrame(rng *rand.Rand) (u, v, w r3.Vector) {
	u = randomPoint(rng)
	for {
		w = u.Cross(randomPoint(rng))
		if w.Norm2() > 1e-4 {
			break
		}
	}
	w = w.Normalize()
	return u, w.Cross(u), w
}

// perturbedCirclePoint returns the point at angle theta on the circle
// of the frame, displaced toward the normal by eps and renormalized.
func perturbedCirclePoint(u, v, w r3.Vector, theta, eps float64) r3.Vector {
	p := u.Mul(math.Cos(theta)).Add(v.Mul(math.Sin(theta)))
	return p.Add(w.Mul(eps)).Normalize()
}

// tinyEps returns a signed perturbation magnitude distributed
// log-uniformly from far below one ulp up to visible sizes, so that
// every tier of the cascades gets exercised.
func tinyEps(rng *rand.Rand) float64 {
	return math.Pow(10, -20+19*rng.Float64()) * float64(rng.IntN(3)-1)
}
