package sphere

import (
	"github.com/exactgeo/sphere/exactfloat"
	"github.com/golang/geo/r3"
)

// exactVector is a 3-vector with arbitrary-precision components. It is
// the workhorse of the exact tier: all of its operations are free of
// rounding, so signs of polynomial expressions in the input
// coordinates can be read off directly.
type exactVector struct {
	x, y, z exactfloat.ExactFloat
}

func exactVectorOf(v r3.Vector) exactVector {
	return exactVector{exactfloat.New(v.X), exactfloat.New(v.Y), exactfloat.New(v.Z)}
}

func (v exactVector) add(w exactVector) exactVector {
	return exactVector{v.x.Add(w.x), v.y.Add(w.y), v.z.Add(w.z)}
}

func (v exactVector) sub(w exactVector) exactVector {
	return exactVector{v.x.Sub(w.x), v.y.Sub(w.y), v.z.Sub(w.z)}
}

func (v exactVector) scale(f exactfloat.ExactFloat) exactVector {
	return exactVector{v.x.Mul(f), v.y.Mul(f), v.z.Mul(f)}
}

func (v exactVector) cross(w exactVector) exactVector {
	return exactVector{
		v.y.Mul(w.z).Sub(v.z.Mul(w.y)),
		v.z.Mul(w.x).Sub(v.x.Mul(w.z)),
		v.x.Mul(w.y).Sub(v.y.Mul(w.x)),
	}
}

func (v exactVector) dot(w exactVector) exactfloat.ExactFloat {
	return v.x.Mul(w.x).Add(v.y.Mul(w.y)).Add(v.z.Mul(w.z))
}

func (v exactVector) norm2() exactfloat.ExactFloat {
	return v.dot(v)
}

func (v exactVector) isZero() bool {
	return v.x.IsZero() && v.y.IsZero() && v.z.IsZero()
}

// signOf extracts the sign of an exact result. NaN means an exact
// computation overflowed the precision limit, which cannot happen for
// any polynomial a predicate evaluates over valid inputs; reporting a
// sign at that point would silently corrupt the caller's geometry.
func signOf(f exactfloat.ExactFloat) int {
	if f.IsNaN() {
		panic("sphere: exact computation exceeded maximum precision")
	}
	return f.Sign()
}
