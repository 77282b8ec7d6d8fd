package sphere

import (
	"math"

	"github.com/golang/geo/r3"
)

const (
	// dblError is the maximum rounding error of a single float64
	// operation on values near 1, i.e. half an ulp.
	dblError = 1.1102230246251565404236316680908203125e-16 // 2**-53

	sqrt3 = 1.7320508075688772935274463415058723669428
)

// A ChordAngle is an angle between two points on the unit sphere,
// represented as the squared length of the chord between them. The
// representation ranges over [0, 4]: 0 is coincident points, 1 is 60
// degrees, 2 is 90 degrees, and 4 is antipodal points. It is capable
// of representing distance comparisons exactly, which is why the
// predicates take thresholds in this form rather than as angles.
type ChordAngle float64

// ChordAngleFromAngle converts an angle in radians to a ChordAngle.
// Angles of 180 degrees or more map to the antipodal chord.
func ChordAngleFromAngle(radians float64) ChordAngle {
	s := 2 * math.Sin(0.5*math.Min(math.Pi, radians))
	return ChordAngle(s * s)
}

// Predicates evaluates the exact geometric predicate family. The zero
// configuration is what the package-level functions use; the only
// option is input validation, intended for tests and for debugging
// callers that may feed in non-unit or non-finite points.
//
// A Predicates value is immutable and safe for concurrent use.
type Predicates struct {
	validate bool
}

// An Option configures a Predicates value.
type Option func(*Predicates)

// WithValidation makes every predicate check its preconditions
// (finite, approximately unit-length points; thresholds in range) and
// panic on violation. Without it, precondition violations silently
// produce unspecified (but still deterministic) results.
func WithValidation() Option {
	return func(p *Predicates) { p.validate = true }
}

// New returns a Predicates configured by the given options.
func New(opts ...Option) *Predicates {
	p := &Predicates{}
	for _, o := range opts {
		o(p)
	}
	return p
}

// std backs the package-level predicate functions. Validation is off.
var std = New()

// maxUnitError is the tolerance for the squared norm of a point that
// is supposed to be unit length. It accommodates points produced by
// normalizing a float64 vector.
const maxUnitError = 5e-14

func (p *Predicates) checkUnit(vs ...r3.Vector) {
	if !p.validate {
		return
	}
	for _, v := range vs {
		n := v.Norm2()
		if !(math.Abs(n-1) <= maxUnitError) {
			panic("sphere: point is not unit length")
		}
	}
}

func (p *Predicates) checkFinite(vs ...r3.Vector) {
	if !p.validate {
		return
	}
	for _, v := range vs {
		if math.IsNaN(v.X+v.Y+v.Z) || math.IsInf(v.X+v.Y+v.Z, 0) {
			panic("sphere: vector is not finite")
		}
	}
}

func (p *Predicates) checkRadius(r ChordAngle) {
	if !p.validate {
		return
	}
	if !(r >= 0 && r <= 4) {
		panic("sphere: chord angle out of range")
	}
}

// triageSignValue converts a computed value and a bound on its
// absolute rounding error into a sign, with 0 meaning undecidable at
// this precision.
func triageSignValue(v, maxError float64) int {
	switch {
	case v > maxError:
		return 1
	case v < -maxError:
		return -1
	}
	return 0
}
