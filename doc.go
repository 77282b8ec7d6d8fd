// Package sphere implements exact geometric predicates for points on
// the unit sphere.
//
// A predicate answers a discrete question about a configuration of
// points: which way three points turn, which of two sites is closer,
// which side of an edge a circumcenter falls on. Algorithms built on
// such questions (triangulation, Voronoi diagrams, polygon boolean
// operations) are correct only if the answers are mutually consistent,
// and plain float64 arithmetic cannot promise that: near-degenerate
// configurations produce answers determined by rounding noise.
//
// Every predicate in this package is evaluated in up to three tiers.
// The triage tier computes the relevant quantity in float64 together
// with a conservative bound on its rounding error, and answers
// immediately when the magnitude clears the bound, which it does for
// all but a vanishing fraction of inputs. Otherwise the exact tier
// recomputes the quantity in arbitrary-precision arithmetic (package
// exactfloat) and reads off the true sign. If the quantity is exactly
// zero and the predicate's contract demands a nonzero answer, a
// symbolic tier resolves the tie by an infinitesimal perturbation
// applied consistently across all predicates, so that, for example,
// three distinct collinear points still have a definite orientation
// and Sign remains antisymmetric.
//
// Points are represented as [r3.Vector] values and are expected to be
// approximately unit length; the exact tiers never assume exact
// normalization. Distance thresholds are [ChordAngle] values, which
// represent angles exactly as squared chord lengths.
//
// The package-level functions evaluate predicates directly. A
// [Predicates] value created with [WithValidation] additionally checks
// preconditions, at some cost, and panics on violations.
package sphere
