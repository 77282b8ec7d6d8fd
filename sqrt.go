package sphere

import "github.com/exactgeo/sphere/exactfloat"

// The predicates in this package that involve circumcenters or
// Voronoi bisectors reduce to the sign of a sum of terms of the form
// u·√α with α >= 0. Such signs can be decided exactly without ever
// extracting a square root, by repeated sign analysis and squaring.

// termSign returns the sign of u·√radicand, i.e. the sign of u unless
// the radicand is zero.
func termSign(u, radicand exactfloat.ExactFloat) int {
	if signOf(radicand) == 0 {
		return 0
	}
	return signOf(u)
}

// exactSqrtSumSign returns the sign of u·√α + v·√β for α, β >= 0.
func exactSqrtSumSign(u, alpha, v, beta exactfloat.ExactFloat) int {
	su, sv := termSign(u, alpha), termSign(v, beta)
	switch {
	case su == 0:
		return sv
	case sv == 0:
		return su
	case su == sv:
		return su
	}
	// Opposite signs: squaring both terms preserves the comparison of
	// their magnitudes.
	cmp := u.Mul(u).Mul(alpha).Sub(v.Mul(v).Mul(beta))
	return su * signOf(cmp)
}

// exactSqrtSumSign3 returns the sign of u·√α + v·√β + w·√γ for
// α, β, γ >= 0.
func exactSqrtSumSign3(u, alpha, v, beta, w, gamma exactfloat.ExactFloat) int {
	su, sv, sw := termSign(u, alpha), termSign(v, beta), termSign(w, gamma)
	// A vanishing term reduces to the two-term case.
	switch {
	case su == 0:
		return exactSqrtSumSign(v, beta, w, gamma)
	case sv == 0:
		return exactSqrtSumSign(u, alpha, w, gamma)
	case sw == 0:
		return exactSqrtSumSign(u, alpha, v, beta)
	}
	if su == sv && sv == sw {
		return su
	}
	// Exactly one term opposes the other two. Rotate it into the w
	// position, so the sum reads (u·√α + v·√β) - |w|·√γ up to an
	// overall sign σ.
	switch {
	case su == sv:
		// already in place
	case su == sw:
		v, beta, w, gamma = w, gamma, v, beta
	default:
		u, alpha, w, gamma = w, gamma, u, alpha
		su = sv
	}
	sigma := su
	// Squaring the two-term side gives u²α + v²β + 2uv·√(αβ), with
	// 2uv > 0 since u and v agree in sign. Comparing against w²γ is
	// then another two-term sqrt-sum sign.
	d := u.Mul(u).Mul(alpha).Add(v.Mul(v).Mul(beta)).Sub(w.Mul(w).Mul(gamma))
	e := exactfloat.New(2).Mul(u).Mul(v)
	return sigma * exactSqrtSumSign(d, exactfloat.New(1), e, alpha.Mul(beta))
}
