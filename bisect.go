package goflo

import "math"

// bisect searches [a,b] for a root of f, stopping once |f| drops below tol
// or after maxit halvings. The boolean reports whether tolerance was met;
// the best estimate is returned either way. When f(a) and f(b) share a
// sign no root is bracketed and the endpoint with the smaller residual is
// returned unconverged.
func bisect(f func(float64) float64, a, b, tol float64, maxit int) (float64, bool) {
	fa, fb := f(a), f(b)
	if math.Abs(fa) <= tol {
		return a, true
	}
	if math.Abs(fb) <= tol {
		return b, true
	}
	if fa*fb > 0. {
		if math.Abs(fa) < math.Abs(fb) {
			return a, false
		}
		return b, false
	}
	var m, fm float64
	for i := 0; i < maxit; i++ {
		m = (a + b) / 2.
		fm = f(m)
		if math.Abs(fm) <= tol {
			return m, true
		}
		if fa*fm < 0. {
			b, fb = m, fm
		} else {
			a, fa = m, fm
		}
		if b-a < nearzero*math.Max(1., math.Abs(a)) {
			break
		}
	}
	return m, math.Abs(fm) <= tol
}

// bracketUp grows the upper bound from lo until f changes sign, doubling
// the span each try. ok is false when no sign change is found.
func bracketUp(f func(float64) float64, lo float64, maxit int) (float64, bool) {
	span := 1.
	flo := f(lo)
	for i := 0; i < maxit; i++ {
		hi := lo + span
		if flo*f(hi) <= 0. {
			return hi, true
		}
		span *= 2.
	}
	return lo + span, false
}
