package solve

import (
	"errors"
	"fmt"
	"math"
)

// /////////////////////////////////////////////////////////////////////////////
//
//  ___     _
// / __|___| |_  _____
// \__ \/ _ \ \ V / -_)
// |___/\___/_|\_/\___|
//
// /////////////////////////////////////////////////////////////////////////////

// Func is a scalar function of a single real variable. It is the only
// capability the solver requires of its callers, so any continuous
// function (a CDF offset by a target probability, a likelihood gradient,
// ...) can be inverted without the solver knowing where it came from.
type Func func(x float64) float64

// ErrNoConvergence is wrapped by all errors returned when the solver
// exhausts its iteration budget before isolating a root to the requested
// accuracy. Callers can detect it with errors.Is.
var ErrNoConvergence = errors.New("solver failed to converge")

const (
	// Maximum interval expansions attempted while searching for a
	// sign change around the initial guess
	maxBracketIterations = 64
	// Maximum Brent iterations once a bracket is established
	maxBrentIterations = 100
)

// Machine epsilon for float64
var macheps = math.Nextafter(1, 2) - 1

// Bracket expands an interval outward from the initial guess until the
// function changes sign across it, clamping the interval to
// [lower, upper]. It returns the bracketing endpoints (a, b) with
// a <= initial <= b and f(a)·f(b) <= 0.
func Bracket(f Func, initial float64, lower float64, upper float64) (float64, float64, error) {
	if initial < lower || initial > upper {
		return 0, 0, fmt.Errorf("initial guess %v outside search interval [%v, %v]", initial, lower, upper)
	}
	a := initial
	b := initial
	var fa, fb float64
	for i := 0; i < maxBracketIterations; i++ {
		a = math.Max(a-1.0, lower)
		b = math.Min(b+1.0, upper)
		fa = f(a)
		fb = f(b)
		if fa*fb <= 0 {
			return a, b, nil
		}
		if a <= lower && b >= upper {
			break
		}
	}
	return 0, 0, fmt.Errorf("%w: no sign change in [%v, %v] around initial guess %v (f(%v)=%v, f(%v)=%v)",
		ErrNoConvergence, lower, upper, initial, a, fa, b, fb)
}

// Root returns x in [lower, upper] such that f(x) == 0, located to within
// absAccuracy. The initial guess seeds the bracketing search; the root
// itself is isolated with Brent's method, so f must be continuous on the
// interval but no derivative is needed. Monotone functions are the
// intended use and always bracket on the first expansion.
func Root(f Func, lower float64, upper float64, initial float64, absAccuracy float64) (float64, error) {
	if absAccuracy <= 0 {
		return 0, fmt.Errorf("absolute accuracy must be positive, got %v", absAccuracy)
	}
	// The guess may already be good enough to skip the search entirely
	fInitial := f(initial)
	if fInitial == 0 {
		return initial, nil
	}
	a, b, bracketErr := Bracket(f, initial, lower, upper)
	if bracketErr != nil {
		return 0, bracketErr
	}
	return brent(f, a, b, absAccuracy)
}

// brent runs Brent's method on a bracketing interval [a, b] with
// f(a)·f(b) <= 0. Inverse quadratic interpolation where it helps,
// secant otherwise, bisection as the fallback that guarantees progress.
func brent(f Func, a float64, b float64, absAccuracy float64) (float64, error) {
	fa := f(a)
	fb := f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}

	c := a
	fc := fa
	d := b - a
	e := d

	for i := 0; i < maxBrentIterations; i++ {
		if math.Abs(fc) < math.Abs(fb) {
			a = b
			b = c
			c = a
			fa = fb
			fb = fc
			fc = fa
		}
		tol := 2*macheps*math.Abs(b) + 0.5*absAccuracy
		m := 0.5 * (c - b)
		if math.Abs(m) <= tol || fb == 0 {
			return b, nil
		}
		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			// Interpolation would not help; bisect
			d = m
			e = m
		} else {
			s := fb / fa
			var p, q float64
			if a == c {
				// Secant step
				p = 2 * m * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation
				q = fa / fc
				r := fb / fc
				p = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				// Interpolated step rejected; bisect
				d = m
				e = m
			}
		}
		a = b
		fa = fb
		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb = f(b)
		if (fb > 0) == (fc > 0) {
			// Root moved between b and the old a; reset the contrapoint
			c = a
			fc = fa
			d = b - a
			e = d
		}
	}
	return 0, fmt.Errorf("%w: root not isolated to %v after %d iterations", ErrNoConvergence, absAccuracy, maxBrentIterations)
}
