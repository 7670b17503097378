// Package dist models the Beta probability distribution over [0, 1]:
// density, cumulative probability, quantiles, moments, and
// inverse-transform sampling. Evaluation is done in log space so that
// extreme shape parameters neither overflow nor underflow, and quantiles
// are found by inverting the CDF with a bracketing solver.
package dist

import (
	"fmt"
	"math"

	"github.com/mweagle/gobeta/solve"
	"gonum.org/v1/gonum/mathext"
)

// /////////////////////////////////////////////////////////////////////////////
// ___      _
// | _ ) ___| |_ __ _
// | _ \/ -_)  _/ _` |
// |___/\___|\__\__,_|
//
// /////////////////////////////////////////////////////////////////////////////

// DefaultInverseAbsoluteAccuracy is the absolute accuracy used for
// quantile inversion when the caller does not supply one.
const DefaultInverseAbsoluteAccuracy = 1e-9

// Beta is a Beta distribution with positive shape parameters. Values are
// immutable after construction, so a single instance is safe for
// concurrent use; derive a reconfigured model with WithShape instead of
// mutating in place.
type Beta struct {
	alpha float64
	beta  float64
	// Log of the normalizing beta function B(alpha, beta). Three
	// log-gamma evaluations, so it is computed once here rather than
	// per density call.
	lnBeta      float64
	invAccuracy float64
}

// New returns a Beta distribution with the given shape parameters and
// the default quantile accuracy.
func New(alpha float64, beta float64) (*Beta, error) {
	return NewWithAccuracy(alpha, beta, DefaultInverseAbsoluteAccuracy)
}

// NewWithAccuracy returns a Beta distribution whose quantiles are
// inverted to the given absolute accuracy. Both shape parameters and the
// accuracy must be positive.
func NewWithAccuracy(alpha float64, beta float64, accuracy float64) (*Beta, error) {
	// The negated comparisons also reject NaN
	if !(alpha > 0) {
		return nil, fmt.Errorf("%w: alpha must be positive, got %v", ErrInvalidParam, alpha)
	}
	if !(beta > 0) {
		return nil, fmt.Errorf("%w: beta must be positive, got %v", ErrInvalidParam, beta)
	}
	if !(accuracy > 0) {
		return nil, fmt.Errorf("%w: inverse accuracy must be positive, got %v", ErrInvalidParam, accuracy)
	}
	return &Beta{
		alpha:       alpha,
		beta:        beta,
		lnBeta:      lgamma(alpha) + lgamma(beta) - lgamma(alpha+beta),
		invAccuracy: accuracy,
	}, nil
}

// WithShape derives a new distribution with different shape parameters,
// keeping this model's quantile accuracy.
func (bd *Beta) WithShape(alpha float64, beta float64) (*Beta, error) {
	return NewWithAccuracy(alpha, beta, bd.invAccuracy)
}

func (bd *Beta) Alpha() float64 {
	return bd.alpha
}

func (bd *Beta) Beta() float64 {
	return bd.beta
}

// SolverAbsoluteAccuracy is the absolute accuracy bound used when
// inverting the CDF.
func (bd *Beta) SolverAbsoluteAccuracy() float64 {
	return bd.invAccuracy
}

func (bd *Beta) String() string {
	return fmt.Sprintf("Beta(α=%.2f, β=%.2f)", bd.alpha, bd.beta)
}

// Density returns the probability density at x. Outside [0, 1] the
// density is zero. At the boundaries the rule follows the shape
// parameters: x=0 is zero for alpha >= 1 and a DomainError otherwise,
// since the density diverges there; x=1 is symmetric on beta.
func (bd *Beta) Density(x float64) (float64, error) {
	logDensity, logDensityErr := bd.LogDensity(x)
	if logDensityErr != nil {
		return 0, logDensityErr
	}
	return math.Exp(logDensity), nil
}

// LogDensity returns the natural log of the density at x, -Inf wherever
// the density is zero. The interior evaluation is
// (alpha-1)·ln(x) + (beta-1)·ln(1-x) - ln B(alpha, beta), with ln(1-x)
// computed via Log1p to hold precision as x approaches 0.
func (bd *Beta) LogDensity(x float64) (float64, error) {
	switch {
	case x < 0 || x > 1:
		return math.Inf(-1), nil
	case x == 0:
		if bd.alpha < 1 {
			return 0, &DomainError{X: 0, Shape: "alpha", Value: bd.alpha}
		}
		return math.Inf(-1), nil
	case x == 1:
		if bd.beta < 1 {
			return 0, &DomainError{X: 1, Shape: "beta", Value: bd.beta}
		}
		return math.Inf(-1), nil
	default:
		return (bd.alpha-1)*math.Log(x) + (bd.beta-1)*math.Log1p(-x) - bd.lnBeta, nil
	}
}

// CumulativeProbability returns P(X <= x). Arguments outside the support
// clamp to 0 and 1; the interior is the regularized incomplete beta
// function, which is the Beta CDF by definition.
func (bd *Beta) CumulativeProbability(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return mathext.RegIncBeta(bd.alpha, bd.beta, x)
}

// CumulativeProbabilityBetween returns P(x0 < X <= x1) as the plain
// difference of the CDF at the endpoints. The subtraction is not guarded
// against x0 > x1: such a call yields the negative of the interval mass,
// and ordering the endpoints is the caller's responsibility.
func (bd *Beta) CumulativeProbabilityBetween(x0 float64, x1 float64) float64 {
	return bd.CumulativeProbability(x1) - bd.CumulativeProbability(x0)
}

// InverseCumulativeProbability returns the smallest x in [0, 1] with
// P(X <= x) >= p, located to within the model's absolute accuracy.
// p=0 and p=1 return the support bounds exactly, sidestepping the
// boundary cases where the density is zero or unbounded. A p outside
// [0, 1] is an ErrProbabilityRange; solver exhaustion surfaces as a
// solve.ErrNoConvergence rather than a best-effort value.
func (bd *Beta) InverseCumulativeProbability(p float64) (float64, error) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, fmt.Errorf("%w: p must be in [0, 1], got %v", ErrProbabilityRange, p)
	}
	if p == 0 {
		return 0, nil
	}
	if p == 1 {
		return 1, nil
	}
	// The CDF is continuous and monotone from 0 to 1 over the same
	// interval, so p itself is a serviceable starting point.
	cdfOffset := func(x float64) float64 {
		return bd.CumulativeProbability(x) - p
	}
	return solve.Root(cdfOffset, 0, 1, p, bd.invAccuracy)
}

// Mean returns alpha / (alpha + beta).
func (bd *Beta) Mean() float64 {
	return bd.alpha / (bd.alpha + bd.beta)
}

// Variance returns alpha·beta / ((alpha+beta)² · (alpha+beta+1)).
func (bd *Beta) Variance() float64 {
	shapeSum := bd.alpha + bd.beta
	return (bd.alpha * bd.beta) / ((shapeSum * shapeSum) * (shapeSum + 1))
}

// Mode returns the interior mode (alpha-1)/(alpha+beta-2). The second
// return is false when no interior mode exists, i.e. unless both shape
// parameters exceed 1.
func (bd *Beta) Mode() (float64, bool) {
	if bd.alpha <= 1 || bd.beta <= 1 {
		return 0, false
	}
	return (bd.alpha - 1) / (bd.alpha + bd.beta - 2), true
}

// SupportLowerBound returns 0. The support is [0, 1] for all shape
// parameters.
func (bd *Beta) SupportLowerBound() float64 {
	return 0
}

// SupportUpperBound returns 1.
func (bd *Beta) SupportUpperBound() float64 {
	return 1
}

func lgamma(x float64) float64 {
	lg, _ := math.Lgamma(x)
	return lg
}
