package solve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootLinear(t *testing.T) {
	f := func(x float64) float64 {
		return 2*x - 1
	}
	root, rootErr := Root(f, 0, 1, 0.1, 1e-12)
	require.NoError(t, rootErr)
	assert.InDelta(t, 0.5, root, 1e-12)
}

func TestRootCubic(t *testing.T) {
	// x^3 - 2x - 5 has a single real root near 2.0945514815
	f := func(x float64) float64 {
		return x*x*x - 2*x - 5
	}
	root, rootErr := Root(f, 0, 5, 1, 1e-10)
	require.NoError(t, rootErr)
	assert.InDelta(t, 2.0945514815423265, root, 1e-9)
}

func TestRootSine(t *testing.T) {
	root, rootErr := Root(math.Sin, 3, 4, 3.5, 1e-10)
	require.NoError(t, rootErr)
	assert.InDelta(t, math.Pi, root, 1e-9)
}

func TestRootExactInitialGuess(t *testing.T) {
	f := func(x float64) float64 {
		return x - 0.25
	}
	root, rootErr := Root(f, 0, 1, 0.25, 1e-9)
	require.NoError(t, rootErr)
	assert.Equal(t, 0.25, root)
}

func TestRootNoSignChange(t *testing.T) {
	f := func(x float64) float64 {
		return x*x + 1
	}
	_, rootErr := Root(f, -1, 1, 0, 1e-9)
	require.Error(t, rootErr)
	assert.ErrorIs(t, rootErr, ErrNoConvergence)
}

func TestRootInvalidAccuracy(t *testing.T) {
	f := func(x float64) float64 {
		return x
	}
	_, rootErr := Root(f, -1, 1, 0.5, 0)
	assert.Error(t, rootErr)
}

func TestBracketMonotone(t *testing.T) {
	f := func(x float64) float64 {
		return x - 0.75
	}
	a, b, bracketErr := Bracket(f, 0.5, 0, 1)
	require.NoError(t, bracketErr)
	assert.True(t, a <= 0.75 && 0.75 <= b, "bracket [%v, %v] must contain the root", a, b)
	assert.True(t, f(a)*f(b) <= 0)
}

func TestBracketInitialOutsideInterval(t *testing.T) {
	f := func(x float64) float64 {
		return x
	}
	_, _, bracketErr := Bracket(f, 2, 0, 1)
	assert.Error(t, bracketErr)
}

func TestRootSteepCDFShapedFunction(t *testing.T) {
	// Shaped like the CDF inversion the solver exists for: monotone on
	// (0,1) with steep flanks near the endpoints.
	target := 0.9
	f := func(x float64) float64 {
		return math.Pow(x, 0.1) - target
	}
	root, rootErr := Root(f, 0, 1, target, 1e-9)
	require.NoError(t, rootErr)
	assert.InDelta(t, math.Pow(target, 10), root, 1e-8)
}
