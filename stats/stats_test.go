package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	samples := []float64{5, 1, 4, 2, 3}
	summary := Summarize(samples, []float64{50, 0.95})
	require.NotNil(t, summary)
	assert.Equal(t, 3.0, summary.Mean)
	assert.Equal(t, 3.0, summary.Median)
	assert.Equal(t, 1.0, summary.Min)
	assert.Equal(t, 5.0, summary.Max)
	assert.Greater(t, summary.StdDev, 0.0)

	require.Len(t, summary.Percentiles, 2)
	// Requested values survive verbatim, percents and fractions alike
	assert.Equal(t, 50.0, summary.Percentiles[0].P)
	assert.Equal(t, 0.95, summary.Percentiles[1].P)
	assert.Equal(t, summary.Median, summary.Percentiles[0].Val)
	assert.GreaterOrEqual(t, summary.Percentiles[1].Val, summary.Percentiles[0].Val)
}

func TestSummarizeDoesNotReorderInput(t *testing.T) {
	samples := []float64{9, 1, 5}
	Summarize(samples, nil)
	assert.Equal(t, []float64{9, 1, 5}, samples)
}
