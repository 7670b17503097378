package stats

import (
	"sort"

	gonumstat "gonum.org/v1/gonum/stat"
)

// Percentile pairs a requested percentile with the empirical value at
// that rank.
type Percentile struct {
	P   float64
	Val float64
}

// Summary holds the aggregate statistics for a sequence of simulated
// variates.
type Summary struct {
	Mean        float64
	Median      float64
	StdDev      float64
	Min         float64
	Max         float64
	Percentiles []Percentile
}

// Summarize computes aggregates over an unsorted sample. Percentiles may
// be given either as fractions (0.95) or as percents (95); values above
// 1 are treated as percents.
func Summarize(unsortedSamples []float64, percentiles []float64) *Summary {
	sortedSamples := make([]float64, len(unsortedSamples))
	copy(sortedSamples, unsortedSamples)
	sort.Float64s(sortedSamples)

	mean, stddev := gonumstat.MeanStdDev(sortedSamples, nil)
	median := gonumstat.Quantile(0.5, gonumstat.Empirical, sortedSamples, nil)
	summary := &Summary{
		Mean:        mean,
		Median:      median,
		StdDev:      stddev,
		Percentiles: make([]Percentile, len(percentiles)),
	}
	if len(sortedSamples) > 0 {
		summary.Min = sortedSamples[0]
		summary.Max = sortedSamples[len(sortedSamples)-1]
	}

	for i, requested := range percentiles {
		fraction := requested
		if fraction > 1.00 {
			fraction = fraction / 100
		}
		summary.Percentiles[i] = Percentile{
			P:   requested,
			Val: gonumstat.Quantile(fraction, gonumstat.Empirical, sortedSamples, nil),
		}
	}
	return summary
}
