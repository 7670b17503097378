package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/mweagle/gobeta/dist"
	"github.com/mweagle/gobeta/stats"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// /////////////////////////////////////////////////////////////////////////////
// ___                    _
// | _ \___ _ __  ___ _ _| |_
// |   / -_) '_ \/ _ \ '_|  _|
// |_|_\___| .__/\___/_|  \__|
//         |_|
// /////////////////////////////////////////////////////////////////////////////

// quantileValue is a theoretical quantile of the model: the x with
// P(X <= x) == p.
type quantileValue struct {
	p float64
	x float64
}

// DistributionReport evaluates a Beta model over its support and renders
// the results: a density/CDF grid, theoretical quantiles, and a Monte
// Carlo sample summarized against the closed-form moments.
type DistributionReport struct {
	def           *definition
	grid          []float64
	pdfValues     []float64
	cdfValues     []float64
	quantiles     []quantileValue
	samples       []float64
	sampleSummary *stats.Summary
}

func (dr *DistributionReport) evaluateGrid(log *slog.Logger) error {
	dr.grid = floats.Span(make([]float64, dr.def.points), 0, 1)
	dr.pdfValues = make([]float64, len(dr.grid))
	dr.cdfValues = make([]float64, len(dr.grid))
	for i, x := range dr.grid {
		density, densityErr := dr.def.model.Density(x)
		if densityErr != nil {
			var domainErr *dist.DomainError
			if !errors.As(densityErr, &domainErr) {
				return densityErr
			}
			// Unbounded at this boundary; mark the point so the plot
			// can skip it
			log.Debug("Density unbounded at support boundary", "x", x, "shape", domainErr.Shape)
			density = math.NaN()
		}
		dr.pdfValues[i] = density
		dr.cdfValues[i] = dr.def.model.CumulativeProbability(x)
	}
	return nil
}

func (dr *DistributionReport) evaluateQuantiles(log *slog.Logger) error {
	dr.quantiles = make([]quantileValue, len(dr.def.percentiles))
	for i, percentile := range dr.def.percentiles {
		p := percentile
		if p > 1.00 {
			p = p / 100
		}
		x, invErr := dr.def.model.InverseCumulativeProbability(p)
		if invErr != nil {
			return fmt.Errorf("failed to invert CDF at p=%v: %w", p, invErr)
		}
		dr.quantiles[i] = quantileValue{
			p: percentile,
			x: x,
		}
	}
	return nil
}

func (dr *DistributionReport) simulate(log *slog.Logger) {
	sampler := dr.def.model.Sampler(rand.NewSource(0))
	dr.samples = sampler.Sample(int(dr.def.runCount))
	dr.sampleSummary = stats.Summarize(dr.samples, dr.def.percentiles)
	log.Debug("Simulated model",
		"runCount", dr.def.runCount,
		"theoreticalMean", dr.def.model.Mean(),
		"empiricalMean", dr.sampleSummary.Mean)
}

func newDistributionReport(inputStream io.Reader, log *slog.Logger) (*DistributionReport, error) {
	def, defErr := unmarshalDefinition(inputStream, log)
	if defErr != nil {
		return nil, defErr
	}
	report := &DistributionReport{
		def: def,
	}
	evalErr := report.evaluateGrid(log)
	if evalErr != nil {
		return nil, evalErr
	}
	quantilesErr := report.evaluateQuantiles(log)
	if quantilesErr != nil {
		return nil, quantilesErr
	}
	report.simulate(log)
	return report, nil
}

// ReportParams configures a report run.
type ReportParams struct {
	InputFile       string
	OutputDirectory string
	LightThemeID    int64
	DarkThemeID     int64
}

// NewDistributionReport reads the definition at params.InputFile,
// evaluates the model, and writes the plot PNG, the d2 summary, and its
// rendered SVG next to it.
func NewDistributionReport(params *ReportParams, log *slog.Logger) (*DistributionReport, error) {
	inputFile, inputFileErr := os.Open(params.InputFile)
	if inputFileErr != nil {
		return nil, inputFileErr
	}
	defer inputFile.Close()

	report, reportErr := newDistributionReport(inputFile, log)
	if reportErr != nil {
		return nil, reportErr
	}
	outputFileName := filepath.Base(params.InputFile)
	outputFileBaseName := strings.TrimSuffix(outputFileName, filepath.Ext(outputFileName))

	plotPath := filepath.Join(params.OutputDirectory, outputFileBaseName+".png")
	plotErr := report.PlotDistribution(plotPath, log)
	if plotErr != nil {
		return nil, plotErr
	}
	log.Info("Created distribution plot", "path", plotPath)

	d2Path := filepath.Join(params.OutputDirectory, outputFileBaseName+".d2")
	d2File, d2FileErr := os.Create(d2Path)
	if d2FileErr != nil {
		return nil, d2FileErr
	}
	encodeErr := report.encodeD2(d2File, plotPath, log)
	closeErr := d2File.Close()
	if closeErr != nil {
		return nil, closeErr
	}
	if encodeErr != nil {
		return nil, encodeErr
	}
	renderErr := renderD2SVG(d2Path,
		filepath.Join(params.OutputDirectory, outputFileBaseName+".svg"),
		params.LightThemeID,
		params.DarkThemeID,
		log)
	if renderErr != nil {
		return nil, renderErr
	}
	return report, nil
}
