package app

import (
	"image/color"
	"log/slog"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotDistribution renders the evaluated model to a PNG: the sample
// histogram normalized to unit mass, the analytic density over it, and
// the CDF as a dashed overlay.
func (dr *DistributionReport) PlotDistribution(plotPath string, log *slog.Logger) error {
	p := plot.New()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "Density"
	p.Title.Text = dr.def.name
	p.Title.TextStyle.Font.Typeface = font.Typeface("Monoco")
	p.Title.TextStyle.Color = color.RGBA{B: 255, A: 255}

	// Histogram of the simulated variates, scaled to match the density
	rawHist, rawHistError := plotter.NewHist(plotter.Values(dr.samples), 100)
	if rawHistError != nil {
		return rawHistError
	}
	rawHist.Normalize(1)
	p.Add(rawHist)

	// The analytic density. Boundary points where the density is
	// unbounded were marked NaN during evaluation and are dropped here.
	pdfValues := make(plotter.XYs, 0, len(dr.grid))
	for i, x := range dr.grid {
		if math.IsNaN(dr.pdfValues[i]) {
			continue
		}
		pdfValues = append(pdfValues, plotter.XY{X: x, Y: dr.pdfValues[i]})
	}
	pdfLine, pdfLineErr := plotter.NewLine(pdfValues)
	if pdfLineErr != nil {
		return pdfLineErr
	}
	pdfLine.LineStyle.Width = vg.Points(2)
	pdfLine.LineStyle.Color = color.RGBA{R: 196, A: 255}
	p.Add(pdfLine)

	// CDF overlay
	cdfValues := make(plotter.XYs, len(dr.grid))
	for i, x := range dr.grid {
		cdfValues[i].X = x
		cdfValues[i].Y = dr.cdfValues[i]
	}
	cdfLine, cdfLineErr := plotter.NewLine(cdfValues)
	if cdfLineErr != nil {
		return cdfLineErr
	}
	cdfLine.LineStyle.Width = vg.Points(2)
	cdfLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	cdfLine.LineStyle.Color = color.RGBA{R: 255, G: 144, A: 255}
	p.Add(cdfLine)

	p.Legend.Add("PDF", pdfLine)
	p.Legend.Add("CDF", cdfLine)

	log.Debug("Saving distribution plot", "path", plotPath, "points", len(dr.grid))
	return p.Save(12*vg.Inch, 12*vg.Inch, plotPath)
}
