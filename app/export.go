package app

import (
	"context"
	"log/slog"
	"os"

	"oss.terrastruct.com/d2/d2exporter"
	"oss.terrastruct.com/d2/d2layouts/d2elklayout"
	"oss.terrastruct.com/d2/d2lib"
	"oss.terrastruct.com/d2/d2renderers/d2svg"
	"oss.terrastruct.com/d2/d2themes/d2themescatalog"
	"oss.terrastruct.com/d2/lib/textmeasure"
)

// renderD2SVG compiles the d2 summary document and renders it as an SVG
// with the requested light/dark themes.
func renderD2SVG(inputFile string,
	outputFile string,
	lightTheme int64,
	darkTheme int64,
	log *slog.Logger) error {
	log.Info("Rendering d2 summary", "path", inputFile)
	srcBytes, srcBytesErr := os.ReadFile(inputFile)
	if srcBytesErr != nil {
		return srcBytesErr
	}
	ctx := context.Background()
	_, config, compileErr := d2lib.Compile(ctx, string(srcBytes), nil, nil)
	if compileErr != nil {
		log.Warn("Error during d2 compile", "error", compileErr)
	}
	themeErr := config.ApplyTheme(d2themescatalog.ColorblindClear.ID)
	if themeErr != nil {
		return themeErr
	}
	ruler, rulerErr := textmeasure.NewRuler()
	if rulerErr != nil {
		return rulerErr
	}
	dimErr := config.SetDimensions(nil, ruler, nil)
	if dimErr != nil {
		return dimErr
	}
	layoutErr := d2elklayout.Layout(ctx, config, nil)
	if layoutErr != nil {
		return layoutErr
	}
	diagram, exportErr := d2exporter.Export(ctx, config, nil)
	if exportErr != nil {
		return exportErr
	}
	sketch := false
	padding := int64(50)
	svgBytes, renderErr := d2svg.Render(diagram, &d2svg.RenderOpts{
		ThemeID:     &lightTheme,
		Sketch:      &sketch,
		DarkThemeID: &darkTheme,
		Pad:         &padding,
	})
	if renderErr != nil {
		return renderErr
	}
	log.Info("Writing d2 SVG", "path", outputFile)
	return os.WriteFile(outputFile, svgBytes, 0600)
}
