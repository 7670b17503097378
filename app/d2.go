package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// /////////////////////////////////////////////////////////////////////////////
//
// TYPES
//
// /////////////////////////////////////////////////////////////////////////////

type d2TableParams struct {
	Key   string
	Value interface{}
}

type d2Node struct {
	id     string
	name   string
	shape  string
	params []*d2TableParams
}

func (node *d2Node) encode(output io.StringWriter) error {
	_, writeErr := output.WriteString(fmt.Sprintf("%s : %s {\n", node.id, node.name))
	if writeErr != nil {
		return writeErr
	}
	_, writeErr = output.WriteString(fmt.Sprintf("\tshape: %s\n", node.shape))
	if writeErr != nil {
		return writeErr
	}
	for _, eachParam := range node.params {
		_, writeErr = output.WriteString(fmt.Sprintf("\t%s: %v\n", eachParam.Key, eachParam.Value))
		if writeErr != nil {
			return writeErr
		}
	}
	_, writeErr = output.WriteString("}\n")
	return writeErr
}

func summaryStatsFormatter(dr *DistributionReport) string {
	label := fmt.Sprintf("μ=%.4f, σ=%.4f", dr.sampleSummary.Mean, dr.sampleSummary.StdDev)
	if len(dr.sampleSummary.Percentiles) != 0 {
		value := ""
		for _, eachPercentile := range dr.sampleSummary.Percentiles {
			pVal := eachPercentile.P
			if pVal < 1 {
				pVal *= 100
			}
			value += fmt.Sprintf("p%.0f=%.4f, ", pVal, eachPercentile.Val)
		}
		value = strings.TrimSuffix(value, ", ")
		label = fmt.Sprintf("%s (%s)", label, value)
	}
	return label
}

// encodeD2 writes the report as a d2 document: a markdown header card,
// one table each for the analytic model and the simulation, and the
// rendered plot as an image node.
func (dr *DistributionReport) encodeD2(output io.StringWriter, plotPath string, log *slog.Logger) error {
	log.Debug("Encoding d2 summary", "model", dr.def.model.String())

	_, writeErr := output.WriteString(`
# Nodes
# ------------------------------------------------------------------------------

`)
	if writeErr != nil {
		return writeErr
	}

	// Header card
	_, writeErr = output.WriteString(fmt.Sprintf("header : |md\n# %s\n- **Model**: %s\n- **Runs**: %d\n|\n\n",
		dr.def.name,
		dr.def.model.String(),
		dr.def.runCount))
	if writeErr != nil {
		return writeErr
	}

	modelParams := []*d2TableParams{
		{Key: "Mean", Value: fmt.Sprintf("%.6f", dr.def.model.Mean())},
		{Key: "Variance", Value: fmt.Sprintf("%.6f", dr.def.model.Variance())},
	}
	mode, modeOk := dr.def.model.Mode()
	if modeOk {
		modelParams = append(modelParams, &d2TableParams{
			Key:   "Mode",
			Value: fmt.Sprintf("%.6f", mode),
		})
	}
	for _, eachQuantile := range dr.quantiles {
		modelParams = append(modelParams, &d2TableParams{
			Key:   fmt.Sprintf("p%v", eachQuantile.p),
			Value: fmt.Sprintf("%.6f", eachQuantile.x),
		})
	}
	modelNode := &d2Node{
		id:     "model",
		name:   "Analytic",
		shape:  "sql_table",
		params: modelParams,
	}
	encodeErr := modelNode.encode(output)
	if encodeErr != nil {
		return encodeErr
	}

	simulationNode := &d2Node{
		id:    "simulation",
		name:  "Simulated",
		shape: "sql_table",
		params: []*d2TableParams{
			{Key: "+", Value: summaryStatsFormatter(dr)},
			{Key: "Min", Value: fmt.Sprintf("%.6f", dr.sampleSummary.Min)},
			{Key: "Max", Value: fmt.Sprintf("%.6f", dr.sampleSummary.Max)},
		},
	}
	encodeErr = simulationNode.encode(output)
	if encodeErr != nil {
		return encodeErr
	}

	plotNode := &d2Node{
		id:    "distribution_plot",
		name:  "Distribution",
		shape: "image",
		params: []*d2TableParams{
			{Key: "icon", Value: plotPath},
			{Key: "width", Value: 768},
			{Key: "height", Value: 768},
		},
	}
	encodeErr = plotNode.encode(output)
	if encodeErr != nil {
		return encodeErr
	}

	_, writeErr = output.WriteString(`

# Connections
# ------------------------------------------------------------------------------
`)
	if writeErr != nil {
		return writeErr
	}
	for _, connection := range []string{
		"header -> model",
		"header -> simulation",
		"model -> distribution_plot",
		"simulation -> distribution_plot",
	} {
		_, writeErr = output.WriteString(connection + "\n")
		if writeErr != nil {
			return writeErr
		}
	}
	return nil
}
