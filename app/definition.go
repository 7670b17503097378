package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/mweagle/gobeta/dist"
	goejson "github.com/mweagle/gobeta/json"
)

// /////////////////////////////////////////////////////////////////////////////
// ___        __ _      _ _   _
// |   \ ___ / _(_)_ _ (_) |_(_)___ _ _
// | |) / -_)  _| | ' \| |  _| / _ \ ' \
// |___/\___|_| |_|_||_|_|\__|_\___/_||_|
//
// /////////////////////////////////////////////////////////////////////////////

const (
	defaultRunCount = 10000
	defaultPoints   = 201
)

// definition is the parsed report input. The shape parameters are
// accepted either as a "model" expression ("Beta(0.5, 2)") or as
// explicit "alpha"/"beta" keys.
type definition struct {
	name        string
	model       *dist.Beta
	runCount    uint64
	percentiles []float64
	points      int
}

func parseBetaExpression(expression string) (float64, float64, error) {
	// Supported forms:
	// Beta(alpha, beta)
	reParams := regexp.MustCompile(`[()]`)
	exprParts := reParams.Split(expression, -1)
	if len(exprParts) < 2 || !strings.EqualFold(strings.TrimSpace(exprParts[0]), "Beta") {
		return 0, 0, fmt.Errorf("invalid Beta model expression: %s", expression)
	}
	exprVals := strings.Split(exprParts[1], ",")
	if len(exprVals) != 2 {
		return 0, 0, fmt.Errorf("invalid Beta model expression: %s", expression)
	}
	alpha, alphaErr := strconv.ParseFloat(strings.TrimSpace(exprVals[0]), 64)
	if alphaErr != nil {
		return 0, 0, alphaErr
	}
	beta, betaErr := strconv.ParseFloat(strings.TrimSpace(exprVals[1]), 64)
	if betaErr != nil {
		return 0, 0, betaErr
	}
	return alpha, beta, nil
}

func unmarshalDefinition(inputStream io.Reader, log *slog.Logger) (*definition, error) {
	inputBytes, inputBytesErr := io.ReadAll(inputStream)
	if inputBytesErr != nil {
		return nil, inputBytesErr
	}
	rootMap := make(map[string]interface{})
	unmarshalErr := json.Unmarshal(inputBytes, &rootMap)
	if unmarshalErr != nil {
		return nil, unmarshalErr
	}

	var alpha, beta float64
	modelExpr := goejson.String("model", rootMap)
	if len(modelExpr) > 0 {
		var exprErr error
		alpha, beta, exprErr = parseBetaExpression(modelExpr)
		if exprErr != nil {
			return nil, exprErr
		}
	} else {
		alpha = goejson.Float("alpha", rootMap)
		beta = goejson.Float("beta", rootMap)
	}
	accuracy := goejson.FloatDefault("accuracy", rootMap, dist.DefaultInverseAbsoluteAccuracy)
	model, modelErr := dist.NewWithAccuracy(alpha, beta, accuracy)
	if modelErr != nil {
		return nil, modelErr
	}

	def := &definition{
		name:        goejson.String("name", rootMap),
		model:       model,
		runCount:    goejson.Uint("runCount", rootMap),
		percentiles: goejson.Floats("percentiles", rootMap),
		points:      int(goejson.Uint("points", rootMap)),
	}
	if len(def.name) <= 0 {
		def.name = model.String()
	}
	if def.runCount <= 0 {
		def.runCount = defaultRunCount
	}
	if len(def.percentiles) <= 0 {
		def.percentiles = []float64{50, 95}
	}
	if def.points < 2 {
		def.points = defaultPoints
	}
	log.Debug("Parsed report definition",
		"name", def.name,
		"model", model.String(),
		"runCount", def.runCount,
		"percentiles", fmt.Sprintf("%v", def.percentiles))
	return def, nil
}
