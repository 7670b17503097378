package json

import (
	"fmt"
	"strconv"
)

func Uint(key string, dict map[string]interface{}) uint64 {
	curVal, curValOk := dict[key]
	if !curValOk {
		curVal = 0
	}
	f64, f64OK := curVal.(float64)
	if f64OK {
		return uint64(f64)
	}
	return 0
}

func Float(key string, dict map[string]interface{}) float64 {
	curVal, curValOk := dict[key]
	if !curValOk {
		curVal = 0
	}
	f64, f64OK := curVal.(float64)
	if f64OK {
		return f64
	}
	return 0
}

// FloatDefault is Float with an explicit fallback for absent or
// non-numeric values, so that zero can remain a meaningful input.
func FloatDefault(key string, dict map[string]interface{}, defaultVal float64) float64 {
	curVal, curValOk := dict[key]
	if !curValOk {
		return defaultVal
	}
	f64, f64OK := curVal.(float64)
	if f64OK {
		return f64
	}
	return defaultVal
}

// Floats extracts an array of numbers; entries that are not numbers are
// skipped.
func Floats(key string, dict map[string]interface{}) []float64 {
	curVal, curValOk := dict[key]
	if !curValOk {
		return nil
	}
	arrVal, arrValOk := curVal.([]interface{})
	if !arrValOk {
		return nil
	}
	floatVals := make([]float64, 0, len(arrVal))
	for _, eachVal := range arrVal {
		f64, f64OK := eachVal.(float64)
		if f64OK {
			floatVals = append(floatVals, f64)
		}
	}
	return floatVals
}

func String(key string, dict map[string]interface{}) string {
	curVal, curValOk := dict[key]
	if !curValOk {
		curVal = ""
	}
	strVal, _ := curVal.(string)
	return strVal
}

func Boolean(key string, dict map[string]interface{}) bool {
	// By default, an empty string is false
	boolVal := false
	curVal, curValOk := dict[key]
	if !curValOk {
		curVal = ""
	}
	boolVal, _ = strconv.ParseBool(fmt.Sprintf("%v", curVal))
	return boolVal
}
