package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessors(t *testing.T) {
	dict := map[string]interface{}{
		"name":        "posterior",
		"alpha":       2.5,
		"runCount":    float64(10000),
		"workdays":    true,
		"percentiles": []interface{}{50.0, 95.0, "p99"},
	}

	assert.Equal(t, "posterior", String("name", dict))
	assert.Equal(t, "", String("missing", dict))

	assert.Equal(t, 2.5, Float("alpha", dict))
	assert.Equal(t, 0.0, Float("missing", dict))
	assert.Equal(t, 1e-9, FloatDefault("accuracy", dict, 1e-9))
	assert.Equal(t, 2.5, FloatDefault("alpha", dict, 1e-9))

	assert.Equal(t, uint64(10000), Uint("runCount", dict))
	assert.Equal(t, uint64(0), Uint("name", dict))

	assert.True(t, Boolean("workdays", dict))
	assert.False(t, Boolean("missing", dict))

	// Non-numeric entries are dropped, not zeroed
	assert.Equal(t, []float64{50, 95}, Floats("percentiles", dict))
	assert.Nil(t, Floats("missing", dict))
	assert.Nil(t, Floats("name", dict))
}
