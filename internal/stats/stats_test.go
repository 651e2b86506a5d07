package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregates(t *testing.T) {
	values := []float64{2, 4, 6}

	assert.Equal(t, 12.0, Sum(values))
	assert.Equal(t, 4.0, Mean(values))
	assert.Equal(t, 2.0, Min(values))
	assert.Equal(t, 6.0, Max(values))
}

func TestAggregatesEmpty(t *testing.T) {
	assert.Zero(t, Sum(nil))
	assert.Zero(t, Mean(nil))
	assert.Zero(t, Min(nil))
	assert.Zero(t, Max(nil))
}

func TestShannonEntropyNats(t *testing.T) {
	// Uniform distribution over n outcomes has entropy ln(n).
	assert.InDelta(t, math.Log(4), ShannonEntropyNats([]float64{1, 1, 1, 1}), 1e-12)

	// Fully concentrated distribution has zero entropy.
	assert.InDelta(t, 0.0, ShannonEntropyNats([]float64{1, 0, 0}), 1e-12)

	// Unnormalized counts are normalized internally.
	assert.InDelta(t, math.Log(2), ShannonEntropyNats([]float64{5, 5}), 1e-12)
}

func TestSmoothedEntropyNats(t *testing.T) {
	eps := 1e-10

	assert.Zero(t, SmoothedEntropyNats(nil, eps))
	assert.Zero(t, SmoothedEntropyNats([]float64{0, 0, 0}, eps), "zero-sum input has entropy 0")
	assert.InDelta(t, math.Log(3), SmoothedEntropyNats([]float64{1, 1, 1}, eps), 1e-6)

	// The epsilon only perturbs the logarithm; zero terms contribute nothing.
	assert.InDelta(t, 0.0, SmoothedEntropyNats([]float64{1, 0}, eps), 1e-9)
}
