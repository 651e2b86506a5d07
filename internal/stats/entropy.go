package stats

import (
	"math"
)

// ShannonEntropyNats calculates the Shannon entropy of a distribution in nats
// (log base e). values: frequency counts or probabilities.
func ShannonEntropyNats(values []float64) float64 {
	return SmoothedEntropyNats(values, 0)
}

// SmoothedEntropyNats calculates Shannon entropy in nats with an additive
// epsilon inside the logarithm: -sum(p * ln(p + eps)) over terms with p > 0.
// Zero-valued terms contribute nothing, and a zero-sum input has entropy 0.
func SmoothedEntropyNats(values []float64, eps float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := Sum(values)
	if sum == 0 {
		return 0
	}

	var entropy float64
	for _, v := range values {
		if v > 0 {
			p := v / sum
			entropy -= p * math.Log(p+eps)
		}
	}

	return entropy
}
