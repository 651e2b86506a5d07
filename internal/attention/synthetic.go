package attention

import (
	"math/rand"
	"sync"

	"github.com/jengzang/attention-backend-go/internal/stats"
)

// DefaultMaxTokens caps synthetic matrix generation for cost control
const DefaultMaxTokens = 20

// Attention bands: a token attends most to itself, moderately to its
// neighbors and weakly to distant tokens.
const (
	selfLow, selfHigh         = 0.3, 0.8
	adjacentLow, adjacentHigh = 0.2, 0.5
	distantLow, distantHigh   = 0.05, 0.3
)

// Generator produces a plausible attention matrix when no real model output
// is available. The random source is injected at construction so tests can
// seed it; the token cap is configurable. Safe for concurrent use.
type Generator struct {
	mu        sync.Mutex
	rng       *rand.Rand
	maxTokens int
}

// NewGenerator creates a generator seeded with seed. maxTokens <= 0 falls
// back to DefaultMaxTokens.
func NewGenerator(seed int64, maxTokens int) *Generator {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Generator{
		rng:       rand.New(rand.NewSource(seed)),
		maxTokens: maxTokens,
	}
}

// Matrix generates a distance-weighted random attention matrix for tokens,
// capped at the configured token count. Every row is normalized to sum to 1.
// Returns nil for an empty token sequence.
func (g *Generator) Matrix(tokens []string) [][]float64 {
	if len(tokens) == 0 {
		return nil
	}

	n := len(tokens)
	if n > g.maxTokens {
		n = g.maxTokens
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	matrix := make([][]float64, n)
	for i := range matrix {
		row := make([]float64, n)
		for j := range row {
			var low, high float64
			switch {
			case i == j:
				low, high = selfLow, selfHigh
			case i-j == 1 || j-i == 1:
				low, high = adjacentLow, adjacentHigh
			default:
				low, high = distantLow, distantHigh
			}
			row[j] = low + g.rng.Float64()*(high-low)
		}

		if sum := stats.Sum(row); sum > 0 {
			for j := range row {
				row[j] /= sum
			}
		}
		matrix[i] = row
	}

	return matrix
}
