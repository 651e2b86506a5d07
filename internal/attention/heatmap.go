package attention

import (
	"errors"

	"github.com/jengzang/attention-backend-go/internal/models"
	"github.com/jengzang/attention-backend-go/internal/stats"
)

// Core error cases. The messages are part of the wire contract and must not
// change.
var (
	ErrNoWeights        = errors.New("No attention weights provided")
	ErrNoMatrixOrTokens = errors.New("No attention matrix or tokens provided")
)

// BuildHeatmap reconciles raw against the token count and assembles the
// heatmap bundle: matrix-wide min/max/avg plus per-token importance scores.
// Returns ErrNoWeights when the raw matrix is empty.
func BuildHeatmap(tokens []string, raw [][]float64) (*models.Heatmap, error) {
	if len(raw) == 0 {
		return nil, ErrNoWeights
	}

	matrix := Reconcile(raw, len(tokens))

	flat := make([]float64, 0, len(tokens)*len(tokens))
	for _, row := range matrix {
		flat = append(flat, row...)
	}

	heatmap := &models.Heatmap{
		Tokens:          tokens,
		AttentionMatrix: matrix,
		MaxAttention:    1.0,
		MinAttention:    0.0,
		AvgAttention:    0.0,
	}
	if len(flat) > 0 {
		heatmap.MaxAttention = stats.Max(flat)
		heatmap.MinAttention = stats.Min(flat)
		heatmap.AvgAttention = stats.Mean(flat)
	}

	heatmap.TokenImportance = ScoreTokenImportance(matrix)

	return heatmap, nil
}
