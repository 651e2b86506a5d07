package attention

import (
	"github.com/jengzang/attention-backend-go/internal/models"
	"github.com/jengzang/attention-backend-go/internal/stats"
)

// ScoreTokenImportance computes one importance record per token of a
// reconciled n×n matrix. Incoming attention is the column sum, outgoing the
// row sum; both are normalized by their global maximum (0 when the maximum is
// zero) so every score lands in [0, 1]. Importance is the mean of the two.
// Scores are comparable within one matrix, not across matrices.
func ScoreTokenImportance(matrix [][]float64) []models.TokenImportance {
	n := len(matrix)
	scores := make([]models.TokenImportance, 0, n)
	if n == 0 {
		return scores
	}

	incoming := make([]float64, n)
	outgoing := make([]float64, n)
	for i, row := range matrix {
		outgoing[i] = stats.Sum(row)
		for j, v := range row {
			incoming[j] += v
		}
	}

	maxIncoming := stats.Max(incoming)
	maxOutgoing := stats.Max(outgoing)

	for i := 0; i < n; i++ {
		var in, out float64
		if maxIncoming > 0 {
			in = incoming[i] / maxIncoming
		}
		if maxOutgoing > 0 {
			out = outgoing[i] / maxOutgoing
		}
		scores = append(scores, models.TokenImportance{
			Index:             i,
			Importance:        (in + out) / 2,
			IncomingAttention: in,
			OutgoingAttention: out,
		})
	}

	return scores
}
