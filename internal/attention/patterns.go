package attention

import (
	"sort"

	"github.com/jengzang/attention-backend-go/internal/models"
	"github.com/jengzang/attention-backend-go/internal/stats"
)

const (
	// rankLimit caps every pattern ranking at the top three tokens
	rankLimit = 3
	// entropyEpsilon is added inside the logarithm to keep near-zero
	// probabilities finite
	entropyEpsilon = 1e-10
)

// AnalyzePatterns summarizes a reconciled matrix: the tokens with the highest
// self-attention, the most influential tokens (row sums), the most attended
// tokens (column sums) and row-wise entropy statistics. Returns
// ErrNoMatrixOrTokens when either input is empty.
//
// Rankings are capped at three entries and break ties by original token
// index, so equal scores keep their first-occurrence order.
func AnalyzePatterns(matrix [][]float64, tokens []string) (*models.PatternReport, error) {
	if len(matrix) == 0 || len(tokens) == 0 {
		return nil, ErrNoMatrixOrTokens
	}

	n := len(tokens)
	if len(matrix) < n {
		n = len(matrix)
	}

	selfAttention := make([]float64, n)
	for i := 0; i < n; i++ {
		selfAttention[i] = matrix[i][i]
	}

	outgoing := make([]float64, len(matrix))
	for i, row := range matrix {
		outgoing[i] = stats.Sum(row)
	}

	incoming := make([]float64, len(tokens))
	for _, row := range matrix {
		for j := range incoming {
			if j < len(row) {
				incoming[j] += row[j]
			}
		}
	}

	report := &models.PatternReport{
		HighSelfAttention: make([]models.SelfAttentionEntry, 0, rankLimit),
		MostInfluential:   make([]models.AttentionTotal, 0, rankLimit),
		MostAttended:      make([]models.AttentionTotal, 0, rankLimit),
	}
	for _, i := range topIndices(selfAttention, rankLimit) {
		if i < len(tokens) {
			report.HighSelfAttention = append(report.HighSelfAttention, models.SelfAttentionEntry{
				Token: tokens[i],
				Score: selfAttention[i],
			})
		}
	}
	for _, i := range topIndices(outgoing, rankLimit) {
		if i < len(tokens) {
			report.MostInfluential = append(report.MostInfluential, models.AttentionTotal{
				Token:          tokens[i],
				TotalAttention: outgoing[i],
			})
		}
	}
	for _, i := range topIndices(incoming, rankLimit) {
		if i < len(tokens) {
			report.MostAttended = append(report.MostAttended, models.AttentionTotal{
				Token:          tokens[i],
				TotalAttention: incoming[i],
			})
		}
	}

	entropies := make([]float64, len(matrix))
	for i, row := range matrix {
		entropies[i] = stats.SmoothedEntropyNats(row, entropyEpsilon)
	}
	report.AttentionDiversity = models.AttentionDiversity{
		MeanEntropy: stats.Mean(entropies),
		MaxEntropy:  stats.Max(entropies),
		MinEntropy:  stats.Min(entropies),
	}

	return report, nil
}

// topIndices returns the indices of the k largest values in descending order.
// The sort is stable over original indices, which pins tie behavior.
func topIndices(values []float64, k int) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] > values[idx[b]]
	})
	if k > len(idx) {
		k = len(idx)
	}
	return idx[:k]
}
