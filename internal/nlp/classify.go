package nlp

import (
	"sort"
	"strings"

	"github.com/jengzang/attention-backend-go/internal/models"
)

var defaultLabels = []string{"positive", "negative", "neutral", "business", "technology", "sports", "politics"}

var labelKeywords = map[string][]string{
	"business":   {"company", "business", "profit", "market", "money"},
	"technology": {"tech", "computer", "software", "ai", "digital"},
	"sports":     {"game", "sport", "player", "team", "win"},
	"politics":   {"government", "political", "election", "policy"},
}

// ClassifyText scores text against candidate labels with keyword matching,
// normalizes the scores to sum to 1 and returns them sorted descending
func (p *Processor) ClassifyText(text, modelName string, labels []string) *models.ClassificationResult {
	if len(labels) == 0 {
		labels = defaultLabels
	}

	lower := strings.ToLower(text)
	scores := make([]float64, len(labels))
	for i, label := range labels {
		if keywords, ok := labelKeywords[strings.ToLower(label)]; ok {
			scores[i] = 0.1
			for _, word := range keywords {
				if strings.Contains(lower, word) {
					scores[i] += 0.5
					break
				}
			}
		} else {
			scores[i] = p.uniform(0.1, 0.8)
		}
	}

	var total float64
	for _, s := range scores {
		total += s
	}
	for i := range scores {
		scores[i] /= total
	}

	idx := make([]int, len(labels))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	ranking := models.LabelRanking{
		Labels: make([]string, 0, len(labels)),
		Scores: make([]float64, 0, len(labels)),
	}
	for _, i := range idx {
		ranking.Labels = append(ranking.Labels, labels[i])
		ranking.Scores = append(ranking.Scores, scores[i])
	}

	return &models.ClassificationResult{
		Task:        "text_classification",
		Predictions: ranking,
		ModelUsed:   p.resolveModel(models.TaskClassification, modelName),
		LabelsUsed:  labels,
	}
}
