package nlp

import (
	"strings"

	"github.com/jengzang/attention-backend-go/internal/attention"
	"github.com/jengzang/attention-backend-go/internal/models"
)

var (
	positiveWords = []string{"good", "great", "excellent", "amazing", "wonderful", "fantastic", "love", "like", "happy", "best"}
	negativeWords = []string{"bad", "terrible", "awful", "hate", "dislike", "sad", "worst", "horrible", "angry"}
)

// AnalyzeSentiment scores text by counting positive and negative keywords and
// attaches synthetic attention weights for the visualization pipeline
func (p *Processor) AnalyzeSentiment(text, modelName string) *models.SentimentResult {
	lower := strings.ToLower(text)

	var posScore, negScore int
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			posScore++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negScore++
		}
	}

	var label string
	var score float64
	switch {
	case posScore > negScore:
		label = "POSITIVE"
		score = 0.6 + float64(posScore)*0.1
	case negScore > posScore:
		label = "NEGATIVE"
		score = 0.6 + float64(negScore)*0.1
	default:
		label = "NEUTRAL"
		score = 0.5 + p.uniform(-0.1, 0.1)
	}
	if score > 0.9 {
		score = 0.9
	}

	return &models.SentimentResult{
		Task:             "sentiment_analysis",
		Predictions:      []models.LabelScore{{Label: label, Score: score}},
		ModelUsed:        p.resolveModel(models.TaskSentiment, modelName),
		AttentionWeights: p.gen.Matrix(attention.Tokenize(text)),
	}
}
