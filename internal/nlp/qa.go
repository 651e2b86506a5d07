package nlp

import (
	"strings"

	"github.com/jengzang/attention-backend-go/internal/models"
)

// QuestionAnswering picks the context sentence sharing the most question
// keywords. Falls back to the first sentence when nothing overlaps.
func (p *Processor) QuestionAnswering(question, context, modelName string) *models.QAResult {
	sentences := strings.Split(context, ". ")

	var questionWords []string
	for _, word := range strings.Fields(question) {
		if len(word) > 2 {
			questionWords = append(questionWords, strings.ToLower(word))
		}
	}

	var best string
	var bestScore, start, end int
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		score := 0
		for _, word := range questionWords {
			if strings.Contains(lower, word) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = strings.TrimSpace(sentence)
			start = strings.Index(context, sentence)
			end = start + len(sentence)
		}
	}

	if best == "" {
		if len(sentences) > 0 && sentences[0] != "" {
			best = sentences[0]
		} else {
			best = "No answer found"
		}
		start = 0
		end = len(best)
	}

	confidence := 0.3 + float64(bestScore)*0.1
	if confidence > 0.9 {
		confidence = 0.9
	}

	return &models.QAResult{
		Task:          "question_answering",
		Question:      question,
		Answer:        best,
		Confidence:    confidence,
		StartPosition: start,
		EndPosition:   end,
		ModelUsed:     p.resolveModel(models.TaskQA, modelName),
	}
}
