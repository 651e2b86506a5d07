package nlp

import (
	"strings"

	"github.com/jengzang/attention-backend-go/internal/models"
)

// Summary length bounds in words
const (
	summaryMaxWords = 150
	summaryMinWords = 30
)

// SummarizeText builds an extractive summary from the first and last
// sentences, padding with a middle sentence when the result is too short and
// clamping at the word limit
func (p *Processor) SummarizeText(text, modelName string) *models.SummaryResult {
	sentences := strings.Split(text, ". ")

	var summary string
	if len(sentences) <= 2 {
		summary = text
	} else {
		summary = sentences[0] + ". " + sentences[len(sentences)-1]
		if !strings.HasSuffix(summary, ".") {
			summary += "."
		}
	}

	words := strings.Fields(summary)
	if len(words) > summaryMaxWords {
		summary = strings.Join(words[:summaryMaxWords], " ") + "..."
	} else if len(words) < summaryMinWords && len(sentences) > 2 {
		summary = sentences[0] + ". " + sentences[len(sentences)/2] + ". " + sentences[len(sentences)-1]
	}

	originalLen := len(strings.Fields(text))
	summaryLen := len(strings.Fields(summary))
	var ratio float64
	if originalLen > 0 {
		ratio = float64(summaryLen) / float64(originalLen)
	}

	return &models.SummaryResult{
		Task:             "text_summarization",
		Summary:          summary,
		OriginalLength:   originalLen,
		SummaryLength:    summaryLen,
		CompressionRatio: ratio,
		ModelUsed:        p.resolveModel(models.TaskSummarization, modelName),
	}
}
