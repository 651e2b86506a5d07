package nlp

import (
	"github.com/jengzang/attention-backend-go/internal/attention"
	"github.com/jengzang/attention-backend-go/internal/models"
)

// AttentionWeights returns synthetic attention weights for text, standing in
// for a real transformer forward pass
func (p *Processor) AttentionWeights(text, modelName string) *models.AttentionResult {
	return &models.AttentionResult{
		Task:             "attention_analysis",
		Text:             text,
		AttentionWeights: p.gen.Matrix(attention.Tokenize(text)),
		ModelUsed:        p.resolveModel(models.TaskAttention, modelName),
	}
}
