// Package nlp implements the mocked NLP services: keyword-based sentiment and
// classification, pattern NER, extractive summarization and keyword-overlap
// question answering. Real model inference is out of scope; these heuristics
// exist so the attention pipeline has realistic collaborators to exercise.
package nlp

import (
	"math/rand"
	"sync"

	"github.com/jengzang/attention-backend-go/internal/attention"
)

// Processor runs the mock NLP tasks. The random source is seedable and
// mutex-guarded, so a Processor is safe to share across requests.
type Processor struct {
	registry *Registry
	gen      *attention.Generator

	mu  sync.Mutex
	rng *rand.Rand
}

// NewProcessor creates a processor backed by the given registry and synthetic
// attention generator
func NewProcessor(registry *Registry, gen *attention.Generator, seed int64) *Processor {
	return &Processor{
		registry: registry,
		gen:      gen,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Registry exposes the model registry for health reporting
func (p *Processor) Registry() *Registry {
	return p.registry
}

// resolveModel picks the caller-supplied model name or falls back to the
// registry default for the task
func (p *Processor) resolveModel(task, modelName string) string {
	if modelName != "" {
		return modelName
	}
	return p.registry.DefaultModel(task)
}

// uniform draws from [low, high) under the processor lock
func (p *Processor) uniform(low, high float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return low + p.rng.Float64()*(high-low)
}
