package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jengzang/attention-backend-go/internal/attention"
	"github.com/jengzang/attention-backend-go/internal/models"
	"github.com/jengzang/attention-backend-go/internal/nlp"
	"github.com/jengzang/attention-backend-go/internal/repository"
)

// ErrUnsupportedTask is returned for task types the processor does not know
var ErrUnsupportedTask = errors.New("Unsupported task type")

// AnalysisService orchestrates one analysis request: dispatch to the NLP
// processor, build the attention visualization where applicable, then log
// task metadata and update model metrics
type AnalysisService struct {
	processor *nlp.Processor
	generator *attention.Generator
	tasks     *repository.TaskRepository
	metrics   *repository.MetricsRepository
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(processor *nlp.Processor, generator *attention.Generator, tasks *repository.TaskRepository, metrics *repository.MetricsRepository) *AnalysisService {
	return &AnalysisService{
		processor: processor,
		generator: generator,
		tasks:     tasks,
		metrics:   metrics,
	}
}

// Analyze runs the requested task over req.Text. Caller-supplied attention
// weights take precedence over the weights the task itself produces.
func (s *AnalysisService) Analyze(req *models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	start := time.Now()

	results, weights, err := s.dispatch(req)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start).Seconds()
	modelName := s.effectiveModel(req.TaskType, req.ModelName)
	tokens := attention.Tokenize(req.Text)

	resp := &models.AnalyzeResponse{
		Results:        results,
		ProcessingTime: elapsed,
	}

	// Attention visualization applies to the tasks that carry weights; an
	// empty matrix surfaces as the documented error variant, not a failure.
	if req.TaskType == models.TaskSentiment || req.TaskType == models.TaskClassification || req.TaskType == models.TaskAttention {
		if len(req.AttentionWeights) > 0 {
			weights = req.AttentionWeights
		}
		if heatmap, herr := attention.BuildHeatmap(tokens, weights); herr != nil {
			resp.AttentionData = models.APIError{Error: herr.Error()}
		} else {
			resp.AttentionData = heatmap
		}
	}

	taskID, err := s.tasks.Insert(&models.TaskRecord{
		TaskType:          req.TaskType,
		ModelName:         modelName,
		TokenCount:        len(tokens),
		ProcessingSeconds: elapsed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to log task: %w", err)
	}
	resp.TaskID = taskID

	if err := s.metrics.Record(modelName, req.TaskType, elapsed); err != nil {
		return nil, fmt.Errorf("failed to update metrics: %w", err)
	}

	return resp, nil
}

// dispatch runs the task and returns its results along with whatever
// attention weights the task produced
func (s *AnalysisService) dispatch(req *models.AnalyzeRequest) (interface{}, [][]float64, error) {
	switch req.TaskType {
	case models.TaskSentiment:
		r := s.processor.AnalyzeSentiment(req.Text, req.ModelName)
		return r, r.AttentionWeights, nil
	case models.TaskClassification:
		return s.processor.ClassifyText(req.Text, req.ModelName, nil), nil, nil
	case models.TaskNER:
		return s.processor.NamedEntityRecognition(req.Text, req.ModelName), nil, nil
	case models.TaskSummarization:
		return s.processor.SummarizeText(req.Text, req.ModelName), nil, nil
	case models.TaskQA:
		return s.processor.QuestionAnswering(req.Text, req.Context, req.ModelName), nil, nil
	case models.TaskAttention:
		r := s.processor.AttentionWeights(req.Text, req.ModelName)
		return r, r.AttentionWeights, nil
	default:
		return nil, nil, ErrUnsupportedTask
	}
}

func (s *AnalysisService) effectiveModel(taskType, modelName string) string {
	if modelName != "" {
		return modelName
	}
	return s.processor.Registry().DefaultModel(taskType)
}

// Compare runs the same text through several models for one task type.
// Unsupported task types for comparison are skipped, matching the analyze
// endpoint's sentiment/classification/ner comparison surface.
func (s *AnalysisService) Compare(req *models.CompareRequest) map[string]models.ModelComparison {
	comparison := make(map[string]models.ModelComparison, len(req.Models))

	for _, model := range req.Models {
		start := time.Now()

		var results interface{}
		switch req.TaskType {
		case models.TaskSentiment:
			results = s.processor.AnalyzeSentiment(req.Text, model)
		case models.TaskClassification:
			results = s.processor.ClassifyText(req.Text, model, nil)
		case models.TaskNER:
			results = s.processor.NamedEntityRecognition(req.Text, model)
		default:
			continue
		}

		comparison[model] = models.ModelComparison{
			Results:        results,
			ProcessingTime: time.Since(start).Seconds(),
		}
	}

	return comparison
}

// Heatmap builds the attention heatmap for explicitly supplied weights.
// Empty weights return attention.ErrNoWeights.
func (s *AnalysisService) Heatmap(text string, weights [][]float64) (*models.Heatmap, error) {
	return attention.BuildHeatmap(attention.Tokenize(text), weights)
}

// Patterns builds the heatmap plus pattern report, generating synthetic
// weights when the caller supplies none
func (s *AnalysisService) Patterns(text string, weights [][]float64) (*models.AttentionAnalysis, error) {
	tokens := attention.Tokenize(text)
	if len(weights) == 0 {
		weights = s.generator.Matrix(tokens)
	}

	heatmap, err := attention.BuildHeatmap(tokens, weights)
	if err != nil {
		return nil, err
	}

	patterns, err := attention.AnalyzePatterns(heatmap.AttentionMatrix, tokens)
	if err != nil {
		return nil, err
	}

	return &models.AttentionAnalysis{Heatmap: heatmap, Patterns: patterns}, nil
}
