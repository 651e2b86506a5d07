package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/attention-backend-go/internal/attention"
	"github.com/jengzang/attention-backend-go/internal/database"
	"github.com/jengzang/attention-backend-go/internal/models"
	"github.com/jengzang/attention-backend-go/internal/nlp"
	"github.com/jengzang/attention-backend-go/internal/repository"
)

func newTestServices(t *testing.T) (*AnalysisService, *MetricsService) {
	t.Helper()

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	registry := nlp.NewRegistry()
	generator := attention.NewGenerator(42, 20)
	processor := nlp.NewProcessor(registry, generator, 42)
	tasks := repository.NewTaskRepository(db)
	metrics := repository.NewMetricsRepository(db)

	return NewAnalysisService(processor, generator, tasks, metrics), NewMetricsService(tasks, metrics)
}

func TestAnalyzeAttentionEndToEnd(t *testing.T) {
	analysis, metrics := newTestServices(t)

	resp, err := analysis.Analyze(&models.AnalyzeRequest{
		Text:     "a b",
		TaskType: models.TaskAttention,
		AttentionWeights: [][]float64{
			{1, 0},
			{0, 1},
		},
	})
	require.NoError(t, err)

	assert.Greater(t, resp.TaskID, int64(0))
	assert.GreaterOrEqual(t, resp.ProcessingTime, 0.0)

	heatmap, ok := resp.AttentionData.(*models.Heatmap)
	require.True(t, ok, "caller-supplied weights produce a heatmap")
	assert.Equal(t, []string{"a", "b"}, heatmap.Tokens)
	assert.Equal(t, 1.0, heatmap.MaxAttention)
	assert.Equal(t, 0.0, heatmap.MinAttention)
	assert.Equal(t, 0.5, heatmap.AvgAttention)
	require.Len(t, heatmap.TokenImportance, 2)
	assert.Equal(t, 1.0, heatmap.TokenImportance[0].IncomingAttention)
	assert.Equal(t, 1.0, heatmap.TokenImportance[0].OutgoingAttention)

	// Task metadata and metrics were persisted
	recorded, err := metrics.ModelMetrics()
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, "bert-base-uncased", recorded[0].ModelName)
	assert.Equal(t, models.TaskAttention, recorded[0].TaskType)
	assert.Equal(t, int64(1), recorded[0].TotalRequests)

	tasks, err := metrics.RecentTasks(5)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 2, tasks[0].TokenCount)
}

func TestAnalyzeSentimentGetsSyntheticWeights(t *testing.T) {
	analysis, _ := newTestServices(t)

	resp, err := analysis.Analyze(&models.AnalyzeRequest{
		Text:     "what a great day",
		TaskType: models.TaskSentiment,
	})
	require.NoError(t, err)

	heatmap, ok := resp.AttentionData.(*models.Heatmap)
	require.True(t, ok)
	assert.Len(t, heatmap.AttentionMatrix, 4)

	result, ok := resp.Results.(*models.SentimentResult)
	require.True(t, ok)
	assert.Equal(t, "POSITIVE", result.Predictions[0].Label)
}

func TestAnalyzeClassificationEmbedsWeightsError(t *testing.T) {
	analysis, _ := newTestServices(t)

	// Classification produces no attention weights, so the embedded
	// attention data is the documented error variant, not a failure.
	resp, err := analysis.Analyze(&models.AnalyzeRequest{
		Text:     "some business news",
		TaskType: models.TaskClassification,
	})
	require.NoError(t, err)

	apiErr, ok := resp.AttentionData.(models.APIError)
	require.True(t, ok)
	assert.Equal(t, "No attention weights provided", apiErr.Error)
}

func TestAnalyzeSummarizationSkipsAttention(t *testing.T) {
	analysis, _ := newTestServices(t)

	resp, err := analysis.Analyze(&models.AnalyzeRequest{
		Text:     "One. Two. Three.",
		TaskType: models.TaskSummarization,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.AttentionData)
}

func TestAnalyzeUnsupportedTask(t *testing.T) {
	analysis, _ := newTestServices(t)

	_, err := analysis.Analyze(&models.AnalyzeRequest{Text: "x", TaskType: "translation"})
	assert.ErrorIs(t, err, ErrUnsupportedTask)
}

func TestCompareSkipsUnsupportedTask(t *testing.T) {
	analysis, _ := newTestServices(t)

	comparison := analysis.Compare(&models.CompareRequest{
		Text:     "hello",
		TaskType: models.TaskSummarization,
		Models:   []string{"m1", "m2"},
	})
	assert.Empty(t, comparison)

	comparison = analysis.Compare(&models.CompareRequest{
		Text:     "hello world",
		TaskType: models.TaskSentiment,
		Models:   []string{"m1", "m2"},
	})
	require.Len(t, comparison, 2)
	for _, c := range comparison {
		assert.NotNil(t, c.Results)
		assert.GreaterOrEqual(t, c.ProcessingTime, 0.0)
	}
}

func TestPatternsSyntheticFallback(t *testing.T) {
	analysis, _ := newTestServices(t)

	result, err := analysis.Patterns("the quick brown fox", nil)
	require.NoError(t, err)

	assert.Len(t, result.Heatmap.AttentionMatrix, 4)
	assert.Len(t, result.Patterns.HighSelfAttention, 3)
	assert.Greater(t, result.Patterns.AttentionDiversity.MaxEntropy, 0.0)
}

func TestPatternsSelfAttentionRanks(t *testing.T) {
	analysis, _ := newTestServices(t)

	result, err := analysis.Patterns("a b", [][]float64{
		{1, 0},
		{0, 1},
	})
	require.NoError(t, err)

	require.Len(t, result.Patterns.HighSelfAttention, 2)
	assert.Equal(t, 1.0, result.Patterns.HighSelfAttention[0].Score)
	assert.Equal(t, 1.0, result.Patterns.HighSelfAttention[1].Score)
}

func TestHeatmapRequiresWeights(t *testing.T) {
	analysis, _ := newTestServices(t)

	_, err := analysis.Heatmap("a b", nil)
	assert.ErrorIs(t, err, attention.ErrNoWeights)
}

func TestPatternsEmptyTextErrors(t *testing.T) {
	analysis, _ := newTestServices(t)

	// No tokens means the synthetic generator produces nothing and the
	// pipeline reports the missing-weights case.
	_, err := analysis.Patterns("", nil)
	assert.ErrorIs(t, err, attention.ErrNoWeights)
}
