package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/attention-backend-go/internal/attention"
	"github.com/jengzang/attention-backend-go/internal/models"
)

func newTestProcessor() *Processor {
	return NewProcessor(NewRegistry(), attention.NewGenerator(42, 20), 42)
}

func TestAnalyzeSentiment(t *testing.T) {
	p := newTestProcessor()

	pos := p.AnalyzeSentiment("what a great and wonderful day", "")
	require.Len(t, pos.Predictions, 1)
	assert.Equal(t, "POSITIVE", pos.Predictions[0].Label)
	assert.InDelta(t, 0.8, pos.Predictions[0].Score, 1e-12)
	assert.Equal(t, "cardiffnlp/twitter-roberta-base-sentiment-latest", pos.ModelUsed)

	neg := p.AnalyzeSentiment("this is terrible and awful", "")
	assert.Equal(t, "NEGATIVE", neg.Predictions[0].Label)

	neutral := p.AnalyzeSentiment("the cat sat on the mat", "")
	assert.Equal(t, "NEUTRAL", neutral.Predictions[0].Label)
	assert.InDelta(t, 0.5, neutral.Predictions[0].Score, 0.11)
}

func TestAnalyzeSentimentScoreCap(t *testing.T) {
	p := newTestProcessor()

	r := p.AnalyzeSentiment("good great excellent amazing wonderful fantastic", "")
	assert.Equal(t, 0.9, r.Predictions[0].Score, "score is capped at 0.9")
}

func TestAnalyzeSentimentAttachesWeights(t *testing.T) {
	p := newTestProcessor()

	r := p.AnalyzeSentiment("one two three", "custom-model")
	assert.Equal(t, "custom-model", r.ModelUsed)
	require.Len(t, r.AttentionWeights, 3)
	for _, row := range r.AttentionWeights {
		assert.Len(t, row, 3)
	}
}

func TestClassifyText(t *testing.T) {
	p := newTestProcessor()
	labels := []string{"business", "technology", "sports", "politics"}

	r := p.ClassifyText("new ai software for computer vision", "", labels)

	assert.Equal(t, "facebook/bart-large-mnli", r.ModelUsed)
	assert.Equal(t, labels, r.LabelsUsed)
	require.Len(t, r.Predictions.Labels, len(labels))
	assert.Equal(t, "technology", r.Predictions.Labels[0])

	var total float64
	for i, s := range r.Predictions.Scores {
		total += s
		if i > 0 {
			assert.LessOrEqual(t, s, r.Predictions.Scores[i-1], "scores sorted descending")
		}
	}
	assert.InDelta(t, 1.0, total, 1e-9, "scores normalized to sum to 1")
}

func TestClassifyTextDefaultLabels(t *testing.T) {
	p := newTestProcessor()

	r := p.ClassifyText("anything", "", nil)
	assert.Len(t, r.Predictions.Labels, len(defaultLabels))
}

func TestNamedEntityRecognition(t *testing.T) {
	p := newTestProcessor()

	r := p.NamedEntityRecognition("John Smith joined Acme Corp in London in 2021", "")

	words := make(map[string]string, len(r.Entities))
	for _, e := range r.Entities {
		words[e.Word] = e.EntityGroup
		assert.GreaterOrEqual(t, e.Score, 0.8)
		assert.LessOrEqual(t, e.Score, 0.95)
	}

	assert.Equal(t, "PERSON", words["John Smith"])
	assert.Equal(t, "ORG", words["Corp"])
	assert.Equal(t, "GPE", words["London"])
	assert.Equal(t, "DATE", words["2021"])

	require.NotEmpty(t, r.EntitiesByType["PERSON"])
	assert.Equal(t, "John Smith", r.EntitiesByType["PERSON"][0].Text)
}

func TestNamedEntityRecognitionNoMatches(t *testing.T) {
	p := newTestProcessor()

	r := p.NamedEntityRecognition("nothing to see here", "")
	assert.Empty(t, r.Entities)
	assert.Empty(t, r.EntitiesByType)
}

func TestSummarizeShortText(t *testing.T) {
	p := newTestProcessor()

	text := "First sentence. Second sentence."
	r := p.SummarizeText(text, "")

	assert.Equal(t, text, r.Summary, "two sentences or fewer pass through unchanged")
	assert.Equal(t, r.OriginalLength, r.SummaryLength)
	assert.InDelta(t, 1.0, r.CompressionRatio, 1e-12)
}

func TestSummarizeExtractsFirstAndLast(t *testing.T) {
	p := newTestProcessor()

	text := "Alpha opens the story. Beta adds detail. Gamma adds more. Delta closes it."
	r := p.SummarizeText(text, "")

	assert.Contains(t, r.Summary, "Alpha opens the story")
	assert.Contains(t, r.Summary, "Delta closes it.")
	assert.Equal(t, "facebook/bart-large-cnn", r.ModelUsed)
}

func TestQuestionAnswering(t *testing.T) {
	p := newTestProcessor()

	r := p.QuestionAnswering(
		"Where does John work",
		"John works at Acme. Mary lives in Paris.",
		"",
	)

	assert.Equal(t, "John works at Acme", r.Answer)
	assert.Equal(t, 0, r.StartPosition)
	assert.Greater(t, r.Confidence, 0.3)
	assert.Equal(t, "distilbert-base-cased-distilled-squad", r.ModelUsed)
}

func TestQuestionAnsweringNoOverlap(t *testing.T) {
	p := newTestProcessor()

	r := p.QuestionAnswering("completely unrelated question", "The sky is blue. Grass is green.", "")
	assert.Equal(t, "The sky is blue", r.Answer, "falls back to the first sentence")
	assert.InDelta(t, 0.3, r.Confidence, 1e-12)
}

func TestAttentionWeights(t *testing.T) {
	p := newTestProcessor()

	r := p.AttentionWeights("a b c", "")
	assert.Equal(t, "attention_analysis", r.Task)
	assert.Equal(t, "bert-base-uncased", r.ModelUsed)
	assert.Len(t, r.AttentionWeights, 3)
}

func TestRegistryLoadedModels(t *testing.T) {
	loaded := NewRegistry().LoadedModels()

	assert.Len(t, loaded, 6)
	assert.Contains(t, loaded, "sentiment: cardiffnlp/twitter-roberta-base-sentiment-latest")
	assert.Contains(t, loaded, models.TaskAttention+": bert-base-uncased")
}
