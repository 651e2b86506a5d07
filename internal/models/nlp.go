package models

// Task type constants
const (
	TaskSentiment      = "sentiment"
	TaskClassification = "classification"
	TaskNER            = "ner"
	TaskSummarization  = "summarization"
	TaskQA             = "qa"
	TaskAttention      = "attention"
)

// LabelScore is a single prediction label with its confidence
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// SentimentResult is the output of sentiment analysis
type SentimentResult struct {
	Task             string       `json:"task"`
	Predictions      []LabelScore `json:"predictions"`
	ModelUsed        string       `json:"model_used"`
	AttentionWeights [][]float64  `json:"attention_weights"`
}

// LabelRanking holds classification labels sorted by descending score
type LabelRanking struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// ClassificationResult is the output of text classification
type ClassificationResult struct {
	Task        string       `json:"task"`
	Predictions LabelRanking `json:"predictions"`
	ModelUsed   string       `json:"model_used"`
	LabelsUsed  []string     `json:"labels_used"`
}

// Entity is a single named-entity match
type Entity struct {
	EntityGroup string  `json:"entity_group"`
	Word        string  `json:"word"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
	Score       float64 `json:"score"`
}

// EntityMention is an entity occurrence grouped under its type
type EntityMention struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
}

// NERResult is the output of named entity recognition
type NERResult struct {
	Task           string                     `json:"task"`
	Entities       []Entity                   `json:"entities"`
	EntitiesByType map[string][]EntityMention `json:"entities_by_type"`
	ModelUsed      string                     `json:"model_used"`
}

// SummaryResult is the output of extractive summarization
type SummaryResult struct {
	Task             string  `json:"task"`
	Summary          string  `json:"summary"`
	OriginalLength   int     `json:"original_length"`
	SummaryLength    int     `json:"summary_length"`
	CompressionRatio float64 `json:"compression_ratio"`
	ModelUsed        string  `json:"model_used"`
}

// QAResult is the output of question answering
type QAResult struct {
	Task          string  `json:"task"`
	Question      string  `json:"question"`
	Answer        string  `json:"answer"`
	Confidence    float64 `json:"confidence"`
	StartPosition int     `json:"start_position"`
	EndPosition   int     `json:"end_position"`
	ModelUsed     string  `json:"model_used"`
}

// AttentionResult is the output of the attention-weights task
type AttentionResult struct {
	Task             string      `json:"task"`
	Text             string      `json:"text"`
	AttentionWeights [][]float64 `json:"attention_weights"`
	ModelUsed        string      `json:"model_used"`
}
