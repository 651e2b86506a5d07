package models

// AnalyzeRequest is the body of POST /api/v1/analyze
type AnalyzeRequest struct {
	Text             string      `json:"text"`
	TaskType         string      `json:"task_type"`
	ModelName        string      `json:"model_name"`
	Context          string      `json:"context"`
	AttentionWeights [][]float64 `json:"attention_weights"`
}

// AnalyzeResponse is the envelope returned by POST /api/v1/analyze.
// AttentionData is a *Heatmap on success or an APIError when the task
// produced no usable weights.
type AnalyzeResponse struct {
	RequestID      string      `json:"request_id,omitempty"`
	Results        interface{} `json:"results"`
	ProcessingTime float64     `json:"processing_time"`
	TaskID         int64       `json:"task_id"`
	AttentionData  interface{} `json:"attention_data,omitempty"`
}

// CompareRequest is the body of POST /api/v1/compare
type CompareRequest struct {
	Text     string   `json:"text"`
	TaskType string   `json:"task_type"`
	Models   []string `json:"models"`
}

// ModelComparison holds one model's results and timing in a comparison
type ModelComparison struct {
	Results        interface{} `json:"results"`
	ProcessingTime float64     `json:"processing_time"`
}

// AttentionRequest is the body of the attention heatmap/pattern endpoints
type AttentionRequest struct {
	Text             string      `json:"text"`
	AttentionWeights [][]float64 `json:"attention_weights"`
}

// APIError is the wire shape of every error response
type APIError struct {
	Error string `json:"error"`
}
