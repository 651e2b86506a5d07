package models

// TokenImportance holds normalized attention mass for a single token.
// All three score fields are in [0, 1]; Index matches the token position.
type TokenImportance struct {
	Index             int     `json:"index"`
	Importance        float64 `json:"importance"`
	IncomingAttention float64 `json:"incoming_attention"`
	OutgoingAttention float64 `json:"outgoing_attention"`
}

// Heatmap is the visualization bundle for one text/matrix pair.
// AttentionMatrix is always reconciled to len(Tokens) rows and columns.
type Heatmap struct {
	Tokens          []string          `json:"tokens"`
	AttentionMatrix [][]float64       `json:"attention_matrix"`
	MaxAttention    float64           `json:"max_attention"`
	MinAttention    float64           `json:"min_attention"`
	AvgAttention    float64           `json:"avg_attention"`
	TokenImportance []TokenImportance `json:"token_importance"`
}

// SelfAttentionEntry ranks a token by its diagonal attention value
type SelfAttentionEntry struct {
	Token string  `json:"token"`
	Score float64 `json:"score"`
}

// AttentionTotal ranks a token by a row or column sum
type AttentionTotal struct {
	Token          string  `json:"token"`
	TotalAttention float64 `json:"total_attention"`
}

// AttentionDiversity aggregates row-wise entropy statistics
type AttentionDiversity struct {
	MeanEntropy float64 `json:"mean_entropy"`
	MaxEntropy  float64 `json:"max_entropy"`
	MinEntropy  float64 `json:"min_entropy"`
}

// PatternReport summarizes attention patterns over a reconciled matrix
type PatternReport struct {
	HighSelfAttention  []SelfAttentionEntry `json:"high_self_attention"`
	MostInfluential    []AttentionTotal     `json:"most_influential"`
	MostAttended       []AttentionTotal     `json:"most_attended"`
	AttentionDiversity AttentionDiversity   `json:"attention_diversity"`
}

// AttentionAnalysis bundles the heatmap with its pattern report
type AttentionAnalysis struct {
	Heatmap  *Heatmap       `json:"heatmap"`
	Patterns *PatternReport `json:"patterns"`
}
