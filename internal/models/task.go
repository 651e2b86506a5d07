package models

import "time"

// TaskRecord is the persisted metadata of one analysis request.
// Results and attention payloads are intentionally not stored.
type TaskRecord struct {
	ID                int64     `json:"id" db:"id"`
	TaskType          string    `json:"task_type" db:"task_type"`
	ModelName         string    `json:"model_name" db:"model_name"`
	TokenCount        int       `json:"token_count" db:"token_count"`
	ProcessingSeconds float64   `json:"processing_seconds" db:"processing_seconds"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// ModelMetric is the rolling per-model, per-task performance aggregate
type ModelMetric struct {
	ModelName         string    `json:"model_name" db:"model_name"`
	TaskType          string    `json:"task_type" db:"task_type"`
	AvgProcessingTime float64   `json:"avg_processing_time" db:"avg_processing_time"`
	TotalRequests     int64     `json:"total_requests" db:"total_requests"`
	LastUpdated       time.Time `json:"last_updated" db:"last_updated"`
}
