package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/attention-backend-go/internal/models"
)

// MetricsRepository handles database operations for model metrics
type MetricsRepository struct {
	db *sql.DB
}

// NewMetricsRepository creates a new metrics repository
func NewMetricsRepository(db *sql.DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

// Record folds one request's processing time into the rolling average for
// the model/task pair, creating the row on first sight
func (r *MetricsRepository) Record(modelName, taskType string, processingSeconds float64) error {
	query := `
		INSERT INTO model_metrics (model_name, task_type, avg_processing_time, total_requests)
		VALUES (?, ?, ?, 1)
		ON CONFLICT(model_name, task_type) DO UPDATE SET
			avg_processing_time = (model_metrics.avg_processing_time * model_metrics.total_requests + excluded.avg_processing_time)
				/ (model_metrics.total_requests + 1),
			total_requests = model_metrics.total_requests + 1,
			last_updated = CURRENT_TIMESTAMP
	`

	if _, err := r.db.Exec(query, modelName, taskType, processingSeconds); err != nil {
		return fmt.Errorf("failed to record metric: %w", err)
	}
	return nil
}

// List returns all model metrics
func (r *MetricsRepository) List() ([]models.ModelMetric, error) {
	query := `
		SELECT model_name, task_type, avg_processing_time, total_requests, last_updated
		FROM model_metrics
		ORDER BY model_name, task_type
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics: %w", err)
	}
	defer rows.Close()

	var metrics []models.ModelMetric
	for rows.Next() {
		var m models.ModelMetric
		if err := rows.Scan(&m.ModelName, &m.TaskType, &m.AvgProcessingTime, &m.TotalRequests, &m.LastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan metric: %w", err)
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}
