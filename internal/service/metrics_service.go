package service

import (
	"github.com/jengzang/attention-backend-go/internal/models"
	"github.com/jengzang/attention-backend-go/internal/repository"
)

// MetricsService exposes the task log and model performance aggregates
type MetricsService struct {
	tasks   *repository.TaskRepository
	metrics *repository.MetricsRepository
}

// NewMetricsService creates a new metrics service
func NewMetricsService(tasks *repository.TaskRepository, metrics *repository.MetricsRepository) *MetricsService {
	return &MetricsService{tasks: tasks, metrics: metrics}
}

// ModelMetrics returns the per model/task performance aggregates
func (s *MetricsService) ModelMetrics() ([]models.ModelMetric, error) {
	return s.metrics.List()
}

// RecentTasks returns the newest task log entries
func (s *MetricsService) RecentTasks(limit int) ([]models.TaskRecord, error) {
	return s.tasks.Recent(limit)
}
