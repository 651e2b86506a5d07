package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/attention-backend-go/internal/models"
)

// TaskRepository handles database operations for the task log
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Insert stores one task's metadata and returns its ID
func (r *TaskRepository) Insert(rec *models.TaskRecord) (int64, error) {
	query := `
		INSERT INTO nlp_tasks (task_type, model_name, token_count, processing_seconds)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query, rec.TaskType, rec.ModelName, rec.TokenCount, rec.ProcessingSeconds)
	if err != nil {
		return 0, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read task id: %w", err)
	}
	return id, nil
}

// Recent returns the most recent tasks, newest first
func (r *TaskRepository) Recent(limit int) ([]models.TaskRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, task_type, model_name, token_count, processing_seconds, created_at
		FROM nlp_tasks
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]models.TaskRecord, 0, limit)
	for rows.Next() {
		var rec models.TaskRecord
		if err := rows.Scan(&rec.ID, &rec.TaskType, &rec.ModelName, &rec.TokenCount, &rec.ProcessingSeconds, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, rec)
	}
	return tasks, rows.Err()
}
