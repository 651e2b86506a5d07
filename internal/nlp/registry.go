package nlp

import (
	"fmt"
	"sort"

	"github.com/jengzang/attention-backend-go/internal/models"
)

// Registry maps task types to their default model names. It is built once at
// startup, passed by reference into handlers and never mutated afterwards.
type Registry struct {
	defaults map[string]string
}

// NewRegistry creates the registry with the stock model names
func NewRegistry() *Registry {
	return &Registry{
		defaults: map[string]string{
			models.TaskSentiment:      "cardiffnlp/twitter-roberta-base-sentiment-latest",
			models.TaskClassification: "facebook/bart-large-mnli",
			models.TaskNER:            "dbmdz/bert-large-cased-finetuned-conll03-english",
			models.TaskSummarization:  "facebook/bart-large-cnn",
			models.TaskQA:             "distilbert-base-cased-distilled-squad",
			models.TaskAttention:      "bert-base-uncased",
		},
	}
}

// DefaultModel returns the default model name for a task type, or the empty
// string for an unknown task.
func (r *Registry) DefaultModel(task string) string {
	return r.defaults[task]
}

// LoadedModels returns "task: model" entries sorted by task name
func (r *Registry) LoadedModels() []string {
	tasks := make([]string, 0, len(r.defaults))
	for task := range r.defaults {
		tasks = append(tasks, task)
	}
	sort.Strings(tasks)

	loaded := make([]string, 0, len(tasks))
	for _, task := range tasks {
		loaded = append(loaded, fmt.Sprintf("%s: %s", task, r.defaults[task]))
	}
	return loaded
}
