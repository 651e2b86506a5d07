package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/attention-backend-go/internal/service"
	"github.com/jengzang/attention-backend-go/pkg/response"
)

// MetricsHandler handles HTTP requests for model metrics
type MetricsHandler struct {
	metrics *service.MetricsService
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(metrics *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// ModelMetrics handles GET /api/v1/metrics
func (h *MetricsHandler) ModelMetrics(c *gin.Context) {
	metrics, err := h.metrics.ModelMetrics()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.JSON(c, gin.H{"metrics": metrics})
}
