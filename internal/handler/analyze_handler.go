package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/attention-backend-go/internal/middleware"
	"github.com/jengzang/attention-backend-go/internal/models"
	"github.com/jengzang/attention-backend-go/internal/service"
	"github.com/jengzang/attention-backend-go/pkg/response"
)

// AnalyzeHandler handles HTTP requests for text analysis
type AnalyzeHandler struct {
	analysis *service.AnalysisService
	metrics  *service.MetricsService
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(analysis *service.AnalysisService, metrics *service.MetricsService) *AnalyzeHandler {
	return &AnalyzeHandler{analysis: analysis, metrics: metrics}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		response.BadRequest(c, "No text provided")
		return
	}
	if req.TaskType == "" {
		req.TaskType = models.TaskSentiment
	}

	resp, err := h.analysis.Analyze(&req)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedTask) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	resp.RequestID = c.GetString(middleware.RequestIDKey)
	response.JSON(c, resp)
}

// Compare handles POST /api/v1/compare
func (h *AnalyzeHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		response.BadRequest(c, "No text provided")
		return
	}
	if req.TaskType == "" {
		req.TaskType = models.TaskSentiment
	}
	if len(req.Models) == 0 {
		req.Models = []string{"bert-base-uncased", "roberta-base"}
	}

	response.JSON(c, gin.H{"comparison": h.analysis.Compare(&req)})
}

// RecentTasks handles GET /api/v1/tasks
func (h *AnalyzeHandler) RecentTasks(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	tasks, err := h.metrics.RecentTasks(limit)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.JSON(c, gin.H{"tasks": tasks})
}
