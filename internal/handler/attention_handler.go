package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/attention-backend-go/internal/attention"
	"github.com/jengzang/attention-backend-go/internal/models"
	"github.com/jengzang/attention-backend-go/internal/service"
	"github.com/jengzang/attention-backend-go/pkg/response"
)

// AttentionHandler handles HTTP requests for attention visualization
type AttentionHandler struct {
	analysis *service.AnalysisService
}

// NewAttentionHandler creates a new attention handler
func NewAttentionHandler(analysis *service.AnalysisService) *AttentionHandler {
	return &AttentionHandler{analysis: analysis}
}

// Heatmap handles POST /api/v1/attention/heatmap. Weights must be supplied
// explicitly on this path; an empty matrix is the documented error case.
func (h *AttentionHandler) Heatmap(c *gin.Context) {
	req, ok := bindAttentionRequest(c)
	if !ok {
		return
	}

	heatmap, err := h.analysis.Heatmap(req.Text, req.AttentionWeights)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.JSON(c, heatmap)
}

// Patterns handles POST /api/v1/attention/patterns. Missing weights fall
// back to the synthetic generator.
func (h *AttentionHandler) Patterns(c *gin.Context) {
	req, ok := bindAttentionRequest(c)
	if !ok {
		return
	}

	analysis, err := h.analysis.Patterns(req.Text, req.AttentionWeights)
	if err != nil {
		if errors.Is(err, attention.ErrNoWeights) || errors.Is(err, attention.ErrNoMatrixOrTokens) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.JSON(c, analysis)
}

func bindAttentionRequest(c *gin.Context) (*models.AttentionRequest, bool) {
	var req models.AttentionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return nil, false
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		response.BadRequest(c, "No text provided")
		return nil, false
	}
	return &req, true
}
