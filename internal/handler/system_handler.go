package handler

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/jengzang/attention-backend-go/internal/nlp"
	"github.com/jengzang/attention-backend-go/pkg/response"
)

// SystemHandler serves health and process status endpoints
type SystemHandler struct {
	registry *nlp.Registry
	started  time.Time
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(registry *nlp.Registry) *SystemHandler {
	return &SystemHandler{
		registry: registry,
		started:  time.Now(),
	}
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"models_loaded": h.registry.LoadedModels(),
	})
}

// Status handles GET /status with process memory and uptime
func (h *SystemHandler) Status(c *gin.Context) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	mem, err := proc.MemoryInfo()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"uptime_seconds": time.Since(h.started).Seconds(),
		"memory_rss":     mem.RSS,
		"memory_vms":     mem.VMS,
		"goroutines":     runtime.NumGoroutine(),
	})
}
