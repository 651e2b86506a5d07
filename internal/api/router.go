package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/attention-backend-go/internal/config"
	"github.com/jengzang/attention-backend-go/internal/handler"
	"github.com/jengzang/attention-backend-go/internal/middleware"
)

// Handlers 路由依赖的处理器集合
type Handlers struct {
	Analyze   *handler.AnalyzeHandler
	Attention *handler.AttentionHandler
	Metrics   *handler.MetricsHandler
	System    *handler.SystemHandler
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", h.System.Health)
	r.GET("/status", h.System.Status)

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))
	{
		// 文本分析接口
		api.POST("/analyze", h.Analyze.Analyze)
		api.POST("/compare", h.Analyze.Compare)
		api.GET("/tasks", h.Analyze.RecentTasks)

		// 注意力可视化接口
		attention := api.Group("/attention")
		{
			attention.POST("/heatmap", h.Attention.Heatmap)
			attention.POST("/patterns", h.Attention.Patterns)
		}

		// 模型指标接口
		api.GET("/metrics", h.Metrics.ModelMetrics)
	}

	return r
}
