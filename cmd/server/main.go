package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jengzang/attention-backend-go/internal/api"
	"github.com/jengzang/attention-backend-go/internal/attention"
	"github.com/jengzang/attention-backend-go/internal/config"
	"github.com/jengzang/attention-backend-go/internal/database"
	"github.com/jengzang/attention-backend-go/internal/handler"
	"github.com/jengzang/attention-backend-go/internal/nlp"
	"github.com/jengzang/attention-backend-go/internal/repository"
	"github.com/jengzang/attention-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		log.Fatal("Failed to create data directory:", err)
	}
	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	// 构建依赖
	seed := cfg.SyntheticSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	registry := nlp.NewRegistry()
	generator := attention.NewGenerator(seed, cfg.SyntheticMaxTokens)
	processor := nlp.NewProcessor(registry, generator, seed)

	taskRepo := repository.NewTaskRepository(db)
	metricsRepo := repository.NewMetricsRepository(db)

	analysisService := service.NewAnalysisService(processor, generator, taskRepo, metricsRepo)
	metricsService := service.NewMetricsService(taskRepo, metricsRepo)

	// 初始化路由
	router := api.SetupRouter(cfg, api.Handlers{
		Analyze:   handler.NewAnalyzeHandler(analysisService, metricsService),
		Attention: handler.NewAttentionHandler(analysisService),
		Metrics:   handler.NewMetricsHandler(metricsService),
		System:    handler.NewSystemHandler(registry),
	})

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
