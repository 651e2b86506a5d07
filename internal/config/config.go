package config

import (
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Port               string
	DBPath             string
	SyntheticMaxTokens int   // 合成注意力矩阵的 token 上限
	SyntheticSeed      int64 // 0 表示使用时间种子
	RateLimit          int
	RateWindow         time.Duration
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/nlp/tasks.db"
	}

	return &Config{
		Port:               port,
		DBPath:             dbPath,
		SyntheticMaxTokens: envInt("SYNTHETIC_MAX_TOKENS", 20),
		SyntheticSeed:      int64(envInt("SYNTHETIC_SEED", 0)),
		RateLimit:          envInt("RATE_LIMIT", 120),
		RateWindow:         time.Duration(envInt("RATE_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
