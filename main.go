// @title QuizMaster API
// @version 1.0
// @description QuizMaster 测验平台后端服务。

// @host localhost:5001
// @BasePath /api

package main

import (
	"context"
	"flag"
	"log"

	"quizmaster_backend/internal/app"
	"quizmaster_backend/internal/config"
	"quizmaster_backend/pkg/logger"

	"github.com/joho/godotenv"
)

const configDir = "configs"

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移（及演示数据填充），完成后退出")
	flag.Parse()

	// .env 不存在时忽略
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if cfg.MigrateOnly {
		application.Close(context.Background())
		logger.Log.Info("Database migration finished, exiting")
		return
	}

	application.Run(configDir)
}
