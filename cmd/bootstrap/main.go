// Package main 初始化数据库表结构
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"loreforge-ai-api/internal/config"
	"loreforge-ai-api/internal/domain/entity"
	"loreforge-ai-api/internal/wire"
)

func main() {
	_ = godotenv.Load()

	fmt.Println("Starting database bootstrap...")

	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	// 2. 初始化数据层（仅 PostgreSQL）
	client, cleanup, err := wire.InitializeBootstrap(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize data layer: %v", err)
	}
	defer cleanup()

	// 3. 迁移表结构
	fmt.Println("Running schema migration...")
	if err := client.DB().WithContext(ctx).AutoMigrate(
		&entity.World{},
		&entity.WorldSetting{},
		&entity.Character{},
		&entity.Location{},
		&entity.Item{},
		&entity.Faction{},
		&entity.EnergySystem{},
		&entity.Civilization{},
		&entity.HistoricalEvent{},
		&entity.Region{},
		&entity.Dimension{},
		&entity.LLMUsageEvent{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	fmt.Println("Bootstrap completed successfully.")
}
