// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"loreforge-ai-api/internal/application/generation"
	"loreforge-ai-api/internal/application/generation/template"
	"loreforge-ai-api/internal/config"
	"loreforge-ai-api/internal/domain/repository"
	"loreforge-ai-api/internal/infrastructure/persistence/postgres"
	"loreforge-ai-api/internal/infrastructure/persistence/redis"
)

// ProvidePostgresClient 提供 PostgreSQL 客户端
func ProvidePostgresClient(cfg *config.Config) (*postgres.Client, func(), error) {
	client, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideRedisClient 提供 Redis 客户端
func ProvideRedisClient(cfg *config.Config) (*redis.Client, func(), error) {
	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideWorldReader 提供带缓存的世界观读取器
func ProvideWorldReader(worldRepo *postgres.WorldRepository, cache *redis.Cache) repository.WorldReader {
	return redis.NewCachedWorldReader(worldRepo, cache)
}

// ProvideTemplateStore 提供模板目录，合并磁盘模板
func ProvideTemplateStore(ctx context.Context, cfg *config.Config) (*template.Store, error) {
	store := template.NewStore()
	if err := store.LoadDir(cfg.Generation.TemplateDir); err != nil {
		return nil, err
	}
	return store, nil
}

// ProvideAssembler 提供上下文拼装器
func ProvideAssembler(worlds repository.WorldReader, cfg *config.Config) *generation.Assembler {
	return generation.NewAssembler(worlds, cfg.Generation.RelatedEntityLimit, cfg.Generation.ContextMaxLength)
}

// ProvideGenerator 提供生成编排器
func ProvideGenerator(
	store *template.Store,
	assembler *generation.Assembler,
	provider generation.ChatProvider,
	usageRecorder generation.UsageRecorder,
	cfg *config.Config,
) *generation.Generator {
	return generation.NewGenerator(store, assembler, provider, usageRecorder, cfg.Generation.BatchConcurrency)
}
