//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"loreforge-ai-api/internal/application/generation"
	"loreforge-ai-api/internal/application/usage"
	"loreforge-ai-api/internal/config"
	"loreforge-ai-api/internal/domain/repository"
	"loreforge-ai-api/internal/infrastructure/llm"
	"loreforge-ai-api/internal/infrastructure/persistence/postgres"
	"loreforge-ai-api/internal/infrastructure/persistence/redis"
	"loreforge-ai-api/internal/interfaces/http/handler"
	"loreforge-ai-api/internal/interfaces/http/middleware"
	"loreforge-ai-api/internal/interfaces/http/router"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		PostgresSet,
		RedisSet,
		GenerationSet,
		RouterSet,
	)
	return nil, nil, nil
}

// InitializeBootstrap 仅初始化 PostgreSQL 客户端（用于建表）
func InitializeBootstrap(ctx context.Context, cfg *config.Config) (*postgres.Client, func(), error) {
	wire.Build(
		ProvidePostgresClient,
	)
	return nil, nil, nil
}

// PostgresSet PostgreSQL 提供者集合
var PostgresSet = wire.NewSet(
	ProvidePostgresClient,
	postgres.NewTxManager,
	postgres.NewWorldRepository,
	postgres.NewEntityRepository,
	postgres.NewLLMUsageEventRepository,
	wire.Bind(new(repository.Transactor), new(*postgres.TxManager)),
	wire.Bind(new(repository.EntityWriter), new(*postgres.EntityRepository)),
	wire.Bind(new(repository.LLMUsageEventRepository), new(*postgres.LLMUsageEventRepository)),
)

// RedisSet Redis 提供者集合
var RedisSet = wire.NewSet(
	ProvideRedisClient,
	redis.NewCache,
	redis.NewRateLimiter,
	wire.Bind(new(middleware.RateLimiter), new(*redis.RateLimiter)),
)

// GenerationSet 设定生成提供者集合
var GenerationSet = wire.NewSet(
	llm.NewEinoFactory,
	llm.NewEinoChatProvider,
	wire.Bind(new(generation.ChatProvider), new(*llm.EinoChatProvider)),
	usage.NewRecorder,
	wire.Bind(new(generation.UsageRecorder), new(*usage.Recorder)),
	ProvideWorldReader,
	ProvideTemplateStore,
	ProvideAssembler,
	ProvideGenerator,
	generation.NewSaver,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	handler.NewHealthHandler,
	handler.NewGenerationHandler,
	handler.NewUsageHandler,
	wire.Struct(new(router.RouterHandlers), "*"),
	router.NewWithDeps,
)
