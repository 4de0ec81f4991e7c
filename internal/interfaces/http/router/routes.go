// Package router 提供 HTTP 路由配置
package router

import (
	"loreforge-ai-api/internal/config"
	"loreforge-ai-api/internal/interfaces/http/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由。生成端点调用 LLM，代价高，
// 单独挂限流中间件。
func RegisterV1Routes(
	v1 *gin.RouterGroup,
	cfg *config.Config,
	handlers RouterHandlers,
	rateLimiter middleware.RateLimiter,
) {
	// 设定生成
	gen := v1.Group("/generation")
	gen.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Enabled:           cfg.Security.RateLimit.Enabled,
		RequestsPerSecond: cfg.Security.RateLimit.RequestsPerSecond,
		Burst:             cfg.Security.RateLimit.Burst,
	}, rateLimiter))
	{
		// 元信息查询
		gen.GET("/strategies", handlers.Generation.ListStrategies)
		gen.GET("/types", handlers.Generation.ListTypes)
		gen.GET("/usage", handlers.Usage.GetTokenUsage)
		gen.GET("/:entity_type/fields", handlers.Generation.GetFields)

		// 生成与落库
		gen.POST("/batch", handlers.Generation.GenerateBatch)
		gen.POST("/save", handlers.Generation.Save)
		gen.POST("/:entity_type", handlers.Generation.Generate)
	}
}
