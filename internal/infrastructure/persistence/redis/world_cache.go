// Package redis 提供 Redis 缓存实现
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"loreforge-ai-api/internal/domain/entity"
	"loreforge-ai-api/internal/domain/repository"
	"loreforge-ai-api/pkg/logger"
)

// worldCacheTTL 世界观元数据的缓存时长
const worldCacheTTL = 5 * time.Minute

// CachedWorldReader 世界观仓储的 Read-Through 缓存装饰器。
// 只缓存世界观与规则设定；关联实体查询追求新鲜度，直接透传。
// 缓存层任何失败都降级为直查数据库。
type CachedWorldReader struct {
	inner repository.WorldReader
	cache *Cache
}

// NewCachedWorldReader 创建世界观缓存装饰器
func NewCachedWorldReader(inner repository.WorldReader, cache *Cache) *CachedWorldReader {
	return &CachedWorldReader{inner: inner, cache: cache}
}

var _ repository.WorldReader = (*CachedWorldReader)(nil)

// FetchWorld 优先读缓存，未命中时回源并回填
func (r *CachedWorldReader) FetchWorld(ctx context.Context, worldID string) (*entity.World, error) {
	if r.cache == nil {
		return r.inner.FetchWorld(ctx, worldID)
	}

	key := fmt.Sprintf("world:%s", worldID)
	bytes, err := r.cache.GetOrLoadSafe(ctx, key, worldCacheTTL, func() (interface{}, error) {
		return r.inner.FetchWorld(ctx, worldID)
	})
	if err != nil {
		logger.Warn(ctx, "world cache unavailable, falling back to database",
			"world_id", worldID,
			"error", err.Error(),
		)
		return r.inner.FetchWorld(ctx, worldID)
	}

	var world *entity.World
	if err := json.Unmarshal(bytes, &world); err != nil {
		logger.Warn(ctx, "corrupt world cache entry, falling back to database",
			"world_id", worldID,
			"error", err.Error(),
		)
		return r.inner.FetchWorld(ctx, worldID)
	}
	return world, nil
}

// FetchWorldSetting 优先读缓存，未命中时回源并回填
func (r *CachedWorldReader) FetchWorldSetting(ctx context.Context, projectID string) (*entity.WorldSetting, error) {
	if r.cache == nil {
		return r.inner.FetchWorldSetting(ctx, projectID)
	}

	key := fmt.Sprintf("world:setting:%s", projectID)
	bytes, err := r.cache.GetOrLoadSafe(ctx, key, worldCacheTTL, func() (interface{}, error) {
		return r.inner.FetchWorldSetting(ctx, projectID)
	})
	if err != nil {
		logger.Warn(ctx, "world setting cache unavailable, falling back to database",
			"project_id", projectID,
			"error", err.Error(),
		)
		return r.inner.FetchWorldSetting(ctx, projectID)
	}

	var setting *entity.WorldSetting
	if err := json.Unmarshal(bytes, &setting); err != nil {
		logger.Warn(ctx, "corrupt world setting cache entry, falling back to database",
			"project_id", projectID,
			"error", err.Error(),
		)
		return r.inner.FetchWorldSetting(ctx, projectID)
	}
	return setting, nil
}

// FetchRelated 直接透传，新生成的实体需要立刻出现在上下文里
func (r *CachedWorldReader) FetchRelated(ctx context.Context, entityType entity.EntityType, worldID string, limit int) ([]repository.RelatedEntitySummary, error) {
	return r.inner.FetchRelated(ctx, entityType, worldID, limit)
}
