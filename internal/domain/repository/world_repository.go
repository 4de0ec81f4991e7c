// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"loreforge-ai-api/internal/domain/entity"
)

// RelatedEntitySummary 关联实体摘要，用于拼装提示词上下文
type RelatedEntitySummary struct {
	Name        string
	Description string
}

// WorldReader 世界观只读仓储接口
type WorldReader interface {
	// FetchWorld 根据 ID 获取世界观，不存在时返回 (nil, nil)
	FetchWorld(ctx context.Context, worldID string) (*entity.World, error)

	// FetchWorldSetting 获取项目的世界观规则设定，不存在时返回 (nil, nil)
	FetchWorldSetting(ctx context.Context, projectID string) (*entity.WorldSetting, error)

	// FetchRelated 获取某一类型下属于指定世界观的实体摘要，最多 limit 条
	FetchRelated(ctx context.Context, entityType entity.EntityType, worldID string, limit int) ([]RelatedEntitySummary, error)
}
