// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"loreforge-ai-api/internal/domain/entity"
	"loreforge-ai-api/internal/domain/repository"
)

// WorldRepository 世界观只读仓储实现
type WorldRepository struct {
	client *Client
}

// NewWorldRepository 创建世界观仓储
func NewWorldRepository(client *Client) *WorldRepository {
	return &WorldRepository{client: client}
}

var _ repository.WorldReader = (*WorldRepository)(nil)

// FetchWorld 根据 ID 获取世界观，不存在时返回 (nil, nil)
func (r *WorldRepository) FetchWorld(ctx context.Context, worldID string) (*entity.World, error) {
	ctx, span := tracer.Start(ctx, "postgres.WorldRepository.FetchWorld")
	defer span.End()

	db := getDB(ctx, r.client.db)

	var world entity.World
	if err := db.Where("id = ?", worldID).First(&world).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to fetch world: %w", err)
	}
	return &world, nil
}

// FetchWorldSetting 获取项目的世界观规则设定，不存在时返回 (nil, nil)
func (r *WorldRepository) FetchWorldSetting(ctx context.Context, projectID string) (*entity.WorldSetting, error) {
	ctx, span := tracer.Start(ctx, "postgres.WorldRepository.FetchWorldSetting")
	defer span.End()

	db := getDB(ctx, r.client.db)

	var setting entity.WorldSetting
	if err := db.Where("project_id = ?", projectID).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to fetch world setting: %w", err)
	}
	return &setting, nil
}

// FetchRelated 获取某一类型下属于指定世界观的实体摘要，按创建时间
// 倒序最多 limit 条
func (r *WorldRepository) FetchRelated(ctx context.Context, entityType entity.EntityType, worldID string, limit int) ([]repository.RelatedEntitySummary, error) {
	ctx, span := tracer.Start(ctx, "postgres.WorldRepository.FetchRelated")
	defer span.End()

	model, ok := modelForEntityType(entityType)
	if !ok {
		return nil, fmt.Errorf("unsupported entity type: %s", entityType)
	}

	db := getDB(ctx, r.client.db)

	var rows []repository.RelatedEntitySummary
	if err := db.Model(model).
		Select("name", "description").
		Where("world_id = ?", worldID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to fetch related %s entities: %w", entityType, err)
	}
	return rows, nil
}

// modelForEntityType 返回实体类型对应的 GORM 模型
func modelForEntityType(entityType entity.EntityType) (any, bool) {
	switch entityType {
	case entity.EntityTypeCharacter:
		return &entity.Character{}, true
	case entity.EntityTypeLocation:
		return &entity.Location{}, true
	case entity.EntityTypeItem:
		return &entity.Item{}, true
	case entity.EntityTypeFaction:
		return &entity.Faction{}, true
	case entity.EntityTypeEnergySystem:
		return &entity.EnergySystem{}, true
	case entity.EntityTypeCivilization:
		return &entity.Civilization{}, true
	case entity.EntityTypeHistoricalEvent:
		return &entity.HistoricalEvent{}, true
	case entity.EntityTypeRegion:
		return &entity.Region{}, true
	case entity.EntityTypeDimension:
		return &entity.Dimension{}, true
	}
	return nil, false
}
