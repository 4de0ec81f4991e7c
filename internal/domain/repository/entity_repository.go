// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"loreforge-ai-api/internal/domain/entity"
)

// EntityWriter 设定实体写入仓储接口，生成结果落库时使用
type EntityWriter interface {
	CreateCharacter(ctx context.Context, row *entity.Character) error
	CreateLocation(ctx context.Context, row *entity.Location) error
	CreateItem(ctx context.Context, row *entity.Item) error
	CreateFaction(ctx context.Context, row *entity.Faction) error
	CreateEnergySystem(ctx context.Context, row *entity.EnergySystem) error
	CreateCivilization(ctx context.Context, row *entity.Civilization) error
	CreateHistoricalEvent(ctx context.Context, row *entity.HistoricalEvent) error
	CreateRegion(ctx context.Context, row *entity.Region) error
	CreateDimension(ctx context.Context, row *entity.Dimension) error
}
