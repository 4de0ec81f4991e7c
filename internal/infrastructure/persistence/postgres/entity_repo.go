// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"loreforge-ai-api/internal/domain/entity"
	"loreforge-ai-api/internal/domain/repository"
)

// EntityRepository 设定实体写入仓储实现
type EntityRepository struct {
	client *Client
}

// NewEntityRepository 创建设定实体仓储
func NewEntityRepository(client *Client) *EntityRepository {
	return &EntityRepository{client: client}
}

var _ repository.EntityWriter = (*EntityRepository)(nil)

func (r *EntityRepository) create(ctx context.Context, spanName string, row any) error {
	ctx, span := tracer.Start(ctx, spanName)
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(row).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create entity: %w", err)
	}
	return nil
}

func (r *EntityRepository) CreateCharacter(ctx context.Context, row *entity.Character) error {
	return r.create(ctx, "postgres.EntityRepository.CreateCharacter", row)
}

func (r *EntityRepository) CreateLocation(ctx context.Context, row *entity.Location) error {
	return r.create(ctx, "postgres.EntityRepository.CreateLocation", row)
}

func (r *EntityRepository) CreateItem(ctx context.Context, row *entity.Item) error {
	return r.create(ctx, "postgres.EntityRepository.CreateItem", row)
}

func (r *EntityRepository) CreateFaction(ctx context.Context, row *entity.Faction) error {
	return r.create(ctx, "postgres.EntityRepository.CreateFaction", row)
}

func (r *EntityRepository) CreateEnergySystem(ctx context.Context, row *entity.EnergySystem) error {
	return r.create(ctx, "postgres.EntityRepository.CreateEnergySystem", row)
}

func (r *EntityRepository) CreateCivilization(ctx context.Context, row *entity.Civilization) error {
	return r.create(ctx, "postgres.EntityRepository.CreateCivilization", row)
}

func (r *EntityRepository) CreateHistoricalEvent(ctx context.Context, row *entity.HistoricalEvent) error {
	return r.create(ctx, "postgres.EntityRepository.CreateHistoricalEvent", row)
}

func (r *EntityRepository) CreateRegion(ctx context.Context, row *entity.Region) error {
	return r.create(ctx, "postgres.EntityRepository.CreateRegion", row)
}

func (r *EntityRepository) CreateDimension(ctx context.Context, row *entity.Dimension) error {
	return r.create(ctx, "postgres.EntityRepository.CreateDimension", row)
}
