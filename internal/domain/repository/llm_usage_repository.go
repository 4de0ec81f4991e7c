// Package repository 定义数据访问层接口
package repository

import (
	"context"
	"time"

	"loreforge-ai-api/internal/domain/entity"
)

// LLMUsageEventRepository Token 使用事件仓储接口
type LLMUsageEventRepository interface {
	Create(ctx context.Context, evt *entity.LLMUsageEvent) error
	// GetTokenUsage 统计某世界观在 [start, end) 内消耗的总 Token 数
	GetTokenUsage(ctx context.Context, worldID string, start, end time.Time) (int64, error)
}
