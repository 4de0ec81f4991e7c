// Package usage 记录 LLM Token 用量事件
package usage

import (
	"context"
	"fmt"
	"time"

	"loreforge-ai-api/internal/domain/entity"
	"loreforge-ai-api/internal/domain/repository"
	"loreforge-ai-api/pkg/logger"
)

// Recorder 用量事件记录器。写入是尽力而为的：
// 失败只记日志，绝不影响生成主流程。
type Recorder struct {
	events repository.LLMUsageEventRepository
}

// NewRecorder 创建用量记录器
func NewRecorder(events repository.LLMUsageEventRepository) *Recorder {
	return &Recorder{events: events}
}

// Record 写入一条用量事件
func (r *Recorder) Record(ctx context.Context, event *entity.LLMUsageEvent) {
	if r == nil || r.events == nil || event == nil {
		return
	}
	if err := r.events.Create(ctx, event); err != nil {
		logger.Warn(ctx, "failed to record llm usage event",
			"provider", event.Provider,
			"entity_type", event.EntityType,
			"error", err.Error(),
		)
	}
}

// TokenUsage 查询某世界观在 [start, end) 内消耗的总 Token 数
func (r *Recorder) TokenUsage(ctx context.Context, worldID string, start, end time.Time) (int64, error) {
	if r == nil || r.events == nil {
		return 0, fmt.Errorf("usage repository not configured")
	}
	return r.events.GetTokenUsage(ctx, worldID, start, end)
}
