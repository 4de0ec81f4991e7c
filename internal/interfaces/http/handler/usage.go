// Package handler 提供 HTTP 请求处理器
package handler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"loreforge-ai-api/internal/application/usage"
	"loreforge-ai-api/internal/infrastructure/persistence/redis"
	"loreforge-ai-api/internal/interfaces/http/dto"
	"loreforge-ai-api/pkg/logger"
)

const (
	// usageCacheTTL 用量统计的缓存时长。统计走聚合 SQL，
	// 短缓存足以挡住轮询。
	usageCacheTTL = time.Minute

	defaultUsageDays = 7
	maxUsageDays     = 90
)

// UsageHandler Token 用量查询处理器
type UsageHandler struct {
	recorder *usage.Recorder
	cache    *redis.Cache
}

// NewUsageHandler 创建用量查询处理器
func NewUsageHandler(recorder *usage.Recorder, cache *redis.Cache) *UsageHandler {
	return &UsageHandler{
		recorder: recorder,
		cache:    cache,
	}
}

// GetTokenUsage 查询世界观的 Token 用量
// @Summary 查询 Token 用量
// @Description 统计某世界观最近 N 天生成消耗的总 Token 数
// @Tags Generation
// @Produce json
// @Param world_id query string true "世界观 ID"
// @Param days query int false "统计窗口天数，默认 7，最大 90"
// @Success 200 {object} dto.TokenUsageResponse
// @Router /v1/generation/usage [get]
func (h *UsageHandler) GetTokenUsage(c *gin.Context) {
	worldID := c.Query("world_id")
	if worldID == "" {
		dto.BadRequest(c, "world_id is required")
		return
	}

	days := defaultUsageDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxUsageDays {
			dto.BadRequest(c, fmt.Sprintf("days must be an integer in [1, %d]", maxUsageDays))
			return
		}
		days = n
	}

	ctx := c.Request.Context()
	load := func() (interface{}, error) {
		end := time.Now().UTC()
		start := end.AddDate(0, 0, -days)
		total, err := h.recorder.TokenUsage(ctx, worldID, start, end)
		if err != nil {
			return nil, err
		}
		return dto.TokenUsageResponse{
			WorldID:     worldID,
			Days:        days,
			WindowStart: start,
			WindowEnd:   end,
			TotalTokens: total,
		}, nil
	}

	var resp dto.TokenUsageResponse
	if h.cache != nil {
		key := fmt.Sprintf("usage:tokens:%s:%dd", worldID, days)
		payload, err := h.cache.GetOrLoad(ctx, key, usageCacheTTL, load)
		if err != nil {
			logger.Error(ctx, "failed to query token usage", err, "world_id", worldID)
			dto.InternalError(c, "failed to query token usage")
			return
		}
		if err := json.Unmarshal(payload, &resp); err != nil {
			logger.Error(ctx, "failed to decode cached token usage", err, "world_id", worldID)
			dto.InternalError(c, "failed to query token usage")
			return
		}
	} else {
		data, err := load()
		if err != nil {
			logger.Error(ctx, "failed to query token usage", err, "world_id", worldID)
			dto.InternalError(c, "failed to query token usage")
			return
		}
		resp = data.(dto.TokenUsageResponse)
	}

	dto.Success(c, resp)
}
