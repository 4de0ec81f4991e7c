// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"loreforge-ai-api/internal/application/generation"
	"loreforge-ai-api/internal/domain/entity"
)

// GenerateRequest 单次生成请求
type GenerateRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	Style     string `json:"style,omitempty"`
	WorldID   string `json:"world_id,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
	Strategy  string `json:"strategy,omitempty"`
	Template  string `json:"template,omitempty"`

	// IncludeWorldInfo 缺省为 true
	IncludeWorldInfo *bool    `json:"include_world_info,omitempty"`
	IncludeRelated   []string `json:"include_related,omitempty"`

	CustomContext map[string]string `json:"custom_context,omitempty"`

	Temperature      *float32       `json:"temperature,omitempty"`
	MaxTokens        *int           `json:"max_tokens,omitempty"`
	TopP             *float32       `json:"top_p,omitempty"`
	FrequencyPenalty *float32       `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float32       `json:"presence_penalty,omitempty"`
	Extra            map[string]any `json:"extra,omitempty"`
}

// ToGenerationRequest 转换为应用层请求
func (r *GenerateRequest) ToGenerationRequest(entityType entity.EntityType) generation.Request {
	related := make([]entity.EntityType, 0, len(r.IncludeRelated))
	for _, t := range r.IncludeRelated {
		related = append(related, entity.EntityType(t))
	}

	var overrides *generation.ParameterOverrides
	if r.Temperature != nil || r.MaxTokens != nil || r.TopP != nil ||
		r.FrequencyPenalty != nil || r.PresencePenalty != nil || len(r.Extra) > 0 {
		overrides = &generation.ParameterOverrides{
			Temperature:      r.Temperature,
			MaxTokens:        r.MaxTokens,
			TopP:             r.TopP,
			FrequencyPenalty: r.FrequencyPenalty,
			PresencePenalty:  r.PresencePenalty,
			Extra:            r.Extra,
		}
	}

	return generation.Request{
		EntityType:       entityType,
		Prompt:           r.Prompt,
		Style:            r.Style,
		WorldID:          r.WorldID,
		ProjectID:        r.ProjectID,
		Strategy:         r.Strategy,
		TemplateName:     r.Template,
		IncludeWorldInfo: r.IncludeWorldInfo,
		IncludeRelated:   related,
		CustomContext:    r.CustomContext,
		Overrides:        overrides,
	}
}

// BatchGenerateRequest 批量生成请求
type BatchGenerateRequest struct {
	Items []BatchGenerateItem `json:"items" binding:"required,min=1,max=20,dive"`
}

// BatchGenerateItem 批量生成的单个条目
type BatchGenerateItem struct {
	EntityType string `json:"entity_type" binding:"required"`
	GenerateRequest
}

// SaveRequest 生成结果落库请求
type SaveRequest struct {
	EntityType string            `json:"entity_type" binding:"required"`
	Data       map[string]string `json:"data" binding:"required"`
	WorldID    string            `json:"world_id,omitempty"`
	ProjectID  string            `json:"project_id,omitempty"`
}

// EntityFieldsResponse 实体类型字段说明响应
type EntityFieldsResponse struct {
	EntityType     string   `json:"entity_type"`
	DisplayName    string   `json:"display_name"`
	Strategy       string   `json:"strategy"`
	Fields         []string `json:"fields"`
	RequiredFields []string `json:"required_fields"`
}

// StrategiesResponse 策略列表响应
type StrategiesResponse struct {
	Default    string                    `json:"default"`
	Strategies []generation.StrategyInfo `json:"strategies"`
}

// SupportedTypesResponse 支持的实体类型列表响应
type SupportedTypesResponse struct {
	Types []SupportedType `json:"types"`
}

// SupportedType 单个实体类型描述
type SupportedType struct {
	EntityType  string `json:"entity_type"`
	DisplayName string `json:"display_name"`
}

// TokenUsageResponse 世界观 Token 用量统计响应
type TokenUsageResponse struct {
	WorldID     string    `json:"world_id"`
	Days        int       `json:"days"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	TotalTokens int64     `json:"total_tokens"`
}
