// Package generation 实现设定内容的 AI 生成编排：
// 策略选择、上下文拼装、模板渲染、结果解析与落库。
package generation

import (
	"context"
	"strings"

	"loreforge-ai-api/internal/domain/entity"
	"loreforge-ai-api/pkg/logger"
)

// Strategy 生成策略标签
type Strategy string

const (
	StrategySimple       Strategy = "simple"
	StrategyDetailed     Strategy = "detailed"
	StrategyBatch        Strategy = "batch"
	StrategyCreative     Strategy = "creative"
	StrategyConservative Strategy = "conservative"
)

// DefaultStrategy 全局默认策略
const DefaultStrategy = StrategyDetailed

// Parameters 一次生成调用的采样参数
type Parameters struct {
	Temperature      float32        `json:"temperature"`
	MaxTokens        int            `json:"max_tokens"`
	TopP             float32        `json:"top_p"`
	FrequencyPenalty float32        `json:"frequency_penalty"`
	PresencePenalty  float32        `json:"presence_penalty"`
	Extra            map[string]any `json:"extra,omitempty"`
}

// ParameterOverrides 调用方自定义参数，浅合并到策略基础参数之上，调用方优先。
// 不做边界校验：越界值（如 temperature 5.0）原样透传给提供商。
type ParameterOverrides struct {
	Temperature      *float32       `json:"temperature,omitempty"`
	MaxTokens        *int           `json:"max_tokens,omitempty"`
	TopP             *float32       `json:"top_p,omitempty"`
	FrequencyPenalty *float32       `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float32       `json:"presence_penalty,omitempty"`
	Extra            map[string]any `json:"extra,omitempty"`
}

// strategyParams 各策略的基础参数，从保守稳定到发散探索。进程启动后只读。
var strategyParams = map[Strategy]Parameters{
	StrategySimple: {
		Temperature:      0.7,
		MaxTokens:        1000,
		TopP:             0.9,
		FrequencyPenalty: 0.0,
		PresencePenalty:  0.0,
	},
	StrategyDetailed: {
		Temperature:      0.8,
		MaxTokens:        2500,
		TopP:             0.95,
		FrequencyPenalty: 0.3,
		PresencePenalty:  0.3,
	},
	StrategyBatch: {
		Temperature:      0.9,
		MaxTokens:        3000,
		TopP:             0.95,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0.5,
	},
	StrategyCreative: {
		Temperature:      1.1,
		MaxTokens:        2500,
		TopP:             0.98,
		FrequencyPenalty: 0.6,
		PresencePenalty:  0.6,
	},
	StrategyConservative: {
		Temperature:      0.4,
		MaxTokens:        1500,
		TopP:             0.8,
		FrequencyPenalty: 0.0,
		PresencePenalty:  0.0,
	},
}

// strategyDescriptions 策略说明，用于介绍接口
var strategyDescriptions = map[Strategy]string{
	StrategySimple:       "快速生成核心字段，内容简洁",
	StrategyDetailed:     "生成完整字段集，内容详尽",
	StrategyBatch:        "批量生成，鼓励多样性",
	StrategyCreative:     "高发散度，适合寻找新奇设定",
	StrategyConservative: "低发散度，贴合已有设定",
}

// entityDefaultStrategy 各实体类型的默认策略。当前全部为 detailed，
// 保留表结构以便按类型单独调整。
var entityDefaultStrategy = map[entity.EntityType]Strategy{}

// SelectStrategy 解析策略名称。名称匹配已知策略（大小写不敏感）时使用之，
// 否则回退到实体类型默认策略，再回退到全局默认。未知名称只记日志不报错。
func SelectStrategy(ctx context.Context, entityType entity.EntityType, name string) Strategy {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed != "" {
		candidate := Strategy(trimmed)
		if _, ok := strategyParams[candidate]; ok {
			return candidate
		}
		logger.Warn(ctx, "unknown generation strategy, falling back to default",
			"strategy", name,
			"entity_type", string(entityType),
		)
	}

	if s, ok := entityDefaultStrategy[entityType]; ok {
		return s
	}
	return DefaultStrategy
}

// GetParameters 返回策略的基础参数，并浅合并调用方覆盖值（调用方优先）。
func GetParameters(strategy Strategy, overrides *ParameterOverrides) Parameters {
	params, ok := strategyParams[strategy]
	if !ok {
		params = strategyParams[DefaultStrategy]
	}

	if overrides == nil {
		return params
	}

	if overrides.Temperature != nil {
		params.Temperature = *overrides.Temperature
	}
	if overrides.MaxTokens != nil {
		params.MaxTokens = *overrides.MaxTokens
	}
	if overrides.TopP != nil {
		params.TopP = *overrides.TopP
	}
	if overrides.FrequencyPenalty != nil {
		params.FrequencyPenalty = *overrides.FrequencyPenalty
	}
	if overrides.PresencePenalty != nil {
		params.PresencePenalty = *overrides.PresencePenalty
	}
	if len(overrides.Extra) > 0 {
		merged := make(map[string]any, len(params.Extra)+len(overrides.Extra))
		for k, val := range params.Extra {
			merged[k] = val
		}
		for k, val := range overrides.Extra {
			merged[k] = val
		}
		params.Extra = merged
	}

	return params
}

// StrategyInfo 策略介绍
type StrategyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListAvailableStrategies 返回全部策略及说明，顺序固定
func ListAvailableStrategies() []StrategyInfo {
	order := []Strategy{
		StrategySimple,
		StrategyDetailed,
		StrategyBatch,
		StrategyCreative,
		StrategyConservative,
	}
	infos := make([]StrategyInfo, 0, len(order))
	for _, s := range order {
		infos = append(infos, StrategyInfo{
			Name:        string(s),
			Description: strategyDescriptions[s],
		})
	}
	return infos
}
