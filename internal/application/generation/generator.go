package generation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"loreforge-ai-api/internal/application/generation/template"
	"loreforge-ai-api/internal/domain/entity"
	"loreforge-ai-api/pkg/errors"
	"loreforge-ai-api/pkg/logger"
	"loreforge-ai-api/pkg/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"
)

var tracer = otel.Tracer("application/generation")

// systemPrompt 所有生成调用共用的系统提示词
const systemPrompt = "你是一个专业的世界观设定生成助手，擅长创作自洽、有深度的虚构设定。" +
	"请严格按照用户要求的格式返回内容。"

// defaultBatchConcurrency 批量生成默认并发度，1 表示严格串行
const defaultBatchConcurrency = 1

// UsageRecorder 用量记录接口，实现方必须是尽力而为的：
// 记录失败不得影响生成结果的返回。
type UsageRecorder interface {
	Record(ctx context.Context, event *entity.LLMUsageEvent)
}

// Request 一次生成请求
type Request struct {
	EntityType   entity.EntityType
	Prompt       string
	Style        string
	WorldID      string
	ProjectID    string
	Strategy     string
	TemplateName string
	// IncludeWorldInfo 为 nil 时默认包含世界观信息
	IncludeWorldInfo *bool
	IncludeRelated   []entity.EntityType
	CustomContext    map[string]string
	Overrides        *ParameterOverrides
}

// Generator 设定生成编排器。一次 Generate 调用串起
// 策略选择、上下文拼装、模板渲染、模型调用、解析与校验。
type Generator struct {
	templates        *template.Store
	assembler        *Assembler
	provider         ChatProvider
	usage            UsageRecorder
	batchConcurrency int
}

// NewGenerator 创建生成编排器。usage 可以为 nil（不记录用量）。
func NewGenerator(templates *template.Store, assembler *Assembler, provider ChatProvider, usage UsageRecorder, batchConcurrency int) *Generator {
	if batchConcurrency <= 0 {
		batchConcurrency = defaultBatchConcurrency
	}
	return &Generator{
		templates:        templates,
		assembler:        assembler,
		provider:         provider,
		usage:            usage,
		batchConcurrency: batchConcurrency,
	}
}

// Generate 执行一次设定生成。任何失败（含 panic）都折叠为
// Success=false 的结果返回，调用方永远拿到一个 *Result。
func (g *Generator) Generate(ctx context.Context, req Request) (result *Result) {
	ctx, span := tracer.Start(ctx, "generation.Generate",
		trace.WithAttributes(
			attribute.String("entity_type", string(req.EntityType)),
			attribute.String("world_id", req.WorldID),
		),
	)
	defer span.End()

	start := time.Now()
	strategy := DefaultStrategy

	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "generation panicked", fmt.Errorf("panic: %v", r),
				"entity_type", string(req.EntityType),
			)
			result = g.failure(req.EntityType, strategy, fmt.Sprintf("internal error: %v", r))
		}
		status := "failure"
		if result != nil && result.Success {
			status = "success"
		}
		metrics.GenerationTotal.WithLabelValues(string(req.EntityType), string(strategy), status).Inc()
		metrics.GenerationDuration.WithLabelValues(string(req.EntityType)).Observe(time.Since(start).Seconds())
	}()

	if !req.EntityType.IsSupported() {
		appErr := errors.New(errors.CodeUnsupportedEntityType, "unsupported entity type").
			WithDetail(string(req.EntityType))
		return g.failure(req.EntityType, strategy, appErr.Error())
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return g.failure(req.EntityType, strategy, "prompt must not be empty")
	}

	strategy = SelectStrategy(ctx, req.EntityType, req.Strategy)
	params := GetParameters(strategy, req.Overrides)

	tpl := g.templates.Get(req.EntityType, string(strategy), req.TemplateName)
	if tpl == nil {
		// 内置模板覆盖所有受支持类型，走到这里说明目录被错误配置
		appErr := errors.New(errors.CodeTemplateNotFound, "no prompt template for entity type").
			WithDetail(string(req.EntityType))
		logger.Error(ctx, "prompt template missing", appErr,
			"entity_type", string(req.EntityType),
			"strategy", string(strategy),
		)
		return g.failure(req.EntityType, strategy, appErr.Error())
	}

	includeWorld := req.IncludeWorldInfo == nil || *req.IncludeWorldInfo
	vars := g.assembler.BuildPromptVariables(ctx, BuildInput{
		Prompt:           req.Prompt,
		Style:            req.Style,
		WorldID:          req.WorldID,
		ProjectID:        req.ProjectID,
		IncludeWorldInfo: includeWorld,
		IncludeRelated:   req.IncludeRelated,
		CustomContext:    req.CustomContext,
	})
	rendered := template.Render(tpl, vars)

	chat, err := g.callModel(ctx, rendered, params, req, strategy)
	if err != nil {
		logger.Error(ctx, "llm call failed", err,
			"entity_type", string(req.EntityType),
			"strategy", string(strategy),
		)
		return g.failure(req.EntityType, strategy, errors.Wrap(err, errors.CodeLLMCallFailed, "llm call failed").Error())
	}

	outcome := Parse(chat.Content, req.EntityType)
	if outcome.Note != "" {
		metrics.GenerationParseFallback.WithLabelValues(string(req.EntityType)).Inc()
		logger.Warn(ctx, "generation output parsed via text fallback",
			"entity_type", string(req.EntityType),
		)
	}

	validation := ValidateResult(outcome.Data, req.EntityType)
	validationStatus := "valid"
	if !validation.Valid {
		validationStatus = "invalid"
	}
	metrics.GenerationValidationTotal.WithLabelValues(string(req.EntityType), validationStatus).Inc()

	logger.Info(ctx, "generation completed",
		"entity_type", string(req.EntityType),
		"strategy", string(strategy),
		"valid", validation.Valid,
		"fields", len(outcome.Data),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Result{
		Success:    true,
		Data:       outcome.Data,
		Raw:        outcome.Raw,
		Note:       outcome.Note,
		EntityType: string(req.EntityType),
		Validation: validation,
		Metadata: &Metadata{
			EntityType:       string(req.EntityType),
			Strategy:         string(strategy),
			WorldID:          req.WorldID,
			ProjectID:        req.ProjectID,
			Prompt:           req.Prompt,
			TokensUsed:       chat.PromptTokens + chat.CompletionTokens,
			PromptTokens:     chat.PromptTokens,
			CompletionTokens: chat.CompletionTokens,
			Provider:         chat.Provider,
			DurationMs:       int(time.Since(start).Milliseconds()),
		},
	}
}

// GenerateBatch 批量生成。结果顺序与请求顺序一致，单条失败不影响
// 其余条目；并发度由配置限定，默认串行。
func (g *Generator) GenerateBatch(ctx context.Context, reqs []Request) []*Result {
	results := make([]*Result, len(reqs))
	if len(reqs) == 0 {
		return results
	}

	ctx, span := tracer.Start(ctx, "generation.GenerateBatch",
		trace.WithAttributes(attribute.Int("batch_size", len(reqs))),
	)
	defer span.End()

	sem := semaphore.NewWeighted(int64(g.batchConcurrency))
	var wg sync.WaitGroup

	for i, req := range reqs {
		if err := sem.Acquire(ctx, 1); err != nil {
			// 上下文取消：剩余条目全部标记失败
			for j := i; j < len(reqs); j++ {
				results[j] = g.failure(reqs[j].EntityType, DefaultStrategy, err.Error())
			}
			break
		}
		wg.Add(1)
		go func(idx int, r Request) {
			defer wg.Done()
			defer sem.Release(1)
			results[idx] = g.Generate(ctx, r)
		}(i, req)
	}

	wg.Wait()
	return results
}

// callModel 调用模型并记录 LLM 指标与用量事件
func (g *Generator) callModel(ctx context.Context, prompt string, params Parameters, req Request, strategy Strategy) (*ChatResult, error) {
	if g.provider == nil {
		return nil, errors.New(errors.CodeLLMProviderError, "no chat provider configured")
	}

	messages := []ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	}

	start := time.Now()
	chat, err := g.provider.Chat(ctx, messages, params)
	elapsed := time.Since(start)

	providerName := "unknown"
	modelName := "unknown"
	if chat != nil {
		if chat.Provider != "" {
			providerName = chat.Provider
		}
		if chat.Model != "" {
			modelName = chat.Model
		}
	}

	status := "success"
	if err != nil {
		status = "failure"
	}
	metrics.LLMCallTotal.WithLabelValues(providerName, modelName, status).Inc()
	metrics.LLMCallDuration.WithLabelValues(providerName, modelName).Observe(elapsed.Seconds())

	if err != nil {
		return nil, err
	}

	metrics.LLMTokensUsed.WithLabelValues(providerName, modelName, "prompt").Add(float64(chat.PromptTokens))
	metrics.LLMTokensUsed.WithLabelValues(providerName, modelName, "completion").Add(float64(chat.CompletionTokens))

	if g.usage != nil {
		g.usage.Record(ctx, &entity.LLMUsageEvent{
			WorldID:          req.WorldID,
			ProjectID:        req.ProjectID,
			EntityType:       string(req.EntityType),
			Provider:         providerName,
			Model:            modelName,
			Strategy:         string(strategy),
			TokensPrompt:     chat.PromptTokens,
			TokensCompletion: chat.CompletionTokens,
			DurationMs:       int(elapsed.Milliseconds()),
		})
	}

	return chat, nil
}

// failure 构造失败结果
func (g *Generator) failure(entityType entity.EntityType, strategy Strategy, message string) *Result {
	return &Result{
		Success:    false,
		Error:      message,
		EntityType: string(entityType),
		Metadata: &Metadata{
			EntityType: string(entityType),
			Strategy:   string(strategy),
		},
	}
}
