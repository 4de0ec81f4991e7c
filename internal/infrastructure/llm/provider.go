package llm

import (
	"context"
	"fmt"

	"loreforge-ai-api/internal/application/generation"

	openaiopts "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// EinoChatProvider 基于 Eino ChatModel 的对话补全适配器。
// 把领域层的采样参数映射为 Eino 调用选项。
type EinoChatProvider struct {
	factory *EinoFactory
}

// NewEinoChatProvider 创建对话补全适配器
func NewEinoChatProvider(factory *EinoFactory) *EinoChatProvider {
	return &EinoChatProvider{factory: factory}
}

var _ generation.ChatProvider = (*EinoChatProvider)(nil)

// Chat 执行一次对话补全。参数不做边界校验，越界值原样透传给提供商。
func (p *EinoChatProvider) Chat(ctx context.Context, messages []generation.ChatMessage, params generation.Parameters) (*generation.ChatResult, error) {
	chatModel, err := p.factory.Default(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat model: %w", err)
	}

	msgs := make([]*schema.Message, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			msgs = append(msgs, schema.SystemMessage(m.Content))
		case "assistant":
			msgs = append(msgs, schema.AssistantMessage(m.Content, nil))
		default:
			msgs = append(msgs, schema.UserMessage(m.Content))
		}
	}

	outMsg, err := chatModel.Generate(ctx, msgs, buildModelOptions(params)...)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	result := &generation.ChatResult{
		Content:  outMsg.Content,
		Provider: p.factory.DefaultProvider(),
		Model:    p.factory.ModelName(""),
	}
	if outMsg.ResponseMeta != nil && outMsg.ResponseMeta.Usage != nil {
		result.PromptTokens = outMsg.ResponseMeta.Usage.PromptTokens
		result.CompletionTokens = outMsg.ResponseMeta.Usage.CompletionTokens
	}
	return result, nil
}

// buildModelOptions 把采样参数转换为 Eino 调用选项。
// 惩罚项不在通用选项里，通过 OpenAI 扩展字段透传。
func buildModelOptions(params generation.Parameters) []model.Option {
	opts := []model.Option{
		model.WithTemperature(params.Temperature),
		model.WithMaxTokens(params.MaxTokens),
		model.WithTopP(params.TopP),
	}

	extra := make(map[string]any, len(params.Extra)+2)
	if params.FrequencyPenalty != 0 {
		extra["frequency_penalty"] = params.FrequencyPenalty
	}
	if params.PresencePenalty != 0 {
		extra["presence_penalty"] = params.PresencePenalty
	}
	for k, v := range params.Extra {
		extra[k] = v
	}
	if len(extra) > 0 {
		opts = append(opts, openaiopts.WithExtraFields(extra))
	}

	return opts
}
