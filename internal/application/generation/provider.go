package generation

import (
	"context"
)

// ChatMessage 对话消息
type ChatMessage struct {
	Role    string
	Content string
}

// ChatResult 一次模型调用的返回
type ChatResult struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
	Provider         string
	Model            string
}

// ChatProvider 模型调用抽象。实现方负责把采样参数映射到具体提供商，
// 并在出错时返回可诊断的 error。
type ChatProvider interface {
	// Chat 以给定参数执行一次对话补全
	Chat(ctx context.Context, messages []ChatMessage, params Parameters) (*ChatResult, error)
}
