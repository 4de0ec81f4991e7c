package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"loreforge-ai-api/internal/application/generation/template"
	"loreforge-ai-api/internal/domain/entity"
)

// stubChatProvider 按 prompt 内容返回预设应答的模型桩
type stubChatProvider struct {
	content  string
	err      error
	failWhen string // user prompt 包含该子串时返回错误
	calls    int
}

func (s *stubChatProvider) Chat(ctx context.Context, messages []ChatMessage, params Parameters) (*ChatResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.failWhen != "" {
		for _, m := range messages {
			if m.Role == "user" && strings.Contains(m.Content, s.failWhen) {
				return nil, errors.New("provider rejected request")
			}
		}
	}
	return &ChatResult{
		Content:          s.content,
		PromptTokens:     120,
		CompletionTokens: 80,
		Provider:         "stub",
		Model:            "stub-1",
	}, nil
}

func newTestGenerator(provider ChatProvider) *Generator {
	return NewGenerator(
		template.NewStore(),
		NewAssembler(&fakeWorldReader{}, 0, 0),
		provider,
		nil,
		2,
	)
}

func TestGenerate_Success(t *testing.T) {
	provider := &stubChatProvider{
		content: `{"name": "璃月", "gender": "女", "description": "月下的游吟诗人"}`,
	}
	g := newTestGenerator(provider)

	result := g.Generate(context.Background(), Request{
		EntityType: entity.EntityTypeCharacter,
		Prompt:     "一位游吟诗人",
		WorldID:    "w1",
	})

	if !result.Success {
		t.Fatalf("expected success, got error %s", result.Error)
	}
	if result.Data["name"] != "璃月" {
		t.Errorf("expected name 璃月, got %s", result.Data["name"])
	}
	if result.Validation == nil || !result.Validation.Valid {
		t.Errorf("expected valid result, got %+v", result.Validation)
	}
	if result.Metadata == nil {
		t.Fatal("expected metadata")
	}
	if result.Metadata.Strategy != string(DefaultStrategy) {
		t.Errorf("expected default strategy, got %s", result.Metadata.Strategy)
	}
	if result.Metadata.TokensUsed != 200 {
		t.Errorf("expected 200 tokens, got %d", result.Metadata.TokensUsed)
	}
	if result.Metadata.Provider != "stub" {
		t.Errorf("expected provider stub, got %s", result.Metadata.Provider)
	}
}

func TestGenerate_UnsupportedEntityType(t *testing.T) {
	provider := &stubChatProvider{content: "{}"}
	g := newTestGenerator(provider)

	result := g.Generate(context.Background(), Request{
		EntityType: entity.EntityType("starship"),
		Prompt:     "p",
	})

	if result.Success {
		t.Fatal("expected failure for unsupported type")
	}
	if provider.calls != 0 {
		t.Errorf("provider must not be called, got %d calls", provider.calls)
	}
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	provider := &stubChatProvider{content: "{}"}
	g := newTestGenerator(provider)

	result := g.Generate(context.Background(), Request{
		EntityType: entity.EntityTypeLocation,
		Prompt:     "   ",
	})

	if result.Success {
		t.Fatal("expected failure for blank prompt")
	}
	if provider.calls != 0 {
		t.Errorf("provider must not be called, got %d calls", provider.calls)
	}
}

func TestGenerate_ProviderErrorFoldsIntoResult(t *testing.T) {
	g := newTestGenerator(&stubChatProvider{err: errors.New("upstream 503")})

	result := g.Generate(context.Background(), Request{
		EntityType: entity.EntityTypeItem,
		Prompt:     "一把剑",
	})

	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Error == "" {
		t.Error("expected error message")
	}
	if result.Metadata == nil || result.Metadata.EntityType != "item" {
		t.Errorf("failure result must keep metadata, got %+v", result.Metadata)
	}
}

func TestGenerate_NilProvider(t *testing.T) {
	g := newTestGenerator(nil)
	result := g.Generate(context.Background(), Request{
		EntityType: entity.EntityTypeFaction,
		Prompt:     "p",
	})
	if result.Success {
		t.Fatal("expected failure without provider")
	}
}

func TestGenerate_InvalidDataStillSucceeds(t *testing.T) {
	// 模型返回合法 JSON 但缺必填字段：调用成功，校验不通过
	g := newTestGenerator(&stubChatProvider{content: `{"description": "没有名字的东西"}`})

	result := g.Generate(context.Background(), Request{
		EntityType: entity.EntityTypeCharacter,
		Prompt:     "p",
	})

	if !result.Success {
		t.Fatalf("expected success, got %s", result.Error)
	}
	if result.Validation == nil || result.Validation.Valid {
		t.Fatal("expected invalid validation")
	}
}

func TestGenerate_FallbackNotePropagated(t *testing.T) {
	g := newTestGenerator(&stubChatProvider{content: "名称：无名者"})

	result := g.Generate(context.Background(), Request{
		EntityType: entity.EntityTypeCharacter,
		Prompt:     "p",
	})

	if !result.Success {
		t.Fatalf("expected success, got %s", result.Error)
	}
	if result.Note == "" {
		t.Error("expected fallback note on the result")
	}
	if result.Data["name"] != "无名者" {
		t.Errorf("expected name 无名者, got %s", result.Data["name"])
	}
}

func TestGenerate_StrategyOverrideApplied(t *testing.T) {
	g := newTestGenerator(&stubChatProvider{content: `{"name": "n"}`})

	result := g.Generate(context.Background(), Request{
		EntityType: entity.EntityTypeCharacter,
		Prompt:     "p",
		Strategy:   "creative",
	})

	if result.Metadata.Strategy != "creative" {
		t.Fatalf("expected creative strategy recorded, got %s", result.Metadata.Strategy)
	}
}

func TestGenerateBatch_OrderPreserved(t *testing.T) {
	provider := &stubChatProvider{
		content:  `{"name": "n"}`,
		failWhen: "第二个",
	}
	g := newTestGenerator(provider)

	reqs := []Request{
		{EntityType: entity.EntityTypeCharacter, Prompt: "第一个角色"},
		{EntityType: entity.EntityTypeCharacter, Prompt: "第二个角色"},
		{EntityType: entity.EntityTypeLocation, Prompt: "第三个地点"},
	}
	results := g.GenerateBatch(context.Background(), reqs)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Success {
		t.Errorf("first item should succeed: %s", results[0].Error)
	}
	if results[1].Success {
		t.Error("second item should fail")
	}
	if !results[2].Success {
		t.Errorf("third item should succeed despite the second failing: %s", results[2].Error)
	}
	if results[2].EntityType != "location" {
		t.Errorf("results out of order: index 2 has type %s", results[2].EntityType)
	}
}

func TestGenerateBatch_Empty(t *testing.T) {
	g := newTestGenerator(&stubChatProvider{content: "{}"})
	results := g.GenerateBatch(context.Background(), nil)
	if len(results) != 0 {
		t.Fatalf("expected empty results, got %d", len(results))
	}
}

func TestGenerateBatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := newTestGenerator(&stubChatProvider{content: `{"name": "n"}`})
	reqs := []Request{
		{EntityType: entity.EntityTypeCharacter, Prompt: "p1"},
		{EntityType: entity.EntityTypeCharacter, Prompt: "p2"},
	}
	results := g.GenerateBatch(ctx, reqs)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for i, r := range results {
		if r == nil {
			t.Fatalf("result %d is nil", i)
		}
		if r.Success {
			t.Errorf("result %d should be marked failed after cancellation", i)
		}
	}
}
