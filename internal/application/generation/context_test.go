package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"loreforge-ai-api/internal/domain/entity"
	"loreforge-ai-api/internal/domain/repository"
)

// fakeWorldReader 可编程的世界观读取桩
type fakeWorldReader struct {
	world      *entity.World
	setting    *entity.WorldSetting
	related    map[entity.EntityType][]repository.RelatedEntitySummary
	worldErr   error
	relatedErr error
}

func (f *fakeWorldReader) FetchWorld(ctx context.Context, worldID string) (*entity.World, error) {
	return f.world, f.worldErr
}

func (f *fakeWorldReader) FetchWorldSetting(ctx context.Context, projectID string) (*entity.WorldSetting, error) {
	return f.setting, nil
}

func (f *fakeWorldReader) FetchRelated(ctx context.Context, entityType entity.EntityType, worldID string, limit int) ([]repository.RelatedEntitySummary, error) {
	if f.relatedErr != nil {
		return nil, f.relatedErr
	}
	return f.related[entityType], nil
}

func TestBuildPromptVariables_AllKeysAlwaysPresent(t *testing.T) {
	a := NewAssembler(&fakeWorldReader{}, 0, 0)
	vars := a.BuildPromptVariables(context.Background(), BuildInput{Prompt: "一个刺客"})

	for _, key := range []string{"prompt", "style", "world_info", "related_entities"} {
		if _, ok := vars[key]; !ok {
			t.Errorf("missing variable %s", key)
		}
	}
	if vars["prompt"] != "一个刺客" {
		t.Errorf("expected prompt passthrough, got %s", vars["prompt"])
	}
}

func TestBuildPromptVariables_DefaultStyle(t *testing.T) {
	a := NewAssembler(&fakeWorldReader{}, 0, 0)
	vars := a.BuildPromptVariables(context.Background(), BuildInput{Prompt: "p", Style: "  "})
	if vars["style"] != defaultStyle {
		t.Errorf("expected default style, got %s", vars["style"])
	}

	vars = a.BuildPromptVariables(context.Background(), BuildInput{Prompt: "p", Style: "冷峻"})
	if vars["style"] != "冷峻" {
		t.Errorf("expected explicit style kept, got %s", vars["style"])
	}
}

func TestBuildPromptVariables_WorldInfo(t *testing.T) {
	reader := &fakeWorldReader{
		world: &entity.World{
			Name:        "碎星海",
			WorldType:   "奇幻",
			CoreConcept: "悬浮群岛间的航海文明",
		},
	}
	a := NewAssembler(reader, 0, 0)
	vars := a.BuildPromptVariables(context.Background(), BuildInput{
		Prompt:           "p",
		WorldID:          "w1",
		IncludeWorldInfo: true,
	})

	if !strings.Contains(vars["world_info"], "碎星海") {
		t.Errorf("world name missing from world_info: %s", vars["world_info"])
	}
	if !strings.Contains(vars["world_info"], "核心概念：悬浮群岛间的航海文明") {
		t.Errorf("core concept missing: %s", vars["world_info"])
	}
}

func TestBuildPromptVariables_WorldLookupFailureFallsBack(t *testing.T) {
	reader := &fakeWorldReader{worldErr: errors.New("db down")}
	a := NewAssembler(reader, 0, 0)
	vars := a.BuildPromptVariables(context.Background(), BuildInput{
		Prompt:           "p",
		WorldID:          "w1",
		IncludeWorldInfo: true,
	})

	if vars["world_info"] != fallbackWorldInfo {
		t.Errorf("expected fallback world info, got %s", vars["world_info"])
	}
}

func TestBuildPromptVariables_WorldNotFoundFallsBack(t *testing.T) {
	a := NewAssembler(&fakeWorldReader{}, 0, 0)
	vars := a.BuildPromptVariables(context.Background(), BuildInput{
		Prompt:           "p",
		WorldID:          "missing",
		IncludeWorldInfo: true,
	})
	if vars["world_info"] != fallbackWorldInfo {
		t.Errorf("expected fallback world info, got %s", vars["world_info"])
	}
}

func TestBuildPromptVariables_RelatedEntities(t *testing.T) {
	reader := &fakeWorldReader{
		related: map[entity.EntityType][]repository.RelatedEntitySummary{
			entity.EntityTypeCharacter: {
				{Name: "凯尔", Description: "退役的皇家骑士"},
			},
		},
	}
	a := NewAssembler(reader, 0, 0)
	vars := a.BuildPromptVariables(context.Background(), BuildInput{
		Prompt:         "p",
		WorldID:        "w1",
		IncludeRelated: []entity.EntityType{entity.EntityTypeCharacter, entity.EntityTypeItem},
	})

	if !strings.Contains(vars["related_entities"], "已有的角色") {
		t.Errorf("related block missing character heading: %s", vars["related_entities"])
	}
	if !strings.Contains(vars["related_entities"], "凯尔") {
		t.Errorf("related entity name missing: %s", vars["related_entities"])
	}
	// 没有物品时整组省略
	if strings.Contains(vars["related_entities"], "物品") {
		t.Errorf("empty group should be omitted: %s", vars["related_entities"])
	}
}

func TestBuildPromptVariables_RelatedFailureFallsBack(t *testing.T) {
	reader := &fakeWorldReader{relatedErr: errors.New("timeout")}
	a := NewAssembler(reader, 0, 0)
	vars := a.BuildPromptVariables(context.Background(), BuildInput{
		Prompt:         "p",
		WorldID:        "w1",
		IncludeRelated: []entity.EntityType{entity.EntityTypeCharacter},
	})
	if vars["related_entities"] != fallbackRelated {
		t.Errorf("expected fallback related text, got %s", vars["related_entities"])
	}
}

func TestBuildPromptVariables_CustomContextOverrides(t *testing.T) {
	reader := &fakeWorldReader{world: &entity.World{Name: "某界"}}
	a := NewAssembler(reader, 0, 0)
	vars := a.BuildPromptVariables(context.Background(), BuildInput{
		Prompt:           "p",
		WorldID:          "w1",
		IncludeWorldInfo: true,
		CustomContext: map[string]string{
			"world_info": "调用方指定的世界观",
			"era":        "第三纪元",
		},
	})

	if vars["world_info"] != "调用方指定的世界观" {
		t.Errorf("custom context should override generated block, got %s", vars["world_info"])
	}
	if vars["era"] != "第三纪元" {
		t.Errorf("custom extra variable missing, got %s", vars["era"])
	}
}

func TestTruncateContext_ShortTextUnchanged(t *testing.T) {
	text := "短文本"
	if got := TruncateContext(text, 100); got != text {
		t.Fatalf("short text must pass through, got %s", got)
	}
}

func TestTruncateContext_KeepsHeadAndTail(t *testing.T) {
	head := strings.Repeat("头", 300)
	tail := strings.Repeat("尾", 300)
	text := head + strings.Repeat("中", 1000) + tail

	got := TruncateContext(text, 500)
	if !strings.Contains(got, truncationMarker) {
		t.Fatal("expected truncation marker")
	}
	if !strings.HasPrefix(got, "头") {
		t.Error("head of text lost")
	}
	if !strings.HasSuffix(got, "尾") {
		t.Error("tail of text lost")
	}
	keep := (500 - 100) / 2
	runes := []rune(got)
	wantLen := keep*2 + len([]rune(truncationMarker))
	if len(runes) != wantLen {
		t.Errorf("expected %d runes after truncation, got %d", wantLen, len(runes))
	}
}
