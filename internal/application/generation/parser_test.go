package generation

import (
	"strings"
	"testing"

	"loreforge-ai-api/internal/domain/entity"
)

func TestParse_FencedJSON(t *testing.T) {
	raw := "生成结果如下：\n```json\n{\"name\": \"艾莉亚\", \"gender\": \"女\", \"description\": \"流浪剑士\"}\n```"

	outcome := Parse(raw, entity.EntityTypeCharacter)
	if !outcome.Success {
		t.Fatal("expected success")
	}
	if outcome.Note != "" {
		t.Fatalf("expected clean parse, got note: %s", outcome.Note)
	}
	if outcome.Data["name"] != "艾莉亚" {
		t.Errorf("expected name 艾莉亚, got %s", outcome.Data["name"])
	}
	if outcome.Raw != raw {
		t.Error("raw output not preserved")
	}
}

func TestParse_WholeTextJSON(t *testing.T) {
	raw := `{"name": "黑曜石城", "location_type": "要塞", "description": "建在火山口上的城市"}`

	outcome := Parse(raw, entity.EntityTypeLocation)
	if outcome.Note != "" {
		t.Fatalf("expected clean parse, got note: %s", outcome.Note)
	}
	if outcome.Data["location_type"] != "要塞" {
		t.Errorf("expected location_type 要塞, got %s", outcome.Data["location_type"])
	}
}

func TestParse_EmbeddedObjectWithBracesInStrings(t *testing.T) {
	raw := `好的，以下是生成的物品：
{"name": "虚空之匙", "item_type": "神器", "description": "刻着 {空} 与 {满} 两个符文的钥匙"}
希望你喜欢。`

	outcome := Parse(raw, entity.EntityTypeItem)
	if outcome.Note != "" {
		t.Fatalf("expected balanced-object parse, got note: %s", outcome.Note)
	}
	if !strings.Contains(outcome.Data["description"], "{空}") {
		t.Errorf("braces inside string values lost: %s", outcome.Data["description"])
	}
}

func TestParse_NestedValuesFlattened(t *testing.T) {
	raw := `{"name": "星环议会", "faction_type": "政权", "allies": ["银月商盟", "北境游侠"]}`

	outcome := Parse(raw, entity.EntityTypeFaction)
	if outcome.Note != "" {
		t.Fatalf("expected clean parse, got note: %s", outcome.Note)
	}
	if !strings.Contains(outcome.Data["allies"], "银月商盟") {
		t.Errorf("nested list not flattened into JSON string: %s", outcome.Data["allies"])
	}
}

func TestParse_UnknownFieldsDropped(t *testing.T) {
	raw := `{"name": "灰烬纪元", "mood": "somber", "event_type": "战争"}`

	outcome := Parse(raw, entity.EntityTypeHistoricalEvent)
	if _, exists := outcome.Data["mood"]; exists {
		t.Error("field outside the entity field set should be dropped")
	}
	if outcome.Data["event_type"] != "战争" {
		t.Errorf("expected event_type 战争, got %s", outcome.Data["event_type"])
	}
}

func TestParse_LabelFallback(t *testing.T) {
	raw := "名称：雾隐村\n地点类型：村落\n描述：终年被浓雾环绕的山村"

	outcome := Parse(raw, entity.EntityTypeLocation)
	if !outcome.Success {
		t.Fatal("label fallback must not fail")
	}
	if outcome.Note == "" {
		t.Error("expected fallback note on label extraction")
	}
	if outcome.Data["name"] != "雾隐村" {
		t.Errorf("expected name 雾隐村, got %s", outcome.Data["name"])
	}
	if outcome.Data["location_type"] != "村落" {
		t.Errorf("expected location_type 村落, got %s", outcome.Data["location_type"])
	}
}

func TestParse_InlineLabelFallback(t *testing.T) {
	raw := "not json at all, name：Aria"

	outcome := Parse(raw, entity.EntityTypeCharacter)
	if !outcome.Success {
		t.Fatal("fallback path must not fail")
	}
	if outcome.Data["name"] != "Aria" {
		t.Errorf("expected inline label extraction to find Aria, got %q", outcome.Data["name"])
	}
}

func TestParse_GarbageYieldsEmptyData(t *testing.T) {
	outcome := Parse("完全无法解析的一段话。", entity.EntityTypeCharacter)
	if !outcome.Success {
		t.Fatal("parse must never report failure")
	}
	if len(outcome.Data) != 0 {
		t.Errorf("expected empty data, got %v", outcome.Data)
	}
	if outcome.Note == "" {
		t.Error("expected fallback note")
	}
}

func TestValidateResult_MissingRequired(t *testing.T) {
	data := map[string]string{"description": "一座城"}
	v := ValidateResult(data, entity.EntityTypeLocation)
	if v.Valid {
		t.Fatal("expected invalid result")
	}
	if len(v.Errors) != 2 {
		t.Errorf("expected 2 errors (name, location_type), got %v", v.Errors)
	}
}

func TestValidateResult_TruncatesLongField(t *testing.T) {
	data := map[string]string{
		"name":        "测试",
		"description": strings.Repeat("很", maxFieldRunes+5),
	}
	v := ValidateResult(data, entity.EntityTypeCharacter)
	if !v.Valid {
		t.Fatalf("truncation must not invalidate: %v", v.Errors)
	}
	if len(v.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", v.Warnings)
	}
	if got := len([]rune(data["description"])); got != maxFieldRunes {
		t.Errorf("expected field truncated to %d runes, got %d", maxFieldRunes, got)
	}
}

func TestValidateResult_CleanData(t *testing.T) {
	data := map[string]string{"name": "灵能", "rules": "以情绪为引"}
	v := ValidateResult(data, entity.EntityTypeEnergySystem)
	if !v.Valid {
		t.Fatalf("expected valid, got errors %v", v.Errors)
	}
	if len(v.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", v.Warnings)
	}
}
