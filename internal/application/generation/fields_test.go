package generation

import (
	"testing"

	"loreforge-ai-api/internal/domain/entity"
)

func TestGetEntityFields_SimpleSubset(t *testing.T) {
	fields := GetEntityFields(entity.EntityTypeCharacter, StrategySimple)
	if len(fields) != 5 {
		t.Fatalf("expected 5 simple character fields, got %d", len(fields))
	}

	detailed := GetEntityFields(entity.EntityTypeCharacter, StrategyDetailed)
	set := make(map[string]struct{}, len(detailed))
	for _, f := range detailed {
		set[f] = struct{}{}
	}
	for _, f := range fields {
		if _, ok := set[f]; !ok {
			t.Errorf("simple field %s not in detailed set", f)
		}
	}
}

func TestGetEntityFields_NonSimpleUsesDetailed(t *testing.T) {
	for _, strategy := range []Strategy{StrategyDetailed, StrategyBatch, StrategyCreative, StrategyConservative} {
		fields := GetEntityFields(entity.EntityTypeFaction, strategy)
		if len(fields) != 11 {
			t.Errorf("%s: expected 11 detailed faction fields, got %d", strategy, len(fields))
		}
	}
}

func TestGetEntityFields_AllTypesCovered(t *testing.T) {
	for _, et := range entity.AllEntityTypes() {
		if len(GetEntityFields(et, StrategySimple)) == 0 {
			t.Errorf("%s: no simple fields", et)
		}
		if len(GetEntityFields(et, StrategyDetailed)) == 0 {
			t.Errorf("%s: no detailed fields", et)
		}
		if len(GetRequiredFields(et)) == 0 {
			t.Errorf("%s: no required fields", et)
		}
	}
}

func TestGetRequiredFields_AlwaysIncludeName(t *testing.T) {
	for _, et := range entity.AllEntityTypes() {
		found := false
		for _, f := range GetRequiredFields(et) {
			if f == "name" {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: name missing from required fields", et)
		}
	}
}
