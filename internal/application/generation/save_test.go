package generation

import (
	"context"
	"errors"
	"testing"

	"loreforge-ai-api/internal/domain/entity"
)

// fakeEntityWriter 记录写入并回填 ID 的仓储桩
type fakeEntityWriter struct {
	lastRow any
	err     error
}

func (f *fakeEntityWriter) record(row any) error {
	f.lastRow = row
	return f.err
}

func (f *fakeEntityWriter) CreateCharacter(ctx context.Context, row *entity.Character) error {
	row.ID = "char-1"
	return f.record(row)
}

func (f *fakeEntityWriter) CreateLocation(ctx context.Context, row *entity.Location) error {
	row.ID = "loc-1"
	return f.record(row)
}

func (f *fakeEntityWriter) CreateItem(ctx context.Context, row *entity.Item) error {
	row.ID = "item-1"
	return f.record(row)
}

func (f *fakeEntityWriter) CreateFaction(ctx context.Context, row *entity.Faction) error {
	row.ID = "faction-1"
	return f.record(row)
}

func (f *fakeEntityWriter) CreateEnergySystem(ctx context.Context, row *entity.EnergySystem) error {
	row.ID = "energy-1"
	return f.record(row)
}

func (f *fakeEntityWriter) CreateCivilization(ctx context.Context, row *entity.Civilization) error {
	row.ID = "civ-1"
	return f.record(row)
}

func (f *fakeEntityWriter) CreateHistoricalEvent(ctx context.Context, row *entity.HistoricalEvent) error {
	row.ID = "event-1"
	return f.record(row)
}

func (f *fakeEntityWriter) CreateRegion(ctx context.Context, row *entity.Region) error {
	row.ID = "region-1"
	return f.record(row)
}

func (f *fakeEntityWriter) CreateDimension(ctx context.Context, row *entity.Dimension) error {
	row.ID = "dim-1"
	return f.record(row)
}

// fakeTransactor 直接执行回调的事务桩
type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func TestSave_Character(t *testing.T) {
	writer := &fakeEntityWriter{}
	s := NewSaver(writer, nil)

	result := s.Save(context.Background(), entity.EntityTypeCharacter, map[string]string{
		"name":        "艾文",
		"personality": "沉默寡言",
	}, "w1", "p1")

	if !result.Success {
		t.Fatalf("expected success, got %s", result.Error)
	}
	if result.ID != "char-1" {
		t.Errorf("expected database-assigned ID, got %s", result.ID)
	}

	row, ok := writer.lastRow.(*entity.Character)
	if !ok {
		t.Fatalf("unexpected row type %T", writer.lastRow)
	}
	if row.WorldID != "w1" || row.ProjectID != "p1" {
		t.Errorf("ownership fields not set: %+v", row)
	}
	if row.Personality != "沉默寡言" {
		t.Errorf("field not mapped: %s", row.Personality)
	}
}

func TestSave_MissingNameRejected(t *testing.T) {
	writer := &fakeEntityWriter{}
	s := NewSaver(writer, nil)

	result := s.Save(context.Background(), entity.EntityTypeLocation, map[string]string{
		"description": "无名之地",
	}, "w1", "")

	if result.Success {
		t.Fatal("expected rejection without name")
	}
	if writer.lastRow != nil {
		t.Error("storage must not be touched")
	}
}

func TestSave_UnsupportedType(t *testing.T) {
	s := NewSaver(&fakeEntityWriter{}, nil)
	result := s.Save(context.Background(), entity.EntityType("starship"), map[string]string{"name": "n"}, "", "")
	if result.Success {
		t.Fatal("expected failure for unsupported type")
	}
}

func TestSave_NilStorage(t *testing.T) {
	s := NewSaver(nil, nil)
	result := s.Save(context.Background(), entity.EntityTypeItem, map[string]string{"name": "n"}, "", "")
	if result.Success {
		t.Fatal("expected failure without storage")
	}
}

func TestSave_TypeFieldDefaulted(t *testing.T) {
	writer := &fakeEntityWriter{}
	s := NewSaver(writer, nil)

	result := s.Save(context.Background(), entity.EntityTypeItem, map[string]string{
		"name": "残破的怀表",
	}, "w1", "")

	if !result.Success {
		t.Fatalf("expected success, got %s", result.Error)
	}
	row := writer.lastRow.(*entity.Item)
	if row.ItemType != defaultTypeValue {
		t.Errorf("expected defaulted item_type %q, got %q", defaultTypeValue, row.ItemType)
	}
}

func TestSave_DatabaseErrorFoldsIntoResult(t *testing.T) {
	writer := &fakeEntityWriter{err: errors.New("connection reset")}
	s := NewSaver(writer, nil)

	result := s.Save(context.Background(), entity.EntityTypeRegion, map[string]string{
		"name": "北境",
	}, "w1", "")

	if result.Success {
		t.Fatal("expected failure on database error")
	}
	if result.Error == "" {
		t.Error("expected error message")
	}
}

func TestSave_UsesTransactionWhenConfigured(t *testing.T) {
	writer := &fakeEntityWriter{}
	tx := &fakeTransactor{}
	s := NewSaver(writer, tx)

	result := s.Save(context.Background(), entity.EntityTypeDimension, map[string]string{
		"name": "镜界",
	}, "w1", "")

	if !result.Success {
		t.Fatalf("expected success, got %s", result.Error)
	}
	if tx.calls != 1 {
		t.Errorf("expected 1 transaction, got %d", tx.calls)
	}
	if result.ID != "dim-1" {
		t.Errorf("ID assigned inside transaction must propagate, got %s", result.ID)
	}
}

func TestSave_AllSupportedTypes(t *testing.T) {
	writer := &fakeEntityWriter{}
	s := NewSaver(writer, nil)

	for _, et := range entity.AllEntityTypes() {
		result := s.Save(context.Background(), et, map[string]string{"name": "样例"}, "w1", "")
		if !result.Success {
			t.Errorf("%s: expected success, got %s", et, result.Error)
		}
		if result.ID == "" {
			t.Errorf("%s: expected assigned ID", et)
		}
	}
}
