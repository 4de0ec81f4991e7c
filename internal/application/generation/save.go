package generation

import (
	"context"
	"strings"

	"loreforge-ai-api/internal/domain/entity"
	"loreforge-ai-api/internal/domain/repository"
	"loreforge-ai-api/pkg/errors"
	"loreforge-ai-api/pkg/logger"
)

// defaultTypeValue 必填类型字段缺失时的落库默认值
const defaultTypeValue = "未知"

// Saver 把生成结果写入对应的实体表
type Saver struct {
	entities repository.EntityWriter
	tx       repository.Transactor
}

// NewSaver 创建落库器。tx 为 nil 时直接写入，不包事务。
func NewSaver(entities repository.EntityWriter, tx repository.Transactor) *Saver {
	return &Saver{entities: entities, tx: tx}
}

// Save 按实体类型把生成数据写入数据库。name 缺失视为数据不完整，
// 拒绝落库；其余缺失字段存空串，必填类型字段补默认值。
// 所有失败以 SaveResult 形式返回，不向上抛错。
func (s *Saver) Save(ctx context.Context, entityType entity.EntityType, data map[string]string, worldID, projectID string) *SaveResult {
	if s.entities == nil {
		return saveFailure("entity storage not configured")
	}
	if !entityType.IsSupported() {
		return saveFailure("unsupported entity type: " + string(entityType))
	}
	if strings.TrimSpace(data["name"]) == "" {
		return saveFailure("cannot save entity without a name")
	}

	var (
		id     string
		record any
		err    error
	)
	if s.tx != nil {
		err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
			var insertErr error
			id, record, insertErr = s.insert(txCtx, entityType, data, worldID, projectID)
			return insertErr
		})
	} else {
		id, record, err = s.insert(ctx, entityType, data, worldID, projectID)
	}
	if err != nil {
		appErr := errors.Wrap(err, errors.CodeDatabaseError, "failed to save generated entity")
		logger.Error(ctx, "failed to save generated entity", err,
			"entity_type", string(entityType),
			"world_id", worldID,
		)
		return saveFailure(appErr.Error())
	}

	logger.Info(ctx, "generated entity saved",
		"entity_type", string(entityType),
		"entity_id", id,
		"world_id", worldID,
	)
	return &SaveResult{Success: true, ID: id, Record: record}
}

func (s *Saver) insert(ctx context.Context, entityType entity.EntityType, data map[string]string, worldID, projectID string) (string, any, error) {
	get := func(field string) string { return data[field] }
	getType := func(field string) string {
		if v := strings.TrimSpace(data[field]); v != "" {
			return v
		}
		return defaultTypeValue
	}

	switch entityType {
	case entity.EntityTypeCharacter:
		row := &entity.Character{
			WorldID:       worldID,
			ProjectID:     projectID,
			Name:          get("name"),
			Gender:        get("gender"),
			Age:           get("age"),
			Race:          get("race"),
			Identity:      get("identity"),
			Personality:   get("personality"),
			Appearance:    get("appearance"),
			Background:    get("background"),
			Abilities:     get("abilities"),
			Goals:         get("goals"),
			Relationships: get("relationships"),
			Description:   get("description"),
		}
		err := s.entities.CreateCharacter(ctx, row)
		return row.ID, row, err
	case entity.EntityTypeLocation:
		row := &entity.Location{
			WorldID:      worldID,
			ProjectID:    projectID,
			Name:         get("name"),
			LocationType: getType("location_type"),
			Climate:      get("climate"),
			Terrain:      get("terrain"),
			Culture:      get("culture"),
			History:      get("history"),
			Significance: get("significance"),
			Description:  get("description"),
		}
		err := s.entities.CreateLocation(ctx, row)
		return row.ID, row, err
	case entity.EntityTypeItem:
		row := &entity.Item{
			WorldID:     worldID,
			ProjectID:   projectID,
			Name:        get("name"),
			ItemType:    getType("item_type"),
			Rarity:      get("rarity"),
			Origin:      get("origin"),
			Powers:      get("powers"),
			Appearance:  get("appearance"),
			History:     get("history"),
			Description: get("description"),
		}
		err := s.entities.CreateItem(ctx, row)
		return row.ID, row, err
	case entity.EntityTypeFaction:
		row := &entity.Faction{
			WorldID:      worldID,
			ProjectID:    projectID,
			Name:         get("name"),
			FactionType:  getType("faction_type"),
			Ideology:     get("ideology"),
			Structure:    get("structure"),
			Leader:       get("leader"),
			Headquarters: get("headquarters"),
			Influence:    get("influence"),
			Allies:       get("allies"),
			Enemies:      get("enemies"),
			History:      get("history"),
			Description:  get("description"),
		}
		err := s.entities.CreateFaction(ctx, row)
		return row.ID, row, err
	case entity.EntityTypeEnergySystem:
		row := &entity.EnergySystem{
			WorldID:     worldID,
			ProjectID:   projectID,
			Name:        get("name"),
			EnergyType:  getType("energy_type"),
			Origin:      get("origin"),
			Rules:       get("rules"),
			Levels:      get("levels"),
			Acquisition: get("acquisition"),
			Limitations: get("limitations"),
			SideEffects: get("side_effects"),
			Description: get("description"),
		}
		err := s.entities.CreateEnergySystem(ctx, row)
		return row.ID, row, err
	case entity.EntityTypeCivilization:
		row := &entity.Civilization{
			WorldID:          worldID,
			ProjectID:        projectID,
			Name:             get("name"),
			CivilizationType: getType("civilization_type"),
			Era:              get("era"),
			TechnologyLevel:  get("technology_level"),
			SocialStructure:  get("social_structure"),
			Culture:          get("culture"),
			Achievements:     get("achievements"),
			DeclineReason:    get("decline_reason"),
			Description:      get("description"),
		}
		err := s.entities.CreateCivilization(ctx, row)
		return row.ID, row, err
	case entity.EntityTypeHistoricalEvent:
		row := &entity.HistoricalEvent{
			WorldID:      worldID,
			ProjectID:    projectID,
			Name:         get("name"),
			EventType:    getType("event_type"),
			Era:          get("era"),
			Participants: get("participants"),
			Cause:        get("cause"),
			Process:      get("process"),
			Outcome:      get("outcome"),
			Impact:       get("impact"),
			Description:  get("description"),
		}
		err := s.entities.CreateHistoricalEvent(ctx, row)
		return row.ID, row, err
	case entity.EntityTypeRegion:
		row := &entity.Region{
			WorldID:         worldID,
			ProjectID:       projectID,
			Name:            get("name"),
			RegionType:      getType("region_type"),
			Area:            get("area"),
			Population:      get("population"),
			Resources:       get("resources"),
			Governance:      get("governance"),
			NotableFeatures: get("notable_features"),
			Description:     get("description"),
		}
		err := s.entities.CreateRegion(ctx, row)
		return row.ID, row, err
	case entity.EntityTypeDimension:
		row := &entity.Dimension{
			WorldID:          worldID,
			ProjectID:        projectID,
			Name:             get("name"),
			DimensionType:    getType("dimension_type"),
			AccessMethod:     get("access_method"),
			PhysicalLaws:     get("physical_laws"),
			Inhabitants:      get("inhabitants"),
			Dangers:          get("dangers"),
			ConnectionToMain: get("connection_to_main"),
			Description:      get("description"),
		}
		err := s.entities.CreateDimension(ctx, row)
		return row.ID, row, err
	}
	return "", nil, errors.New(errors.CodeUnsupportedEntityType, "unsupported entity type").WithDetail(string(entityType))
}

func saveFailure(message string) *SaveResult {
	return &SaveResult{Success: false, Error: message}
}
