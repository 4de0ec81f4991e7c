// Package entity 定义领域实体
package entity

// EntityType 设定实体类型
type EntityType string

const (
	EntityTypeCharacter       EntityType = "character"
	EntityTypeLocation        EntityType = "location"
	EntityTypeItem            EntityType = "item"
	EntityTypeFaction         EntityType = "faction"
	EntityTypeEnergySystem    EntityType = "energy_system"
	EntityTypeCivilization    EntityType = "civilization"
	EntityTypeHistoricalEvent EntityType = "historical_event"
	EntityTypeRegion          EntityType = "region"
	EntityTypeDimension       EntityType = "dimension"
)

// AllEntityTypes 返回全部受支持的实体类型，顺序固定
func AllEntityTypes() []EntityType {
	return []EntityType{
		EntityTypeCharacter,
		EntityTypeLocation,
		EntityTypeItem,
		EntityTypeFaction,
		EntityTypeEnergySystem,
		EntityTypeCivilization,
		EntityTypeHistoricalEvent,
		EntityTypeRegion,
		EntityTypeDimension,
	}
}

// IsSupported 检查实体类型是否受支持
func (t EntityType) IsSupported() bool {
	for _, known := range AllEntityTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// DisplayName 返回实体类型的中文名称，用于提示词上下文标题
func (t EntityType) DisplayName() string {
	switch t {
	case EntityTypeCharacter:
		return "角色"
	case EntityTypeLocation:
		return "地点"
	case EntityTypeItem:
		return "物品"
	case EntityTypeFaction:
		return "势力"
	case EntityTypeEnergySystem:
		return "能量体系"
	case EntityTypeCivilization:
		return "文明"
	case EntityTypeHistoricalEvent:
		return "历史事件"
	case EntityTypeRegion:
		return "地域"
	case EntityTypeDimension:
		return "维度"
	default:
		return string(t)
	}
}
