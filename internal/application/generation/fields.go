package generation

import (
	"loreforge-ai-api/internal/domain/entity"
)

// simpleFields 各实体类型在 simple 策略下请求的核心字段子集
var simpleFields = map[entity.EntityType][]string{
	entity.EntityTypeCharacter:       {"name", "gender", "identity", "personality", "description"},
	entity.EntityTypeLocation:        {"name", "location_type", "description"},
	entity.EntityTypeItem:            {"name", "item_type", "rarity", "description"},
	entity.EntityTypeFaction:         {"name", "faction_type", "ideology", "description"},
	entity.EntityTypeEnergySystem:    {"name", "energy_type", "rules", "description"},
	entity.EntityTypeCivilization:    {"name", "civilization_type", "era", "description"},
	entity.EntityTypeHistoricalEvent: {"name", "event_type", "era", "description"},
	entity.EntityTypeRegion:          {"name", "region_type", "description"},
	entity.EntityTypeDimension:       {"name", "dimension_type", "description"},
}

// detailedFields 各实体类型的完整字段集。解析结果的键永远是该表的子集。
var detailedFields = map[entity.EntityType][]string{
	entity.EntityTypeCharacter: {
		"name", "gender", "age", "race", "identity", "personality",
		"appearance", "background", "abilities", "goals", "relationships", "description",
	},
	entity.EntityTypeLocation: {
		"name", "location_type", "climate", "terrain", "culture",
		"history", "significance", "description",
	},
	entity.EntityTypeItem: {
		"name", "item_type", "rarity", "origin", "powers",
		"appearance", "history", "description",
	},
	entity.EntityTypeFaction: {
		"name", "faction_type", "ideology", "structure", "leader",
		"headquarters", "influence", "allies", "enemies", "history", "description",
	},
	entity.EntityTypeEnergySystem: {
		"name", "energy_type", "origin", "rules", "levels",
		"acquisition", "limitations", "side_effects", "description",
	},
	entity.EntityTypeCivilization: {
		"name", "civilization_type", "era", "technology_level", "social_structure",
		"culture", "achievements", "decline_reason", "description",
	},
	entity.EntityTypeHistoricalEvent: {
		"name", "event_type", "era", "participants", "cause",
		"process", "outcome", "impact", "description",
	},
	entity.EntityTypeRegion: {
		"name", "region_type", "area", "population", "resources",
		"governance", "notable_features", "description",
	},
	entity.EntityTypeDimension: {
		"name", "dimension_type", "access_method", "physical_laws",
		"inhabitants", "dangers", "connection_to_main", "description",
	},
}

// requiredFields 校验必填字段。name 之外，个别类型要求类型字段。
var requiredFields = map[entity.EntityType][]string{
	entity.EntityTypeCharacter:       {"name"},
	entity.EntityTypeLocation:        {"name", "location_type"},
	entity.EntityTypeItem:            {"name", "item_type"},
	entity.EntityTypeFaction:         {"name", "faction_type"},
	entity.EntityTypeEnergySystem:    {"name"},
	entity.EntityTypeCivilization:    {"name"},
	entity.EntityTypeHistoricalEvent: {"name"},
	entity.EntityTypeRegion:          {"name"},
	entity.EntityTypeDimension:       {"name"},
}

// fieldLabels 文本回退提取时可识别的行标签（英文字段名 + 中文标签）。
// 解析器只在当前实体类型的有效字段内匹配，因此同名中文标签不会串类型。
var fieldLabels = map[string][]string{
	"name":               {"name", "名称", "名字", "姓名"},
	"description":        {"description", "描述", "简介", "介绍"},
	"gender":             {"gender", "性别"},
	"age":                {"age", "年龄"},
	"race":               {"race", "种族"},
	"identity":           {"identity", "身份", "职业"},
	"personality":        {"personality", "性格"},
	"appearance":         {"appearance", "外貌", "外观"},
	"background":         {"background", "背景", "经历"},
	"abilities":          {"abilities", "能力"},
	"goals":              {"goals", "目标"},
	"relationships":      {"relationships", "人际关系", "关系"},
	"location_type":      {"location_type", "地点类型", "类型"},
	"climate":            {"climate", "气候"},
	"terrain":            {"terrain", "地形"},
	"culture":            {"culture", "文化"},
	"history":            {"history", "历史"},
	"significance":       {"significance", "重要性", "意义"},
	"item_type":          {"item_type", "物品类型", "类型"},
	"rarity":             {"rarity", "稀有度"},
	"origin":             {"origin", "起源", "来历"},
	"powers":             {"powers", "能力", "效果"},
	"faction_type":       {"faction_type", "势力类型", "类型"},
	"ideology":           {"ideology", "理念", "宗旨"},
	"structure":          {"structure", "组织结构", "结构"},
	"leader":             {"leader", "首领", "领袖"},
	"headquarters":       {"headquarters", "总部", "驻地"},
	"influence":          {"influence", "影响力"},
	"allies":             {"allies", "盟友"},
	"enemies":            {"enemies", "敌对势力", "敌人"},
	"energy_type":        {"energy_type", "能量类型", "类型"},
	"rules":              {"rules", "规则", "法则"},
	"levels":             {"levels", "等级体系", "等级"},
	"acquisition":        {"acquisition", "获取方式", "修炼方式"},
	"limitations":        {"limitations", "限制", "局限"},
	"side_effects":       {"side_effects", "副作用"},
	"civilization_type":  {"civilization_type", "文明类型", "类型"},
	"era":                {"era", "时代", "纪元"},
	"technology_level":   {"technology_level", "科技水平", "技术水平"},
	"social_structure":   {"social_structure", "社会结构"},
	"achievements":       {"achievements", "成就"},
	"decline_reason":     {"decline_reason", "衰落原因"},
	"event_type":         {"event_type", "事件类型", "类型"},
	"participants":       {"participants", "参与者", "参与方"},
	"cause":              {"cause", "起因", "原因"},
	"process":            {"process", "经过", "过程"},
	"outcome":            {"outcome", "结果"},
	"impact":             {"impact", "影响"},
	"region_type":        {"region_type", "地域类型", "类型"},
	"area":               {"area", "面积", "范围"},
	"population":         {"population", "人口"},
	"resources":          {"resources", "资源"},
	"governance":         {"governance", "治理方式", "统治"},
	"notable_features":   {"notable_features", "显著特征", "特征"},
	"dimension_type":     {"dimension_type", "维度类型", "类型"},
	"access_method":      {"access_method", "进入方式"},
	"physical_laws":      {"physical_laws", "物理法则"},
	"inhabitants":        {"inhabitants", "居民", "栖息者"},
	"dangers":            {"dangers", "危险"},
	"connection_to_main": {"connection_to_main", "与主世界的联系", "主世界联系"},
}

// GetEntityFields 返回策略对应的字段集：simple 策略用核心子集，
// 其余策略用完整字段集（缺失时回退核心子集）。
func GetEntityFields(entityType entity.EntityType, strategy Strategy) []string {
	if strategy == StrategySimple {
		if fields, ok := simpleFields[entityType]; ok {
			return fields
		}
	}
	if fields, ok := detailedFields[entityType]; ok {
		return fields
	}
	return simpleFields[entityType]
}

// GetRequiredFields 返回实体类型的必填字段
func GetRequiredFields(entityType entity.EntityType) []string {
	return requiredFields[entityType]
}

// validFieldSet 返回实体类型全部有效字段的集合
func validFieldSet(entityType entity.EntityType) map[string]struct{} {
	fields := detailedFields[entityType]
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
