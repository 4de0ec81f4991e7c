package template

import (
	"loreforge-ai-api/internal/domain/entity"
)

// 内置模板的变量集合：上下文拼装器保证这四个键总是存在
var builtinVariables = []string{"prompt", "style", "world_info", "related_entities"}

const characterSimpleText = `请为这个世界观创作一个新的角色设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

请严格以 JSON 格式返回以下字段，不要附加任何说明文字：
{"name": "角色姓名", "gender": "性别", "identity": "身份或职业", "personality": "性格特点", "description": "一段综合描述"}`

const characterDetailedText = `你是一位资深的世界观设定作者。请基于以下背景信息，创作一个完整、自洽的角色设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

角色应当与世界观的基调和已有设定保持一致，避免与已有角色重名。
请严格按照下面的 JSON 结构返回全部字段，字段值使用中文，只返回 JSON 本身：
{
  "name": "角色姓名",
  "gender": "性别",
  "age": "年龄",
  "race": "种族",
  "identity": "身份或职业",
  "personality": "性格特点",
  "appearance": "外貌描写",
  "background": "背景经历",
  "abilities": "能力与特长",
  "goals": "目标与动机",
  "relationships": "与其他角色或势力的关系",
  "description": "一段综合描述"
}`

const locationSimpleText = `请为这个世界观创作一个新的地点设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

请严格以 JSON 格式返回以下字段，不要附加任何说明文字：
{"name": "地点名称", "location_type": "地点类型（如城市/遗迹/秘境）", "description": "一段综合描述"}`

const locationDetailedText = `你是一位资深的世界观设定作者。请基于以下背景信息，创作一个完整、自洽的地点设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

地点应当符合世界观的空间结构与物理法则。
请严格按照下面的 JSON 结构返回全部字段，字段值使用中文，只返回 JSON 本身：
{
  "name": "地点名称",
  "location_type": "地点类型（如城市/遗迹/秘境）",
  "climate": "气候特征",
  "terrain": "地形地貌",
  "culture": "当地文化与风俗",
  "history": "历史沿革",
  "significance": "在世界观中的重要性",
  "description": "一段综合描述"
}`

const itemSimpleText = `请为这个世界观创作一个新的物品设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

请严格以 JSON 格式返回以下字段，不要附加任何说明文字：
{"name": "物品名称", "item_type": "物品类型（如武器/法器/遗物）", "rarity": "稀有度", "description": "一段综合描述"}`

const itemDetailedText = `你是一位资深的世界观设定作者。请基于以下背景信息，创作一个完整、自洽的物品设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

物品的力量来源应当与世界观的能量体系自洽。
请严格按照下面的 JSON 结构返回全部字段，字段值使用中文，只返回 JSON 本身：
{
  "name": "物品名称",
  "item_type": "物品类型（如武器/法器/遗物）",
  "rarity": "稀有度",
  "origin": "来历与铸造者",
  "powers": "能力与效果",
  "appearance": "外观描写",
  "history": "流转历史",
  "description": "一段综合描述"
}`

const factionSimpleText = `请为这个世界观创作一个新的势力设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

请严格以 JSON 格式返回以下字段，不要附加任何说明文字：
{"name": "势力名称", "faction_type": "势力类型（如宗门/王国/商会）", "ideology": "核心理念", "description": "一段综合描述"}`

const factionDetailedText = `你是一位资深的世界观设定作者。请基于以下背景信息，创作一个完整、自洽的势力设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

势力的立场与利益关系应当能与已有势力形成张力。
请严格按照下面的 JSON 结构返回全部字段，字段值使用中文，只返回 JSON 本身：
{
  "name": "势力名称",
  "faction_type": "势力类型（如宗门/王国/商会）",
  "ideology": "核心理念与宗旨",
  "structure": "组织结构",
  "leader": "现任首领",
  "headquarters": "总部所在地",
  "influence": "影响力范围",
  "allies": "盟友势力",
  "enemies": "敌对势力",
  "history": "发展历史",
  "description": "一段综合描述"
}`

const energySystemSimpleText = `请为这个世界观创作一个新的能量体系设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

请严格以 JSON 格式返回以下字段，不要附加任何说明文字：
{"name": "体系名称", "energy_type": "能量类型（如灵气/魔力/源能）", "rules": "核心规则", "description": "一段综合描述"}`

const energySystemDetailedText = `你是一位资深的世界观设定作者。请基于以下背景信息，创作一个完整、自洽的能量体系设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

能量体系需要有明确的代价与限制，避免设定失衡。
请严格按照下面的 JSON 结构返回全部字段，字段值使用中文，只返回 JSON 本身：
{
  "name": "体系名称",
  "energy_type": "能量类型（如灵气/魔力/源能）",
  "origin": "能量的来源",
  "rules": "运行规则与法则",
  "levels": "等级划分",
  "acquisition": "获取与修炼方式",
  "limitations": "限制条件",
  "side_effects": "副作用与代价",
  "description": "一段综合描述"
}`

const civilizationSimpleText = `请为这个世界观创作一个新的文明设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

请严格以 JSON 格式返回以下字段，不要附加任何说明文字：
{"name": "文明名称", "civilization_type": "文明类型（如魔法文明/机械文明）", "era": "所处时代", "description": "一段综合描述"}`

const civilizationDetailedText = `你是一位资深的世界观设定作者。请基于以下背景信息，创作一个完整、自洽的文明设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

请严格按照下面的 JSON 结构返回全部字段，字段值使用中文，只返回 JSON 本身：
{
  "name": "文明名称",
  "civilization_type": "文明类型（如魔法文明/机械文明）",
  "era": "所处时代或纪元",
  "technology_level": "科技或力量水平",
  "social_structure": "社会结构",
  "culture": "文化特征",
  "achievements": "标志性成就",
  "decline_reason": "衰落或转折的原因（如仍兴盛可留空）",
  "description": "一段综合描述"
}`

const historicalEventSimpleText = `请为这个世界观创作一个新的历史事件设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

请严格以 JSON 格式返回以下字段，不要附加任何说明文字：
{"name": "事件名称", "event_type": "事件类型（如战争/灾变/变革）", "era": "发生时代", "description": "一段综合描述"}`

const historicalEventDetailedText = `你是一位资深的世界观设定作者。请基于以下背景信息，创作一个完整、自洽的历史事件设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

事件应当对已有势力与地点产生可追溯的影响。
请严格按照下面的 JSON 结构返回全部字段，字段值使用中文，只返回 JSON 本身：
{
  "name": "事件名称",
  "event_type": "事件类型（如战争/灾变/变革）",
  "era": "发生时代或纪元",
  "participants": "主要参与方",
  "cause": "起因",
  "process": "经过",
  "outcome": "结果",
  "impact": "对世界的长期影响",
  "description": "一段综合描述"
}`

const regionSimpleText = `请为这个世界观创作一个新的地域设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

请严格以 JSON 格式返回以下字段，不要附加任何说明文字：
{"name": "地域名称", "region_type": "地域类型（如大陆/海域/荒原）", "description": "一段综合描述"}`

const regionDetailedText = `你是一位资深的世界观设定作者。请基于以下背景信息，创作一个完整、自洽的地域设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

地域是比单个地点更大的地理单元，应当能容纳多个地点与势力。
请严格按照下面的 JSON 结构返回全部字段，字段值使用中文，只返回 JSON 本身：
{
  "name": "地域名称",
  "region_type": "地域类型（如大陆/海域/荒原）",
  "area": "大致范围或面积",
  "population": "人口构成",
  "resources": "主要资源",
  "governance": "治理方式",
  "notable_features": "显著特征",
  "description": "一段综合描述"
}`

const dimensionSimpleText = `请为这个世界观创作一个新的维度设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

请严格以 JSON 格式返回以下字段，不要附加任何说明文字：
{"name": "维度名称", "dimension_type": "维度类型（如位面/幻境/镜像世界）", "description": "一段综合描述"}`

const dimensionDetailedText = `你是一位资深的世界观设定作者。请基于以下背景信息，创作一个完整、自洽的维度设定。

{world_info}

{related_entities}

创作要求：{prompt}
文风要求：{style}

维度的物理法则可以偏离主世界，但偏离方式需要明确说明。
请严格按照下面的 JSON 结构返回全部字段，字段值使用中文，只返回 JSON 本身：
{
  "name": "维度名称",
  "dimension_type": "维度类型（如位面/幻境/镜像世界）",
  "access_method": "进入方式",
  "physical_laws": "与主世界不同的物理法则",
  "inhabitants": "栖息者",
  "dangers": "主要危险",
  "connection_to_main": "与主世界的联系",
  "description": "一段综合描述"
}`

// builtinTemplates 返回内置模板目录：每个实体类型一个 simple 模板
// 和一个 detailed 模板，detailed 为默认。
func builtinTemplates() []*Template {
	specs := []struct {
		entityType   entity.EntityType
		simpleText   string
		detailedText string
	}{
		{entity.EntityTypeCharacter, characterSimpleText, characterDetailedText},
		{entity.EntityTypeLocation, locationSimpleText, locationDetailedText},
		{entity.EntityTypeItem, itemSimpleText, itemDetailedText},
		{entity.EntityTypeFaction, factionSimpleText, factionDetailedText},
		{entity.EntityTypeEnergySystem, energySystemSimpleText, energySystemDetailedText},
		{entity.EntityTypeCivilization, civilizationSimpleText, civilizationDetailedText},
		{entity.EntityTypeHistoricalEvent, historicalEventSimpleText, historicalEventDetailedText},
		{entity.EntityTypeRegion, regionSimpleText, regionDetailedText},
		{entity.EntityTypeDimension, dimensionSimpleText, dimensionDetailedText},
	}

	templates := make([]*Template, 0, len(specs)*2)
	for _, spec := range specs {
		templates = append(templates,
			&Template{
				EntityType: spec.entityType,
				Name:       string(spec.entityType) + "_simple",
				Strategy:   "simple",
				Text:       spec.simpleText,
				Variables:  builtinVariables,
				Version:    1,
			},
			&Template{
				EntityType: spec.entityType,
				Name:       string(spec.entityType) + "_detailed",
				Strategy:   "detailed",
				Text:       spec.detailedText,
				Variables:  builtinVariables,
				Version:    1,
				IsDefault:  true,
			},
		)
	}
	return templates
}
