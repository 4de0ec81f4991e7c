package generation

import (
	"context"
	"strings"
	"unicode/utf8"

	"loreforge-ai-api/internal/domain/entity"
	"loreforge-ai-api/internal/domain/repository"
	"loreforge-ai-api/pkg/logger"
)

const (
	// defaultRelatedLimit 每类关联实体的最大采样数
	defaultRelatedLimit = 5
	// defaultContextMaxLength 上下文文本块的最大 rune 数
	defaultContextMaxLength = 4000
	// relatedDescriptionLimit 关联实体描述的截断长度
	relatedDescriptionLimit = 100

	// defaultStyle 调用方未指定文风时的默认值
	defaultStyle = "与世界观整体基调保持一致"
	// fallbackWorldInfo 查不到世界观时的兜底文案
	fallbackWorldInfo = "未指定世界观，请基于通用的奇幻/科幻默认设定进行创作。"
	// fallbackRelated 没有任何关联实体时的兜底文案
	fallbackRelated = "暂无相关设定实体。"
	// truncationMarker 上下文截断标记
	truncationMarker = "\n...[内容已截断]...\n"
)

// Assembler 上下文拼装器：把世界观元数据与关联实体整理成
// 有界长度的文本块，作为提示词变量
type Assembler struct {
	worlds           repository.WorldReader
	relatedLimit     int
	contextMaxLength int
}

// NewAssembler 创建上下文拼装器
func NewAssembler(worlds repository.WorldReader, relatedLimit, contextMaxLength int) *Assembler {
	if relatedLimit <= 0 {
		relatedLimit = defaultRelatedLimit
	}
	if contextMaxLength <= 0 {
		contextMaxLength = defaultContextMaxLength
	}
	return &Assembler{
		worlds:           worlds,
		relatedLimit:     relatedLimit,
		contextMaxLength: contextMaxLength,
	}
}

// BuildInput 上下文拼装入参
type BuildInput struct {
	Prompt           string
	Style            string
	WorldID          string
	ProjectID        string
	IncludeWorldInfo bool
	IncludeRelated   []entity.EntityType
	CustomContext    map[string]string
}

// BuildPromptVariables 生成提示词变量集。永远包含
// prompt/style/world_info/related_entities 四个键；
// 任何查询失败都降级为兜底文案，不向上抛错。
func (a *Assembler) BuildPromptVariables(ctx context.Context, in BuildInput) map[string]string {
	vars := map[string]string{
		"prompt":           in.Prompt,
		"style":            in.Style,
		"world_info":       fallbackWorldInfo,
		"related_entities": fallbackRelated,
	}
	if strings.TrimSpace(in.Style) == "" {
		vars["style"] = defaultStyle
	}

	if in.IncludeWorldInfo && in.WorldID != "" {
		if block := a.buildWorldInfo(ctx, in.WorldID, in.ProjectID); block != "" {
			vars["world_info"] = TruncateContext(block, a.contextMaxLength)
		}
	}

	if len(in.IncludeRelated) > 0 && in.WorldID != "" {
		if block := a.buildRelatedEntities(ctx, in.WorldID, in.IncludeRelated); block != "" {
			vars["related_entities"] = TruncateContext(block, a.contextMaxLength)
		}
	}

	// 调用方显式提供的上下文覆盖生成的文本块
	for key, value := range in.CustomContext {
		vars[key] = value
	}

	return vars
}

// buildWorldInfo 渲染世界观信息文本块，字段顺序固定。
// 查不到世界观或查询出错时返回空串，由调用侧保留兜底文案。
func (a *Assembler) buildWorldInfo(ctx context.Context, worldID, projectID string) string {
	if a.worlds == nil {
		return ""
	}

	world, err := a.worlds.FetchWorld(ctx, worldID)
	if err != nil {
		logger.Warn(ctx, "failed to fetch world for prompt context, using fallback",
			"world_id", worldID,
			"error", err.Error(),
		)
		return ""
	}
	if world == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("世界观信息：\n")
	writeLabeled(&b, "名称", world.Name)
	writeLabeled(&b, "类型", world.WorldType)
	writeLabeled(&b, "核心概念", world.CoreConcept)
	writeLabeled(&b, "描述", world.Description)
	writeLabeled(&b, "起源", world.Origin)
	writeLabeled(&b, "本源", world.Essence)

	if projectID != "" {
		setting, err := a.worlds.FetchWorldSetting(ctx, projectID)
		if err != nil {
			logger.Warn(ctx, "failed to fetch world setting for prompt context",
				"project_id", projectID,
				"error", err.Error(),
			)
		} else if setting != nil {
			writeLabeled(&b, "空间结构", setting.SpatialHierarchy)
			writeLabeled(&b, "时间体系", setting.TimeSystem)
			writeLabeled(&b, "物理法则", setting.PhysicalLaws)
			writeLabeled(&b, "特殊规则", setting.SpecialRules)
		}
	}

	return strings.TrimSpace(b.String())
}

// buildRelatedEntities 渲染关联实体文本块。没有匹配的类型整组省略；
// 全部为空时返回空串，由调用侧保留兜底文案。
func (a *Assembler) buildRelatedEntities(ctx context.Context, worldID string, types []entity.EntityType) string {
	if a.worlds == nil {
		return ""
	}

	var b strings.Builder
	for _, t := range types {
		rows, err := a.worlds.FetchRelated(ctx, t, worldID, a.relatedLimit)
		if err != nil {
			logger.Warn(ctx, "failed to fetch related entities for prompt context",
				"entity_type", string(t),
				"world_id", worldID,
				"error", err.Error(),
			)
			continue
		}
		if len(rows) == 0 {
			continue
		}

		b.WriteString("已有的")
		b.WriteString(t.DisplayName())
		b.WriteString("：\n")
		for _, row := range rows {
			b.WriteString("- ")
			b.WriteString(row.Name)
			b.WriteString(": ")
			b.WriteString(truncateDescription(row.Description, relatedDescriptionLimit))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

// TruncateContext 对超长文本做首尾保留式截断：保留开头与结尾各
// (maxLength-100)/2 个 rune，中间替换为截断标记，
// 同时保住开篇设定与收尾内容。
func TruncateContext(text string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = defaultContextMaxLength
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}

	keep := (maxLength - 100) / 2
	if keep <= 0 {
		return string(runes[:maxLength])
	}
	return string(runes[:keep]) + truncationMarker + string(runes[len(runes)-keep:])
}

// writeLabeled 输出 "标签：值" 行，空值跳过
func writeLabeled(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	b.WriteString(label)
	b.WriteString("：")
	b.WriteString(value)
	b.WriteString("\n")
}

// truncateDescription 截断描述并补省略号
func truncateDescription(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return truncateRunes(s, limit) + "…"
}
