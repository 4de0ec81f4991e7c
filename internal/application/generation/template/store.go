// Package template 维护提示词模板目录：内置模板在进程启动时注册，
// 磁盘模板按需加载合并，启动之后目录只读。
package template

import (
	"strings"

	"loreforge-ai-api/internal/domain/entity"
)

// Template 提示词模板。Text 中以 {variable} 形式声明占位符。
type Template struct {
	EntityType  entity.EntityType `json:"entity_type"`
	Name        string            `json:"template_name"`
	Strategy    string            `json:"strategy"`
	Text        string            `json:"prompt_template"`
	Variables   []string          `json:"variables"`
	Version     int               `json:"version"`
	IsDefault   bool              `json:"is_default"`
	Description string            `json:"description,omitempty"`
}

// Store 模板目录。按实体类型分组，注册顺序稳定。
type Store struct {
	byType map[entity.EntityType][]*Template
}

// NewStore 创建模板目录并注册内置模板
func NewStore() *Store {
	s := &Store{
		byType: make(map[entity.EntityType][]*Template),
	}
	for _, tpl := range builtinTemplates() {
		s.register(tpl)
	}
	return s
}

// register 追加模板到目录
func (s *Store) register(tpl *Template) {
	if tpl == nil || tpl.EntityType == "" {
		return
	}
	s.byType[tpl.EntityType] = append(s.byType[tpl.EntityType], tpl)
}

// Get 按顺序查找模板：名称精确匹配 -> 策略标签匹配 -> is_default
// -> 该类型的第一个模板 -> nil。nil 结果由调用方视为硬性配置错误。
// 每一步匹配取后注册者：磁盘模板在内置模板之后合并，
// 同名或同策略时以磁盘模板为准。
func (s *Store) Get(entityType entity.EntityType, strategy, name string) *Template {
	templates := s.byType[entityType]
	if len(templates) == 0 {
		return nil
	}

	if name = strings.TrimSpace(name); name != "" {
		for i := len(templates) - 1; i >= 0; i-- {
			if templates[i].Name == name {
				return templates[i]
			}
		}
	}

	if strategy = strings.TrimSpace(strategy); strategy != "" {
		for i := len(templates) - 1; i >= 0; i-- {
			if templates[i].Strategy == strategy {
				return templates[i]
			}
		}
	}

	for i := len(templates) - 1; i >= 0; i-- {
		if templates[i].IsDefault {
			return templates[i]
		}
	}

	return templates[0]
}

// Render 渲染模板：声明过且提供了值的占位符被替换，
// 未提供值的占位符原样保留（由模板作者决定哪些变量是必需的）。
func Render(tpl *Template, vars map[string]string) string {
	if tpl == nil {
		return ""
	}

	text := tpl.Text
	names := tpl.Variables
	if len(names) == 0 {
		// 磁盘模板可能未声明变量列表，此时接受全部提供的变量
		names = make([]string, 0, len(vars))
		for name := range vars {
			names = append(names, name)
		}
	}

	for _, name := range names {
		value, ok := vars[name]
		if !ok {
			continue
		}
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}
