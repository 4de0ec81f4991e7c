package generation

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"loreforge-ai-api/internal/domain/entity"
)

// maxFieldRunes 单个字段值的最大长度，超出部分截断并记警告
const maxFieldRunes = 10000

// noteTextFallback 文本回退提取时附带的提示
const noteTextFallback = "JSON 解析失败，已按文本标签回退提取，结果可能不完整"

// ParseOutcome 模型输出的解析结果
type ParseOutcome struct {
	Success bool
	Data    map[string]string
	Raw     string
	Note    string
}

// Parse 从模型输出中提取结构化字段。提取顺序：
// 代码块 JSON -> 整段 JSON -> 首个平衡的顶层对象 -> 文本标签回退。
// 回退路径永不失败，只在 Note 中标注结果可能不完整。
func Parse(raw string, entityType entity.EntityType) ParseOutcome {
	text := strings.TrimSpace(raw)

	if data, ok := parseJSONCandidate(extractFencedBlock(text), entityType); ok {
		return ParseOutcome{Success: true, Data: data, Raw: raw}
	}
	if data, ok := parseJSONCandidate(text, entityType); ok {
		return ParseOutcome{Success: true, Data: data, Raw: raw}
	}
	if data, ok := parseJSONCandidate(scanBalancedObject(text), entityType); ok {
		return ParseOutcome{Success: true, Data: data, Raw: raw}
	}

	data := extractByLabels(text, entityType)
	return ParseOutcome{
		Success: true,
		Data:    data,
		Raw:     raw,
		Note:    noteTextFallback,
	}
}

// extractFencedBlock 截取首个围栏代码块的内容（兼容 ```json 语言标签）
func extractFencedBlock(text string) string {
	start := strings.Index(text, "```")
	if start < 0 {
		return ""
	}
	rest := text[start+3:]

	// 跳过语言标签行
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		firstLine := strings.TrimSpace(rest[:nl])
		if firstLine != "" && !strings.ContainsAny(firstLine, "{}[]") {
			rest = rest[nl+1:]
		}
	}

	end := strings.Index(rest, "```")
	if end < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}

// scanBalancedObject 截取首个平衡的顶层 JSON 对象。
// 按 JSON 语义跳过字符串字面量，字段值里的 { } 不会干扰配对。
func scanBalancedObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// parseJSONCandidate 尝试把候选文本解析为对象并清洗字段
func parseJSONCandidate(candidate string, entityType entity.EntityType) (map[string]string, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" || candidate[0] != '{' {
		return nil, false
	}

	dec := json.NewDecoder(strings.NewReader(candidate))
	dec.UseNumber()
	var parsed map[string]any
	if err := dec.Decode(&parsed); err != nil {
		return nil, false
	}
	return cleanData(parsed, entityType), true
}

// cleanData 清洗解析出的字段：丢弃空值，嵌套结构重新序列化为 JSON 字符串，
// 其余值字符串化，并过滤掉实体类型有效字段集之外的键。
func cleanData(parsed map[string]any, entityType entity.EntityType) map[string]string {
	valid := validFieldSet(entityType)
	data := make(map[string]string, len(parsed))

	for key, value := range parsed {
		if _, ok := valid[key]; !ok {
			continue
		}
		if value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			data[key] = v
		case json.Number:
			data[key] = v.String()
		case bool:
			data[key] = fmt.Sprintf("%t", v)
		default:
			// 嵌套的列表/对象压平为 JSON 字符串，保持输出为扁平映射
			b, err := json.Marshal(v)
			if err != nil {
				continue
			}
			data[key] = string(b)
		}
	}
	return data
}

// extractByLabels 按行扫描本地化标签（如 "name:"、"名称："）提取字段。
// 标签缺失只是跳过该字段，这条路径不会失败。
func extractByLabels(text string, entityType entity.EntityType) map[string]string {
	valid := validFieldSet(entityType)
	data := make(map[string]string)

	// 标签 -> 字段 的反查表，只纳入当前实体类型的有效字段
	labelToField := make(map[string]string)
	for field := range valid {
		for _, label := range fieldLabels[field] {
			labelToField[strings.ToLower(label)] = field
		}
	}

	// 第一遍：整行形如 "标签: 值" 的情况，值保留整行剩余部分
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*#• "))
		label, value, ok := splitLabelLine(line)
		if !ok {
			continue
		}
		label = strings.ToLower(strings.Trim(label, "* 　"))
		if field, known := labelToField[label]; known && value != "" {
			if _, exists := data[field]; !exists {
				data[field] = value
			}
		}
	}

	// 第二遍：行内内嵌标签（如 "not json at all, name：Aria"），
	// 值截取到下一个分隔符为止
	lower := strings.ToLower(text)
	for label, field := range labelToField {
		if _, exists := data[field]; exists {
			continue
		}
		if value := searchInlineLabel(text, lower, label); value != "" {
			data[field] = value
		}
	}

	return data
}

// splitLabelLine 按首个半角/全角冒号切分标签行
func splitLabelLine(line string) (label string, value string, ok bool) {
	idxHalf := strings.Index(line, ":")
	idxFull := strings.Index(line, "：")
	idx := idxHalf
	sepLen := 1
	if idx < 0 || (idxFull >= 0 && idxFull < idx) {
		idx = idxFull
		sepLen = len("：")
	}
	if idx <= 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+sepLen:]), true
}

// searchInlineLabel 在整段文本中查找 "label:" / "label：" 并截取其后的值
func searchInlineLabel(text, lower, label string) string {
	for _, sep := range []string{":", "："} {
		idx := strings.Index(lower, label+sep)
		if idx < 0 {
			continue
		}
		value := text[idx+len(label)+len(sep):]
		// 截取到下一个分隔符或行尾
		for _, stop := range []string{"\n", ",", "，", "；", ";"} {
			if cut := strings.Index(value, stop); cut >= 0 {
				value = value[:cut]
			}
		}
		if v := strings.TrimSpace(value); v != "" {
			return v
		}
	}
	return ""
}

// ValidateResult 校验解析数据：必填字段缺失或为空记为错误；
// 超过 maxFieldRunes 的字段就地截断并记为警告，不影响 Valid。
func ValidateResult(data map[string]string, entityType entity.EntityType) *Validation {
	v := &Validation{
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
	}

	for _, field := range GetRequiredFields(entityType) {
		if strings.TrimSpace(data[field]) == "" {
			v.Errors = append(v.Errors, fmt.Sprintf("missing required field: %s", field))
			v.Valid = false
		}
	}

	for field, value := range data {
		if utf8.RuneCountInString(value) > maxFieldRunes {
			data[field] = truncateRunes(value, maxFieldRunes)
			v.Warnings = append(v.Warnings, fmt.Sprintf("field %s truncated to %d characters", field, maxFieldRunes))
		}
	}

	return v
}

// truncateRunes 按 rune 数量截断字符串
func truncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i]
		}
		n++
	}
	return s
}
