package generation

// Validation 生成结果的校验结论。必填字段缺失记为错误，
// 超长字段截断记为警告，两者互不影响。
type Validation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Metadata 一次生成调用的元信息
type Metadata struct {
	EntityType       string `json:"entity_type"`
	Strategy         string `json:"strategy"`
	WorldID          string `json:"world_id,omitempty"`
	ProjectID        string `json:"project_id,omitempty"`
	Prompt           string `json:"prompt"`
	TokensUsed       int    `json:"tokens_used"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	Provider         string `json:"provider"`
	DurationMs       int    `json:"duration_ms"`
}

// Result 一次生成调用的完整结果。所有失败形态都以数据形式返回，
// 调用方根据 Success 与 Validation.Valid 分支处理。
type Result struct {
	Success    bool              `json:"success"`
	Data       map[string]string `json:"data,omitempty"`
	Raw        string            `json:"raw,omitempty"`
	Note       string            `json:"note,omitempty"`
	Error      string            `json:"error,omitempty"`
	EntityType string            `json:"entity_type"`
	Validation *Validation       `json:"validation,omitempty"`
	Metadata   *Metadata         `json:"metadata,omitempty"`
}

// SaveResult 生成内容落库的结果
type SaveResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Record  any    `json:"record,omitempty"`
	Error   string `json:"error,omitempty"`
}
