package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"loreforge-ai-api/pkg/logger"
)

// LoadDir 加载磁盘模板目录中的 JSON 文件并合并进目录。
// 每个文件是单个模板对象或模板对象数组；磁盘模板补充而非替换内置模板。
// 目录不存在视为未配置，直接跳过。
func (s *Store) LoadDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read template dir %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		templates, err := loadTemplateFile(path)
		if err != nil {
			return err
		}
		for _, tpl := range templates {
			s.register(tpl)
		}
		logger.Default().Info("loaded prompt templates from disk",
			"file", path,
			"count", len(templates),
		)
	}

	return nil
}

// loadTemplateFile 解析单个模板文件，兼容单对象与数组两种形态
func loadTemplateFile(path string) ([]*Template, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", path, err)
	}

	trimmed := strings.TrimSpace(string(content))
	if strings.HasPrefix(trimmed, "[") {
		var list []*Template
		if err := json.Unmarshal(content, &list); err != nil {
			return nil, fmt.Errorf("failed to parse template file %s: %w", path, err)
		}
		return list, nil
	}

	var single Template
	if err := json.Unmarshal(content, &single); err != nil {
		return nil, fmt.Errorf("failed to parse template file %s: %w", path, err)
	}
	return []*Template{&single}, nil
}
