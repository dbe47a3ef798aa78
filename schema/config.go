package schema

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile 是目录配置文件的结构（支持 YAML/JSON）。
type catalogFile struct {
	Attributes []CategoricalAttr `yaml:"attributes" json:"attributes"`
}

// LoadCatalogFromYAML 从 YAML 文件加载属性目录。
// 加载后立即做一致性校验，配置不一致在启动时直接失败。
func LoadCatalogFromYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg catalogFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	catalog := NewCatalog(cfg.Attributes)
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// LoadCatalogFromJSON 从 JSON 文件加载属性目录。
func LoadCatalogFromJSON(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg catalogFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	catalog := NewCatalog(cfg.Attributes)
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}
