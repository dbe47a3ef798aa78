package feature

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rushteam/pricekit/core"
	"github.com/rushteam/pricekit/schema"
)

// ResolveModelFeatures 解析精简特征列表（模型实际消费的特征名，按顺序）。
//
// 显式的级联尝试：
//  1. 模型工件自述的特征列表（core.FeatureNamer）
//  2. 外部特征清单 CSV（selected_features 列），可给多个候选路径
//  3. 内置兜底列表（字面常量，永不失败）
//
// 每次失败记录日志但不中断，保证“永远有一份特征清单”。
func ResolveModelFeatures(m core.RegressionModel, csvPaths ...string) []string {
	if namer, ok := m.(core.FeatureNamer); ok {
		if names := namer.FeatureNames(); len(names) > 0 {
			return names
		}
	}

	for _, path := range csvPaths {
		names, err := LoadSelectedFeatures(path)
		if err != nil {
			log.Printf("load selected features from %s: %v", path, err)
			continue
		}
		if len(names) > 0 {
			return names
		}
	}

	return schema.FallbackModelFeatures()
}

// ParseSelectedFeatures 解析特征清单 CSV：取 selected_features 列，
// 按行序收集非空值。
func ParseSelectedFeatures(data []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv")
	}

	col := -1
	for i, name := range records[0] {
		if strings.TrimSpace(name) == "selected_features" {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("column selected_features not found")
	}

	names := make([]string, 0, len(records)-1)
	for _, row := range records[1:] {
		if col >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[col])
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// LoadSelectedFeatures 从 CSV 文件加载特征清单。
func LoadSelectedFeatures(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSelectedFeatures(data)
}

// LoadSelectedFeaturesFromStore 从 KV 存储加载特征清单。
func LoadSelectedFeaturesFromStore(ctx context.Context, s core.Store, key string) ([]string, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return ParseSelectedFeatures(data)
}

// ValidateSubset 校验精简特征列表是精简⊆全量的有序子集。
// 违反属于配置错误，应在启动时失败。
func ValidateSubset(reduced, full []string) error {
	index := make(map[string]bool, len(full))
	for _, name := range full {
		index[name] = true
	}
	for _, name := range reduced {
		if !index[name] {
			return core.NewDomainError(core.ModuleSchema, core.ErrorCodeInvalidInput,
				fmt.Sprintf("schema: reduced feature %q not in full schema", name))
		}
	}
	return nil
}
