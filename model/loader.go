package model

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rushteam/pricekit/core"
)

// ParseModel 从 JSON 工件解析回归模型，按工件自述的 type 字段分发。
// 工件未声明 type 时按结构嗅探：有 trees 按树集成解析，有 coefficients 按线性解析。
func ParseModel(data []byte) (core.RegressionModel, error) {
	var head struct {
		Type         string            `json:"type"`
		Trees        []json.RawMessage `json:"trees"`
		Coefficients []float64         `json:"coefficients"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}

	switch head.Type {
	case "forest", "random_forest":
		return ParseForestModel(data)
	case "linear":
		return ParseLinearModel(data)
	case "":
		if len(head.Trees) > 0 {
			return ParseForestModel(data)
		}
		if len(head.Coefficients) > 0 {
			return ParseLinearModel(data)
		}
		return nil, core.NewDomainError(core.ModuleArtifact, core.ErrorCodeInvalidInput,
			"model: artifact has neither trees nor coefficients")
	default:
		return nil, core.NewDomainError(core.ModuleArtifact, core.ErrorCodeNotSupported,
			fmt.Sprintf("model: unknown artifact type %q", head.Type))
	}
}

// LoadModel 从文件加载回归模型工件。
func LoadModel(path string) (core.RegressionModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseModel(data)
}

// LoadModelFromStore 从 KV 存储加载回归模型工件（如 Redis 集中下发）。
func LoadModelFromStore(ctx context.Context, s core.Store, key string) (core.RegressionModel, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return ParseModel(data)
}
