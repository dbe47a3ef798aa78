package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rushteam/pricekit/core"
)

// LinearModel 实现了线性回归模型。
//
// 预测原理：线性加权求和 z = Bias + sum(Coefficient_i * Feature_i)。
// 输出即对数价格，不做任何压缩变换，由流水线负责指数还原。
type LinearModel struct {
	Bias         float64   `json:"bias"`          // 偏置项 (Bias / Intercept)
	Coefficients []float64 `json:"coefficients"`  // 特征系数，与特征向量一一对应
	Features     []string  `json:"feature_names"` // 训练特征名（可选，工件自述时用于特征清单解析）
}

// ParseLinearModel 从 JSON 工件解析线性模型。
func ParseLinearModel(data []byte) (*LinearModel, error) {
	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse linear model: %w", err)
	}
	if len(m.Coefficients) == 0 {
		return nil, core.NewDomainError(core.ModuleArtifact, core.ErrorCodeInvalidInput,
			"model: linear artifact has no coefficients")
	}
	return &m, nil
}

// LoadLinearModel 从文件加载线性模型工件。
func LoadLinearModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLinearModel(data)
}

func (m *LinearModel) Name() string { return "linear" }

func (m *LinearModel) Predict(vector []float64) (float64, error) {
	if len(vector) != len(m.Coefficients) {
		return 0, core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput,
			fmt.Sprintf("model: vector length %d does not match coefficients %d", len(vector), len(m.Coefficients)))
	}
	score := m.Bias
	for i, v := range vector {
		score += m.Coefficients[i] * v
	}
	return score, nil
}

// FeatureNames 返回工件自述的训练特征列表；工件未记录时返回 nil。
func (m *LinearModel) FeatureNames() []string {
	return m.Features
}

var _ core.RegressionModel = (*LinearModel)(nil)
var _ core.FeatureNamer = (*LinearModel)(nil)
