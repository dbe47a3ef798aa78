package feature

import (
	"encoding/json"
	"fmt"
	"os"
)

// PerformanceMetrics 训练侧评估指标（对数价格空间）。
type PerformanceMetrics struct {
	R2Score float64 `json:"r2_score"`
	MAE     float64 `json:"mae"`
	RMSE    float64 `json:"rmse"`
	MSE     float64 `json:"mse"`
}

// ModelMetadata 模型元数据，对应 model_meta.json。
// 纯展示信息，不参与推理。
type ModelMetadata struct {
	// ModelType 模型类型描述
	ModelType string `json:"model_type"`
	// TrainingDate 训练日期
	TrainingDate string `json:"training_date"`
	// FeaturesCount 特征筛选前的全量特征数
	FeaturesCount int `json:"features_count"`
	// SelectedFeaturesCount 特征筛选后的精简特征数
	SelectedFeaturesCount int `json:"selected_features_count"`
	// Performance 评估指标
	Performance PerformanceMetrics `json:"performance_metrics"`
	// PreprocessingSteps 训练侧预处理步骤说明
	PreprocessingSteps []string `json:"preprocessing_steps"`
}

// DefaultModelMetadata 返回内置的模型元数据，与当前随附的训练工件对应。
func DefaultModelMetadata() *ModelMetadata {
	return &ModelMetadata{
		ModelType:             "Random Forest Regressor",
		TrainingDate:          "2025-07-02",
		FeaturesCount:         82,
		SelectedFeaturesCount: 21,
		Performance: PerformanceMetrics{
			R2Score: 0.9818,
			MAE:     0.0367,
			RMSE:    0.0539,
			MSE:     0.0029,
		},
		PreprocessingSteps: []string{
			"Missing value handling for categorical and numerical features",
			"Log transformation for skewed features",
			"Year features converted to age features",
			"Categorical encoding using target mean encoding",
			"Rare category handling (< 1% frequency)",
			"Feature scaling using MinMaxScaler",
			"Feature selection using Lasso (α=0.005)",
			"Final model: Random Forest (100 estimators)",
		},
	}
}

// LoadModelMetadata 从文件加载模型元数据。
func LoadModelMetadata(path string) (*ModelMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取模型元数据文件失败: %w", err)
	}

	var meta ModelMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("解析模型元数据失败: %w", err)
	}

	return &meta, nil
}
