package predict

import "github.com/rushteam/pricekit/feature"

// ModelInfo 是模型状态与元数据的汇总视图（展示用）。
type ModelInfo struct {
	// Status 模型加载状态："Loaded" / "Not Loaded"
	Status string `json:"status"`

	// Metadata 训练侧导出的模型元数据
	Metadata *feature.ModelMetadata `json:"metadata,omitempty"`

	// FeatureCount 精简特征数（模型实际消费的特征数）
	FeatureCount int `json:"feature_count"`

	// ModelFeatures 精简特征列表
	ModelFeatures []string `json:"model_features"`

	// ScalerFeatureCount 标准化器记录的全量特征数；降级模式为 0
	ScalerFeatureCount int `json:"scaler_features_count"`
}

// ModelInfo 返回当前估价器的模型信息汇总。
func (p *Predictor) ModelInfo() *ModelInfo {
	info := &ModelInfo{
		Status:        "Not Loaded",
		Metadata:      p.metadata,
		FeatureCount:  len(p.modelFeatures),
		ModelFeatures: p.ModelFeatures(),
	}
	if p.model != nil {
		info.Status = "Loaded"
	}
	if p.scaler != nil {
		info.ScalerFeatureCount = len(p.scaler.FeatureColumns)
	}
	return info
}
