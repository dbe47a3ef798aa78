package core

import "github.com/rushteam/pricekit/pkg/utils"

// Estimation 是估价链路中的统一承载结构：原始属性、编码特征、
// 向量、预测结果与标签，贯穿整个 Pipeline 透传。
type Estimation struct {
	// Raw 是调用方提交的原始属性表（类别码 / 数值 / 数值字符串混合）
	Raw map[string]any

	// Encoded 是编码后的特征表（类别码已映射为序数，数值已统一为 float64）
	Encoded map[string]float64

	// FullVector 是按标准化器记录的列顺序排好的全量特征向量
	FullVector []float64

	// ModelInput 是按精简特征列表排好的模型输入向量
	ModelInput []float64

	// LogPrice 是模型输出的对数价格
	LogPrice float64

	// Price 是指数还原后的最终价格
	Price float64

	// Info 是结果的附加说明（置信度、区间、档位、错误）
	Info *EstimateInfo

	// Labels 用于解释与策略驱动，各阶段可写入自己的标记
	Labels map[string]utils.Label
}

func NewEstimation(raw map[string]any) *Estimation {
	return &Estimation{
		Raw:     raw,
		Encoded: make(map[string]float64),
		Info:    &EstimateInfo{},
		Labels:  make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (e *Estimation) PutLabel(key string, lbl utils.Label) {
	if e.Labels == nil {
		e.Labels = make(map[string]utils.Label)
	}
	if old, ok := e.Labels[key]; ok {
		e.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	e.Labels[key] = lbl
}

// GetLabel 获取 Label。
func (e *Estimation) GetLabel(key string) (utils.Label, bool) {
	if e.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := e.Labels[key]
	return lbl, ok
}

// Interval 是价格置信区间，下界不会低于 0。
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// EstimateInfo 是单次估价的附加说明。
// 估价失败时 Error 非空，其余字段为零值。
type EstimateInfo struct {
	// Confidence 置信度档位：High / Medium / Low
	Confidence string `json:"confidence,omitempty"`

	// Category 价格档位（粗分三档）
	Category string `json:"category,omitempty"`

	// Tier 价格层级（细分四级）
	Tier string `json:"tier,omitempty"`

	// ConfidenceInterval 集成模型的置信区间；非集成模型为 nil
	ConfidenceInterval *Interval `json:"confidence_interval,omitempty"`

	// StdDeviation 子估计器预测值的标准差；非集成模型为 0
	StdDeviation float64 `json:"std_deviation,omitempty"`

	// InputFeatureCount 调用方实际提供的模型特征数
	InputFeatureCount int `json:"input_feature_count"`

	// MissingFeatureCount 由默认值补齐的模型特征数
	MissingFeatureCount int `json:"missing_feature_count"`

	// Error 失败原因；成功时为空
	Error string `json:"error,omitempty"`
}

// Range 返回展示用的价格区间：优先使用集成模型的置信区间，
// 否则退化为 price ± ratio 的近似带（ratio 通常取 0.15）。
func (info *EstimateInfo) Range(price, ratio float64) Interval {
	if info.ConfidenceInterval != nil {
		return *info.ConfidenceInterval
	}
	lower := price * (1 - ratio)
	if lower < 0 {
		lower = 0
	}
	return Interval{Lower: lower, Upper: price * (1 + ratio)}
}
