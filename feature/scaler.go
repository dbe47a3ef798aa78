package feature

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rushteam/pricekit/core"
	"github.com/rushteam/pricekit/schema"
)

// ScalerParams 标准化参数（min-max）
type ScalerParams struct {
	// Min 训练集最小值
	Min float64 `json:"min"`
	// Max 训练集最大值
	Max float64 `json:"max"`
}

// FeatureScaler 特征标准化器，对应 scaler.json。
// 记录训练时的全量列顺序与每列的 min/max 参数；
// 全量向量必须按 FeatureColumns 的顺序组装，顺序不允许重排。
type FeatureScaler struct {
	// FeatureColumns 全量特征列名列表（按训练时顺序）
	FeatureColumns []string `json:"feature_columns"`
	// Params 每列的标准化参数
	Params map[string]ScalerParams `json:"params"`
}

// ParseFeatureScaler 从 JSON 工件解析特征标准化器。
func ParseFeatureScaler(data []byte) (*FeatureScaler, error) {
	var scaler FeatureScaler
	if err := json.Unmarshal(data, &scaler); err != nil {
		return nil, fmt.Errorf("解析特征标准化器失败: %w", err)
	}
	if len(scaler.FeatureColumns) == 0 {
		return nil, core.NewDomainError(core.ModuleArtifact, core.ErrorCodeInvalidInput,
			"scaler: artifact has no feature columns")
	}
	return &scaler, nil
}

// LoadFeatureScaler 从文件加载特征标准化器。
//
// 用法：
//
//	scaler, err := feature.LoadFeatureScaler("artifacts/scaler.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	normalized, err := scaler.Transform(fullVector)
func LoadFeatureScaler(path string) (*FeatureScaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取特征标准化器文件失败: %w", err)
	}
	return ParseFeatureScaler(data)
}

// LoadFeatureScalerFromStore 从 KV 存储加载特征标准化器（如 Redis 集中下发）。
func LoadFeatureScalerFromStore(ctx context.Context, s core.Store, key string) (*FeatureScaler, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return ParseFeatureScaler(data)
}

// NormalizeValue 对单个特征值做 min-max 标准化。
//
// 公式：normalized = (x - min) / (max - min)
//
// 如果特征不在参数表中，或 max <= min，则返回原值。
func (s *FeatureScaler) NormalizeValue(featureName string, value float64) float64 {
	if params, ok := s.Params[featureName]; ok {
		if span := params.Max - params.Min; span > 0 {
			return (value - params.Min) / span
		}
	}
	return value
}

// BuildFullVector 按记录的列顺序组装全量向量：
// 每列优先取编码结果，缺失时取默认值表，默认值表也没有的列取 0。
func (s *FeatureScaler) BuildFullVector(encoded map[string]float64) []float64 {
	vector := make([]float64, len(s.FeatureColumns))
	for i, col := range s.FeatureColumns {
		if v, ok := encoded[col]; ok {
			vector[i] = v
			continue
		}
		vector[i] = schema.DefaultValue(col)
	}
	return vector
}

// Transform 对按 FeatureColumns 顺序组装的全量向量做标准化。
// 向量长度与列数不一致视为工件与输入不匹配。
func (s *FeatureScaler) Transform(vector []float64) ([]float64, error) {
	if len(vector) != len(s.FeatureColumns) {
		return nil, core.NewDomainError(core.ModuleArtifact, core.ErrorCodeInvalidInput,
			fmt.Sprintf("scaler: vector length %d does not match feature columns %d", len(vector), len(s.FeatureColumns)))
	}
	normalized := make([]float64, len(vector))
	for i, col := range s.FeatureColumns {
		normalized[i] = s.NormalizeValue(col, vector[i])
	}
	return normalized, nil
}

// Select 从标准化后的全量向量中按名抽取精简特征，保持 reduced 的顺序。
// reduced 中的名字必须全部出现在 FeatureColumns 中。
func (s *FeatureScaler) Select(normalized []float64, reduced []string) ([]float64, error) {
	if len(normalized) != len(s.FeatureColumns) {
		return nil, core.NewDomainError(core.ModuleArtifact, core.ErrorCodeInvalidInput,
			fmt.Sprintf("scaler: vector length %d does not match feature columns %d", len(normalized), len(s.FeatureColumns)))
	}
	index := make(map[string]int, len(s.FeatureColumns))
	for i, col := range s.FeatureColumns {
		index[col] = i
	}
	out := make([]float64, len(reduced))
	for i, name := range reduced {
		pos, ok := index[name]
		if !ok {
			return nil, core.NewDomainError(core.ModuleSchema, core.ErrorCodeInvalidInput,
				fmt.Sprintf("scaler: reduced feature %q not found in full schema", name))
		}
		out[i] = normalized[pos]
	}
	return out, nil
}
