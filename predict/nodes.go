package predict

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rushteam/pricekit/core"
	"github.com/rushteam/pricekit/feature"
	"github.com/rushteam/pricekit/pipeline"
	"github.com/rushteam/pricekit/pkg/utils"
)

// EnrichNode 是可选的补全阶段：在编码前用 Feast 在线特征补齐
// 缺失属性。Enricher 为 nil 时直接透传。
type EnrichNode struct {
	Enricher *feature.Enricher
}

func (n *EnrichNode) Name() string        { return "predict.enrich" }
func (n *EnrichNode) Kind() pipeline.Kind { return pipeline.KindEnrich }

func (n *EnrichNode) Process(ctx context.Context, est *core.Estimation) error {
	if n.Enricher == nil {
		return nil
	}
	before := len(est.Raw)
	est.Raw = n.Enricher.Enrich(ctx, est.Raw)
	if added := len(est.Raw) - before; added > 0 {
		est.PutLabel("enriched", utils.Label{
			Value:  fmt.Sprintf("%d", added),
			Source: "enrich",
		})
	}
	return nil
}

// EncodeNode 是编码阶段：类别码查表为序数，数值统一为 float64。
type EncodeNode struct {
	Encoder *feature.Encoder
}

func (n *EncodeNode) Name() string        { return "predict.encode" }
func (n *EncodeNode) Kind() pipeline.Kind { return pipeline.KindEncode }

func (n *EncodeNode) Process(_ context.Context, est *core.Estimation) error {
	encoder := n.Encoder
	if encoder == nil {
		encoder = feature.NewEncoder(nil)
	}
	encoded, err := encoder.Encode(est.Raw)
	if err != nil {
		return err
	}
	est.Encoded = encoded
	return nil
}

// AssembleNode 是组装阶段：按标准化器记录的列顺序生成全量向量，
// 编码结果优先，缺列用默认值表补齐。
//
// 没有标准化器（降级模式）时跳过，模型输入由 NormalizeNode 直接
// 从编码结果抽取。
type AssembleNode struct {
	Scaler *feature.FeatureScaler
}

func (n *AssembleNode) Name() string        { return "predict.assemble" }
func (n *AssembleNode) Kind() pipeline.Kind { return pipeline.KindAssemble }

func (n *AssembleNode) Process(_ context.Context, est *core.Estimation) error {
	if n.Scaler == nil {
		return nil
	}
	est.FullVector = n.Scaler.BuildFullVector(est.Encoded)
	return nil
}

// NormalizeNode 是标准化阶段：全量向量做 min-max 标准化，
// 再按精简特征列表抽取模型输入。
//
// 降级模式（无标准化器）：直接按特征名从编码结果取值，缺失取 0。
// 此时模型吃到的是原始尺度特征，结果仅供参考。
type NormalizeNode struct {
	Scaler        *feature.FeatureScaler
	ModelFeatures []string
}

func (n *NormalizeNode) Name() string        { return "predict.normalize" }
func (n *NormalizeNode) Kind() pipeline.Kind { return pipeline.KindNormalize }

func (n *NormalizeNode) Process(_ context.Context, est *core.Estimation) error {
	if n.Scaler == nil {
		input := make([]float64, len(n.ModelFeatures))
		for i, name := range n.ModelFeatures {
			input[i] = est.Encoded[name]
		}
		est.ModelInput = input
		est.PutLabel("mode", utils.Label{Value: "degraded", Source: "normalize"})
		return nil
	}

	normalized, err := n.Scaler.Transform(est.FullVector)
	if err != nil {
		return err
	}
	est.FullVector = normalized

	input, err := n.Scaler.Select(normalized, n.ModelFeatures)
	if err != nil {
		return err
	}
	est.ModelInput = input
	return nil
}

// InferNode 是推理阶段：模型在对数空间打分，指数还原为价格。
type InferNode struct {
	Model core.RegressionModel
}

func (n *InferNode) Name() string        { return "predict.infer" }
func (n *InferNode) Kind() pipeline.Kind { return pipeline.KindInfer }

func (n *InferNode) Process(_ context.Context, est *core.Estimation) error {
	if n.Model == nil {
		return core.ErrModelUnavailable
	}
	logPrice, err := n.Model.Predict(est.ModelInput)
	if err != nil {
		return err
	}
	est.LogPrice = logPrice
	est.Price = math.Exp(logPrice)
	est.PutLabel("model", utils.Label{Value: n.Model.Name(), Source: "infer"})
	return nil
}

// PostProcessNode 是后处理阶段：计算置信度档位、价格档位与层级，
// 集成模型额外给出置信区间。
type PostProcessNode struct {
	Model         core.RegressionModel
	ModelFeatures []string
	MaxConcurrent int
	Timeout       time.Duration
}

func (n *PostProcessNode) Name() string        { return "predict.postprocess" }
func (n *PostProcessNode) Kind() pipeline.Kind { return pipeline.KindPostProcess }

func (n *PostProcessNode) Process(ctx context.Context, est *core.Estimation) error {
	info := est.Info
	if info == nil {
		info = &core.EstimateInfo{}
		est.Info = info
	}

	// 只统计模型实际消费的特征，无关属性不影响置信度
	provided := 0
	for _, name := range n.ModelFeatures {
		if _, ok := est.Encoded[name]; ok {
			provided++
		}
	}
	info.InputFeatureCount = provided
	info.MissingFeatureCount = len(n.ModelFeatures) - provided
	info.Confidence = ConfidenceLabel(provided)
	info.Category = PriceCategory(est.Price)
	info.Tier = PriceTier(est.Price)

	if ensemble, ok := n.Model.(core.Ensemble); ok {
		samples := ensembleSpread(ctx, ensemble, est.ModelInput, n.MaxConcurrent, n.Timeout)
		if std := sampleStdDev(samples); std > 0 {
			info.StdDeviation = std
			info.ConfidenceInterval = confidenceInterval(est.Price, std)
		}
	}
	return nil
}

var (
	_ pipeline.Node = (*EnrichNode)(nil)
	_ pipeline.Node = (*EncodeNode)(nil)
	_ pipeline.Node = (*AssembleNode)(nil)
	_ pipeline.Node = (*NormalizeNode)(nil)
	_ pipeline.Node = (*InferNode)(nil)
	_ pipeline.Node = (*PostProcessNode)(nil)
)
