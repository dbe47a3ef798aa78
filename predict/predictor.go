package predict

import (
	"context"
	"time"

	"github.com/rushteam/pricekit/core"
	"github.com/rushteam/pricekit/feature"
	"github.com/rushteam/pricekit/pipeline"
	"github.com/rushteam/pricekit/schema"
)

// Predictor 是估价门面：组装默认 Pipeline，并把所有内部错误
// 吸收成结果里的 Error 字段，保证估价调用永不向上抛异常。
//
// 设计原则：
//   - 配置错误（目录非法、精简特征越界）在构造时失败
//   - 运行时错误（输入非法、模型失败）折叠进 EstimateInfo.Error
//   - 模型未加载时短路返回，不做任何编码工作
type Predictor struct {
	model         core.RegressionModel
	encoder       *feature.Encoder
	scaler        *feature.FeatureScaler
	modelFeatures []string
	featurePaths  []string
	metadata      *feature.ModelMetadata
	enricher      *feature.Enricher
	rules         []Rule
	maxConcurrent int
	timeout       time.Duration

	pipe *pipeline.Pipeline
}

// Option 配置 Predictor。
type Option func(*Predictor)

// WithCatalog 指定类别属性目录（默认使用内置目录）。
func WithCatalog(catalog *schema.Catalog) Option {
	return func(p *Predictor) {
		p.encoder = feature.NewEncoder(catalog)
	}
}

// WithScaler 指定特征标准化器。不设置时走降级模式：
// 模型输入直接取编码结果，不做标准化。
func WithScaler(scaler *feature.FeatureScaler) Option {
	return func(p *Predictor) {
		p.scaler = scaler
	}
}

// WithModelFeatures 显式指定精简特征列表（按模型输入顺序）。
// 优先级高于模型自述与外部清单。
func WithModelFeatures(names []string) Option {
	return func(p *Predictor) {
		p.modelFeatures = names
	}
}

// WithFeatureListPaths 指定精简特征清单 CSV 的候选路径，
// 按顺序尝试（见 feature.ResolveModelFeatures 的级联规则）。
func WithFeatureListPaths(paths ...string) Option {
	return func(p *Predictor) {
		p.featurePaths = paths
	}
}

// WithMetadata 指定模型元数据（默认使用内置元数据）。
func WithMetadata(meta *feature.ModelMetadata) Option {
	return func(p *Predictor) {
		p.metadata = meta
	}
}

// WithEnricher 启用 Feast 特征补全。
func WithEnricher(enricher *feature.Enricher) Option {
	return func(p *Predictor) {
		p.enricher = enricher
	}
}

// WithRules 追加自定义校验规则（CEL 表达式）。
func WithRules(rules ...Rule) Option {
	return func(p *Predictor) {
		p.rules = append(p.rules, rules...)
	}
}

// WithMaxConcurrent 限制置信区间计算的子估计器并发数（0 表示无限制）。
func WithMaxConcurrent(n int) Option {
	return func(p *Predictor) {
		p.maxConcurrent = n
	}
}

// WithTimeout 限制置信区间计算的整体耗时（0 表示不限制）。
func WithTimeout(d time.Duration) Option {
	return func(p *Predictor) {
		p.timeout = d
	}
}

// NewPredictor 创建估价器。model 可以为 nil，此时所有估价调用
// 短路返回模型不可用错误（适合工件尚未就绪的启动场景）。
//
// 配置错误在这里失败：目录不合法、精简特征不是全量列的子集。
func NewPredictor(model core.RegressionModel, opts ...Option) (*Predictor, error) {
	p := &Predictor{
		model:    model,
		metadata: feature.DefaultModelMetadata(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.encoder == nil {
		p.encoder = feature.NewEncoder(nil)
	}
	if err := p.encoder.Catalog().Validate(); err != nil {
		return nil, err
	}

	if len(p.modelFeatures) == 0 {
		p.modelFeatures = feature.ResolveModelFeatures(model, p.featurePaths...)
	}
	// 模型消费的属性必须能编码为数值，其余属性由编码器过滤
	p.encoder.Consume(p.modelFeatures...)
	if p.scaler != nil {
		if err := feature.ValidateSubset(p.modelFeatures, p.scaler.FeatureColumns); err != nil {
			return nil, err
		}
	}

	p.pipe = &pipeline.Pipeline{
		Nodes: []pipeline.Node{
			&EnrichNode{Enricher: p.enricher},
			&EncodeNode{Encoder: p.encoder},
			&AssembleNode{Scaler: p.scaler},
			&NormalizeNode{Scaler: p.scaler, ModelFeatures: p.modelFeatures},
			&InferNode{Model: p.model},
			&PostProcessNode{
				Model:         p.model,
				ModelFeatures: p.modelFeatures,
				MaxConcurrent: p.maxConcurrent,
				Timeout:       p.timeout,
			},
		},
	}
	return p, nil
}

// Predict 估价。返回价格与附加说明；任何失败都折叠为
// (0, Error 非空的说明)，不向调用方抛错。
func (p *Predictor) Predict(ctx context.Context, raw map[string]any) (float64, *core.EstimateInfo) {
	est, err := p.Estimate(ctx, raw)
	if err != nil {
		return 0, &core.EstimateInfo{Error: err.Error()}
	}
	return est.Price, est.Info
}

// Estimate 估价并返回完整的承载结构（含向量与标签），
// 供需要解释细节的调用方使用。失败时返回错误。
func (p *Predictor) Estimate(ctx context.Context, raw map[string]any) (*core.Estimation, error) {
	if p.model == nil {
		return nil, core.ErrModelUnavailable
	}

	est := core.NewEstimation(raw)
	if err := p.pipe.Run(ctx, est); err != nil {
		return nil, err
	}
	return est, nil
}

// Validate 对输入做业务合理性校验（含构造时注入的自定义规则）。
// 校验与估价互相独立。
func (p *Predictor) Validate(attrs map[string]any) (bool, []string) {
	return Validate(attrs, p.rules...)
}

// ModelFeatures 返回精简特征列表的拷贝。
func (p *Predictor) ModelFeatures() []string {
	out := make([]string, len(p.modelFeatures))
	copy(out, p.modelFeatures)
	return out
}

// Metadata 返回模型元数据。
func (p *Predictor) Metadata() *feature.ModelMetadata {
	return p.metadata
}
