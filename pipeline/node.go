package pipeline

import (
	"context"

	"github.com/rushteam/pricekit/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindEncode      Kind = "encode"      // 编码阶段：原始属性 -> 数值特征
	KindEnrich      Kind = "enrich"      // 补全阶段：从特征库补齐缺失属性
	KindAssemble    Kind = "assemble"    // 组装阶段：默认值叠加编码结果，生成全量向量
	KindNormalize   Kind = "normalize"   // 标准化阶段：全量向量标准化并抽取模型输入
	KindInfer       Kind = "infer"       // 推理阶段：模型打分并做指数还原
	KindPostProcess Kind = "postprocess" // 后处理阶段：置信度、区间、档位等附加信息
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用“就地修改 Estimation”的形态，各阶段向承载结构写入自己的产物。
type Node interface {
	Name() string
	Kind() Kind

	Process(ctx context.Context, est *core.Estimation) error
}
