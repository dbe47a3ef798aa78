// Package feature 提供特征编码、标准化与特征清单解析：把调用方提交的
// 原始属性表转换成模型可用的数值向量，以及承载训练侧导出的各类工件。
package feature

import (
	"fmt"

	"github.com/rushteam/pricekit/core"
	"github.com/rushteam/pricekit/pkg/conv"
	"github.com/rushteam/pricekit/schema"
)

// Encoder 是属性编码器：类别属性按目录查表编码为序数，
// 其余属性统一转为 float64。
//
// 编码是全函数：类别属性遇到未知码时静默回退到该属性的默认序数，
// 永远不会因为未见过的取值而失败。调用方提交的属性表往往比模型
// 消费的特征宽得多（目录之外还有大量类别属性），这些属性无法按
// 数值解析时直接过滤掉，与训练侧按精简特征筛选输入的行为一致。
// 只有声明过消费的属性“应为数值却无法解析”时才返回错误，
// 由上层在 predict 边界统一吸收。
type Encoder struct {
	catalog  *schema.Catalog
	consumed map[string]bool
}

// NewEncoder 创建编码器；catalog 为 nil 时使用内置目录。
func NewEncoder(catalog *schema.Catalog) *Encoder {
	if catalog == nil {
		catalog = schema.Default()
	}
	return &Encoder{catalog: catalog}
}

// Consume 声明模型实际消费的属性名。声明后这些属性若无法编码为
// 数值会让 Encode 返回错误；未声明的属性无法处理时一律忽略。
func (e *Encoder) Consume(names ...string) {
	if e.consumed == nil {
		e.consumed = make(map[string]bool, len(names))
	}
	for _, name := range names {
		e.consumed[name] = true
	}
}

// Catalog 返回编码器使用的属性目录。
func (e *Encoder) Catalog() *schema.Catalog {
	return e.catalog
}

// Encode 编码原始属性表。
//
// 规则：
//   - 类别属性：按目录查 code 对应的序数；未知码回退到属性默认序数；
//     已编码的数值直接透传（上游可能传入编码后的结果）
//   - 非类别属性：转为 float64，数值字符串按十进制解析
//   - 目录外且无法按数值解析的属性：已声明消费的报错，其余过滤
//   - 缺失属性不补：默认值由下游向量组装阶段统一处理
func (e *Encoder) Encode(raw map[string]any) (map[string]float64, error) {
	encoded := make(map[string]float64, len(raw))
	for name, value := range raw {
		if attr := e.catalog.Attr(name); attr != nil {
			if f, ok := conv.ToFloat64(value); ok {
				encoded[name] = f
				continue
			}
			code, _ := conv.ToString(value)
			if ord, ok := attr.Ordinal(code); ok {
				encoded[name] = ord
				continue
			}
			ord, _ := attr.Ordinal(attr.Default)
			encoded[name] = ord
			continue
		}

		f, ok := conv.ParseNumber(value)
		if !ok {
			if e.consumed[name] {
				return nil, core.NewDomainError(core.ModulePredictor, core.ErrorCodeInvalidInput,
					fmt.Sprintf("encode: attribute %q has non-numeric value %v", name, value))
			}
			// 模型不消费的属性，下游组装阶段用默认值
			continue
		}
		encoded[name] = f
	}
	return encoded, nil
}
