package predict

import (
	"fmt"

	"github.com/rushteam/pricekit/pkg/conv"
	"github.com/rushteam/pricekit/pkg/dsl"
)

// nonNegativeAttrs 是必须为非负数值的关键属性。
var nonNegativeAttrs = []string{
	"LotArea",
	"GrLivArea",
	"YearBuilt",
	"OverallQual",
	"OverallCond",
}

// Rule 是基于 CEL 表达式的自定义校验规则。
// 表达式求值为 false 时产生一条 Message 违规。
//
// 示例：
//
//	predict.Rule{
//	    Expr:    `!("GarageCars" in attrs) || double(attrs.GarageCars) <= 10.0`,
//	    Message: "Garage capacity seems unusually large",
//	}
type Rule struct {
	Expr    string
	Message string
}

// Validate 对原始属性表做业务合理性校验，返回是否通过与违规说明列表。
// 校验与估价互相独立：校验不通过的输入仍然可以估价。
//
// 内置规则：
//   - 关键数值属性必须是非负数值
//   - 翻修年份不得早于建造年份
//   - 居住面积超过 10000 平方英尺视为异常
//
// 自定义规则通过 rules 追加，表达式编译或求值失败时跳过该规则
// （规则配置错误不应阻塞校验本身）。
func Validate(attrs map[string]any, rules ...Rule) (bool, []string) {
	var violations []string

	for _, name := range nonNegativeAttrs {
		v, ok := attrs[name]
		if !ok {
			continue
		}
		f, numeric := conv.ParseNumber(v)
		if !numeric || f < 0 {
			violations = append(violations, fmt.Sprintf("%s must be a positive number", name))
		}
	}

	if built, ok1 := conv.ParseNumber(attrs["YearBuilt"]); ok1 {
		if remod, ok2 := conv.ParseNumber(attrs["YearRemodAdd"]); ok2 && remod < built {
			violations = append(violations, "Renovation year cannot be before construction year")
		}
	}

	if area, ok := conv.ParseNumber(attrs["GrLivArea"]); ok && area > 10000 {
		violations = append(violations, "Living area seems unusually large (>10,000 sq ft)")
	}

	if len(rules) > 0 {
		eval := dsl.NewEval(attrs)
		for _, r := range rules {
			if r.Expr == "" {
				continue
			}
			pass, err := eval.Evaluate(r.Expr)
			if err != nil {
				continue
			}
			if !pass {
				violations = append(violations, r.Message)
			}
		}
	}

	return len(violations) == 0, violations
}
