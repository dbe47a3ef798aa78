package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		// 定义变量类型
		cel.Variable("attrs", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是属性校验规则的解释器，使用 CEL (Common Expression Language) 实现。
// CEL 是 Google 开发的表达式语言，具有类型安全、高性能、线程安全等特性。
//
// 表达式语法（CEL 标准语法）：
//   - 基础：attrs.CentralAir == "Y" / attrs.MSZoning != "C (all)"
//   - 数值：attrs.GrLivArea > 500.0 / attrs.OverallQual >= 5.0
//   - 逻辑：attrs.YearBuilt > 1900.0 && attrs.OverallCond >= 3.0
//   - 存在性："GarageType" in attrs
//
// 示例：
//   - `!("GrLivArea" in attrs) || double(attrs.GrLivArea) <= 10000.0`
//   - `attrs.Neighborhood in ["NoRidge", "NridgHt", "StoneBr"]`
//
// 注意：CEL 访问不存在的 key 会报错，规则应先用 `"key" in attrs` 做存在性保护。
type Eval struct {
	attrs map[string]any
	env   *cel.Env
}

// NewEval 创建一个新的规则解释器。
// 同一个解释器可以多次调用 Evaluate 方法。
func NewEval(attrs map[string]any) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		attrs: attrs,
		env:   env,
	}
}

// Evaluate 解析并执行规则表达式，返回布尔结果。
// 空表达式视为恒真。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}

	// 编译表达式
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	// 创建程序
	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	// 执行表达式
	out, _, err := prg.Eval(map[string]interface{}{
		"attrs": e.buildAttrs(),
	})
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	// 转换为布尔值
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// buildAttrs 构建 CEL 表达式的输入数据。
// 整数统一转为 float64，避免规则里 int/double 比较的类型错误。
func (e *Eval) buildAttrs() map[string]interface{} {
	attrs := make(map[string]interface{}, len(e.attrs))
	for k, v := range e.attrs {
		switch val := v.(type) {
		case int:
			attrs[k] = float64(val)
		case int32:
			attrs[k] = float64(val)
		case int64:
			attrs[k] = float64(val)
		case float32:
			attrs[k] = float64(val)
		default:
			attrs[k] = v
		}
	}
	return attrs
}
