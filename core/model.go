package core

// RegressionModel 是回归模型的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（model）实现
//   - 输入是已经按精简特征列表排好序的特征向量
//   - 输出是对数价格（log price），由上层做指数还原
//
// 实现：
//   - model.LinearModel 实现此接口（线性回归工件）
//   - model.ForestModel 实现此接口（树集成工件）
//   - model.RPCModel 实现此接口（外部打分服务）
type RegressionModel interface {
	// Name 返回模型名称（用于日志/监控）
	Name() string

	// Predict 对单个特征向量做回归预测，返回对数价格
	Predict(vector []float64) (float64, error)
}

// Ensemble 是可选的能力接口：由多个子估计器组成的模型。
// 子估计器的预测分布用于置信区间的计算。
type Ensemble interface {
	RegressionModel

	// Estimators 返回全部子估计器
	Estimators() []RegressionModel
}

// ImportanceProvider 是可选的能力接口：自带特征重要性的模型。
// 重要性与精简特征列表一一对应。
type ImportanceProvider interface {
	// FeatureImportances 返回每个特征的重要性分数
	FeatureImportances() []float64
}

// FeatureNamer 是可选的能力接口：自述训练特征列表的模型工件。
// 精简特征列表解析时优先采用模型自述的列表。
type FeatureNamer interface {
	// FeatureNames 返回训练时使用的特征名列表（按输入顺序）
	FeatureNames() []string
}

// Model 错误定义（使用统一的 DomainError）
var (
	// ErrModelUnavailable 表示模型未加载或不可用
	ErrModelUnavailable = NewDomainError(ModuleModel, ErrorCodeUnavailable, "model: model not available")
)

// IsModelUnavailable 检查错误是否为模型不可用
func IsModelUnavailable(err error) bool {
	if err == nil {
		return false
	}
	domainErr := GetDomainError(err)
	if domainErr != nil && domainErr.Module == ModuleModel {
		return domainErr.Code == ErrorCodeUnavailable
	}
	return false
}
