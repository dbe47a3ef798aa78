// Package predict 实现估价主链路：编码、补全、组装、标准化、推理、
// 后处理六个阶段的 Node，以及对外的 Predictor 门面。
package predict

// 价格阈值表。档位（Category，粗分三档）与层级（Tier，细分四级）
// 共用同一组阈值，避免两处演化不一致。
const (
	priceBudgetMax   = 150000 // 低于此为入门价位
	priceStandardMax = 250000 // 低于此为标准价位
	pricePremiumMin  = 400000 // 不低于此为高端价位
)

// 置信度档位的输入特征数阈值：调用方提供的模型特征越多，
// 默认值补齐越少，估价越可信。
const (
	confidenceHighMin   = 15
	confidenceMediumMin = 5
)

// PriceCategory 返回价格档位（粗分三档，展示用）。
func PriceCategory(price float64) string {
	switch {
	case price < priceBudgetMax:
		return "Budget (Under $150K)"
	case price > pricePremiumMin:
		return "Premium ($400K+)"
	default:
		return "Mid-range ($150K-$400K)"
	}
}

// PriceTier 返回价格层级（细分四级，展示用）。
func PriceTier(price float64) string {
	switch {
	case price < priceBudgetMax:
		return "Entry Level"
	case price < priceStandardMax:
		return "Standard"
	case price < pricePremiumMin:
		return "Premium"
	default:
		return "Luxury"
	}
}

// ConfidenceLabel 按调用方实际提供的模型特征数返回置信度档位。
func ConfidenceLabel(inputFeatureCount int) string {
	switch {
	case inputFeatureCount >= confidenceHighMin:
		return "High"
	case inputFeatureCount >= confidenceMediumMin:
		return "Medium"
	default:
		return "Low"
	}
}
