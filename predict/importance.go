package predict

import (
	"sort"

	"github.com/rushteam/pricekit/core"
)

// FeatureScore 是一个特征的重要性分数。
type FeatureScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// FeatureImportance 返回按重要性降序排列的前 topN 个特征。
// 模型不提供重要性（非树模型）或特征列表为空时返回 nil。
func (p *Predictor) FeatureImportance(topN int) []FeatureScore {
	provider, ok := p.model.(core.ImportanceProvider)
	if !ok || len(p.modelFeatures) == 0 {
		return nil
	}

	importances := provider.FeatureImportances()
	n := len(p.modelFeatures)
	if len(importances) < n {
		n = len(importances)
	}

	scores := make([]FeatureScore, n)
	for i := 0; i < n; i++ {
		scores[i] = FeatureScore{Name: p.modelFeatures[i], Score: importances[i]}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if topN > 0 && topN < len(scores) {
		scores = scores[:topN]
	}
	return scores
}
