package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rushteam/pricekit/core"
)

// TreeNode 是回归树的一个节点。
// 叶子节点 Left/Right 为空，Value 即该叶子的预测值（对数价格）。
type TreeNode struct {
	Feature   int       `json:"feature"`   // 划分特征在向量中的下标
	Threshold float64   `json:"threshold"` // 划分阈值：<= 走左子树，> 走右子树
	Left      *TreeNode `json:"left,omitempty"`
	Right     *TreeNode `json:"right,omitempty"`
	Value     float64   `json:"value"` // 叶子预测值
}

// predict 沿树下行到叶子。特征下标越界视为工件与输入不匹配。
func (n *TreeNode) predict(vector []float64) (float64, error) {
	node := n
	for node.Left != nil && node.Right != nil {
		if node.Feature < 0 || node.Feature >= len(vector) {
			return 0, core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput,
				fmt.Sprintf("model: tree feature index %d out of range for vector length %d", node.Feature, len(vector)))
		}
		if vector[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Value, nil
}

// ForestModel 实现了回归树集成（随机森林）。
//
// 预测原理：每棵树独立预测，最终输出为全部树预测值的均值。
// 子估计器的预测分布用于置信区间的计算。
type ForestModel struct {
	Trees       []*TreeNode `json:"trees"`
	Importances []float64   `json:"feature_importances"` // 与特征向量一一对应（可选）
	Features    []string    `json:"feature_names"`       // 训练特征名（可选）
}

// ParseForestModel 从 JSON 工件解析树集成模型。
func ParseForestModel(data []byte) (*ForestModel, error) {
	var m ForestModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse forest model: %w", err)
	}
	if len(m.Trees) == 0 {
		return nil, core.NewDomainError(core.ModuleArtifact, core.ErrorCodeInvalidInput,
			"model: forest artifact has no trees")
	}
	return &m, nil
}

// LoadForestModel 从文件加载树集成模型工件。
func LoadForestModel(path string) (*ForestModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseForestModel(data)
}

func (m *ForestModel) Name() string { return "forest" }

func (m *ForestModel) Predict(vector []float64) (float64, error) {
	if len(m.Trees) == 0 {
		return 0, core.ErrModelUnavailable
	}
	sum := 0.0
	for _, tree := range m.Trees {
		v, err := tree.predict(vector)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum / float64(len(m.Trees)), nil
}

// Estimators 返回全部子估计器（实现 core.Ensemble 接口）。
func (m *ForestModel) Estimators() []core.RegressionModel {
	out := make([]core.RegressionModel, len(m.Trees))
	for i, tree := range m.Trees {
		out[i] = &treeEstimator{index: i, root: tree}
	}
	return out
}

// FeatureImportances 返回每个特征的重要性（实现 core.ImportanceProvider 接口）。
func (m *ForestModel) FeatureImportances() []float64 {
	return m.Importances
}

// FeatureNames 返回工件自述的训练特征列表；工件未记录时返回 nil。
func (m *ForestModel) FeatureNames() []string {
	return m.Features
}

// treeEstimator 把单棵树包装成 RegressionModel，供集成区间计算使用。
type treeEstimator struct {
	index int
	root  *TreeNode
}

func (t *treeEstimator) Name() string { return fmt.Sprintf("tree-%d", t.index) }

func (t *treeEstimator) Predict(vector []float64) (float64, error) {
	return t.root.predict(vector)
}

var _ core.RegressionModel = (*ForestModel)(nil)
var _ core.Ensemble = (*ForestModel)(nil)
var _ core.ImportanceProvider = (*ForestModel)(nil)
var _ core.FeatureNamer = (*ForestModel)(nil)
