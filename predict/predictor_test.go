package predict

import (
	"context"
	"math"
	"testing"

	"github.com/rushteam/pricekit/core"
	"github.com/rushteam/pricekit/feature"
	"github.com/rushteam/pricekit/model"
	"github.com/rushteam/pricekit/schema"
)

func testForest() *model.ForestModel {
	return &model.ForestModel{
		Trees: []*model.TreeNode{
			{Feature: 0, Threshold: 0.5,
				Left:  &model.TreeNode{Value: 11.8},
				Right: &model.TreeNode{Value: 12.2}},
			{Feature: 1, Threshold: 0.3,
				Left:  &model.TreeNode{Value: 11.9},
				Right: &model.TreeNode{Value: 12.1}},
			{Feature: 0, Threshold: 0.7,
				Left:  &model.TreeNode{Value: 12.0},
				Right: &model.TreeNode{Value: 12.3}},
		},
		Importances: []float64{0.6, 0.4},
		Features:    []string{"GrLivArea", "OverallQual"},
	}
}

func testScaler() *feature.FeatureScaler {
	return &feature.FeatureScaler{
		FeatureColumns: []string{"GrLivArea", "OverallQual", "YearBuilt"},
		Params: map[string]feature.ScalerParams{
			"GrLivArea":   {Min: 0, Max: 2000},
			"OverallQual": {Min: 0, Max: 10},
			"YearBuilt":   {Min: 1900, Max: 2010},
		},
	}
}

func TestPredictorPredict(t *testing.T) {
	predictor, err := NewPredictor(testForest(), WithScaler(testScaler()))
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}

	// GrLivArea 1000 -> 0.5，OverallQual 5 -> 0.5
	// 树1: 0.5 <= 0.5 -> 11.8；树2: 0.5 > 0.3 -> 12.1；树3: 0.5 <= 0.7 -> 12.0
	price, info := predictor.Predict(context.Background(), map[string]any{
		"GrLivArea":   1000,
		"OverallQual": 5,
	})
	if info.Error != "" {
		t.Fatalf("Predict() failed: %s", info.Error)
	}

	wantPrice := math.Exp((11.8 + 12.1 + 12.0) / 3)
	if math.Abs(price-wantPrice) > 1e-6 {
		t.Errorf("price = %v, want %v", price, wantPrice)
	}

	if info.InputFeatureCount != 2 || info.MissingFeatureCount != 0 {
		t.Errorf("feature counts = %d/%d, want 2/0",
			info.InputFeatureCount, info.MissingFeatureCount)
	}
	if info.Confidence != "Low" {
		t.Errorf("Confidence = %q, want Low", info.Confidence)
	}
	if info.Category != "Mid-range ($150K-$400K)" {
		t.Errorf("Category = %q", info.Category)
	}

	// 集成模型必须给出置信区间
	if info.ConfidenceInterval == nil {
		t.Fatal("expected confidence interval for ensemble model")
	}
	if info.StdDeviation <= 0 {
		t.Errorf("StdDeviation = %v, want > 0", info.StdDeviation)
	}
	wantLower := price - 1.96*info.StdDeviation
	if math.Abs(info.ConfidenceInterval.Lower-wantLower) > 1e-6 {
		t.Errorf("interval lower = %v, want %v", info.ConfidenceInterval.Lower, wantLower)
	}
	wantUpper := price + 1.96*info.StdDeviation
	if math.Abs(info.ConfidenceInterval.Upper-wantUpper) > 1e-6 {
		t.Errorf("interval upper = %v, want %v", info.ConfidenceInterval.Upper, wantUpper)
	}
}

func TestPredictorPredictSampleInput(t *testing.T) {
	// 完整的示例属性表必须能走完全程：目录外的类别属性
	//（Street、HouseStyle、Exterior1st 等）不得让估价失败
	predictor, err := NewPredictor(testForest(), WithScaler(testScaler()))
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}

	price, info := predictor.Predict(context.Background(), SampleInput())
	if info.Error != "" {
		t.Fatalf("Predict(SampleInput()) failed: %s", info.Error)
	}

	// GrLivArea 1710 -> 0.855，OverallQual 7 -> 0.7
	// 树1: 0.855 > 0.5 -> 12.2；树2: 0.7 > 0.3 -> 12.1；树3: 0.855 > 0.7 -> 12.3
	wantPrice := math.Exp((12.2 + 12.1 + 12.3) / 3)
	if math.Abs(price-wantPrice) > 1e-6 {
		t.Errorf("price = %v, want %v", price, wantPrice)
	}
	if info.InputFeatureCount != 2 || info.MissingFeatureCount != 0 {
		t.Errorf("feature counts = %d/%d, want 2/0",
			info.InputFeatureCount, info.MissingFeatureCount)
	}
	if info.ConfidenceInterval == nil {
		t.Error("expected confidence interval for ensemble model")
	}
}

func TestPredictorSampleInputFullSchema(t *testing.T) {
	// 全量列标准化器 + 21 个精简特征的端到端场景，
	// 固定模型复现已知价格
	feats := schema.FallbackModelFeatures()
	coefs := make([]float64, len(feats))
	for i, f := range feats {
		if f == "GrLivArea" {
			coefs[i] = 0.0005
		}
	}
	linear := &model.LinearModel{Bias: 11.0, Coefficients: coefs, Features: feats}
	scaler := &feature.FeatureScaler{
		FeatureColumns: schema.FullColumns(),
		Params:         map[string]feature.ScalerParams{},
	}

	predictor, err := NewPredictor(linear, WithScaler(scaler))
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}

	est, err := predictor.Estimate(context.Background(), SampleInput())
	if err != nil {
		t.Fatalf("Estimate(SampleInput()) error = %v", err)
	}

	wantLog := 11.0 + 0.0005*1710
	if math.Abs(est.LogPrice-wantLog) > 1e-9 {
		t.Errorf("LogPrice = %v, want %v", est.LogPrice, wantLog)
	}
	if math.Abs(est.Price-math.Exp(wantLog)) > 1e-6 {
		t.Errorf("Price = %v, want %v", est.Price, math.Exp(wantLog))
	}

	// 示例属性表覆盖全部 21 个精简特征
	if est.Info.InputFeatureCount != len(feats) || est.Info.MissingFeatureCount != 0 {
		t.Errorf("feature counts = %d/%d, want %d/0",
			est.Info.InputFeatureCount, est.Info.MissingFeatureCount, len(feats))
	}
	if est.Info.Confidence != "High" {
		t.Errorf("Confidence = %q, want High", est.Info.Confidence)
	}
	if est.Info.Category != "Budget (Under $150K)" {
		t.Errorf("Category = %q", est.Info.Category)
	}
}

func TestPredictorPredictStringCodes(t *testing.T) {
	// 类别码 + 数值字符串混合输入也要能走完全程
	predictor, err := NewPredictor(testForest(), WithScaler(testScaler()))
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}

	price, info := predictor.Predict(context.Background(), map[string]any{
		"GrLivArea":   "1000",
		"OverallQual": 5,
	})
	if info.Error != "" {
		t.Fatalf("Predict() failed: %s", info.Error)
	}
	if price <= 0 {
		t.Errorf("price = %v, want > 0", price)
	}
}

func TestPredictorDegradedMode(t *testing.T) {
	// 无标准化器：模型输入直接取编码结果，非集成模型没有区间
	linear := &model.LinearModel{
		Bias:         10.0,
		Coefficients: []float64{0.001, 0.1},
		Features:     []string{"GrLivArea", "OverallQual"},
	}
	predictor, err := NewPredictor(linear)
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}

	est, err := predictor.Estimate(context.Background(), map[string]any{
		"GrLivArea":   1000,
		"OverallQual": 5,
	})
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}

	wantLog := 10.0 + 0.001*1000 + 0.1*5
	if math.Abs(est.LogPrice-wantLog) > 1e-9 {
		t.Errorf("LogPrice = %v, want %v", est.LogPrice, wantLog)
	}
	if math.Abs(est.Price-math.Exp(wantLog)) > 1e-6 {
		t.Errorf("Price = %v, want %v", est.Price, math.Exp(wantLog))
	}

	if est.Info.ConfidenceInterval != nil {
		t.Error("linear model should not produce a confidence interval")
	}
	if est.Info.StdDeviation != 0 {
		t.Errorf("StdDeviation = %v, want 0", est.Info.StdDeviation)
	}

	if lbl, ok := est.GetLabel("mode"); !ok || lbl.Value != "degraded" {
		t.Errorf("expected degraded mode label, got %v", est.Labels)
	}
}

func TestPredictorMissingFeaturesUseDefaults(t *testing.T) {
	predictor, err := NewPredictor(testForest(), WithScaler(testScaler()))
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}

	// 什么都不给也能出结果：全量向量由默认值表补齐
	price, info := predictor.Predict(context.Background(), map[string]any{})
	if info.Error != "" {
		t.Fatalf("Predict() failed: %s", info.Error)
	}
	if price <= 0 {
		t.Errorf("price = %v, want > 0", price)
	}
	if info.InputFeatureCount != 0 || info.MissingFeatureCount != 2 {
		t.Errorf("feature counts = %d/%d, want 0/2",
			info.InputFeatureCount, info.MissingFeatureCount)
	}
	if info.Confidence != "Low" {
		t.Errorf("Confidence = %q, want Low", info.Confidence)
	}
}

func TestPredictorNoModel(t *testing.T) {
	predictor, err := NewPredictor(nil)
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}

	// 模型未加载：短路返回，不做任何编码工作
	price, info := predictor.Predict(context.Background(), SampleInput())
	if price != 0 {
		t.Errorf("price = %v, want 0", price)
	}
	if info.Error == "" {
		t.Fatal("expected error in info")
	}

	if _, err := predictor.Estimate(context.Background(), SampleInput()); !core.IsModelUnavailable(err) {
		t.Errorf("expected model unavailable, got %v", err)
	}

	if got := predictor.ModelInfo().Status; got != "Not Loaded" {
		t.Errorf("Status = %q, want Not Loaded", got)
	}
}

func TestPredictorErrorShape(t *testing.T) {
	predictor, err := NewPredictor(testForest(), WithScaler(testScaler()))
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}

	// 编码失败折叠为 (0, Error 非空)，不向调用方抛错
	price, info := predictor.Predict(context.Background(), map[string]any{
		"GrLivArea": "huge",
	})
	if price != 0 {
		t.Errorf("price = %v, want 0", price)
	}
	if info.Error == "" {
		t.Fatal("expected error in info")
	}
	if info.Confidence != "" || info.ConfidenceInterval != nil {
		t.Errorf("failed estimate should not carry result fields: %+v", info)
	}
}

func TestNewPredictorConfigErrors(t *testing.T) {
	// 精简特征不是全量列的子集属于配置错误，构造时失败
	scaler := &feature.FeatureScaler{
		FeatureColumns: []string{"YearBuilt"},
		Params:         map[string]feature.ScalerParams{},
	}
	if _, err := NewPredictor(testForest(), WithScaler(scaler)); err == nil {
		t.Fatal("expected subset validation error")
	} else if !core.IsInvalidInput(err) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestPredictorModelInfoAndImportance(t *testing.T) {
	predictor, err := NewPredictor(testForest(), WithScaler(testScaler()))
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}

	info := predictor.ModelInfo()
	if info.Status != "Loaded" {
		t.Errorf("Status = %q", info.Status)
	}
	if info.FeatureCount != 2 || info.ScalerFeatureCount != 3 {
		t.Errorf("counts = %d/%d, want 2/3", info.FeatureCount, info.ScalerFeatureCount)
	}
	if info.Metadata == nil || info.Metadata.ModelType == "" {
		t.Error("expected default metadata")
	}

	scores := predictor.FeatureImportance(10)
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(scores))
	}
	// 按重要性降序
	if scores[0].Name != "GrLivArea" || scores[0].Score != 0.6 {
		t.Errorf("scores[0] = %+v", scores[0])
	}
	if scores[1].Score > scores[0].Score {
		t.Error("scores not sorted descending")
	}

	if top1 := predictor.FeatureImportance(1); len(top1) != 1 {
		t.Errorf("FeatureImportance(1) returned %d entries", len(top1))
	}
}

func TestPredictorValidateIndependence(t *testing.T) {
	predictor, err := NewPredictor(testForest(), WithScaler(testScaler()))
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}

	// 校验不通过的输入仍然可以估价
	input := map[string]any{"GrLivArea": 1000, "OverallQual": 5, "YearBuilt": 2010, "YearRemodAdd": 2005}
	ok, violations := predictor.Validate(input)
	if ok || len(violations) != 1 {
		t.Fatalf("Validate() = (%v, %v)", ok, violations)
	}

	price, info := predictor.Predict(context.Background(), input)
	if info.Error != "" {
		t.Fatalf("Predict() failed: %s", info.Error)
	}
	if price <= 0 {
		t.Errorf("price = %v, want > 0", price)
	}
}
