package model

import (
	"math"
	"testing"

	"github.com/rushteam/pricekit/core"
)

func TestLinearModelPredict(t *testing.T) {
	m := &LinearModel{
		Bias:         11.0,
		Coefficients: []float64{0.5, 0.2},
		Features:     []string{"GrLivArea", "OverallQual"},
	}

	got, err := m.Predict([]float64{0.4, 0.5})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	want := 11.0 + 0.5*0.4 + 0.2*0.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Predict() = %v, want %v", got, want)
	}

	// 向量长度与系数不一致视为输入非法
	if _, err := m.Predict([]float64{0.4}); err == nil {
		t.Fatal("expected length mismatch error")
	} else if !core.IsInvalidInput(err) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestParseLinearModel(t *testing.T) {
	m, err := ParseLinearModel([]byte(`{
		"bias": 11.5,
		"coefficients": [0.8, 0.5],
		"feature_names": ["GrLivArea", "OverallQual"]
	}`))
	if err != nil {
		t.Fatalf("ParseLinearModel() error = %v", err)
	}
	if m.Bias != 11.5 || len(m.Coefficients) != 2 {
		t.Errorf("unexpected model: %+v", m)
	}
	if names := m.FeatureNames(); len(names) != 2 || names[0] != "GrLivArea" {
		t.Errorf("FeatureNames() = %v", names)
	}

	// 无系数的工件视为非法
	if _, err := ParseLinearModel([]byte(`{"bias": 1}`)); err == nil {
		t.Fatal("expected error for model without coefficients")
	}
}
