package predict

import (
	"context"
	"math"
	"testing"
)

func TestSampleStdDev(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    float64
	}{
		{"identical samples", []float64{5, 5, 5}, 0},
		{"two samples", []float64{2, 4}, math.Sqrt2},
		{"known variance", []float64{1, 2, 3, 4, 5}, math.Sqrt(2.5)},
		{"single sample", []float64{7}, 0},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sampleStdDev(tt.samples)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("sampleStdDev(%v) = %v, want %v", tt.samples, got, tt.want)
			}
		})
	}
}

func TestConfidenceInterval(t *testing.T) {
	iv := confidenceInterval(200000, 10000)
	if math.Abs(iv.Lower-180400) > 1e-6 {
		t.Errorf("Lower = %v, want 180400", iv.Lower)
	}
	if math.Abs(iv.Upper-219600) > 1e-6 {
		t.Errorf("Upper = %v, want 219600", iv.Upper)
	}

	// 下界不低于 0
	clipped := confidenceInterval(1000, 10000)
	if clipped.Lower != 0 {
		t.Errorf("Lower = %v, want 0 (clipped)", clipped.Lower)
	}
}

func TestEnsembleSpread(t *testing.T) {
	forest := testForest()

	// 0.4 <= 0.5 -> 11.8；0.6 > 0.3 -> 12.1；0.4 <= 0.7 -> 12.0
	samples := ensembleSpread(context.Background(), forest, []float64{0.4, 0.6}, 0, 0)
	if len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}

	want := map[float64]bool{
		math.Exp(11.8): true,
		math.Exp(12.1): true,
		math.Exp(12.0): true,
	}
	for _, s := range samples {
		if !want[s] {
			t.Errorf("unexpected sample %v", s)
		}
	}

	// 限流路径结果一致
	limited := ensembleSpread(context.Background(), forest, []float64{0.4, 0.6}, 1, 0)
	if len(limited) != 3 {
		t.Errorf("expected 3 samples with max concurrency 1, got %d", len(limited))
	}

	// 负数并发限制视为无限制，不允许 panic
	unlimited := ensembleSpread(context.Background(), forest, []float64{0.4, 0.6}, -1, 0)
	if len(unlimited) != 3 {
		t.Errorf("expected 3 samples with negative max concurrency, got %d", len(unlimited))
	}
}
