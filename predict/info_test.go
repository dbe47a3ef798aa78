package predict

import "testing"

func TestPriceCategory(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{100000, "Budget (Under $150K)"},
		{149999, "Budget (Under $150K)"},
		{150000, "Mid-range ($150K-$400K)"},
		{250000, "Mid-range ($150K-$400K)"},
		{400000, "Mid-range ($150K-$400K)"},
		{400001, "Premium ($400K+)"},
		{750000, "Premium ($400K+)"},
	}
	for _, tt := range tests {
		if got := PriceCategory(tt.price); got != tt.want {
			t.Errorf("PriceCategory(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestPriceTier(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{100000, "Entry Level"},
		{150000, "Standard"},
		{249999, "Standard"},
		{250000, "Premium"},
		{399999, "Premium"},
		{400000, "Luxury"},
	}
	for _, tt := range tests {
		if got := PriceTier(tt.price); got != tt.want {
			t.Errorf("PriceTier(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestConfidenceLabel(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{21, "High"},
		{15, "High"},
		{14, "Medium"},
		{8, "Medium"},
		{5, "Medium"},
		{4, "Low"},
		{0, "Low"},
	}
	for _, tt := range tests {
		if got := ConfidenceLabel(tt.count); got != tt.want {
			t.Errorf("ConfidenceLabel(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}
