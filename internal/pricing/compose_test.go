package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/skyops/fuelrecon/internal/model"
)

func TestTotalPerLiter(t *testing.T) {
	tariff := &model.Tariff{
		BasePrice:    decimal.RequireFromString("18.45"),
		Differential: decimal.RequireFromString("0.85"),
		Markup:       decimal.RequireFromString("0.35"),
	}

	got := TotalPerLiter(tariff)
	want := decimal.RequireFromString("19.65")
	if !got.Equal(want) {
		t.Errorf("TotalPerLiter = %s, want %s", got, want)
	}
}

func TestTotalPerLiterIgnoresCustomPrices(t *testing.T) {
	tariff := &model.Tariff{
		BasePrice:    decimal.RequireFromString("10.00"),
		Differential: decimal.Zero,
		Markup:       decimal.Zero,
		PerLiterPrices: []model.CustomPrice{
			{Description: "Throughput fee", Price: decimal.RequireFromString("1.50")},
		},
		PerUpliftmentPrices: []model.CustomPrice{
			{Description: "Callout", Price: decimal.RequireFromString("250.00")},
		},
	}

	if got := TotalPerLiter(tariff); !got.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("custom prices must not fold into the per-liter total, got %s", got)
	}
}

func TestCoercePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"18.45", "18.45"},
		{" 0.85 ", "0.85"},
		{"", "0"},
		{"abc", "0"},
		{"12,50", "0"},
		{"-1.25", "-1.25"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := CoercePrice(tt.raw)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("CoercePrice(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}
