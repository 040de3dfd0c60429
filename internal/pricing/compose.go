package pricing

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skyops/fuelrecon/internal/model"
)

// TotalPerLiter sums base price, differential and markup. Custom per-liter
// and per-upliftment items are invoiced separately and are not included.
func TotalPerLiter(tariff *model.Tariff) decimal.Decimal {
	return tariff.BasePrice.Add(tariff.Differential).Add(tariff.Markup)
}

// CoercePrice parses a raw price field. Blank or unparsable input coerces to
// zero rather than erroring; price fields are lenient by policy.
func CoercePrice(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return value
}

func removeCustomPrice(items []model.CustomPrice, id uuid.UUID) []model.CustomPrice {
	result := make([]model.CustomPrice, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			result = append(result, item)
		}
	}
	return result
}
