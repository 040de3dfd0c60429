package pricing

import (
	"time"

	"github.com/skyops/fuelrecon/internal/model"
)

// MaxEndDate returns the latest end date a tariff may carry for a contract
// with the given price-change frequency, counted from startDate. Monthly uses
// calendar month arithmetic with Go's overflow normalization, so
// 2023-01-31 advances to 2023-03-03.
func MaxEndDate(startDate time.Time, frequency model.PriceChangeFrequency) time.Time {
	if frequency == model.FrequencyWeekly {
		return startDate.AddDate(0, 0, 7)
	}
	return startDate.AddDate(0, 1, 0)
}

// maxDurationDays is the flat validation cap per frequency. Monthly is capped
// at 30 days even though MaxEndDate uses calendar months; the asymmetry is
// the agreed business rule.
func maxDurationDays(frequency model.PriceChangeFrequency) int {
	if frequency == model.FrequencyWeekly {
		return 7
	}
	return 30
}
