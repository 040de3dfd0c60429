package pricing

import (
	"errors"
	"fmt"
	"time"

	"github.com/skyops/fuelrecon/internal/model"
)

var (
	ErrInvalidDateRange    = errors.New("date range violates contract constraints")
	ErrReplacementRequired = errors.New("replacement supplier is required for a spot tariff")
)

// ValidateDateRange checks a tariff's validity window against its resolved
// contract. Spot tariffs have no window constraint and always pass.
func ValidateDateRange(tariff *model.Tariff, contract *model.Contract) error {
	if contract == nil {
		return nil
	}

	duration := daysBetween(tariff.StartDate, tariff.EndDate)
	maxDuration := maxDurationDays(contract.PriceChangeFrequency)
	if duration > maxDuration {
		return fmt.Errorf("%w: span of %d days exceeds %d-day maximum", ErrInvalidDateRange, duration, maxDuration)
	}
	if tariff.StartDate.Before(contract.StartDate) {
		return fmt.Errorf("%w: start date precedes contract start", ErrInvalidDateRange)
	}
	if tariff.EndDate.After(contract.EndDate) {
		return fmt.Errorf("%w: end date exceeds contract end", ErrInvalidDateRange)
	}
	return nil
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
