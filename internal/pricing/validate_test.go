package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/skyops/fuelrecon/internal/model"
)

func TestValidateDateRange(t *testing.T) {
	weekly := &model.Contract{
		StartDate:            date(2023, time.January, 1),
		EndDate:              date(2023, time.December, 31),
		PriceChangeFrequency: model.FrequencyWeekly,
	}
	monthly := &model.Contract{
		StartDate:            date(2023, time.January, 1),
		EndDate:              date(2023, time.December, 31),
		PriceChangeFrequency: model.FrequencyMonthly,
	}

	tests := []struct {
		name     string
		tariff   model.Tariff
		contract *model.Contract
		wantErr  bool
	}{
		{
			name: "spot tariff has no window constraint",
			tariff: model.Tariff{
				StartDate: date(2020, time.January, 1),
				EndDate:   date(2030, time.January, 1),
			},
			contract: nil,
			wantErr:  false,
		},
		{
			name: "weekly within cap and window",
			tariff: model.Tariff{
				StartDate: date(2023, time.March, 1),
				EndDate:   date(2023, time.March, 8),
			},
			contract: weekly,
			wantErr:  false,
		},
		{
			name: "weekly span over seven days fails inside window",
			tariff: model.Tariff{
				StartDate: date(2023, time.March, 1),
				EndDate:   date(2023, time.March, 9),
			},
			contract: weekly,
			wantErr:  true,
		},
		{
			name: "monthly thirty day span passes",
			tariff: model.Tariff{
				StartDate: date(2023, time.June, 1),
				EndDate:   date(2023, time.July, 1),
			},
			contract: monthly,
			wantErr:  false,
		},
		{
			// The auto-filled calendar month can exceed the flat 30-day
			// cap for 31-day months; the cap wins at validation time.
			name: "monthly thirty one day span fails",
			tariff: model.Tariff{
				StartDate: date(2023, time.July, 1),
				EndDate:   date(2023, time.August, 1),
			},
			contract: monthly,
			wantErr:  true,
		},
		{
			name: "start before contract start fails",
			tariff: model.Tariff{
				StartDate: date(2022, time.December, 30),
				EndDate:   date(2023, time.January, 3),
			},
			contract: weekly,
			wantErr:  true,
		},
		{
			name: "end after contract end fails",
			tariff: model.Tariff{
				StartDate: date(2023, time.December, 29),
				EndDate:   date(2024, time.January, 2),
			},
			contract: weekly,
			wantErr:  true,
		},
		{
			name: "tariff window equal to contract bounds passes for weekly span",
			tariff: model.Tariff{
				StartDate: date(2023, time.January, 1),
				EndDate:   date(2023, time.January, 8),
			},
			contract: weekly,
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDateRange(&tt.tariff, tt.contract)
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err != nil && !errors.Is(err, ErrInvalidDateRange) {
				t.Errorf("error %v should wrap ErrInvalidDateRange", err)
			}
		})
	}
}
