package pricing

import (
	"testing"
	"time"

	"github.com/skyops/fuelrecon/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMaxEndDate(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		frequency model.PriceChangeFrequency
		want      time.Time
	}{
		{
			name:      "weekly adds seven days",
			start:     date(2023, time.January, 1),
			frequency: model.FrequencyWeekly,
			want:      date(2023, time.January, 8),
		},
		{
			name:      "weekly across month boundary",
			start:     date(2023, time.March, 28),
			frequency: model.FrequencyWeekly,
			want:      date(2023, time.April, 4),
		},
		{
			name:      "monthly adds calendar month",
			start:     date(2023, time.June, 15),
			frequency: model.FrequencyMonthly,
			want:      date(2023, time.July, 15),
		},
		{
			// AddDate normalizes the short-month overflow: Jan 31 + 1
			// month lands on Mar 3 in a non-leap year.
			name:      "monthly overflow on short month",
			start:     date(2023, time.January, 31),
			frequency: model.FrequencyMonthly,
			want:      date(2023, time.March, 3),
		},
		{
			name:      "monthly overflow in leap year",
			start:     date(2024, time.January, 31),
			frequency: model.FrequencyMonthly,
			want:      date(2024, time.March, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxEndDate(tt.start, tt.frequency)
			if !got.Equal(tt.want) {
				t.Errorf("MaxEndDate(%s, %s) = %s, want %s",
					tt.start.Format("2006-01-02"), tt.frequency,
					got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}
