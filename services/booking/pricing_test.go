package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"two full days", date(2025, 1, 10), date(2025, 1, 12), 2},
		{"single day", date(2025, 1, 10), date(2025, 1, 11), 1},
		{"same-day return still charges one day", date(2025, 1, 10), date(2025, 1, 10), 1},
		{"partial day rounds up", date(2025, 1, 10), date(2025, 1, 11).Add(6 * time.Hour), 2},
		{"week", date(2025, 3, 1), date(2025, 3, 8), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RentalDays(tt.start, tt.end))
		})
	}
}

func TestTotalAmount(t *testing.T) {
	// 2025-01-10 to 2025-01-12 at 1500/day is 2 days.
	assert.Equal(t, 3000.0, TotalAmount(date(2025, 1, 10), date(2025, 1, 12), 1500))
}

func TestTotalAmountMonotonicInDays(t *testing.T) {
	start := date(2025, 1, 1)
	prev := 0.0
	for days := 1; days <= 30; days++ {
		amount := TotalAmount(start, start.AddDate(0, 0, days), 999)
		assert.GreaterOrEqual(t, amount, prev, "amount must not decrease with more days")
		prev = amount
	}
}
