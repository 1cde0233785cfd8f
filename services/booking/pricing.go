package booking

import "time"

// RentalDays returns the number of chargeable days for a date range. Partial
// days round up, and even a same-day return is charged as one full day.
func RentalDays(start, end time.Time) int {
	if !end.After(start) {
		return 1
	}
	days := int(end.Sub(start) / (24 * time.Hour))
	if end.Sub(start)%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// TotalAmount computes the charge for a rental at the given daily rate.
func TotalAmount(start, end time.Time, dailyPrice float64) float64 {
	return float64(RentalDays(start, end)) * dailyPrice
}
