package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd string into a UTC midnight time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate renders a time as yyyy-mm-dd.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// RentalDays counts billable days for a date range, inclusive of both the
// start and the end date. Same-day rentals bill one day.
func RentalDays(start, end time.Time) (int32, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("end date %s is before start date %s", FormatDate(end), FormatDate(start))
	}
	days := int32(end.Sub(start).Hours()/24) + 1
	return days, nil
}
