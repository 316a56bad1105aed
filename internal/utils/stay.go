package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return t, nil
}

// Nights returns the stay duration in whole days for the half-open range
// [checkIn, checkOut).
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// RangesOverlap reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back ranges (aEnd == bStart) do not.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// ValidateStayDates parses both dates and enforces checkIn < checkOut.
func ValidateStayDates(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := ParseDate(checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("check-in: %w", err)
	}
	checkOut, err := ParseDate(checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("check-out: %w", err)
	}
	if !checkIn.Before(checkOut) {
		return time.Time{}, time.Time{}, fmt.Errorf("check-out date must be after check-in date")
	}
	return checkIn, checkOut, nil
}
