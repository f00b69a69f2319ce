package allocation

import (
	"time"
)

func isWeekday(day time.Time) bool {
	wd := day.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// BusinessDaysInMonth counts the Mon-Fri days of the given month.
func BusinessDaysInMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return CountBusinessDays(first, last)
}

// CountBusinessDays counts the Mon-Fri days in the inclusive range
// [from, to]. An inverted range counts as zero.
func CountBusinessDays(from, to time.Time) int {
	if from.After(to) {
		return 0
	}
	count := 0
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if isWeekday(day) {
			count++
		}
	}
	return count
}

func maxDate(dates ...time.Time) time.Time {
	max := dates[0]
	for _, d := range dates[1:] {
		if d.After(max) {
			max = d
		}
	}
	return max
}

func minDate(dates ...time.Time) time.Time {
	min := dates[0]
	for _, d := range dates[1:] {
		if d.Before(min) {
			min = d
		}
	}
	return min
}
