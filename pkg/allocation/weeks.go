// Package allocation implements the weekly hours-allocation engine: the
// partition of the planning year into Monday-Sunday weeks, the pro-ration
// of monthly hour budgets onto those weeks, and the derived assignation,
// free-hours and occupation tables. Everything here is a pure function of
// an explicitly passed Snapshot.
package allocation

import (
	"time"
)

// Week is one Monday-Sunday span of the planning year. Index is 1-based.
// WeekdaysByMonth counts the Mon-Fri days of this week per calendar month;
// only days belonging to the planning year are counted, so a year-boundary
// week can hold fewer than five weekdays.
type Week struct {
	Index           int
	Monday          time.Time
	Sunday          time.Time
	WeekdaysByMonth map[time.Month]int
}

// GenerateWeeks partitions a year into consecutive 7-day spans, starting
// from the Monday on or before January 1 and continuing while the span's
// start or end still falls in the year. Together the weeks cover every
// weekday of the year exactly once.
func GenerateWeeks(year int) []Week {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	if offset := (int(start.Weekday()) + 6) % 7; offset != 0 {
		start = start.AddDate(0, 0, -offset)
	}

	var weeks []Week
	index := 1
	for start.Year() == year || start.AddDate(0, 0, 6).Year() == year {
		end := start.AddDate(0, 0, 6)

		weekdaysByMonth := make(map[time.Month]int)
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			if day.Year() == year && isWeekday(day) {
				weekdaysByMonth[day.Month()]++
			}
		}

		weeks = append(weeks, Week{
			Index:           index,
			Monday:          start,
			Sunday:          end,
			WeekdaysByMonth: weekdaysByMonth,
		})
		start = start.AddDate(0, 0, 7)
		index++
	}

	return weeks
}

// Contains reports whether the inclusive date range intersects the week.
func (w Week) Contains(rangeStart, rangeEnd time.Time) bool {
	return !rangeEnd.Before(w.Monday) && !rangeStart.After(w.Sunday)
}

// Month returns the calendar month the week is attributed to: the month of
// its Monday, or of its Sunday when the Monday still belongs to the
// previous year.
func (w Week) Month(year int) time.Month {
	if w.Monday.Year() != year {
		return w.Sunday.Month()
	}
	return w.Monday.Month()
}
