package allocation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateWeeks_MondaysIncreaseBySevenDays(t *testing.T) {
	for _, year := range []int{2024, 2025, 2026} {
		weeks := GenerateWeeks(year)

		assert.NotEmpty(t, weeks)
		for i := 1; i < len(weeks); i++ {
			assert.Equal(t, weeks[i-1].Monday.AddDate(0, 0, 7), weeks[i].Monday)
			assert.Equal(t, i+1, weeks[i].Index)
		}
		for _, w := range weeks {
			assert.Equal(t, time.Monday, w.Monday.Weekday())
			assert.Equal(t, w.Monday.AddDate(0, 0, 6), w.Sunday)
		}
	}
}

func TestGenerateWeeks_FirstWeekStartsOnOrBeforeJanuaryFirst(t *testing.T) {
	weeks := GenerateWeeks(2025)

	// Jan 1, 2025 is a Wednesday, so the first week begins in 2024.
	assert.Equal(t, time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC), weeks[0].Monday)
	assert.Equal(t, 3, weeks[0].WeekdaysByMonth[time.January])
	assert.NotContains(t, weeks[0].WeekdaysByMonth, time.December)
}

func TestGenerateWeeks_WeekdayCountsCoverEveryMonthExactly(t *testing.T) {
	for _, year := range []int{2024, 2025, 2026} {
		weeks := GenerateWeeks(year)

		counted := make(map[time.Month]int)
		for _, w := range weeks {
			for month, days := range w.WeekdaysByMonth {
				counted[month] += days
			}
		}

		for month := time.January; month <= time.December; month++ {
			assert.Equal(t, BusinessDaysInMonth(year, month), counted[month],
				"weekday count for %s %d", month, year)
		}
	}
}

func TestWeek_MonthFallsBackToSundayAcrossYearBoundary(t *testing.T) {
	weeks := GenerateWeeks(2025)

	first := weeks[0]
	assert.Equal(t, 2024, first.Monday.Year())
	assert.Equal(t, time.January, first.Month(2025))

	last := weeks[len(weeks)-1]
	assert.Equal(t, 2025, last.Monday.Year())
	assert.Equal(t, time.December, last.Month(2025))
}

func TestBusinessDaysInMonth(t *testing.T) {
	// Feb 2025 has 28 days and starts on a Saturday.
	assert.Equal(t, 20, BusinessDaysInMonth(2025, time.February))
	assert.Equal(t, 21, BusinessDaysInMonth(2025, time.March))
	assert.Equal(t, 23, BusinessDaysInMonth(2025, time.December))
}

func TestCountBusinessDays_InvertedRangeIsZero(t *testing.T) {
	from := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, CountBusinessDays(from, to))
}
