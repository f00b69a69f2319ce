package allocation

import (
	"time"
)

// assumedBusinessDaysPerMonth is the team's planning convention: monthly
// hour budgets are quoted against a 20-business-day month and rescaled to
// each month's true business-day count before pro-rating.
const assumedBusinessDaysPerMonth = 20

// DistributeHours attributes a share of an activity's monthly hours budget
// to one week. The activity is active over the inclusive [rangeStart,
// rangeEnd]; the week is attributed to a single month (see Week.Month) and
// the budget is pro-rated by the overlap's business days against that
// month's business days, clipped to the planning year. A month without
// business days yields 0.
func DistributeHours(rangeStart, rangeEnd time.Time, monthlyHours float64, week Week, year int) float64 {
	monthBusinessDays := BusinessDaysInMonth(year, week.Month(year))
	if monthBusinessDays == 0 {
		return 0
	}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	overlapStart := maxDate(week.Monday, rangeStart, yearStart)
	overlapEnd := minDate(week.Sunday, rangeEnd, yearEnd)
	overlapBusinessDays := CountBusinessDays(overlapStart, overlapEnd)

	exactMonthHours := monthlyHours * float64(monthBusinessDays) / assumedBusinessDaysPerMonth
	return exactMonthHours * float64(overlapBusinessDays) / float64(monthBusinessDays)
}
