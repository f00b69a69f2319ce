package allocation

import (
	"math"
	"sort"
	"time"

	"github.com/opsboard/opsboard/pkg/project"
)

// MonthlyRow is one (member, project) row of the monthly assignation
// table. Hours index 0 = January.
type MonthlyRow struct {
	Member  string
	Project string
	Hours   [12]int
}

// MonthlyTotal is the per-member sum of the monthly assignation table.
type MonthlyTotal struct {
	Member string
	Hours  [12]int
}

// Metrics holds the % of available hours assigned, per month and per
// quarter. Quarterly figures are the mean of the quarter's (already
// rounded) monthly figures.
type Metrics struct {
	Monthly   [12]int
	Quarterly [4]int
}

// MonthlyAssignation converts each assignment's date range into hours per
// month: calendar days active in the month divided by the month's length,
// times the monthly hours budget, truncated to whole hours. Days falling
// outside the planning year are discarded. Rows are sorted by
// accent-folded member name, then project.
func MonthlyAssignation(projects []project.Assignment, year int) []MonthlyRow {
	rows := make([]MonthlyRow, 0, len(projects))
	for _, p := range projects {
		row := MonthlyRow{Member: p.Member, Project: p.Project}

		var days [12]int
		for day := p.StartDate; !day.After(p.EndDate); day = day.AddDate(0, 0, 1) {
			if day.Year() == year {
				days[int(day.Month())-1]++
			}
		}

		for m := 0; m < 12; m++ {
			daysInMonth := time.Date(year, time.Month(m+2), 0, 0, 0, 0, 0, time.UTC).Day()
			row.Hours[m] = int(float64(days[m]) / float64(daysInMonth) * p.MonthlyHours)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		ki, kj := SortKey(rows[i].Member), SortKey(rows[j].Member)
		if ki != kj {
			return ki < kj
		}
		return rows[i].Project < rows[j].Project
	})
	return rows
}

// MonthlyTotals groups the monthly assignation by member.
func MonthlyTotals(rows []MonthlyRow) []MonthlyTotal {
	byMember := make(map[string]*MonthlyTotal)
	var order []string
	for _, row := range rows {
		total, ok := byMember[row.Member]
		if !ok {
			total = &MonthlyTotal{Member: row.Member}
			byMember[row.Member] = total
			order = append(order, row.Member)
		}
		for m := 0; m < 12; m++ {
			total.Hours[m] += row.Hours[m]
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return SortKey(order[i]) < SortKey(order[j])
	})
	totals := make([]MonthlyTotal, 0, len(order))
	for _, name := range order {
		totals = append(totals, *byMember[name])
	}
	return totals
}

// MonthlyHolidayHours approximates the hours lost to leave in each month:
// the member's monthly availability divided by 4 weeks of 5 business days,
// times the leave business-days. The approximation is the planning
// convention, not an exact calendar computation.
func MonthlyHolidayHours(available [12]int, holidayDays [12]int) [12]float64 {
	var hours [12]float64
	for m := 0; m < 12; m++ {
		hours[m] = float64(available[m]) / 4 / 5 * float64(holidayDays[m])
	}
	return hours
}

// OccupationMetrics computes the team-wide % of available hours assigned
// per month. When holidayDays is non-nil, leave hours count as assigned
// time: each member's real availability is their available hours minus
// assignment and leave hours, clipped at zero because project assignments
// do not pause for leave.
func OccupationMetrics(snap Snapshot, holidayDays map[string][12]int) Metrics {
	rows := MonthlyAssignation(snap.Projects, snap.Year)

	var available, assigned [12]float64
	if holidayDays == nil {
		for _, m := range snap.Members {
			for i, h := range m.MonthlyHours {
				available[i] += float64(h)
			}
		}
		for _, row := range rows {
			for i, h := range row.Hours {
				assigned[i] += float64(h)
			}
		}
	} else {
		totalsByMember := make(map[string][12]int, len(rows))
		for _, total := range MonthlyTotals(rows) {
			totalsByMember[total.Member] = total.Hours
		}

		for _, m := range snap.Members {
			memberAssigned := totalsByMember[m.Name]
			holidayHours := MonthlyHolidayHours(m.MonthlyHours, holidayDays[m.Name])
			for i, h := range m.MonthlyHours {
				realAvailability := float64(h) - (float64(memberAssigned[i]) + holidayHours[i])
				if realAvailability < 0 {
					realAvailability = 0
				}
				available[i] += float64(h)
				assigned[i] += float64(h) - realAvailability
			}
		}
	}

	var metrics Metrics
	for m := 0; m < 12; m++ {
		if available[m] != 0 {
			metrics.Monthly[m] = int(math.Round(assigned[m] / available[m] * 100))
		}
	}
	for q := 0; q < 4; q++ {
		sum := metrics.Monthly[q*3] + metrics.Monthly[q*3+1] + metrics.Monthly[q*3+2]
		metrics.Quarterly[q] = int(math.Round(float64(sum) / 3))
	}
	return metrics
}
