package allocation

import (
	"math"
	"strconv"
	"time"
)

// WeeklyTable holds per-member hours per week. Hours rows are aligned with
// Weeks; members without any active project keep a row of zeros.
type WeeklyTable struct {
	Weeks []Week
	// Order is the member row order (team table order).
	Order []string
	Hours map[string][]float64
}

// FreeHoursRow is one member row of the free-hours table, rounded to whole
// hours.
type FreeHoursRow struct {
	Name  string
	Hours []int
}

// FreeHoursTable is the rendered weekly free-hours report: string week
// labels under a "Semana" label column, dd/mm Inicio/Fin header rows, and
// one row of whole free hours per member.
type FreeHoursTable struct {
	Weeks       []Week
	WeekLabels  []string
	StartLabels []string
	EndLabels   []string
	Rows        []FreeHoursRow
}

// WeeklyAssignation spreads every project assignment over the weeks its
// date range intersects, accumulating hours per (member, week). Projects
// assigned to names missing from the team table are skipped.
func WeeklyAssignation(snap Snapshot) WeeklyTable {
	weeks := GenerateWeeks(snap.Year)

	table := WeeklyTable{
		Weeks: weeks,
		Order: snap.MemberNames(),
		Hours: make(map[string][]float64, len(snap.Members)),
	}
	for _, name := range table.Order {
		table.Hours[name] = make([]float64, len(weeks))
	}

	for i, week := range weeks {
		for _, p := range snap.Projects {
			row, ok := table.Hours[p.Member]
			if !ok {
				continue
			}
			if week.Contains(p.StartDate, p.EndDate) {
				row[i] += DistributeHours(p.StartDate, p.EndDate, p.MonthlyHours, week, snap.Year)
			}
		}
	}

	return table
}

// WeeklyFreeHours derives the free-hours table from the weekly
// assignation: each member's monthly availability is pro-rated onto the
// week through the same distributor (with the week itself as the activity
// range), and the assigned hours are subtracted.
func WeeklyFreeHours(snap Snapshot) (WeeklyTable, FreeHoursTable) {
	assignation := WeeklyAssignation(snap)
	weeks := assignation.Weeks

	free := FreeHoursTable{
		Weeks:       weeks,
		WeekLabels:  make([]string, 0, len(weeks)),
		StartLabels: make([]string, 0, len(weeks)),
		EndLabels:   make([]string, 0, len(weeks)),
	}
	for _, w := range weeks {
		free.WeekLabels = append(free.WeekLabels, strconv.Itoa(w.Index))
		free.StartLabels = append(free.StartLabels, w.Monday.Format("02/01"))
		free.EndLabels = append(free.EndLabels, w.Sunday.Format("02/01"))
	}

	for _, name := range assignation.Order {
		row := FreeHoursRow{Name: name, Hours: make([]int, len(weeks))}
		for i, w := range weeks {
			available := DistributeHours(w.Monday, w.Sunday, float64(snap.AvailableHours(name, int(w.Month(snap.Year)))), w, snap.Year)
			row.Hours[i] = int(math.Round(available - assignation.Hours[name][i]))
		}
		free.Rows = append(free.Rows, row)
	}

	return assignation, free
}

// NextWeekColumn returns the string label of the first week whose Monday
// is strictly after now, or "" when every week has already started.
func NextWeekColumn(weeks []Week, now time.Time) string {
	for _, w := range weeks {
		if w.Monday.After(now) {
			return strconv.Itoa(w.Index)
		}
	}
	return ""
}
