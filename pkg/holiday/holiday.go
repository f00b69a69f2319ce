// Package holiday turns the team's shared leave calendar into per-member
// monthly business-day counts for the planning reports.
package holiday

import (
	"context"
	"time"
)

// Event is one leave entry from the team calendar. The event summary
// carries the member name and End is exclusive, following the calendar
// feed convention.
type Event struct {
	UID    string
	Name   string
	Start  time.Time
	End    time.Time
	Status string
}

// MemberDays is the number of leave business-days per month for one
// member. Days index 0 = January.
type MemberDays struct {
	Name string
	Days [12]int
}

// Feed lists the leave events overlapping a planning year.
type Feed interface {
	Events(ctx context.Context, year int) ([]Event, error)
}

// MonthlyDays counts, per member and month, the leave business-days that
// fall inside the given year. The day before End is the last day of
// leave. Events sharing a member name are summed.
func MonthlyDays(events []Event, year int) []MemberDays {
	byName := make(map[string]*MemberDays)
	for _, e := range events {
		md, ok := byName[e.Name]
		if !ok {
			md = &MemberDays{Name: e.Name}
			byName[e.Name] = md
		}
		last := e.End.AddDate(0, 0, -1)
		for day := e.Start; !day.After(last); day = day.AddDate(0, 0, 1) {
			if day.Year() != year {
				continue
			}
			if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
				continue
			}
			md.Days[int(day.Month())-1]++
		}
	}

	result := make([]MemberDays, 0, len(byName))
	for _, md := range byName {
		result = append(result, *md)
	}
	sortByFoldedName(result)
	return result
}
