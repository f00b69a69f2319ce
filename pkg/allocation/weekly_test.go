package allocation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/opsboard/opsboard/pkg/member"
	"github.com/opsboard/opsboard/pkg/project"
)

func fullAvailability(hours int) [12]int {
	var months [12]int
	for i := range months {
		months[i] = hours
	}
	return months
}

func TestWeeklyAssignation_SkipsProjectsForUnknownMembers(t *testing.T) {
	// given
	snap := Snapshot{
		Year:    2025,
		Members: []member.TeamMember{{Name: "Ana", MonthlyHours: fullAvailability(160)}},
		Projects: []project.Assignment{
			{
				Project:      "Ghost",
				Member:       "Nobody",
				StartDate:    time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
				EndDate:      time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
				MonthlyHours: 160,
			},
		},
	}

	// when
	table := WeeklyAssignation(snap)

	// then
	assert.Equal(t, []string{"Ana"}, table.Order)
	assert.NotContains(t, table.Hours, "Nobody")
	for _, hours := range table.Hours["Ana"] {
		assert.Equal(t, 0.0, hours)
	}
}

func TestWeeklyFreeHours_SubtractsAssignedFromAvailability(t *testing.T) {
	// given a member available 160h/month with one 80h project in March
	snap := Snapshot{
		Year:    2025,
		Members: []member.TeamMember{{Name: "Ana", MonthlyHours: fullAvailability(160)}},
		Projects: []project.Assignment{
			{
				Project:      "Rollout",
				Member:       "Ana",
				StartDate:    time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
				EndDate:      time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
				MonthlyHours: 80,
			},
		},
	}

	// when
	assignation, free := WeeklyFreeHours(snap)

	// then every week fully inside March carries half the availability
	fullMarchMondays := map[string]bool{
		"2025-03-03": true, "2025-03-10": true, "2025-03-17": true, "2025-03-24": true,
	}
	checked := 0
	for i, w := range free.Weeks {
		if !fullMarchMondays[w.Monday.Format("2006-01-02")] {
			continue
		}
		assert.InDelta(t, 20.0, assignation.Hours["Ana"][i], 0.001)
		assert.Equal(t, 20, free.Rows[0].Hours[i])
		checked++
	}
	assert.Equal(t, 4, checked)
}

func TestWeeklyFreeHours_HeaderLabels(t *testing.T) {
	snap := Snapshot{Year: 2025}

	_, free := WeeklyFreeHours(snap)

	assert.Equal(t, "1", free.WeekLabels[0])
	assert.Equal(t, "30/12", free.StartLabels[0])
	assert.Equal(t, "05/01", free.EndLabels[0])
}

func TestNextWeekColumn(t *testing.T) {
	weeks := GenerateWeeks(2025)

	t.Run("returns the first week starting after now", func(t *testing.T) {
		now := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)

		got := NextWeekColumn(weeks, now)

		// The week of Mar 10, 2025.
		assert.Equal(t, "11", got)
	})

	t.Run("returns empty when every week has started", func(t *testing.T) {
		now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

		assert.Equal(t, "", NextWeekColumn(weeks, now))
	})
}
