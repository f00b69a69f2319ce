package boost

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsboard/opsboard/internal/utils"
	"github.com/opsboard/opsboard/pkg/allocation"
)

type stubFreeHours struct {
	table allocation.FreeHoursTable
	err   error
}

func (s *stubFreeHours) FreeHours(_ context.Context) (allocation.FreeHoursTable, error) {
	if s.err != nil {
		return allocation.FreeHoursTable{}, s.err
	}
	return s.table, nil
}

func threeWeekTable() allocation.FreeHoursTable {
	mondays := []time.Time{
		time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC),
	}
	table := allocation.FreeHoursTable{
		WeekLabels:  []string{"10", "11", "12"},
		StartLabels: []string{"03/03", "10/03", "17/03"},
		EndLabels:   []string{"09/03", "16/03", "23/03"},
		Rows: []allocation.FreeHoursRow{
			{Name: "Ana", Hours: []int{20, 20, 20}},
		},
	}
	for i, monday := range mondays {
		table.Weeks = append(table.Weeks, allocation.Week{
			Index:  i + 10,
			Monday: monday,
			Sunday: monday.AddDate(0, 0, 6),
		})
	}
	return table
}

func TestService_LoadSeedsEmptyGridFromFreeHours(t *testing.T) {
	// given an empty store
	service := NewService(&StubRepository{}, &stubFreeHours{table: threeWeekTable()}, &utils.MockClock{})

	// when
	grid, err := service.Load(context.Background())

	// then header rows, one empty row per member, and the Monday row
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "11", "12"}, grid.Weeks)
	require.Len(t, grid.Rows, 4)
	assert.Equal(t, Row{Label: StartRowLabel, Values: []string{"03/03", "10/03", "17/03"}}, grid.Rows[0])
	assert.Equal(t, Row{Label: EndRowLabel, Values: []string{"09/03", "16/03", "23/03"}}, grid.Rows[1])
	assert.Equal(t, Row{Label: "Ana", Values: []string{"", "", ""}}, grid.Rows[2])
	assert.Equal(t, Row{Label: MondayRowLabel, Values: []string{"2025-03-03", "2025-03-10", "2025-03-17"}}, grid.Rows[3])
}

func TestService_SaveThenLoadRoundTrips(t *testing.T) {
	// given
	repo := &StubRepository{}
	service := NewService(repo, &stubFreeHours{table: threeWeekTable()}, &utils.MockClock{})
	grid := Grid{
		Weeks: []string{"10", "11", "12"},
		Rows: []Row{
			{Label: StartRowLabel, Values: []string{"03/03", "10/03", "17/03"}},
			{Label: "Ana", Values: []string{"Proyecto A", "", "Proyecto B"}},
		},
	}

	// when
	require.NoError(t, service.Save(context.Background(), grid))
	loaded, err := service.Load(context.Background())

	// then
	require.NoError(t, err)
	assert.Equal(t, grid, loaded)
}

func TestService_SaveRejectsRowWithoutLabel(t *testing.T) {
	service := NewService(&StubRepository{}, &stubFreeHours{}, &utils.MockClock{})

	err := service.Save(context.Background(), Grid{Rows: []Row{{Label: ""}}})

	assert.Error(t, err)
}

func TestService_NextWeekUsesMondayRow(t *testing.T) {
	clock := &utils.MockClock{}
	clock.SetNow(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC))
	service := NewService(&StubRepository{}, &stubFreeHours{table: threeWeekTable()}, clock)

	grid, err := service.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "11", service.NextWeek(grid))

	clock.SetNow(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "", service.NextWeek(grid))
}
