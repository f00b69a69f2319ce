package holiday

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyDays_CountsBusinessDaysWithExclusiveEnd(t *testing.T) {
	// given a week of leave, Monday Mar 3 through Sunday Mar 9
	// (exclusive end Mar 10)
	events := []Event{
		{Name: "Ana", Start: day(2025, time.March, 3), End: day(2025, time.March, 10)},
	}

	// when
	days := MonthlyDays(events, 2025)

	// then only Mon through Fri count
	require.Len(t, days, 1)
	assert.Equal(t, 5, days[0].Days[int(time.March)-1])
}

func TestMonthlyDays_SplitsAcrossMonths(t *testing.T) {
	// given leave from Thu Jan 30 through Tue Feb 4 (exclusive end Feb 5)
	events := []Event{
		{Name: "Ana", Start: day(2025, time.January, 30), End: day(2025, time.February, 5)},
	}

	// when
	days := MonthlyDays(events, 2025)

	// then Jan 30, 31 and Feb 3, 4
	require.Len(t, days, 1)
	assert.Equal(t, 2, days[0].Days[int(time.January)-1])
	assert.Equal(t, 2, days[0].Days[int(time.February)-1])
}

func TestMonthlyDays_DropsDaysOutsideTargetYear(t *testing.T) {
	events := []Event{
		{Name: "Ana", Start: day(2024, time.December, 30), End: day(2025, time.January, 3)},
	}

	days := MonthlyDays(events, 2025)

	require.Len(t, days, 1)
	// Dec 30, 31 belong to 2024; Jan 1, 2 remain.
	assert.Equal(t, 2, days[0].Days[int(time.January)-1])
	assert.Equal(t, 0, days[0].Days[int(time.December)-1])
}

func TestMonthlyDays_SumsEventsPerMemberAndSortsFolded(t *testing.T) {
	events := []Event{
		{Name: "Beatriz", Start: day(2025, time.June, 2), End: day(2025, time.June, 3)},
		{Name: "Álvaro", Start: day(2025, time.June, 2), End: day(2025, time.June, 4)},
		{Name: "Álvaro", Start: day(2025, time.July, 7), End: day(2025, time.July, 8)},
	}

	days := MonthlyDays(events, 2025)

	require.Len(t, days, 2)
	assert.Equal(t, "Álvaro", days[0].Name)
	assert.Equal(t, 2, days[0].Days[int(time.June)-1])
	assert.Equal(t, 1, days[0].Days[int(time.July)-1])
	assert.Equal(t, "Beatriz", days[1].Name)
}

func TestService_EventsSortedByFoldedName(t *testing.T) {
	// given
	feed := &StubFeed{events: []Event{
		{Name: "Óscar", Start: day(2025, time.May, 5), End: day(2025, time.May, 6)},
		{Name: "Ana", Start: day(2025, time.May, 5), End: day(2025, time.May, 6)},
	}}
	service := NewService(feed, 2025)

	// when
	events, err := service.Events(context.Background())

	// then
	require.NoError(t, err)
	assert.Equal(t, "Ana", events[0].Name)
	assert.Equal(t, "Óscar", events[1].Name)
}

func TestHandler_GetMonthlyDays(t *testing.T) {
	feed := &StubFeed{events: []Event{
		{Name: "Ana", Start: day(2025, time.March, 3), End: day(2025, time.March, 10)},
	}}
	handler := NewHandler(NewService(feed, 2025))

	req := httptest.NewRequest(http.MethodGet, "/api/holidays/monthly", nil)
	rec := httptest.NewRecorder()
	handler.GetMonthlyDays(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"Ana","days":[0,0,5,0,0,0,0,0,0,0,0,0]}]`, rec.Body.String())
}

func TestHandler_GetMonthlyDaysUnauthenticated(t *testing.T) {
	handler := NewHandler(NewService(&StubFeed{err: ErrUnauthenticated}, 2025))

	req := httptest.NewRequest(http.MethodGet, "/api/holidays/monthly", nil)
	rec := httptest.NewRecorder()
	handler.GetMonthlyDays(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
