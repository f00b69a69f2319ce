package google

import (
	"context"
	"fmt"
	"time"

	"github.com/opsboard/opsboard/pkg/holiday"
	log "github.com/sirupsen/logrus"
	gcal "google.golang.org/api/calendar/v3"
)

const feedDateFormat = "2006-01-02"

// maxFeedResults bounds a single listing of the leave calendar. The team
// calendar holds far fewer events per year.
const maxFeedResults = 1000

// HolidayFeed reads the team's leave calendar. Each event's summary is a
// member name and all-day events carry date-only boundaries with an
// exclusive end.
type HolidayFeed struct {
	auth       *GoogleAuth
	calendarId string
}

func NewHolidayFeed(auth *GoogleAuth, calendarId string) *HolidayFeed {
	return &HolidayFeed{auth: auth, calendarId: calendarId}
}

func (f *HolidayFeed) Events(ctx context.Context, year int) ([]holiday.Event, error) {
	service, err := prepareGoogleService(ctx, f.auth)
	if err != nil {
		return nil, err
	}

	timeMin := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	timeMax := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	googleEvents, err := service.Events.List(f.calendarId).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		MaxResults(maxFeedResults).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve events from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}

	events := make([]holiday.Event, 0, len(googleEvents.Items))
	for _, item := range googleEvents.Items {
		start, err := parseEventTime(item.Start)
		if err != nil {
			log.Warnf("skipping calendar event %s with unreadable start: %v", item.Id, err)
			continue
		}
		end, err := parseEventTime(item.End)
		if err != nil {
			log.Warnf("skipping calendar event %s with unreadable end: %v", item.Id, err)
			continue
		}
		events = append(events, holiday.Event{
			UID:    item.Id,
			Name:   item.Summary,
			Start:  start,
			End:    end,
			Status: item.Status,
		})
	}
	return events, nil
}

func parseEventTime(edt *gcal.EventDateTime) (time.Time, error) {
	if edt == nil {
		return time.Time{}, fmt.Errorf("missing event boundary")
	}
	if edt.DateTime != "" {
		return time.Parse(time.RFC3339, edt.DateTime)
	}
	return time.Parse(feedDateFormat, edt.Date)
}
