package holiday

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Service interface {
	// Events returns the planning year's leave events sorted by
	// accent-folded member name.
	Events(ctx context.Context) ([]Event, error)
	// MonthlyDays returns per-member leave business-day counts for the
	// planning year.
	MonthlyDays(ctx context.Context) ([]MemberDays, error)
}

type ServiceImpl struct {
	feed Feed
	year int
}

func NewService(feed Feed, year int) *ServiceImpl {
	return &ServiceImpl{feed: feed, year: year}
}

func (s *ServiceImpl) Events(ctx context.Context) ([]Event, error) {
	events, err := s.feed.Events(ctx, s.year)
	if err != nil {
		log.Errorf("failed to fetch leave events: %v", err)
		return nil, fmt.Errorf("failed to fetch leave events: %w", err)
	}
	sortEventsByFoldedName(events)
	return events, nil
}

func (s *ServiceImpl) MonthlyDays(ctx context.Context) ([]MemberDays, error) {
	events, err := s.feed.Events(ctx, s.year)
	if err != nil {
		log.Errorf("failed to fetch leave events: %v", err)
		return nil, fmt.Errorf("failed to fetch leave events: %w", err)
	}
	return MonthlyDays(events, s.year), nil
}
