// Package report computes the planning reports: weekly assignation and
// free hours, monthly assignation and totals, and occupation metrics.
// Every report reads a fresh snapshot of the team and projects tables.
package report

import (
	"context"

	"github.com/opsboard/opsboard/internal/utils"
	"github.com/opsboard/opsboard/pkg/allocation"
	"github.com/opsboard/opsboard/pkg/holiday"
	"github.com/opsboard/opsboard/pkg/member"
	"github.com/opsboard/opsboard/pkg/project"
)

// WeeklyReport is the weekly assignation table plus the label of the
// upcoming week, for highlighting.
type WeeklyReport struct {
	Table    allocation.WeeklyTable
	NextWeek string
}

// FreeHoursReport is the weekly free-hours table plus the label of the
// upcoming week.
type FreeHoursReport struct {
	Table    allocation.FreeHoursTable
	NextWeek string
}

type Service interface {
	WeeklyAssignation(ctx context.Context) (WeeklyReport, error)
	WeeklyFreeHours(ctx context.Context) (FreeHoursReport, error)
	// FreeHours returns the bare free-hours table. It also serves as the
	// seed for the boost grid.
	FreeHours(ctx context.Context) (allocation.FreeHoursTable, error)
	MonthlyAssignation(ctx context.Context) ([]allocation.MonthlyRow, error)
	MonthlyTotals(ctx context.Context) ([]allocation.MonthlyTotal, error)
	// Metrics computes the team occupation percentages. With
	// withHolidays set, leave days from the calendar feed reduce real
	// availability.
	Metrics(ctx context.Context, withHolidays bool) (allocation.Metrics, error)
}

type ServiceImpl struct {
	members  member.Repository
	projects project.Repository
	feed     holiday.Feed
	year     int
	clock    utils.Clock
}

func NewService(
	members member.Repository,
	projects project.Repository,
	feed holiday.Feed,
	year int,
	clock utils.Clock,
) *ServiceImpl {
	return &ServiceImpl{
		members:  members,
		projects: projects,
		feed:     feed,
		year:     year,
		clock:    clock,
	}
}

// snapshot reads both tables once so a report never mixes data from
// before and after a concurrent save.
func (s *ServiceImpl) snapshot(ctx context.Context) (allocation.Snapshot, error) {
	members, err := s.members.GetAll(ctx)
	if err != nil {
		return allocation.Snapshot{}, err
	}
	projects, err := s.projects.GetAll(ctx)
	if err != nil {
		return allocation.Snapshot{}, err
	}
	return allocation.Snapshot{Year: s.year, Members: members, Projects: projects}, nil
}

func (s *ServiceImpl) WeeklyAssignation(ctx context.Context) (WeeklyReport, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return WeeklyReport{}, err
	}
	table := allocation.WeeklyAssignation(snap)
	return WeeklyReport{
		Table:    table,
		NextWeek: allocation.NextWeekColumn(table.Weeks, s.clock.Now()),
	}, nil
}

func (s *ServiceImpl) WeeklyFreeHours(ctx context.Context) (FreeHoursReport, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return FreeHoursReport{}, err
	}
	_, free := allocation.WeeklyFreeHours(snap)
	return FreeHoursReport{
		Table:    free,
		NextWeek: allocation.NextWeekColumn(free.Weeks, s.clock.Now()),
	}, nil
}

func (s *ServiceImpl) FreeHours(ctx context.Context) (allocation.FreeHoursTable, error) {
	report, err := s.WeeklyFreeHours(ctx)
	if err != nil {
		return allocation.FreeHoursTable{}, err
	}
	return report.Table, nil
}

func (s *ServiceImpl) MonthlyAssignation(ctx context.Context) ([]allocation.MonthlyRow, error) {
	projects, err := s.projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return allocation.MonthlyAssignation(projects, s.year), nil
}

func (s *ServiceImpl) MonthlyTotals(ctx context.Context) ([]allocation.MonthlyTotal, error) {
	rows, err := s.MonthlyAssignation(ctx)
	if err != nil {
		return nil, err
	}
	return allocation.MonthlyTotals(rows), nil
}

func (s *ServiceImpl) Metrics(ctx context.Context, withHolidays bool) (allocation.Metrics, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return allocation.Metrics{}, err
	}

	if !withHolidays {
		return allocation.OccupationMetrics(snap, nil), nil
	}

	events, err := s.feed.Events(ctx, s.year)
	if err != nil {
		return allocation.Metrics{}, err
	}
	holidayDays := make(map[string][12]int)
	for _, md := range holiday.MonthlyDays(events, s.year) {
		holidayDays[md.Name] = md.Days
	}
	return allocation.OccupationMetrics(snap, holidayDays), nil
}
