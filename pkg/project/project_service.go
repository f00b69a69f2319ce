package project

import (
	"context"
	"fmt"
	"time"
)

type Service interface {
	GetAll(ctx context.Context) ([]Assignment, error)
	ReplaceAll(ctx context.Context, assignments []Assignment) error
}

type ServiceImpl struct {
	repo Repository
	year int
}

func NewService(repo Repository, year int) *ServiceImpl {
	return &ServiceImpl{repo: repo, year: year}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Assignment, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) ReplaceAll(ctx context.Context, assignments []Assignment) error {
	yearStart := time.Date(s.year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(s.year, time.December, 31, 0, 0, 0, 0, time.UTC)
	for _, a := range assignments {
		if a.Project == "" {
			return fmt.Errorf("project assignment without project name")
		}
		if a.EndDate.Before(a.StartDate) {
			return fmt.Errorf("project %q ends before it starts", a.Project)
		}
		if a.StartDate.Before(yearStart) || a.EndDate.After(yearEnd) {
			return fmt.Errorf("project %q is outside the planning year %d", a.Project, s.year)
		}
	}
	return s.repo.ReplaceAll(ctx, assignments)
}
