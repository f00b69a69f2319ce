package dashboard

import (
	"context"
	"fmt"
)

type Service interface {
	GetAll(ctx context.Context) ([]Row, error)
	ReplaceAll(ctx context.Context, rows []Row) error
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Row, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) ReplaceAll(ctx context.Context, rows []Row) error {
	for _, row := range rows {
		if row.Project == "" {
			return fmt.Errorf("dashboard row without project name")
		}
	}
	return s.repo.ReplaceAll(ctx, rows)
}
