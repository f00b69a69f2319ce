package member

import (
	"context"
	"fmt"
)

type Service interface {
	GetAll(ctx context.Context) ([]TeamMember, error)
	ReplaceAll(ctx context.Context, members []TeamMember) error
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]TeamMember, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) ReplaceAll(ctx context.Context, members []TeamMember) error {
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m.Name == "" {
			return fmt.Errorf("team member without name")
		}
		if _, ok := seen[m.Name]; ok {
			return fmt.Errorf("duplicated team member name: %s", m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	return s.repo.ReplaceAll(ctx, members)
}
