package member

import "context"

// StubRepository is an in-memory Repository for tests.
type StubRepository struct {
	members []TeamMember
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) GetAll(_ context.Context) ([]TeamMember, error) {
	return s.members, nil
}

func (s *StubRepository) ReplaceAll(_ context.Context, members []TeamMember) error {
	s.members = members
	return nil
}

func (s *StubRepository) Reset() {
	s.members = nil
}
