package project

import "context"

// StubRepository is an in-memory Repository for tests.
type StubRepository struct {
	assignments []Assignment
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) GetAll(_ context.Context) ([]Assignment, error) {
	return s.assignments, nil
}

func (s *StubRepository) ReplaceAll(_ context.Context, assignments []Assignment) error {
	s.assignments = assignments
	return nil
}

func (s *StubRepository) Reset() {
	s.assignments = nil
}
