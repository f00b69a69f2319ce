package boost

import "context"

type StubRepository struct {
	cells []Cell
	err   error
}

func (s *StubRepository) GetAll(_ context.Context) ([]Cell, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.cells, nil
}

func (s *StubRepository) ReplaceAll(_ context.Context, cells []Cell) error {
	if s.err != nil {
		return s.err
	}
	s.cells = cells
	return nil
}
