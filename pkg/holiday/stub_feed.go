package holiday

import "context"

type StubFeed struct {
	events []Event
	err    error
}

func (s *StubFeed) Events(_ context.Context, _ int) ([]Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.events, nil
}
