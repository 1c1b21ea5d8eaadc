package state

import "sync"

type Service int

const (
	Ready Service = iota
	Metrics
)

// State holds the service availability flags shared between operations and
// the readiness probe.
type State struct {
	sync.RWMutex

	ready   bool
	metrics bool
}

func NewState() *State {
	return &State{
		metrics: true,
	}
}

func (s *State) Get(svc Service) bool {
	s.RLock()
	defer s.RUnlock()
	{
		switch svc {
		case Ready:
			return s.ready

		case Metrics:
			return s.metrics
		}
	}
	return false
}

func (s *State) Set(svc Service, state bool) {
	s.Lock()
	defer s.Unlock()
	{
		switch svc {
		case Ready:
			s.ready = state

		case Metrics:
			s.metrics = state
		}
	}
}
