package receptionist

import (
	"github.com/viant/maitre/arena"
	"github.com/viant/maitre/gate"
	"github.com/viant/maitre/service/event"
	"github.com/viant/maitre/service/journal"
)

// Option customises the receptionist service.
type Option func(s *Service)

// WithArena sets the shared arena.
func WithArena(a *arena.Arena) Option {
	return func(s *Service) {
		s.arena = a
	}
}

// WithGates sets the protocol gate set.
func WithGates(gates *gate.Set) Option {
	return func(s *Service) {
		s.gates = gates
	}
}

// WithJournal sets the snapshot journal.
func WithJournal(journal journal.Service) Option {
	return func(s *Service) {
		s.journal = journal
	}
}

// WithEventService sets the optional lifecycle event service.
func WithEventService(events *event.Service) Option {
	return func(s *Service) {
		s.events = events
	}
}
