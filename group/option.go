package group

import (
	"github.com/viant/maitre/arena"
	"github.com/viant/maitre/gate"
	"github.com/viant/maitre/service/event"
	"github.com/viant/maitre/service/journal"
)

// Option customises a group actor.
type Option func(a *Actor)

// WithArena sets the shared arena.
func WithArena(shared *arena.Arena) Option {
	return func(a *Actor) {
		a.arena = shared
	}
}

// WithGates sets the protocol gate set.
func WithGates(gates *gate.Set) Option {
	return func(a *Actor) {
		a.gates = gates
	}
}

// WithJournal sets the snapshot journal.
func WithJournal(journal journal.Service) Option {
	return func(a *Actor) {
		a.journal = journal
	}
}

// WithEventService sets the optional lifecycle event service.
func WithEventService(events *event.Service) Option {
	return func(a *Actor) {
		a.events = events
	}
}

// WithConfig sets the group timing configuration.
func WithConfig(config Config) Option {
	return func(a *Actor) {
		a.config = config
	}
}
