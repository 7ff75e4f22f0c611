package maitre

import (
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/maitre/arena"
	"github.com/viant/maitre/gate"
	"github.com/viant/maitre/group"
	"github.com/viant/maitre/receptionist"
	"github.com/viant/maitre/service/event"
	"github.com/viant/maitre/service/journal"
	jfs "github.com/viant/maitre/service/journal/fs"
	jmemory "github.com/viant/maitre/service/journal/memory"
	"github.com/viant/maitre/steward"
)

// Service is the engine facade: it owns the shared arena, the gate set
// and the service layer, and wires the actors into a Runtime.
type Service struct {
	config  *Config
	arena   *arena.Arena
	gates   *gate.Set
	journal journal.Service
	events  *event.Service
	runtime *Runtime
}

// New creates a fully wired engine.
func New(options ...Option) (*Service, error) {
	s := &Service{}
	for _, option := range options {
		option(s)
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) init() error {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	groups := s.config.Restaurant.Groups
	tables := s.config.Restaurant.Tables

	if s.arena == nil {
		s.arena = arena.New(groups, tables)
	}
	if s.gates == nil {
		var gateOptions []gate.Option
		if s.config.Restaurant.Slots > 0 {
			gateOptions = append(gateOptions, gate.WithSlots(s.config.Restaurant.Slots))
		}
		var err error
		if s.gates, err = gate.NewSet(groups, tables, gateOptions...); err != nil {
			return err
		}
	}
	if s.journal == nil {
		if URL := s.config.Journal.URL; URL != "" {
			var err error
			if s.journal, err = jfs.New(afs.New(), jfs.Config{BaseURL: URL}); err != nil {
				return err
			}
		} else {
			s.journal = jmemory.New()
		}
	}
	if s.events == nil {
		s.events = event.New()
	}

	front, err := receptionist.New(
		receptionist.WithArena(s.arena),
		receptionist.WithGates(s.gates),
		receptionist.WithJournal(s.journal),
		receptionist.WithEventService(s.events))
	if err != nil {
		return fmt.Errorf("failed to create receptionist: %w", err)
	}
	cleanup, err := steward.New(s.gates, steward.WithEventService(s.events))
	if err != nil {
		return fmt.Errorf("failed to create steward: %w", err)
	}
	actors := make([]*group.Actor, groups)
	for id := 0; id < groups; id++ {
		if actors[id], err = group.New(id,
			group.WithArena(s.arena),
			group.WithGates(s.gates),
			group.WithJournal(s.journal),
			group.WithEventService(s.events),
			group.WithConfig(s.config.Group)); err != nil {
			return fmt.Errorf("failed to create group %v: %w", id, err)
		}
	}
	s.runtime = &Runtime{
		requests:     s.config.Restaurant.Requests,
		receptionist: front,
		steward:      cleanup,
		groups:       actors,
		events:       s.events,
	}
	return nil
}

// Runtime returns the run driver.
func (s *Service) Runtime() *Runtime { return s.runtime }

// Arena returns the shared state block. Outside of tests callers must
// follow the gate discipline when touching it.
func (s *Service) Arena() *arena.Arena { return s.arena }

// Gates returns the protocol gate set.
func (s *Service) Gates() *gate.Set { return s.gates }

// Journal returns the configured snapshot journal.
func (s *Service) Journal() journal.Service { return s.journal }

// Events returns the lifecycle event service.
func (s *Service) Events() *event.Service { return s.events }
