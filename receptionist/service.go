// Package receptionist implements the coordinator side of the rendezvous
// protocol: it consumes requests posted into the shared slot, assigns
// tables or queues groups, and on payment frees the table and immediately
// reconsiders the waiting room.
package receptionist

import (
	"context"
	"fmt"

	"github.com/viant/maitre/arena"
	"github.com/viant/maitre/gate"
	"github.com/viant/maitre/model"
	"github.com/viant/maitre/policy"
	"github.com/viant/maitre/service/event"
	"github.com/viant/maitre/service/journal"
	"github.com/viant/maitre/tracing"
)

// Service is the receptionist actor. A single instance serialises all
// table assignment and payment handling; it is the only writer of group
// lifecycle states, table assignments and the waiting counter.
type Service struct {
	arena   *arena.Arena
	gates   *gate.Set
	journal journal.Service
	events  *event.Service
}

// New creates a receptionist. Arena, gates and journal are required.
func New(options ...Option) (*Service, error) {
	s := &Service{}
	for _, option := range options {
		option(s)
	}
	if s.arena == nil {
		return nil, fmt.Errorf("arena is required")
	}
	if s.gates == nil {
		return nil, fmt.Errorf("gate set is required")
	}
	if s.journal == nil {
		return nil, fmt.Errorf("journal is required")
	}
	return s, nil
}

// WaitForGroup publishes the waiting-for-request status, blocks until a
// group posts, then consumes the request, resets the slot to the empty
// sentinel and reopens the slot for the next group. This is the only
// place the receptionist blocks indefinitely.
func (s *Service) WaitForGroup(ctx context.Context) (model.Request, error) {
	ctx, span := tracing.StartSpan(ctx, "receptionist.waitForGroup", "CONSUMER")
	ret, err := s.waitForGroup(ctx)
	tracing.EndSpan(span, err)
	return ret, err
}

func (s *Service) waitForGroup(ctx context.Context) (model.Request, error) {
	var none model.Request
	if err := s.gates.Mutex.Acquire(ctx); err != nil {
		return none, err
	}
	s.arena.SetStatus(model.StatusWaitingForRequest)
	if err := s.record(ctx); err != nil {
		// errors are fatal to the run, but the mutex is still handed back
		_ = s.gates.Mutex.Release()
		return none, err
	}
	if err := s.gates.Mutex.Release(); err != nil {
		return none, err
	}

	if err := s.gates.RequestPending.Acquire(ctx); err != nil {
		return none, err
	}

	if err := s.gates.Mutex.Acquire(ctx); err != nil {
		return none, err
	}
	ret := s.arena.TakeRequest()
	if err := s.record(ctx); err != nil {
		_ = s.gates.Mutex.Release()
		return none, err
	}
	if err := s.gates.Mutex.Release(); err != nil {
		return none, err
	}
	if err := s.gates.SlotAvailable.Release(); err != nil {
		return none, err
	}

	s.publish(ctx, &event.Event{
		Type:  event.TypeRequestAccepted,
		Group: ret.Group,
		Kind:  ret.Kind,
		Table: model.NoTable,
	})
	return ret, nil
}

// ProvideTableOrWaitingRoom seats the group at the first free table, or
// queues it when every table is occupied. When the group was already in
// the waiting room (post-payment reassignment) the waiting counter is
// decremented in the same critical section, keeping the counter equal to
// the number of waiting groups at every journal point.
func (s *Service) ProvideTableOrWaitingRoom(ctx context.Context, group int) error {
	ctx, span := tracing.StartSpan(ctx, "receptionist.provideTableOrWaitingRoom", "")
	err := s.provideTableOrWaitingRoom(ctx, group)
	tracing.EndSpan(span, err)
	return err
}

func (s *Service) provideTableOrWaitingRoom(ctx context.Context, group int) error {
	if group < 0 || group >= s.arena.Groups() {
		return model.NewInvalidGroupError(group, s.arena.Groups())
	}
	if err := s.gates.Mutex.Acquire(ctx); err != nil {
		return err
	}
	s.arena.SetStatus(model.StatusAssigningTable)
	if err := s.record(ctx); err != nil {
		_ = s.gates.Mutex.Release()
		return err
	}

	table := policy.FirstFreeTable(s.arena)
	seated := table != policy.None
	if seated {
		if err := s.arena.Assign(group, table); err != nil {
			_ = s.gates.Mutex.Release()
			return err
		}
		if s.arena.GroupState(group) == model.GroupWaiting {
			s.arena.DecWaiting()
		}
		s.arena.SetGroupState(group, model.GroupSeated)
		if err := s.record(ctx); err != nil {
			_ = s.gates.Mutex.Release()
			return err
		}
		// Releasing inside the critical section is safe: release never
		// blocks, and the woken group cannot observe the arena until it
		// acquires the mutex itself.
		if err := s.gates.TableReady[group].Release(); err != nil {
			_ = s.gates.Mutex.Release()
			return err
		}
	} else {
		s.arena.IncWaiting()
		s.arena.SetGroupState(group, model.GroupWaiting)
		if err := s.record(ctx); err != nil {
			_ = s.gates.Mutex.Release()
			return err
		}
	}
	waiting := s.arena.Waiting()
	if err := s.gates.Mutex.Release(); err != nil {
		return err
	}

	if seated {
		s.publish(ctx, &event.Event{Type: event.TypeGroupSeated, Group: group, Table: table, Kind: model.KindNone, Waiting: waiting})
	} else {
		s.publish(ctx, &event.Event{Type: event.TypeGroupQueued, Group: group, Table: model.NoTable, Kind: model.KindNone, Waiting: waiting})
	}
	return nil
}

// ReceivePayment settles a group's bill: it notifies the steward that the
// group's table is free to reset, clears the assignment and marks the
// group done. Afterwards - outside any critical section - it reassigns
// the freed table to the longest-waiting-by-index group, if any.
func (s *Service) ReceivePayment(ctx context.Context, group int) error {
	ctx, span := tracing.StartSpan(ctx, "receptionist.receivePayment", "")
	err := s.receivePayment(ctx, group)
	tracing.EndSpan(span, err)
	return err
}

func (s *Service) receivePayment(ctx context.Context, group int) error {
	if group < 0 || group >= s.arena.Groups() {
		return model.NewInvalidGroupError(group, s.arena.Groups())
	}
	if err := s.gates.Mutex.Acquire(ctx); err != nil {
		return err
	}
	s.arena.SetStatus(model.StatusReceivingPayment)
	if err := s.record(ctx); err != nil {
		_ = s.gates.Mutex.Release()
		return err
	}

	table := s.arena.AssignmentOf(group)
	if table == model.NoTable {
		_ = s.gates.Mutex.Release()
		return fmt.Errorf("group %v paid without holding a table", group)
	}
	if err := s.gates.TableVacated[table].Release(); err != nil {
		_ = s.gates.Mutex.Release()
		return err
	}
	s.arena.ClearAssignment(group)
	s.arena.SetGroupState(group, model.GroupDone)
	if err := s.record(ctx); err != nil {
		_ = s.gates.Mutex.Release()
		return err
	}
	if err := s.gates.Mutex.Release(); err != nil {
		return err
	}

	s.publish(ctx, &event.Event{Type: event.TypeTableFreed, Group: group, Table: table, Kind: model.KindNone})
	s.publish(ctx, &event.Event{Type: event.TypeGroupDone, Group: group, Table: model.NoTable, Kind: model.KindNone})

	// One table was just freed; hand it to a waiting group if there is one.
	// An explicit work-loop rather than recursion keeps the critical
	// section boundaries flat - each iteration fully exits the mutex
	// before ProvideTableOrWaitingRoom re-enters it.
	for freed := 1; freed > 0; freed-- {
		if err := s.gates.Mutex.Acquire(ctx); err != nil {
			return err
		}
		next := policy.FirstWaitingGroup(s.arena)
		if err := s.gates.Mutex.Release(); err != nil {
			return err
		}
		if next == policy.None {
			break
		}
		if err := s.provideTableOrWaitingRoom(ctx, next); err != nil {
			return err
		}
	}
	return nil
}

// Run serves the given number of requests, then returns. A non-positive
// count defaults to two requests per group - one table request and one
// bill request each, the reference deployment's bound. Any error is fatal
// to the run: a failing gate means the synchronisation substrate is
// broken and retrying could corrupt shared state.
func (s *Service) Run(ctx context.Context, requests int) error {
	if requests <= 0 {
		requests = 2 * s.arena.Groups()
	}
	for served := 0; served < requests; served++ {
		request, err := s.WaitForGroup(ctx)
		if err != nil {
			return err
		}
		switch request.Kind {
		case model.TableRequest:
			err = s.ProvideTableOrWaitingRoom(ctx, request.Group)
		case model.BillRequest:
			err = s.ReceivePayment(ctx, request.Group)
		default:
			err = fmt.Errorf("unexpected request kind %v from group %v", request.Kind, request.Group)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// record journals the current arena state; callers hold the mutex.
func (s *Service) record(ctx context.Context) error {
	return s.journal.Record(ctx, s.arena.Snapshot())
}

// publish emits a lifecycle event when an event service is configured.
// Always called outside the critical section so a saturated event queue
// can never stall the protocol while the mutex is held.
func (s *Service) publish(ctx context.Context, e *event.Event) {
	if s.events == nil {
		return
	}
	_ = s.events.Publisher().Publish(ctx, e)
}
