// Package group implements the client side of the rendezvous protocol: a
// group posts typed requests into the shared slot and blocks on its
// private table-ready gate until the receptionist seats it.
package group

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/maitre/arena"
	"github.com/viant/maitre/gate"
	"github.com/viant/maitre/model"
	"github.com/viant/maitre/service/event"
	"github.com/viant/maitre/service/journal"
)

// Config holds per-group timing.
type Config struct {
	// ArrivalDelay is slept before the table request is posted.
	ArrivalDelay time.Duration `json:"arrivalDelay" yaml:"arrivalDelay"`

	// EatDuration is slept between being seated and requesting the bill.
	EatDuration time.Duration `json:"eatDuration" yaml:"eatDuration"`
}

// Actor is one client of the protocol, identified by its index in [0, N).
type Actor struct {
	id      int
	config  Config
	arena   *arena.Arena
	gates   *gate.Set
	journal journal.Service
	events  *event.Service
}

// New creates a group actor. Arena, gates and journal are required.
func New(id int, options ...Option) (*Actor, error) {
	a := &Actor{id: id}
	for _, option := range options {
		option(a)
	}
	if a.arena == nil {
		return nil, fmt.Errorf("arena is required")
	}
	if a.gates == nil {
		return nil, fmt.Errorf("gate set is required")
	}
	if a.journal == nil {
		return nil, fmt.Errorf("journal is required")
	}
	if id < 0 || id >= a.arena.Groups() {
		return nil, model.NewInvalidGroupError(id, a.arena.Groups())
	}
	return a, nil
}

// ID returns the group index.
func (a *Actor) ID() int { return a.id }

// RequestTable posts a table request and blocks until the receptionist
// assigns a table. The returned index is read back from the arena under
// the mutex once the group's private gate opens.
func (a *Actor) RequestTable(ctx context.Context) (int, error) {
	if err := a.post(ctx, model.Request{Kind: model.TableRequest, Group: a.id}); err != nil {
		return model.NoTable, err
	}
	if err := a.gates.TableReady[a.id].Acquire(ctx); err != nil {
		return model.NoTable, err
	}

	if err := a.gates.Mutex.Acquire(ctx); err != nil {
		return model.NoTable, err
	}
	table := a.arena.AssignmentOf(a.id)
	if err := a.gates.Mutex.Release(); err != nil {
		return model.NoTable, err
	}
	if table == model.NoTable {
		return model.NoTable, fmt.Errorf("group %v woken without a table assignment", a.id)
	}
	return table, nil
}

// RequestBill posts a bill request. Payment completion is fire-and-forget
// from the group's perspective - the freed table is handed to the steward
// through the per-table vacated gate, not back to the paying group.
func (a *Actor) RequestBill(ctx context.Context) error {
	return a.post(ctx, model.Request{Kind: model.BillRequest, Group: a.id})
}

// post runs the shared posting handshake: wait for the slot, publish the
// request under the mutex, journal, then signal the receptionist.
func (a *Actor) post(ctx context.Context, request model.Request) error {
	if err := a.gates.SlotAvailable.Acquire(ctx); err != nil {
		return err
	}
	if err := a.gates.Mutex.Acquire(ctx); err != nil {
		return err
	}
	if err := a.arena.PostRequest(request); err != nil {
		_ = a.gates.Mutex.Release()
		return err
	}
	if err := a.journal.Record(ctx, a.arena.Snapshot()); err != nil {
		_ = a.gates.Mutex.Release()
		return err
	}
	if err := a.gates.Mutex.Release(); err != nil {
		return err
	}
	if err := a.gates.RequestPending.Release(); err != nil {
		return err
	}
	if a.events != nil {
		_ = a.events.Publisher().Publish(ctx, &event.Event{
			Type:  event.TypeRequestPosted,
			Group: a.id,
			Kind:  request.Kind,
			Table: model.NoTable,
		})
	}
	return nil
}

// Run drives the group through its whole lifecycle: arrive, request a
// table, eat, request the bill.
func (a *Actor) Run(ctx context.Context) error {
	if err := sleep(ctx, a.config.ArrivalDelay); err != nil {
		return err
	}
	if _, err := a.RequestTable(ctx); err != nil {
		return err
	}
	if err := sleep(ctx, a.config.EatDuration); err != nil {
		return err
	}
	return a.RequestBill(ctx)
}

func sleep(ctx context.Context, duration time.Duration) error {
	if duration <= 0 {
		return nil
	}
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
