// Package steward implements the cleanup role of the protocol: it blocks
// on each table's vacated gate and resets the table before it is reused.
// Seen from the protocol core this is the external collaborator consuming
// the per-table vacated signal.
package steward

import (
	"context"
	"fmt"
	"sync"

	"github.com/viant/maitre/gate"
	"github.com/viant/maitre/model"
	"github.com/viant/maitre/service/event"
)

// Steward consumes table-vacated signals, one watcher per table.
type Steward struct {
	gates   *gate.Set
	events  *event.Service
	cleared []int
	mu      sync.Mutex
}

// Option customises the steward.
type Option func(s *Steward)

// WithEventService sets the optional lifecycle event service.
func WithEventService(events *event.Service) Option {
	return func(s *Steward) {
		s.events = events
	}
}

// New creates a steward over the supplied gate set.
func New(gates *gate.Set, options ...Option) (*Steward, error) {
	if gates == nil {
		return nil, fmt.Errorf("gate set is required")
	}
	ret := &Steward{gates: gates}
	for _, option := range options {
		option(ret)
	}
	return ret, nil
}

// Run watches every table's vacated gate until the context is cancelled.
// Each signal counts one clear and emits a table-cleared event.
func (s *Steward) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	for table := range s.gates.TableVacated {
		wg.Add(1)
		go func(table int) {
			defer wg.Done()
			s.watch(ctx, table)
		}(table)
	}
	wg.Wait()
	return ctx.Err()
}

func (s *Steward) watch(ctx context.Context, table int) {
	for {
		if err := s.gates.TableVacated[table].Acquire(ctx); err != nil {
			return
		}
		s.mu.Lock()
		s.cleared = append(s.cleared, table)
		s.mu.Unlock()
		if s.events != nil {
			_ = s.events.Publisher().Publish(ctx, &event.Event{
				Type:  event.TypeTableCleared,
				Group: model.NoGroup,
				Table: table,
				Kind:  model.KindNone,
			})
		}
	}
}

// Cleared returns the tables cleared so far in signal order.
func (s *Steward) Cleared() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.cleared))
	copy(out, s.cleared)
	return out
}
