package maitre

import (
	"context"
	"fmt"
	"sync"

	"github.com/viant/maitre/group"
	"github.com/viant/maitre/receptionist"
	"github.com/viant/maitre/service/event"
	"github.com/viant/maitre/steward"
)

// Runtime drives one deployment of the protocol: the receptionist loop,
// the steward watchers and one goroutine per group.
type Runtime struct {
	requests     int
	receptionist *receptionist.Service
	steward      *steward.Steward
	groups       []*group.Actor
	events       *event.Service

	mu      sync.Mutex
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	errs    []error
	started bool
}

// Receptionist returns the coordinator actor.
func (r *Runtime) Receptionist() *receptionist.Service { return r.receptionist }

// Steward returns the cleanup actor.
func (r *Runtime) Steward() *steward.Steward { return r.steward }

// Groups returns the client actors.
func (r *Runtime) Groups() []*group.Actor { return r.groups }

// Start launches all actors. The receptionist serves the configured
// number of requests (two per group by default); once it returns, the
// runtime cancels the steward and any still-blocked group.
func (r *Runtime) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return fmt.Errorf("runtime already started")
	}
	r.started = true
	ctx, r.cancel = context.WithCancel(ctx)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		_ = r.steward.Run(ctx)
	}()

	for _, actor := range r.groups {
		r.wg.Add(1)
		go func(actor *group.Actor) {
			defer r.wg.Done()
			if err := actor.Run(ctx); err != nil {
				r.report(fmt.Errorf("group %v: %w", actor.ID(), err))
			}
		}(actor)
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		// Once the receptionist stops serving - whether it drained its
		// request budget or hit a fatal gate error - nothing can unblock
		// the remaining actors, so the whole runtime winds down.
		defer r.cancel()
		if err := r.receptionist.Run(ctx, r.requests); err != nil {
			r.report(fmt.Errorf("receptionist: %w", err))
		}
	}()
	return nil
}

// Wait blocks until every actor finished and returns the first recorded
// error, if any.
func (r *Runtime) Wait() error {
	r.wg.Wait()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.errs) > 0 {
		return r.errs[0]
	}
	return nil
}

// Shutdown cancels all actors and stops event delivery.
func (r *Runtime) Shutdown() {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	if r.events != nil {
		r.events.Shutdown()
	}
}

func (r *Runtime) report(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}
