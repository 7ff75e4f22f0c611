package gate

import (
	"context"
	"fmt"
)

// Gate is a counting signalling primitive. Acquire blocks the calling
// actor until the count is positive and decrements it; Release increments
// the count without blocking, waking one waiter if any. There is no
// timeout - context cancellation on Acquire is the single extension over
// the classic semaphore contract and exists only for orderly shutdown.
//
// The gate makes no FIFO promise: when several actors block on the same
// gate any one of them may be woken first.
type Gate struct {
	name   string
	tokens chan struct{}
}

// New creates a gate with the given initial count. The capacity bounds the
// maximum count the gate may ever reach; a Release beyond it reports a
// protocol violation rather than blocking.
func New(name string, initial, capacity int) (*Gate, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("gate %q: capacity must be positive, got %v", name, capacity)
	}
	if initial < 0 || initial > capacity {
		return nil, fmt.Errorf("gate %q: initial count %v outside [0..%v]", name, initial, capacity)
	}
	g := &Gate{name: name, tokens: make(chan struct{}, capacity)}
	for i := 0; i < initial; i++ {
		g.tokens <- struct{}{}
	}
	return g, nil
}

// Name returns the gate identity used in error reporting.
func (g *Gate) Name() string { return g.name }

// Acquire blocks until the count is positive, then decrements it.
func (g *Gate) Acquire(ctx context.Context) error {
	select {
	case <-g.tokens:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("gate %q: acquire aborted: %w", g.name, ctx.Err())
	}
}

// TryAcquire decrements the count if positive without blocking.
func (g *Gate) TryAcquire() bool {
	select {
	case <-g.tokens:
		return true
	default:
		return false
	}
}

// Release increments the count, waking one blocked waiter if any. A
// release past the gate's capacity means the protocol discipline was
// broken; the error is unrecoverable from the caller's perspective.
func (g *Gate) Release() error {
	select {
	case g.tokens <- struct{}{}:
		return nil
	default:
		return fmt.Errorf("gate %q: release past capacity %v", g.name, cap(g.tokens))
	}
}

// Count returns the current token count. Diagnostic only - the value may
// be stale by the time the caller observes it.
func (g *Gate) Count() int { return len(g.tokens) }
