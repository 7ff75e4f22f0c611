package gate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGate_AcquireRelease(t *testing.T) {
	g, err := New("test", 1, 2)
	assert.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, g.Acquire(ctx))
	assert.Equal(t, 0, g.Count())

	assert.NoError(t, g.Release())
	assert.NoError(t, g.Release())
	assert.Equal(t, 2, g.Count())

	// count is saturated at capacity
	err = g.Release()
	assert.Error(t, err)
}

func TestGate_AcquireBlocksUntilRelease(t *testing.T) {
	g, err := New("test", 0, 1)
	assert.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		if err := g.Acquire(context.Background()); err == nil {
			close(acquired)
		}
	}()

	select {
	case <-acquired:
		t.Fatal("acquire succeeded on a zero-count gate")
	case <-time.After(20 * time.Millisecond):
	}

	assert.NoError(t, g.Release())
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("release did not wake the waiter")
	}
}

func TestGate_TryAcquire(t *testing.T) {
	g, err := New("test", 1, 1)
	assert.NoError(t, err)
	assert.True(t, g.TryAcquire())
	assert.False(t, g.TryAcquire())
}

func TestGate_AcquireCancelled(t *testing.T) {
	g, err := New("test", 0, 1)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = g.Acquire(ctx)
	assert.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGate_Validation(t *testing.T) {
	testCases := []struct {
		description string
		initial     int
		capacity    int
	}{
		{description: "zero capacity", initial: 0, capacity: 0},
		{description: "negative initial", initial: -1, capacity: 1},
		{description: "initial above capacity", initial: 2, capacity: 1},
	}
	for _, testCase := range testCases {
		_, err := New("test", testCase.initial, testCase.capacity)
		assert.Error(t, err, testCase.description)
	}
}

func TestGate_ManyWaitersAllWoken(t *testing.T) {
	g, err := New("test", 0, 8)
	assert.NoError(t, err)

	waiters := 8
	var wg sync.WaitGroup
	wg.Add(waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Acquire(context.Background()))
		}()
	}
	for i := 0; i < waiters; i++ {
		assert.NoError(t, g.Release())
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("not every waiter was woken")
	}
}
