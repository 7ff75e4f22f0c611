package event

import (
	"context"
	"errors"
	"log"
)

// Listener pumps events from a publisher into a handler on its own
// goroutine until stopped.
type Listener struct {
	publisher *Publisher
	handler   func(*Event)
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewListener creates a listener; call Start to begin delivery.
func NewListener(publisher *Publisher, handler func(*Event)) *Listener {
	ctx, cancel := context.WithCancel(context.Background())
	return &Listener{
		publisher: publisher,
		handler:   handler,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Stop terminates delivery.
func (l *Listener) Stop() {
	l.cancel()
}

// Start begins consuming events on a dedicated goroutine.
func (l *Listener) Start() {
	go func() {
		for {
			event, err := l.publisher.Consume(l.ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				log.Printf("error consuming event: %v", err)
				continue
			}
			l.handler(event)
		}
	}()
}
