package event

import (
	"context"

	"github.com/viant/maitre/internal/clock"
	"github.com/viant/maitre/internal/idgen"
	"github.com/viant/maitre/service/messaging"
)

// Publisher stamps and publishes protocol events onto a queue.
type Publisher struct {
	queue messaging.Queue[Event]
}

// NewPublisher creates a publisher backed by the supplied queue.
func NewPublisher(queue messaging.Queue[Event]) *Publisher {
	return &Publisher{queue: queue}
}

// Publish stamps identity and creation time and enqueues the event.
func (p *Publisher) Publish(ctx context.Context, event *Event) error {
	if event.ID == "" {
		event.ID = idgen.New()
	}
	event.CreatedAt = clock.Now()
	return p.queue.Publish(ctx, event)
}

// Consume retrieves and acknowledges the next event.
func (p *Publisher) Consume(ctx context.Context) (*Event, error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}
