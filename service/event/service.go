package event

import (
	"github.com/viant/maitre/service/messaging"
	"github.com/viant/maitre/service/messaging/memory"
)

// Service owns the protocol event channel - a single publisher plus an
// optional listener fan-in.
type Service struct {
	publisher *Publisher
	listener  *Listener
}

// Option customises the event service.
type Option func(s *Service)

// WithQueue overrides the default in-memory queue.
func WithQueue(queue messaging.Queue[Event]) Option {
	return func(s *Service) {
		s.publisher = NewPublisher(queue)
	}
}

// New creates an event service backed by an in-memory queue unless a
// queue option says otherwise.
func New(options ...Option) *Service {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.publisher == nil {
		ret.publisher = NewPublisher(memory.NewQueue[Event](memory.DefaultConfig()))
	}
	return ret
}

// Publisher returns the service publisher.
func (s *Service) Publisher() *Publisher {
	return s.publisher
}

// SetListener replaces the active listener with one delivering to handler.
func (s *Service) SetListener(handler func(*Event)) {
	if s.listener != nil {
		s.listener.Stop()
	}
	s.listener = NewListener(s.publisher, handler)
	s.listener.Start()
}

// Shutdown stops the active listener if any.
func (s *Service) Shutdown() {
	if s.listener != nil {
		s.listener.Stop()
	}
}
