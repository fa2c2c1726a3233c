package memory

import (
	"context"
	"sync"

	"github.com/jdramirezl/finance-app-sub001/pkg/events"
)

// EventPublisher is an in-memory implementation of port.EventPublisher that
// collects published events per topic for inspection.
type EventPublisher struct {
	mu        sync.Mutex
	published map[string][]events.DomainEvent
}

// NewEventPublisher creates an empty in-memory event publisher.
func NewEventPublisher() *EventPublisher {
	return &EventPublisher{published: make(map[string][]events.DomainEvent)}
}

// Publish records the events under the topic.
func (p *EventPublisher) Publish(_ context.Context, topic string, evts ...events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published[topic] = append(p.published[topic], evts...)
	return nil
}

// Published returns the events recorded under the topic.
func (p *EventPublisher) Published(topic string) []events.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.published[topic]
}
