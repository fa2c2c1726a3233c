package events

// EventCollector is embedded in aggregates to collect domain events during state transitions.
type EventCollector struct {
	events []DomainEvent
}

// Record appends a domain event to the collector.
func (c *EventCollector) Record(event DomainEvent) {
	c.events = append(c.events, event)
}

// Events returns the collected domain events without clearing them.
func (c *EventCollector) Events() []DomainEvent {
	return c.events
}

// ClearEvents returns the collected domain events and clears the internal slice.
func (c *EventCollector) ClearEvents() []DomainEvent {
	collected := c.events
	c.events = nil
	return collected
}

// Clone returns a collector holding a defensive copy of the recorded events.
// Aggregates that mutate by returning copies use this so the copy and the
// original never share a backing slice.
func (c *EventCollector) Clone() EventCollector {
	if c.events == nil {
		return EventCollector{}
	}
	copied := make([]DomainEvent, len(c.events))
	copy(copied, c.events)
	return EventCollector{events: copied}
}
