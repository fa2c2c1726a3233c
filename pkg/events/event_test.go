package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseEvent(t *testing.T) {
	aggregateID := uuid.New()
	occurredAt := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	event := NewBaseEvent("pocket.balance.updated", aggregateID, "Pocket", occurredAt, []byte(`{}`))

	assert.NotEqual(t, uuid.Nil, event.EventID())
	assert.Equal(t, "pocket.balance.updated", event.EventType())
	assert.Equal(t, aggregateID, event.AggregateID())
	assert.Equal(t, "Pocket", event.AggregateType())
	assert.Equal(t, occurredAt, event.OccurredAt())
	assert.Equal(t, []byte(`{}`), event.Payload())
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestEventCollector(t *testing.T) {
	var c EventCollector
	assert.Empty(t, c.Events())

	at := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	c.Record(NewBaseEvent("a", uuid.New(), "Pocket", at, nil))
	c.Record(NewBaseEvent("b", uuid.New(), "Pocket", at, nil))
	require.Len(t, c.Events(), 2)

	cleared := c.ClearEvents()
	assert.Len(t, cleared, 2)
	assert.Empty(t, c.Events())
}
