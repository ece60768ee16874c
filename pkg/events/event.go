package events

import "time"

// Event types published on the assistant stream.
const (
	TypeExchangeCompleted = "EXCHANGE_COMPLETED"
	TypeKnowledgeIndexed  = "KNOWLEDGE_INDEXED"
)

// Event is the contract every published event satisfies.
type Event interface {
	// EventType returns the event code, e.g. "EXCHANGE_COMPLETED".
	EventType() string

	// Payload returns the data carried by the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used both for publishing and for
// reconstructing events off the wire.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewExchangeCompleted records one finished visitor exchange.
func NewExchangeCompleted(sessionID, role, queryType string) Event {
	return BaseEvent{
		Type: TypeExchangeCompleted,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"role":       role,
			"query_type": queryType,
		},
		OccurredAt: time.Now(),
	}
}

// NewKnowledgeIndexed records that a knowledge chunk finished (re)indexing.
func NewKnowledgeIndexed(chunkID, source string, slices int) Event {
	return BaseEvent{
		Type: TypeKnowledgeIndexed,
		Data: map[string]interface{}{
			"chunk_id": chunkID,
			"source":   source,
			"slices":   slices,
		},
		OccurredAt: time.Now(),
	}
}
