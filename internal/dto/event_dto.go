package dto

import "time"

// EventEnvelope is the wire form of a pipeline event on the internal
// bus.
type EventEnvelope struct {
	EventType  string                 `json:"event_type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}
