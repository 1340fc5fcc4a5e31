// Package events publishes coaching lifecycle events.
package events

import (
	"encoding/json"
	"time"
)

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

type EventType string

const (
	TargetCreated       EventType = "target.created"
	TargetUpdated       EventType = "target.updated"
	LoveAnalysisCreated EventType = "love_analysis.created"
	ChatStrategyCreated EventType = "chat_strategy.created"
	ReplyOptionsCreated EventType = "reply_options.created"
)

// Event is the envelope written to the events topic.
type Event struct {
	ID            string          `json:"id"`
	Type          EventType       `json:"type"`
	SchemaVersion string          `json:"schema_version"`
	TargetID      int64           `json:"target_id"`
	EntityID      int64           `json:"entity_id"`
	RequestID     string          `json:"request_id,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Data          json.RawMessage `json:"data,omitempty"`
}
