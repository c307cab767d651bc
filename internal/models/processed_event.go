package models

import "time"

// ProcessedEvent is the idempotency ledger row for one gateway event.
// Append-only, unique on EventID; the sole source of truth for "has this
// notification already been acted upon".
type ProcessedEvent struct {
	EventID    string    `json:"event_id" gorm:"primaryKey"`
	RecordedAt time.Time `json:"recorded_at" gorm:"autoCreateTime"`
}

func (ProcessedEvent) TableName() string {
	return "processed_events"
}
