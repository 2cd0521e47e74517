package models

import "time"

// ActivityLogEvent is one row of the append-only audit trail. Metadata is
// a JSON-encoded string; rows are only removed by retention pruning.
type ActivityLogEvent struct {
	Base
	EventType  string    `gorm:"not null;index" json:"event_type"`
	EntityType string    `gorm:"not null" json:"entity_type"`
	EntityID   uint      `json:"entity_id"`
	UserAction string    `json:"user_action"`
	Metadata   string    `json:"metadata,omitempty"`
	Timestamp  time.Time `gorm:"not null;index" json:"timestamp"`
}

// ActivityLogSettings is the singleton retention policy row.
type ActivityLogSettings struct {
	Base
	MaxAgeDays int `gorm:"not null" json:"maxAgeDays"`
	MaxCount   int `gorm:"not null" json:"maxCount"`
}

// Default retention bounds.
const (
	RetentionMinAgeDays = 7
	RetentionMaxAgeDays = 365
	RetentionMinCount   = 100
	RetentionMaxCount   = 10000

	DefaultMaxAgeDays = 90
	DefaultMaxCount   = 1000
)
