package domain

import "time"

type EventType string

const (
	EventPerevalSubmitted     EventType = "pereval.submitted"
	EventPerevalUpdated       EventType = "pereval.updated"
	EventPerevalStatusChanged EventType = "pereval.status_changed"
)

// Event is published after a pereval change has been committed.
type Event struct {
	Type       EventType `json:"type"`
	PerevalID  uint      `json:"pereval_id"`
	Status     Status    `json:"status"`
	PrevStatus Status    `json:"prev_status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
