package domain

import "fmt"

// Status is the moderation state of a pereval.
type Status int

const (
	StatusNew      Status = 1
	StatusPending  Status = 2
	StatusAccepted Status = 3
	StatusRejected Status = 4
)

var statusLabels = map[Status]string{
	StatusNew:      "Ожидает модерации",
	StatusPending:  "На модерации",
	StatusAccepted: "Принят",
	StatusRejected: "Отклонён",
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human readable status shown to submitters.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return fmt.Sprintf("status %d", int(s))
}

func (s Status) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusPending:
		return "pending"
	case StatusAccepted:
		return "accepted"
	case StatusRejected:
		return "rejected"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Editable reports whether the submitter may still patch the pereval.
func (s Status) Editable() bool {
	return s == StatusNew
}

// CanTransitionTo reports whether moderation may move a pereval from s to next.
// NEW -> PENDING -> ACCEPTED | REJECTED.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusNew:
		return next == StatusPending
	case StatusPending:
		return next == StatusAccepted || next == StatusRejected
	default:
		return false
	}
}
