package events

import "time"

const PersonRegisteredTopic = "hr.person.lifecycle.v1"

type PersonRegisteredEvent struct {
	EventType  string    `json:"event_type"`
	PersonID   int64     `json:"person_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}
