package events

import "time"

const RequestDecidedTopic = "hr.request.decision.v1"

// RequestDecidedEvent is emitted when a leave or trip request reaches a
// terminal status.
type RequestDecidedEvent struct {
	EventType   string    `json:"event_type"`
	RequestKind string    `json:"request_kind"` // LEAVE or TRIP
	RequestID   int64     `json:"request_id"`
	RequesterID int64     `json:"requester_id"`
	ApproverID  int64     `json:"approver_id"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}
