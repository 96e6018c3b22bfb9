package leave

import (
	"time"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	// StatusCancelled is reserved; no transition produces it.
	StatusCancelled = "CANCELLED"
)

type Leave struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	RequesterID int64     `gorm:"not null;index:idx_leaves_requester_dates"`
	StartDate   time.Time `gorm:"type:date;not null;index:idx_leaves_requester_dates"`
	EndDate     time.Time `gorm:"type:date;not null;index:idx_leaves_requester_dates"`
	Description string    `gorm:"type:text"`

	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ApproverID      *int64     `gorm:""`
	ApprovedAt      *time.Time `gorm:""`
	RejectionReason *string    `gorm:"type:text"`
	RequestedAt     time.Time  `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration is the inclusive day count of the leave range.
func (l Leave) Duration() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

// Terminal reports whether status admits no further transition.
func Terminal(status string) bool {
	return status == StatusApproved || status == StatusRejected
}
