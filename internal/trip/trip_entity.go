package trip

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	// StatusCancelled is reserved; no transition produces it.
	StatusCancelled = "CANCELLED"
)

// Trip stays immutable after a terminal decision except for ActualCost,
// which settles after the trip regardless of status.
type Trip struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	RequesterID int64     `gorm:"not null;index:idx_trips_requester_dates"`
	Destination string    `gorm:"type:varchar(200);not null"`
	Purpose     string    `gorm:"type:text"`
	StartDate   time.Time `gorm:"type:date;not null;index:idx_trips_requester_dates"`
	EndDate     time.Time `gorm:"type:date;not null;index:idx_trips_requester_dates"`

	EstimatedCost decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	ActualCost    decimal.Decimal `gorm:"type:numeric(16,2);not null"`

	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ApproverID      *int64     `gorm:""`
	ApprovedAt      *time.Time `gorm:""`
	RejectionReason *string    `gorm:"type:text"`
	RequestedAt     time.Time  `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration is the inclusive day count of the trip range.
func (t Trip) Duration() int {
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}
