package person

import (
	"time"

	"go-hrcore/internal/rbac"

	"github.com/shopspring/decimal"
)

// Person is never hard-deleted while requests reference it; Active=false is
// the deactivation substitute.
type Person struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"type:varchar(120);not null"`
	Email        string    `gorm:"type:varchar(254);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
	Role         rbac.Role `gorm:"type:varchar(20);not null;default:'EMPLOYEE'"`

	JoinDate           time.Time       `gorm:"type:date;not null"`
	RemainingLeaveDays int             `gorm:"not null"`
	BaseSalary         decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	Active             bool            `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
