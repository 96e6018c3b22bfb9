package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payroll struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	PersonID    int64     `gorm:"not null;index:idx_payrolls_person_period"`
	PeriodStart time.Time `gorm:"type:date;not null;index:idx_payrolls_person_period"`
	PeriodEnd   time.Time `gorm:"type:date;not null;index:idx_payrolls_person_period"`

	BaseSalary decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	Deduction  decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	Allowance  decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	NetSalary  decimal.Decimal `gorm:"type:numeric(16,2);not null"`

	Paid        bool      `gorm:"not null;default:false"`
	PaymentDate time.Time `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
