package payroll

import (
	"context"
	"errors"
	"time"

	payrollerrors "go-hrcore/internal/payroll/errors"

	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id int64) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payrollerrors.ErrPayrollNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) FindByPerson(ctx context.Context, personID int64) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("id ASC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *gormRepository) FindByPeriod(ctx context.Context, start, end time.Time) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).
		Where("period_start >= ? AND period_end <= ?", start, end).
		Order("id ASC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *gormRepository) Update(ctx context.Context, p *Payroll) error {
	res := r.db.WithContext(ctx).Save(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return payrollerrors.ErrPayrollNotFound
	}
	return nil
}
