package trip

import (
	"context"
	"errors"
	"time"

	triperrors "go-hrcore/internal/trip/errors"

	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, t *Trip) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id int64) (*Trip, error) {
	var t Trip
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, triperrors.ErrTripNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *gormRepository) FindAll(ctx context.Context) ([]Trip, error) {
	var trips []Trip
	err := r.db.WithContext(ctx).Order("id ASC").Find(&trips).Error
	return trips, err
}

func (r *gormRepository) FindPending(ctx context.Context) ([]Trip, error) {
	var trips []Trip
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusPending).
		Order("id ASC").
		Find(&trips).Error
	return trips, err
}

func (r *gormRepository) FindByRequester(ctx context.Context, requesterID int64) ([]Trip, error) {
	var trips []Trip
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("start_date DESC").
		Find(&trips).Error
	return trips, err
}

func (r *gormRepository) FindApprovedInPeriod(ctx context.Context, requesterID int64, start, end time.Time) ([]Trip, error) {
	var trips []Trip
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Where("status = ?", StatusApproved).
		Where("start_date >= ? AND end_date <= ?", start, end).
		Order("start_date ASC").
		Find(&trips).Error
	return trips, err
}

func (r *gormRepository) Update(ctx context.Context, t *Trip) error {
	res := r.db.WithContext(ctx).Save(t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return triperrors.ErrTripNotFound
	}
	return nil
}
