package leave

import (
	"context"
	"errors"
	"time"

	leaveerrors "go-hrcore/internal/leave/errors"

	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id int64) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *gormRepository) FindAll(ctx context.Context) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).Order("id ASC").Find(&leaves).Error
	return leaves, err
}

func (r *gormRepository) FindPending(ctx context.Context) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusPending).
		Order("id ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *gormRepository) FindByRequester(ctx context.Context, requesterID int64) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *gormRepository) FindApprovedInPeriod(ctx context.Context, requesterID int64, start, end time.Time) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Where("status = ?", StatusApproved).
		Where("start_date >= ? AND end_date <= ?", start, end).
		Order("start_date ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *gormRepository) Update(ctx context.Context, l *Leave) error {
	res := r.db.WithContext(ctx).Save(l)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return leaveerrors.ErrLeaveNotFound
	}
	return nil
}
