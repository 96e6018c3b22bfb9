package person

import (
	"context"
	"errors"

	personerrors "go-hrcore/internal/person/errors"

	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository returns the durable PostgreSQL-backed store. It satisfies
// the same contract as the memory store, including atomic check-and-insert
// for emails and guarded balance decrements.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, p *Person) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Person{}).
			Where("LOWER(email) = LOWER(?)", p.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return personerrors.ErrEmailConflict
		}
		return tx.Create(p).Error
	})
}

func (r *gormRepository) FindByID(ctx context.Context, id int64) (*Person, error) {
	var p Person
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, personerrors.ErrPersonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) FindByEmail(ctx context.Context, email string) (*Person, error) {
	var p Person
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, personerrors.ErrPersonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) FindAll(ctx context.Context) ([]Person, error) {
	var persons []Person
	err := r.db.WithContext(ctx).Order("id ASC").Find(&persons).Error
	return persons, err
}

func (r *gormRepository) Update(ctx context.Context, p *Person) error {
	res := r.db.WithContext(ctx).Model(&Person{}).Where("id = ?", p.ID).
		Select("name", "email", "password_hash", "role", "base_salary").
		Updates(p)
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return personerrors.ErrEmailConflict
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return personerrors.ErrPersonNotFound
	}
	return nil
}

func (r *gormRepository) Deactivate(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&Person{}).
		Where("id = ?", id).
		Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return personerrors.ErrPersonNotFound
	}
	return nil
}

func (r *gormRepository) DeductLeaveDays(ctx context.Context, id int64, days int) error {
	res := r.db.WithContext(ctx).Model(&Person{}).
		Where("id = ? AND remaining_leave_days >= ?", id, days).
		Update("remaining_leave_days", gorm.Expr("remaining_leave_days - ?", days))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return personerrors.ErrInsufficientBalance
	}
	return nil
}

func (r *gormRepository) RestoreLeaveDays(ctx context.Context, id int64, days int) error {
	res := r.db.WithContext(ctx).Model(&Person{}).
		Where("id = ?", id).
		Update("remaining_leave_days", gorm.Expr("remaining_leave_days + ?", days))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return personerrors.ErrPersonNotFound
	}
	return nil
}
