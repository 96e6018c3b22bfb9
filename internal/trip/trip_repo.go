package trip

import (
	"context"
	"sync"
	"time"

	triperrors "go-hrcore/internal/trip/errors"
)

// Repository owns Trip records, mirroring the leave ledger contract.
type Repository interface {
	Create(ctx context.Context, t *Trip) error
	FindByID(ctx context.Context, id int64) (*Trip, error)
	FindAll(ctx context.Context) ([]Trip, error)
	FindPending(ctx context.Context) ([]Trip, error)
	FindByRequester(ctx context.Context, requesterID int64) ([]Trip, error)
	// FindApprovedInPeriod returns approved trips lying fully inside
	// [start, end]; payroll allowance computation reads through this.
	FindApprovedInPeriod(ctx context.Context, requesterID int64, start, end time.Time) ([]Trip, error)
	Update(ctx context.Context, t *Trip) error
}

type memoryRepository struct {
	mu     sync.RWMutex
	trips  map[int64]Trip
	nextID int64
}

func NewMemoryRepository() Repository {
	return &memoryRepository{trips: make(map[int64]Trip)}
}

func (r *memoryRepository) Create(ctx context.Context, t *Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	t.ID = r.nextID
	r.trips[t.ID] = *t
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id int64) (*Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trips[id]
	if !ok {
		return nil, triperrors.ErrTripNotFound
	}
	return &t, nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Trip, error) {
	return r.filter(func(Trip) bool { return true }), nil
}

func (r *memoryRepository) FindPending(ctx context.Context) ([]Trip, error) {
	return r.filter(func(t Trip) bool { return t.Status == StatusPending }), nil
}

func (r *memoryRepository) FindByRequester(ctx context.Context, requesterID int64) ([]Trip, error) {
	return r.filter(func(t Trip) bool { return t.RequesterID == requesterID }), nil
}

func (r *memoryRepository) FindApprovedInPeriod(ctx context.Context, requesterID int64, start, end time.Time) ([]Trip, error) {
	return r.filter(func(t Trip) bool {
		return t.RequesterID == requesterID &&
			t.Status == StatusApproved &&
			!t.StartDate.Before(start) &&
			!t.EndDate.After(end)
	}), nil
}

func (r *memoryRepository) Update(ctx context.Context, t *Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[t.ID]; !ok {
		return triperrors.ErrTripNotFound
	}
	r.trips[t.ID] = *t
	return nil
}

func (r *memoryRepository) filter(keep func(Trip) bool) []Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Trip, 0)
	for id := int64(1); id <= r.nextID; id++ {
		if t, ok := r.trips[id]; ok && keep(t) {
			out = append(out, t)
		}
	}
	return out
}
