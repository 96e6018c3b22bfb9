package leave

import (
	"context"
	"sync"
	"time"

	leaveerrors "go-hrcore/internal/leave/errors"
)

// Repository owns Leave records. Implementations return the typed errors from
// leave/errors and hand out copies, never live references into the store.
type Repository interface {
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id int64) (*Leave, error)
	FindAll(ctx context.Context) ([]Leave, error)
	FindPending(ctx context.Context) ([]Leave, error)
	FindByRequester(ctx context.Context, requesterID int64) ([]Leave, error)
	// FindApprovedInPeriod returns approved leaves lying fully inside
	// [start, end]; payroll generation reads through this.
	FindApprovedInPeriod(ctx context.Context, requesterID int64, start, end time.Time) ([]Leave, error)
	Update(ctx context.Context, l *Leave) error
}

type memoryRepository struct {
	mu     sync.RWMutex
	leaves map[int64]Leave
	nextID int64
}

func NewMemoryRepository() Repository {
	return &memoryRepository{leaves: make(map[int64]Leave)}
}

func (r *memoryRepository) Create(ctx context.Context, l *Leave) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	l.ID = r.nextID
	r.leaves[l.ID] = *l
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id int64) (*Leave, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.leaves[id]
	if !ok {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	return &l, nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Leave, error) {
	return r.filter(func(Leave) bool { return true }), nil
}

func (r *memoryRepository) FindPending(ctx context.Context) ([]Leave, error) {
	return r.filter(func(l Leave) bool { return l.Status == StatusPending }), nil
}

func (r *memoryRepository) FindByRequester(ctx context.Context, requesterID int64) ([]Leave, error) {
	return r.filter(func(l Leave) bool { return l.RequesterID == requesterID }), nil
}

func (r *memoryRepository) FindApprovedInPeriod(ctx context.Context, requesterID int64, start, end time.Time) ([]Leave, error) {
	return r.filter(func(l Leave) bool {
		return l.RequesterID == requesterID &&
			l.Status == StatusApproved &&
			!l.StartDate.Before(start) &&
			!l.EndDate.After(end)
	}), nil
}

func (r *memoryRepository) Update(ctx context.Context, l *Leave) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.leaves[l.ID]; !ok {
		return leaveerrors.ErrLeaveNotFound
	}
	r.leaves[l.ID] = *l
	return nil
}

func (r *memoryRepository) filter(keep func(Leave) bool) []Leave {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Leave, 0)
	for id := int64(1); id <= r.nextID; id++ {
		if l, ok := r.leaves[id]; ok && keep(l) {
			out = append(out, l)
		}
	}
	return out
}
