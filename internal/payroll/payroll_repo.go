package payroll

import (
	"context"
	"sync"
	"time"

	payrollerrors "go-hrcore/internal/payroll/errors"
)

// Repository owns Payroll records. Implementations return the typed errors
// from payroll/errors and hand out copies, never live references into the
// store.
type Repository interface {
	Create(ctx context.Context, p *Payroll) error
	FindByID(ctx context.Context, id int64) (*Payroll, error)
	FindByPerson(ctx context.Context, personID int64) ([]Payroll, error)
	// FindByPeriod returns payrolls whose period lies fully inside
	// [start, end].
	FindByPeriod(ctx context.Context, start, end time.Time) ([]Payroll, error)
	Update(ctx context.Context, p *Payroll) error
}

type memoryRepository struct {
	mu       sync.RWMutex
	payrolls map[int64]Payroll
	nextID   int64
}

func NewMemoryRepository() Repository {
	return &memoryRepository{payrolls: make(map[int64]Payroll)}
}

func (r *memoryRepository) Create(ctx context.Context, p *Payroll) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.payrolls[p.ID] = *p
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id int64) (*Payroll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.payrolls[id]
	if !ok {
		return nil, payrollerrors.ErrPayrollNotFound
	}
	return &p, nil
}

func (r *memoryRepository) FindByPerson(ctx context.Context, personID int64) ([]Payroll, error) {
	return r.filter(func(p Payroll) bool { return p.PersonID == personID }), nil
}

func (r *memoryRepository) FindByPeriod(ctx context.Context, start, end time.Time) ([]Payroll, error) {
	return r.filter(func(p Payroll) bool {
		return !p.PeriodStart.Before(start) && !p.PeriodEnd.After(end)
	}), nil
}

func (r *memoryRepository) Update(ctx context.Context, p *Payroll) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.payrolls[p.ID]; !ok {
		return payrollerrors.ErrPayrollNotFound
	}
	r.payrolls[p.ID] = *p
	return nil
}

func (r *memoryRepository) filter(keep func(Payroll) bool) []Payroll {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Payroll, 0)
	for id := int64(1); id <= r.nextID; id++ {
		if p, ok := r.payrolls[id]; ok && keep(p) {
			out = append(out, p)
		}
	}
	return out
}
