package person

import (
	"context"
	"strings"
	"sync"

	personerrors "go-hrcore/internal/person/errors"
)

// Repository owns Person records. Implementations return the typed errors
// from person/errors; every mutation is serialized against the others so a
// read-then-write (email uniqueness, balance deduction) is a single atomic
// step inside the store.
type Repository interface {
	Create(ctx context.Context, p *Person) error
	FindByID(ctx context.Context, id int64) (*Person, error)
	FindByEmail(ctx context.Context, email string) (*Person, error)
	FindAll(ctx context.Context) ([]Person, error)

	// Update persists the directory fields: name, email, password hash,
	// role and base salary. The leave balance and active flag are owned by
	// their dedicated mutations and are never written back here, so a
	// deduction or deactivation committed after the caller's read survives
	// the write. Email uniqueness is enforced on update as on create.
	Update(ctx context.Context, p *Person) error
	Deactivate(ctx context.Context, id int64) error

	// DeductLeaveDays atomically checks and decrements the remaining
	// balance; it fails with ErrInsufficientBalance instead of letting the
	// counter go negative. RestoreLeaveDays is its compensation.
	DeductLeaveDays(ctx context.Context, id int64, days int) error
	RestoreLeaveDays(ctx context.Context, id int64, days int) error
}

type memoryRepository struct {
	mu      sync.RWMutex
	persons map[int64]Person
	nextID  int64
}

// NewMemoryRepository returns the transient reference store. IDs are
// monotonic from 1 and never reused.
func NewMemoryRepository() Repository {
	return &memoryRepository{persons: make(map[int64]Person)}
}

func (r *memoryRepository) Create(ctx context.Context, p *Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.persons {
		if strings.EqualFold(existing.Email, p.Email) {
			return personerrors.ErrEmailConflict
		}
	}

	r.nextID++
	p.ID = r.nextID
	r.persons[p.ID] = *p
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id int64) (*Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.persons[id]
	if !ok {
		return nil, personerrors.ErrPersonNotFound
	}
	return &p, nil
}

func (r *memoryRepository) FindByEmail(ctx context.Context, email string) (*Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.persons {
		if strings.EqualFold(p.Email, email) {
			out := p
			return &out, nil
		}
	}
	return nil, personerrors.ErrPersonNotFound
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Person, 0, len(r.persons))
	for id := int64(1); id <= r.nextID; id++ {
		if p, ok := r.persons[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryRepository) Update(ctx context.Context, p *Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.persons[p.ID]
	if !ok {
		return personerrors.ErrPersonNotFound
	}
	for _, existing := range r.persons {
		if existing.ID != p.ID && strings.EqualFold(existing.Email, p.Email) {
			return personerrors.ErrEmailConflict
		}
	}

	current.Name = p.Name
	current.Email = p.Email
	current.PasswordHash = p.PasswordHash
	current.Role = p.Role
	current.BaseSalary = p.BaseSalary
	r.persons[p.ID] = current
	return nil
}

func (r *memoryRepository) Deactivate(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.persons[id]
	if !ok {
		return personerrors.ErrPersonNotFound
	}
	p.Active = false
	r.persons[id] = p
	return nil
}

func (r *memoryRepository) DeductLeaveDays(ctx context.Context, id int64, days int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.persons[id]
	if !ok {
		return personerrors.ErrPersonNotFound
	}
	if p.RemainingLeaveDays < days {
		return personerrors.ErrInsufficientBalance
	}
	p.RemainingLeaveDays -= days
	r.persons[id] = p
	return nil
}

func (r *memoryRepository) RestoreLeaveDays(ctx context.Context, id int64, days int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.persons[id]
	if !ok {
		return personerrors.ErrPersonNotFound
	}
	p.RemainingLeaveDays += days
	r.persons[id] = p
	return nil
}
