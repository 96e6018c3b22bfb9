package person

import (
	"context"

	personerrors "go-hrcore/internal/person/errors"
	"go-hrcore/internal/rbac"
	"go-hrcore/internal/shared/clock"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (PersonResponse, error)
	GetByID(ctx context.Context, id int64) (PersonResponse, error)
	GetByEmail(ctx context.Context, email string) (PersonResponse, error)
	List(ctx context.Context) ([]PersonResponse, error)
	UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (PersonResponse, error)
	ChangePassword(ctx context.Context, id int64, req ChangePasswordRequest) error
	ChangeRole(ctx context.Context, actorID, id int64, role rbac.Role) (PersonResponse, error)
	UpdateSalary(ctx context.Context, actorID, id int64, salary decimal.Decimal) (PersonResponse, error)
	Deactivate(ctx context.Context, actorID, id int64) error
}

type service struct {
	repo      Repository
	publisher EventPublisher
	clock     clock.Clock
	allotment int
	logger    *zap.Logger
}

// NewService wires the directory. allotment is the annual leave-day grant for
// newly registered persons.
func NewService(repo Repository, publisher EventPublisher, clk clock.Clock, allotment int, logger ...*zap.Logger) Service {
	l := zap.L().Named("person.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("person.service")
	}
	if publisher == nil {
		publisher = NoopEventPublisher()
	}
	return &service{repo: repo, publisher: publisher, clock: clk, allotment: allotment, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (PersonResponse, error) {
	s.logger.Debug("register requested",
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	if err := validateRegistration(req); err != nil {
		s.logger.Warn("register validation failed", zap.Error(err))
		return PersonResponse{}, err
	}

	role := rbac.Role(req.Role)
	if req.Role == "" {
		role = rbac.RoleEmployee
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("register password hash failed", zap.Error(err))
		return PersonResponse{}, err
	}

	p := &Person{
		Name:               req.Name,
		Email:              req.Email,
		PasswordHash:       string(hash),
		Role:               role,
		JoinDate:           clock.Today(s.clock),
		RemainingLeaveDays: s.allotment,
		BaseSalary:         req.BaseSalary,
		Active:             true,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Warn("register persist failed", zap.String("email", req.Email), zap.Error(err))
		return PersonResponse{}, err
	}

	s.publishRegistered(ctx, p)
	s.logger.Info("register success",
		zap.Int64("person_id", p.ID),
		zap.String("role", string(p.Role)),
	)

	return mapToResponse(*p), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (PersonResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PersonResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (PersonResponse, error) {
	p, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return PersonResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) List(ctx context.Context) ([]PersonResponse, error) {
	persons, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(persons), nil
}

func (s *service) UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (PersonResponse, error) {
	if req.Name == "" {
		return PersonResponse{}, personerrors.ErrNameRequired
	}
	if req.Email == "" {
		return PersonResponse{}, personerrors.ErrEmailRequired
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PersonResponse{}, err
	}

	p.Name = req.Name
	p.Email = req.Email
	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update profile persist failed", zap.Int64("person_id", id), zap.Error(err))
		return PersonResponse{}, err
	}

	s.logger.Info("update profile success", zap.Int64("person_id", id))
	return mapToResponse(*p), nil
}

func (s *service) ChangePassword(ctx context.Context, id int64, req ChangePasswordRequest) error {
	if len(req.NewPassword) < minPasswordLength {
		return personerrors.ErrPasswordTooShort
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		s.logger.Warn("change password current mismatch", zap.Int64("person_id", id))
		return personerrors.ErrCurrentPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.PasswordHash = string(hash)

	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}

	s.logger.Info("change password success", zap.Int64("person_id", id))
	return nil
}

func (s *service) ChangeRole(ctx context.Context, actorID, id int64, role rbac.Role) (PersonResponse, error) {
	if err := s.authorizeManagePeople(ctx, actorID); err != nil {
		return PersonResponse{}, err
	}
	if !rbac.Valid(role) {
		return PersonResponse{}, personerrors.ErrInvalidRole
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PersonResponse{}, err
	}
	if p.Role == role {
		return PersonResponse{}, personerrors.ErrRoleUnchanged
	}

	p.Role = role
	if err := s.repo.Update(ctx, p); err != nil {
		return PersonResponse{}, err
	}

	s.logger.Info("change role success",
		zap.Int64("person_id", id),
		zap.Int64("actor_id", actorID),
		zap.String("role", string(role)),
	)
	return mapToResponse(*p), nil
}

func (s *service) UpdateSalary(ctx context.Context, actorID, id int64, salary decimal.Decimal) (PersonResponse, error) {
	if err := s.authorizeManagePeople(ctx, actorID); err != nil {
		return PersonResponse{}, err
	}
	if salary.IsNegative() {
		return PersonResponse{}, personerrors.ErrNegativeSalary
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PersonResponse{}, err
	}

	p.BaseSalary = salary
	if err := s.repo.Update(ctx, p); err != nil {
		return PersonResponse{}, err
	}

	s.logger.Info("update salary success",
		zap.Int64("person_id", id),
		zap.Int64("actor_id", actorID),
	)
	return mapToResponse(*p), nil
}

func (s *service) Deactivate(ctx context.Context, actorID, id int64) error {
	if err := s.authorizeManagePeople(ctx, actorID); err != nil {
		return err
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.logger.Info("deactivate success",
		zap.Int64("person_id", id),
		zap.Int64("actor_id", actorID),
	)
	return nil
}

func (s *service) authorizeManagePeople(ctx context.Context, actorID int64) error {
	actor, err := s.repo.FindByID(ctx, actorID)
	if err != nil {
		return personerrors.ErrActorNotFound
	}
	if !rbac.CanManagePeople(actor.Role) {
		s.logger.Warn("manage-people denied",
			zap.Int64("actor_id", actorID),
			zap.String("role", string(actor.Role)),
		)
		return personerrors.ErrNotAuthorized
	}
	return nil
}

func validateRegistration(req RegisterRequest) error {
	if req.Name == "" {
		return personerrors.ErrNameRequired
	}
	if req.Email == "" {
		return personerrors.ErrEmailRequired
	}
	if len(req.Password) < minPasswordLength {
		return personerrors.ErrPasswordTooShort
	}
	if req.BaseSalary.IsNegative() {
		return personerrors.ErrNegativeSalary
	}
	if req.Role != "" && !rbac.Valid(rbac.Role(req.Role)) {
		return personerrors.ErrInvalidRole
	}
	return nil
}
