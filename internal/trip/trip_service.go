package trip

import (
	"context"
	"time"

	"go-hrcore/internal/person"
	"go-hrcore/internal/rbac"
	"go-hrcore/internal/shared/clock"
	triperrors "go-hrcore/internal/trip/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Submit(ctx context.Context, requesterID int64, req SubmitTripRequest) (TripResponse, error)
	Approve(ctx context.Context, id, approverID int64) (TripResponse, error)
	Reject(ctx context.Context, id, approverID int64, reason string) (TripResponse, error)
	// UpdateActualCost settles the trip's real spend; unlike every other
	// field it stays writable after a terminal decision.
	UpdateActualCost(ctx context.Context, id int64, amount decimal.Decimal) (TripResponse, error)
	GetByID(ctx context.Context, id int64) (TripResponse, error)
	GetAll(ctx context.Context) ([]TripResponse, error)
	ListPending(ctx context.Context) ([]TripResponse, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]TripResponse, error)
}

type service struct {
	repo      Repository
	persons   person.Repository
	publisher EventPublisher
	clock     clock.Clock
	logger    *zap.Logger
}

func NewService(repo Repository, persons person.Repository, publisher EventPublisher, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("trip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("trip.service")
	}
	if publisher == nil {
		publisher = NoopEventPublisher()
	}
	return &service{repo: repo, persons: persons, publisher: publisher, clock: clk, logger: l}
}

func (s *service) Submit(ctx context.Context, requesterID int64, req SubmitTripRequest) (TripResponse, error) {
	s.logger.Debug("submit trip requested",
		zap.Int64("requester_id", requesterID),
		zap.String("destination", req.Destination),
	)

	if req.Destination == "" {
		return TripResponse{}, triperrors.ErrDestinationRequired
	}
	if req.EstimatedCost.IsNegative() {
		return TripResponse{}, triperrors.ErrNegativeCost
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return TripResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return TripResponse{}, err
	}
	if startDate.Before(clock.Today(s.clock)) {
		return TripResponse{}, triperrors.ErrStartDateInPast
	}
	if endDate.Before(startDate) {
		return TripResponse{}, triperrors.ErrInvalidDateRange
	}

	requester, err := s.persons.FindByID(ctx, requesterID)
	if err != nil {
		return TripResponse{}, triperrors.ErrRequesterNotFound
	}
	if !requester.Active {
		return TripResponse{}, triperrors.ErrRequesterInactive
	}

	t := &Trip{
		RequesterID:   requesterID,
		Destination:   req.Destination,
		Purpose:       req.Purpose,
		StartDate:     startDate,
		EndDate:       endDate,
		EstimatedCost: req.EstimatedCost,
		ActualCost:    decimal.Zero,
		Status:        StatusPending,
		RequestedAt:   s.clock.Now(),
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("submit trip persist failed", zap.Error(err))
		return TripResponse{}, err
	}

	s.logger.Info("submit trip success",
		zap.Int64("trip_id", t.ID),
		zap.Int64("requester_id", requesterID),
	)
	return mapToResponse(*t), nil
}

func (s *service) Approve(ctx context.Context, id, approverID int64) (TripResponse, error) {
	s.logger.Debug("approve trip requested",
		zap.Int64("trip_id", id),
		zap.Int64("approver_id", approverID),
	)

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TripResponse{}, err
	}
	if t.Status != StatusPending {
		s.logger.Warn("approve trip not pending",
			zap.Int64("trip_id", id),
			zap.String("status", t.Status),
		)
		return TripResponse{}, triperrors.ErrNotPending
	}

	if err := s.authorize(ctx, approverID); err != nil {
		return TripResponse{}, err
	}

	now := s.clock.Now()
	t.Status = StatusApproved
	t.ApproverID = &approverID
	t.ApprovedAt = &now
	t.RejectionReason = nil

	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("approve trip persist failed", zap.Int64("trip_id", id), zap.Error(err))
		return TripResponse{}, err
	}

	s.publishDecided(ctx, t)
	s.logger.Info("approve trip success",
		zap.Int64("trip_id", id),
		zap.Int64("approver_id", approverID),
	)
	return mapToResponse(*t), nil
}

func (s *service) Reject(ctx context.Context, id, approverID int64, reason string) (TripResponse, error) {
	s.logger.Debug("reject trip requested",
		zap.Int64("trip_id", id),
		zap.Int64("approver_id", approverID),
	)

	if reason == "" {
		return TripResponse{}, triperrors.ErrReasonRequired
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TripResponse{}, err
	}
	if t.Status != StatusPending {
		return TripResponse{}, triperrors.ErrNotPending
	}

	if err := s.authorize(ctx, approverID); err != nil {
		return TripResponse{}, err
	}

	now := s.clock.Now()
	t.Status = StatusRejected
	t.ApproverID = &approverID
	t.ApprovedAt = &now
	t.RejectionReason = &reason

	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("reject trip persist failed", zap.Int64("trip_id", id), zap.Error(err))
		return TripResponse{}, err
	}

	s.publishDecided(ctx, t)
	s.logger.Info("reject trip success",
		zap.Int64("trip_id", id),
		zap.Int64("approver_id", approverID),
	)
	return mapToResponse(*t), nil
}

func (s *service) UpdateActualCost(ctx context.Context, id int64, amount decimal.Decimal) (TripResponse, error) {
	if amount.IsNegative() {
		return TripResponse{}, triperrors.ErrNegativeCost
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TripResponse{}, err
	}

	t.ActualCost = amount
	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("update actual cost persist failed", zap.Int64("trip_id", id), zap.Error(err))
		return TripResponse{}, err
	}

	s.logger.Info("update actual cost success",
		zap.Int64("trip_id", id),
		zap.String("actual_cost", amount.StringFixed(2)),
	)
	return mapToResponse(*t), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (TripResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TripResponse{}, err
	}
	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context) ([]TripResponse, error) {
	trips, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(trips), nil
}

func (s *service) ListPending(ctx context.Context) ([]TripResponse, error) {
	trips, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(trips), nil
}

func (s *service) ListByRequester(ctx context.Context, requesterID int64) ([]TripResponse, error) {
	trips, err := s.repo.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(trips), nil
}

func (s *service) authorize(ctx context.Context, approverID int64) error {
	approver, err := s.persons.FindByID(ctx, approverID)
	if err != nil {
		return triperrors.ErrApproverNotFound
	}
	if !rbac.CanApproveTrips(approver.Role) {
		s.logger.Warn("approve-trips denied",
			zap.Int64("approver_id", approverID),
			zap.String("role", string(approver.Role)),
		)
		return triperrors.ErrNotAuthorized
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, triperrors.ErrInvalidDateFormat
	}
	return t.UTC(), nil
}
