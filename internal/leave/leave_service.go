package leave

import (
	"context"
	"time"

	leaveerrors "go-hrcore/internal/leave/errors"
	"go-hrcore/internal/person"
	"go-hrcore/internal/rbac"
	"go-hrcore/internal/shared/clock"

	"go.uber.org/zap"
)

type Service interface {
	Submit(ctx context.Context, requesterID int64, req SubmitLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, id, approverID int64) (LeaveResponse, error)
	Reject(ctx context.Context, id, approverID int64, reason string) (LeaveResponse, error)
	GetByID(ctx context.Context, id int64) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	ListPending(ctx context.Context) ([]LeaveResponse, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]LeaveResponse, error)
}

type service struct {
	repo      Repository
	persons   person.Repository
	publisher EventPublisher
	clock     clock.Clock
	logger    *zap.Logger
}

func NewService(repo Repository, persons person.Repository, publisher EventPublisher, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if publisher == nil {
		publisher = NoopEventPublisher()
	}
	return &service{repo: repo, persons: persons, publisher: publisher, clock: clk, logger: l}
}

func (s *service) Submit(ctx context.Context, requesterID int64, req SubmitLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("submit leave requested",
		zap.Int64("requester_id", requesterID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	if startDate.Before(clock.Today(s.clock)) {
		s.logger.Warn("submit leave start date in past", zap.Int64("requester_id", requesterID))
		return LeaveResponse{}, leaveerrors.ErrStartDateInPast
	}
	if startDate.After(endDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	requester, err := s.persons.FindByID(ctx, requesterID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrRequesterNotFound
	}
	if !requester.Active {
		return LeaveResponse{}, leaveerrors.ErrRequesterInactive
	}

	l := &Leave{
		RequesterID: requesterID,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: req.Description,
		Status:      StatusPending,
		RequestedAt: s.clock.Now(),
	}

	if l.Duration() > requester.RemainingLeaveDays {
		s.logger.Warn("submit leave insufficient balance",
			zap.Int64("requester_id", requesterID),
			zap.Int("duration", l.Duration()),
			zap.Int("remaining", requester.RemainingLeaveDays),
		)
		return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("submit leave success",
		zap.Int64("leave_id", l.ID),
		zap.Int64("requester_id", requesterID),
		zap.Int("duration", l.Duration()),
	)
	return mapToResponse(*l), nil
}

// Approve sets the terminal status first and deducts the requester's balance
// second; a failed deduction rolls the status back so no partial commit
// survives.
func (s *service) Approve(ctx context.Context, id, approverID int64) (LeaveResponse, error) {
	s.logger.Debug("approve leave requested",
		zap.Int64("leave_id", id),
		zap.Int64("approver_id", approverID),
	)

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		s.logger.Warn("approve leave not pending",
			zap.Int64("leave_id", id),
			zap.String("status", l.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrNotPending
	}

	if err := s.authorize(ctx, approverID); err != nil {
		return LeaveResponse{}, err
	}

	now := s.clock.Now()
	l.Status = StatusApproved
	l.ApproverID = &approverID
	l.ApprovedAt = &now
	l.RejectionReason = nil

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("approve leave persist failed", zap.Int64("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := s.persons.DeductLeaveDays(ctx, l.RequesterID, l.Duration()); err != nil {
		l.Status = StatusPending
		l.ApproverID = nil
		l.ApprovedAt = nil
		if revertErr := s.repo.Update(ctx, l); revertErr != nil {
			s.logger.Error("approve leave rollback failed",
				zap.Int64("leave_id", id),
				zap.Error(revertErr),
			)
		}
		s.logger.Warn("approve leave balance deduction failed",
			zap.Int64("leave_id", id),
			zap.Int64("requester_id", l.RequesterID),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	s.publishDecided(ctx, l)
	s.logger.Info("approve leave success",
		zap.Int64("leave_id", id),
		zap.Int64("approver_id", approverID),
	)
	return mapToResponse(*l), nil
}

func (s *service) Reject(ctx context.Context, id, approverID int64, reason string) (LeaveResponse, error) {
	s.logger.Debug("reject leave requested",
		zap.Int64("leave_id", id),
		zap.Int64("approver_id", approverID),
	)

	if reason == "" {
		return LeaveResponse{}, leaveerrors.ErrReasonRequired
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrNotPending
	}

	if err := s.authorize(ctx, approverID); err != nil {
		return LeaveResponse{}, err
	}

	now := s.clock.Now()
	l.Status = StatusRejected
	l.ApproverID = &approverID
	l.ApprovedAt = &now
	l.RejectionReason = &reason

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("reject leave persist failed", zap.Int64("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.publishDecided(ctx, l)
	s.logger.Info("reject leave success",
		zap.Int64("leave_id", id),
		zap.Int64("approver_id", approverID),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) ListPending(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) ListByRequester(ctx context.Context, requesterID int64) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) authorize(ctx context.Context, approverID int64) error {
	approver, err := s.persons.FindByID(ctx, approverID)
	if err != nil {
		return leaveerrors.ErrApproverNotFound
	}
	if !rbac.CanApproveLeave(approver.Role) {
		s.logger.Warn("approve-leave denied",
			zap.Int64("approver_id", approverID),
			zap.String("role", string(approver.Role)),
		)
		return leaveerrors.ErrNotAuthorized
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t.UTC(), nil
}
