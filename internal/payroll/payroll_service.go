package payroll

import (
	"context"
	"time"

	"go-hrcore/internal/leave"
	payrollerrors "go-hrcore/internal/payroll/errors"
	"go-hrcore/internal/person"
	"go-hrcore/internal/rbac"
	"go-hrcore/internal/shared/clock"
	"go-hrcore/internal/trip"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Salary components follow the flat reference rules: one thirtieth of the
// base salary is withheld per approved leave day, and each approved trip
// earns a tenth of its estimated cost as an allowance.
var (
	salaryDivisor     = decimal.NewFromInt(30)
	tripAllowanceRate = decimal.RequireFromString("0.10")
)

type Service interface {
	// Generate computes and persists a new payroll record each call;
	// regenerating for an overlapping period creates a second record.
	Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollResponse, error)
	MarkPaid(ctx context.Context, id, approverID int64) (PayrollResponse, error)
	GetByID(ctx context.Context, id int64) (PayrollResponse, error)
	ListByPerson(ctx context.Context, personID int64) ([]PayrollResponse, error)
	ListByPeriod(ctx context.Context, start, end string) ([]PayrollResponse, error)
}

type service struct {
	repo    Repository
	persons person.Repository
	leaves  leave.Repository
	trips   trip.Repository
	clock   clock.Clock
	dueDays int
	logger  *zap.Logger
}

func NewService(
	repo Repository,
	persons person.Repository,
	leaves leave.Repository,
	trips trip.Repository,
	clk clock.Clock,
	dueDays int,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		repo:    repo,
		persons: persons,
		leaves:  leaves,
		trips:   trips,
		clock:   clk,
		dueDays: dueDays,
		logger:  l,
	}
}

func (s *service) Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollResponse, error) {
	s.logger.Debug("generate payroll requested",
		zap.Int64("person_id", req.PersonID),
		zap.String("period_start", req.PeriodStart),
		zap.String("period_end", req.PeriodEnd),
	)

	periodStart, err := parseDate(req.PeriodStart)
	if err != nil {
		return PayrollResponse{}, err
	}
	periodEnd, err := parseDate(req.PeriodEnd)
	if err != nil {
		return PayrollResponse{}, err
	}
	if !periodEnd.After(periodStart) {
		return PayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}

	p, err := s.persons.FindByID(ctx, req.PersonID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrPersonNotFound
	}

	approvedLeaves, err := s.leaves.FindApprovedInPeriod(ctx, req.PersonID, periodStart, periodEnd)
	if err != nil {
		return PayrollResponse{}, err
	}
	approvedTrips, err := s.trips.FindApprovedInPeriod(ctx, req.PersonID, periodStart, periodEnd)
	if err != nil {
		return PayrollResponse{}, err
	}

	perDay := p.BaseSalary.Div(salaryDivisor)
	deduction := decimal.Zero
	for _, l := range approvedLeaves {
		deduction = deduction.Add(perDay.Mul(decimal.NewFromInt(int64(l.Duration()))))
	}

	allowance := decimal.Zero
	for _, t := range approvedTrips {
		allowance = allowance.Add(t.EstimatedCost.Mul(tripAllowanceRate))
	}

	now := s.clock.Now()
	record := &Payroll{
		PersonID:    req.PersonID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		BaseSalary:  p.BaseSalary,
		Deduction:   deduction,
		Allowance:   allowance,
		NetSalary:   p.BaseSalary.Sub(deduction).Add(allowance),
		Paid:        false,
		PaymentDate: now.AddDate(0, 0, s.dueDays),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("generate payroll persist failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	s.logger.Info("generate payroll success",
		zap.Int64("payroll_id", record.ID),
		zap.Int64("person_id", req.PersonID),
		zap.String("net_salary", record.NetSalary.StringFixed(2)),
		zap.Int("approved_leaves", len(approvedLeaves)),
		zap.Int("approved_trips", len(approvedTrips)),
	)
	return mapToResponse(*record), nil
}

func (s *service) MarkPaid(ctx context.Context, id, approverID int64) (PayrollResponse, error) {
	s.logger.Debug("mark paid requested",
		zap.Int64("payroll_id", id),
		zap.Int64("approver_id", approverID),
	)

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if record.Paid {
		s.logger.Warn("mark paid on settled payroll", zap.Int64("payroll_id", id))
		return PayrollResponse{}, payrollerrors.ErrAlreadyPaid
	}

	approver, err := s.persons.FindByID(ctx, approverID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrApproverNotFound
	}
	if !rbac.CanManagePayroll(approver.Role) {
		s.logger.Warn("manage-payroll denied",
			zap.Int64("approver_id", approverID),
			zap.String("role", string(approver.Role)),
		)
		return PayrollResponse{}, payrollerrors.ErrNotAuthorized
	}

	record.Paid = true
	record.PaymentDate = s.clock.Now()

	if err := s.repo.Update(ctx, record); err != nil {
		s.logger.Error("mark paid persist failed", zap.Int64("payroll_id", id), zap.Error(err))
		return PayrollResponse{}, err
	}

	s.logger.Info("mark paid success",
		zap.Int64("payroll_id", id),
		zap.Int64("approver_id", approverID),
	)
	return mapToResponse(*record), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (PayrollResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*record), nil
}

func (s *service) ListByPerson(ctx context.Context, personID int64) ([]PayrollResponse, error) {
	payrolls, err := s.repo.FindByPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(payrolls), nil
}

func (s *service) ListByPeriod(ctx context.Context, start, end string) ([]PayrollResponse, error) {
	rangeStart, err := parseDate(start)
	if err != nil {
		return nil, err
	}
	rangeEnd, err := parseDate(end)
	if err != nil {
		return nil, err
	}
	if rangeStart.After(rangeEnd) {
		return nil, payrollerrors.ErrInvalidQueryRange
	}

	payrolls, err := s.repo.FindByPeriod(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(payrolls), nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	return t.UTC(), nil
}
