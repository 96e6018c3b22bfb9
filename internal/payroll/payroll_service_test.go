package payroll_test

import (
	"context"
	"testing"
	"time"

	"go-hrcore/internal/leave"
	"go-hrcore/internal/payroll"
	payrollerrors "go-hrcore/internal/payroll/errors"
	"go-hrcore/internal/person"
	"go-hrcore/internal/rbac"
	"go-hrcore/internal/shared/clock"
	"go-hrcore/internal/trip"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

type payrollServiceDeps struct {
	repo       payroll.Repository
	personRepo person.Repository
	leaveRepo  leave.Repository
	tripRepo   trip.Repository
	service    payroll.Service
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	repo := payroll.NewMemoryRepository()
	personRepo := person.NewMemoryRepository()
	leaveRepo := leave.NewMemoryRepository()
	tripRepo := trip.NewMemoryRepository()
	svc := payroll.NewService(repo, personRepo, leaveRepo, tripRepo, clock.Fixed(testNow), 7)

	return &payrollServiceDeps{
		repo:       repo,
		personRepo: personRepo,
		leaveRepo:  leaveRepo,
		tripRepo:   tripRepo,
		service:    svc,
	}
}

func seedPerson(t *testing.T, repo person.Repository, role rbac.Role, salary int64) *person.Person {
	t.Helper()

	p := &person.Person{
		Name:               "person",
		Email:              string(role) + "@example.com",
		PasswordHash:       "hash",
		Role:               role,
		JoinDate:           time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		RemainingLeaveDays: 12,
		BaseSalary:         decimal.NewFromInt(salary),
		Active:             true,
	}
	assert.NoError(t, repo.Create(context.Background(), p))
	return p
}

func seedApprovedLeave(t *testing.T, repo leave.Repository, requesterID int64, start, end time.Time) {
	t.Helper()

	approverID := int64(99)
	l := &leave.Leave{
		RequesterID: requesterID,
		StartDate:   start,
		EndDate:     end,
		Status:      leave.StatusApproved,
		ApproverID:  &approverID,
		RequestedAt: testNow,
	}
	assert.NoError(t, repo.Create(context.Background(), l))
}

func seedApprovedTrip(t *testing.T, repo trip.Repository, requesterID int64, start, end time.Time, estimated int64) {
	t.Helper()

	approverID := int64(99)
	tr := &trip.Trip{
		RequesterID:   requesterID,
		Destination:   "Surabaya",
		StartDate:     start,
		EndDate:       end,
		EstimatedCost: decimal.NewFromInt(estimated),
		ActualCost:    decimal.Zero,
		Status:        trip.StatusApproved,
		ApproverID:    &approverID,
		RequestedAt:   testNow,
	}
	assert.NoError(t, repo.Create(context.Background(), tr))
}

func TestPayrollService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("success trip allowance adds ten percent of estimated cost", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		p := seedPerson(t, deps.personRepo, rbac.RoleEmployee, 5000000)
		seedApprovedTrip(t, deps.tripRepo, p.ID,
			time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
			1000000,
		)

		resp, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
			PersonID:    p.ID,
			PeriodStart: "2026-09-01",
			PeriodEnd:   "2026-09-30",
		})

		assert.NoError(t, err)
		assert.Equal(t, "5000000.00", resp.BaseSalary)
		assert.Equal(t, "0.00", resp.Deduction)
		assert.Equal(t, "100000.00", resp.Allowance)
		assert.Equal(t, "5100000.00", resp.NetSalary)
		assert.False(t, resp.Paid)
	})

	t.Run("success leave deduction is one thirtieth per day", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		p := seedPerson(t, deps.personRepo, rbac.RoleEmployee, 3000000)
		seedApprovedLeave(t, deps.leaveRepo, p.ID,
			time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
		)

		resp, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
			PersonID:    p.ID,
			PeriodStart: "2026-09-01",
			PeriodEnd:   "2026-09-30",
		})

		assert.NoError(t, err)
		assert.Equal(t, "300000.00", resp.Deduction)
		assert.Equal(t, "2700000.00", resp.NetSalary)
	})

	t.Run("success requests outside the period are ignored", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		p := seedPerson(t, deps.personRepo, rbac.RoleEmployee, 3000000)
		// Straddles the period start, so it is not fully inside.
		seedApprovedLeave(t, deps.leaveRepo, p.ID,
			time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		)
		seedApprovedTrip(t, deps.tripRepo, p.ID,
			time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
			1000000,
		)

		resp, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
			PersonID:    p.ID,
			PeriodStart: "2026-09-01",
			PeriodEnd:   "2026-09-30",
		})

		assert.NoError(t, err)
		assert.Equal(t, "0.00", resp.Deduction)
		assert.Equal(t, "0.00", resp.Allowance)
		assert.Equal(t, "3000000.00", resp.NetSalary)
	})

	t.Run("success pending and rejected requests do not count", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		p := seedPerson(t, deps.personRepo, rbac.RoleEmployee, 3000000)

		pendingLeave := &leave.Leave{
			RequesterID: p.ID,
			StartDate:   time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
			Status:      leave.StatusPending,
			RequestedAt: testNow,
		}
		assert.NoError(t, deps.leaveRepo.Create(ctx, pendingLeave))

		resp, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
			PersonID:    p.ID,
			PeriodStart: "2026-09-01",
			PeriodEnd:   "2026-09-30",
		})

		assert.NoError(t, err)
		assert.Equal(t, "0.00", resp.Deduction)
	})

	t.Run("success payment date is generation plus due days", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		p := seedPerson(t, deps.personRepo, rbac.RoleEmployee, 3000000)

		resp, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
			PersonID:    p.ID,
			PeriodStart: "2026-09-01",
			PeriodEnd:   "2026-09-30",
		})

		assert.NoError(t, err)
		assert.Equal(t, testNow.AddDate(0, 0, 7).Format(time.RFC3339), resp.PaymentDate)
	})

	t.Run("success regeneration creates a second record", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		p := seedPerson(t, deps.personRepo, rbac.RoleEmployee, 3000000)

		req := payroll.GeneratePayrollRequest{
			PersonID:    p.ID,
			PeriodStart: "2026-09-01",
			PeriodEnd:   "2026-09-30",
		}

		first, err := deps.service.Generate(ctx, req)
		assert.NoError(t, err)
		second, err := deps.service.Generate(ctx, req)
		assert.NoError(t, err)

		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)

		all, err := deps.service.ListByPerson(ctx, p.ID)
		assert.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("negative period end not after start", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		p := seedPerson(t, deps.personRepo, rbac.RoleEmployee, 3000000)

		_, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
			PersonID:    p.ID,
			PeriodStart: "2026-09-30",
			PeriodEnd:   "2026-09-30",
		})

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriod)
	})

	t.Run("negative unknown person", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)

		_, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
			PersonID:    99,
			PeriodStart: "2026-09-01",
			PeriodEnd:   "2026-09-30",
		})

		assert.ErrorIs(t, err, payrollerrors.ErrPersonNotFound)
	})
}

func TestPayrollService_MarkPaid(t *testing.T) {
	ctx := context.Background()

	generate := func(t *testing.T, deps *payrollServiceDeps, personID int64) payroll.PayrollResponse {
		t.Helper()
		resp, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
			PersonID:    personID,
			PeriodStart: "2026-09-01",
			PeriodEnd:   "2026-09-30",
		})
		assert.NoError(t, err)
		return resp
	}

	t.Run("success by finance sets payment date to now", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		p := seedPerson(t, deps.personRepo, rbac.RoleEmployee, 3000000)
		finance := seedPerson(t, deps.personRepo, rbac.RoleFinance, 9000000)
		record := generate(t, deps, p.ID)

		resp, err := deps.service.MarkPaid(ctx, record.ID, finance.ID)

		assert.NoError(t, err)
		assert.True(t, resp.Paid)
		assert.Equal(t, testNow.Format(time.RFC3339), resp.PaymentDate)
	})

	t.Run("success by sysadmin", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		p := seedPerson(t, deps.personRepo, rbac.RoleEmployee, 3000000)
		admin := seedPerson(t, deps.personRepo, rbac.RoleSysAdmin, 9000000)
		record := generate(t, deps, p.ID)

		resp, err := deps.service.MarkPaid(ctx, record.ID, admin.ID)

		assert.NoError(t, err)
		assert.True(t, resp.Paid)
	})

	t.Run("negative already paid", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		p := seedPerson(t, deps.personRepo, rbac.RoleEmployee, 3000000)
		finance := seedPerson(t, deps.personRepo, rbac.RoleFinance, 9000000)
		record := generate(t, deps, p.ID)

		_, err := deps.service.MarkPaid(ctx, record.ID, finance.ID)
		assert.NoError(t, err)

		_, err = deps.service.MarkPaid(ctx, record.ID, finance.ID)

		assert.ErrorIs(t, err, payrollerrors.ErrAlreadyPaid)
	})

	t.Run("negative approver without manage-payroll", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		p := seedPerson(t, deps.personRepo, rbac.RoleEmployee, 3000000)
		supervisor := seedPerson(t, deps.personRepo, rbac.RoleSupervisor, 9000000)
		record := generate(t, deps, p.ID)

		_, err := deps.service.MarkPaid(ctx, record.ID, supervisor.ID)

		assert.ErrorIs(t, err, payrollerrors.ErrNotAuthorized)
		fetched, getErr := deps.service.GetByID(ctx, record.ID)
		assert.NoError(t, getErr)
		assert.False(t, fetched.Paid)
	})

	t.Run("negative unknown payroll", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		finance := seedPerson(t, deps.personRepo, rbac.RoleFinance, 9000000)

		_, err := deps.service.MarkPaid(ctx, 99, finance.ID)

		assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
	})
}

func TestPayrollService_ListByPeriod(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns payrolls fully inside the range", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		p := seedPerson(t, deps.personRepo, rbac.RoleEmployee, 3000000)

		_, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
			PersonID:    p.ID,
			PeriodStart: "2026-09-01",
			PeriodEnd:   "2026-09-30",
		})
		assert.NoError(t, err)
		_, err = deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
			PersonID:    p.ID,
			PeriodStart: "2026-10-01",
			PeriodEnd:   "2026-10-31",
		})
		assert.NoError(t, err)

		resp, err := deps.service.ListByPeriod(ctx, "2026-09-01", "2026-09-30")

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "2026-09-01", resp[0].PeriodStart)
	})

	t.Run("negative start after end", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)

		_, err := deps.service.ListByPeriod(ctx, "2026-10-01", "2026-09-01")

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidQueryRange)
	})
}
