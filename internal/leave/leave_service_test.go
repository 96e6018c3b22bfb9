package leave_test

import (
	"context"
	"testing"
	"time"

	"go-hrcore/internal/leave"
	leaveerrors "go-hrcore/internal/leave/errors"
	"go-hrcore/internal/person"
	"go-hrcore/internal/rbac"
	"go-hrcore/internal/shared/clock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

type leaveServiceDeps struct {
	repo       leave.Repository
	personRepo person.Repository
	service    leave.Service
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	repo := leave.NewMemoryRepository()
	personRepo := person.NewMemoryRepository()
	svc := leave.NewService(repo, personRepo, nil, clock.Fixed(testNow))

	return &leaveServiceDeps{repo: repo, personRepo: personRepo, service: svc}
}

func seedPerson(t *testing.T, repo person.Repository, name string, role rbac.Role, leaveDays int) *person.Person {
	t.Helper()

	p := &person.Person{
		Name:               name,
		Email:              name + "@example.com",
		PasswordHash:       "hash",
		Role:               role,
		JoinDate:           time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		RemainingLeaveDays: leaveDays,
		BaseSalary:         decimal.NewFromInt(5000000),
		Active:             true,
	}
	assert.NoError(t, repo.Create(context.Background(), p))
	return p
}

func remainingDays(t *testing.T, repo person.Repository, id int64) int {
	t.Helper()

	p, err := repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	return p.RemainingLeaveDays
}

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success round trip", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)

		submitted, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate:   "2026-09-01",
			EndDate:     "2026-09-03",
			Description: "family event",
		})
		assert.NoError(t, err)

		fetched, err := deps.service.GetByID(ctx, submitted.ID)
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, fetched.Status)
		assert.Nil(t, fetched.ApproverID)
		assert.Equal(t, 3, fetched.Duration)
		assert.Equal(t, 12, remainingDays(t, deps.personRepo, requester.ID))
	})

	t.Run("success single-day range counts one day", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)

		resp, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Duration)
	})

	t.Run("negative insufficient balance creates nothing", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)

		_, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-13",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
		all, listErr := deps.service.GetAll(ctx)
		assert.NoError(t, listErr)
		assert.Empty(t, all)
	})

	t.Run("negative start date in past", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)

		_, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-08-27",
			EndDate:   "2026-08-29",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrStartDateInPast)
	})

	t.Run("success start date today", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)

		_, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-08-28",
			EndDate:   "2026-08-29",
		})

		assert.NoError(t, err)
	})

	t.Run("negative end before start", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)

		_, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-09-05",
			EndDate:   "2026-09-01",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("negative malformed date", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)

		_, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "01-09-2026",
			EndDate:   "2026-09-03",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("negative unknown requester", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		_, err := deps.service.Submit(ctx, 99, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-03",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrRequesterNotFound)
	})

	t.Run("negative deactivated requester", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)
		assert.NoError(t, deps.personRepo.Deactivate(ctx, requester.ID))

		_, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-03",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrRequesterInactive)
	})
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("success deducts balance", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)
		supervisor := seedPerson(t, deps.personRepo, "sam", rbac.RoleSupervisor, 12)

		submitted, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-03",
		})
		assert.NoError(t, err)

		resp, err := deps.service.Approve(ctx, submitted.ID, supervisor.ID)

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.NotNil(t, resp.ApproverID)
		assert.Equal(t, supervisor.ID, *resp.ApproverID)
		assert.Equal(t, 9, remainingDays(t, deps.personRepo, requester.ID))
	})

	t.Run("negative employee approver keeps request pending", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)
		peer := seedPerson(t, deps.personRepo, "bob", rbac.RoleEmployee, 12)

		submitted, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-03",
		})
		assert.NoError(t, err)

		_, err = deps.service.Approve(ctx, submitted.ID, peer.ID)

		assert.ErrorIs(t, err, leaveerrors.ErrNotAuthorized)
		fetched, getErr := deps.service.GetByID(ctx, submitted.ID)
		assert.NoError(t, getErr)
		assert.Equal(t, leave.StatusPending, fetched.Status)
		assert.Equal(t, 12, remainingDays(t, deps.personRepo, requester.ID))
	})

	t.Run("negative double approve deducts once", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)
		supervisor := seedPerson(t, deps.personRepo, "sam", rbac.RoleSupervisor, 12)

		submitted, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-03",
		})
		assert.NoError(t, err)

		_, err = deps.service.Approve(ctx, submitted.ID, supervisor.ID)
		assert.NoError(t, err)

		_, err = deps.service.Approve(ctx, submitted.ID, supervisor.ID)

		assert.ErrorIs(t, err, leaveerrors.ErrNotPending)
		assert.Equal(t, 9, remainingDays(t, deps.personRepo, requester.ID))
	})

	t.Run("negative deduction failure rolls status back", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)
		supervisor := seedPerson(t, deps.personRepo, "sam", rbac.RoleSupervisor, 12)

		// Both fit the balance at submission; approving both does not.
		first, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-07",
		})
		assert.NoError(t, err)
		second, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-10-01",
			EndDate:   "2026-10-07",
		})
		assert.NoError(t, err)

		_, err = deps.service.Approve(ctx, first.ID, supervisor.ID)
		assert.NoError(t, err)
		assert.Equal(t, 5, remainingDays(t, deps.personRepo, requester.ID))

		_, err = deps.service.Approve(ctx, second.ID, supervisor.ID)
		assert.Error(t, err)

		fetched, getErr := deps.service.GetByID(ctx, second.ID)
		assert.NoError(t, getErr)
		assert.Equal(t, leave.StatusPending, fetched.Status)
		assert.Nil(t, fetched.ApproverID)
		assert.Equal(t, 5, remainingDays(t, deps.personRepo, requester.ID))
	})

	t.Run("negative unknown approver", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)

		submitted, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-03",
		})
		assert.NoError(t, err)

		_, err = deps.service.Approve(ctx, submitted.ID, 99)

		assert.ErrorIs(t, err, leaveerrors.ErrApproverNotFound)
	})

	t.Run("negative unknown request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		supervisor := seedPerson(t, deps.personRepo, "sam", rbac.RoleSupervisor, 12)

		_, err := deps.service.Approve(ctx, 99, supervisor.ID)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("success keeps balance untouched", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)
		supervisor := seedPerson(t, deps.personRepo, "sam", rbac.RoleSupervisor, 12)

		submitted, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-03",
		})
		assert.NoError(t, err)

		resp, err := deps.service.Reject(ctx, submitted.ID, supervisor.ID, "project deadline that week")

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.NotNil(t, resp.RejectionReason)
		assert.Equal(t, 12, remainingDays(t, deps.personRepo, requester.ID))
	})

	t.Run("negative empty reason keeps request pending", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)
		supervisor := seedPerson(t, deps.personRepo, "sam", rbac.RoleSupervisor, 12)

		submitted, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-03",
		})
		assert.NoError(t, err)

		_, err = deps.service.Reject(ctx, submitted.ID, supervisor.ID, "")

		assert.ErrorIs(t, err, leaveerrors.ErrReasonRequired)
		fetched, getErr := deps.service.GetByID(ctx, submitted.ID)
		assert.NoError(t, getErr)
		assert.Equal(t, leave.StatusPending, fetched.Status)
	})

	t.Run("negative reject after approve", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)
		supervisor := seedPerson(t, deps.personRepo, "sam", rbac.RoleSupervisor, 12)

		submitted, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-03",
		})
		assert.NoError(t, err)

		_, err = deps.service.Approve(ctx, submitted.ID, supervisor.ID)
		assert.NoError(t, err)

		_, err = deps.service.Reject(ctx, submitted.ID, supervisor.ID, "too late")

		assert.ErrorIs(t, err, leaveerrors.ErrNotPending)
	})
}

func TestLeaveService_Lists(t *testing.T) {
	ctx := context.Background()

	t.Run("success pending excludes decided requests", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		requester := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)
		supervisor := seedPerson(t, deps.personRepo, "sam", rbac.RoleSupervisor, 12)

		first, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-02",
		})
		assert.NoError(t, err)
		second, err := deps.service.Submit(ctx, requester.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-10-01",
			EndDate:   "2026-10-02",
		})
		assert.NoError(t, err)

		_, err = deps.service.Approve(ctx, first.ID, supervisor.ID)
		assert.NoError(t, err)

		pending, err := deps.service.ListPending(ctx)
		assert.NoError(t, err)
		assert.Len(t, pending, 1)
		assert.Equal(t, second.ID, pending[0].ID)
	})

	t.Run("success by requester", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		alice := seedPerson(t, deps.personRepo, "alice", rbac.RoleEmployee, 12)
		bob := seedPerson(t, deps.personRepo, "bob", rbac.RoleEmployee, 12)

		_, err := deps.service.Submit(ctx, alice.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-02",
		})
		assert.NoError(t, err)
		_, err = deps.service.Submit(ctx, bob.ID, leave.SubmitLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-02",
		})
		assert.NoError(t, err)

		mine, err := deps.service.ListByRequester(ctx, alice.ID)
		assert.NoError(t, err)
		assert.Len(t, mine, 1)
		assert.Equal(t, alice.ID, mine[0].RequesterID)
	})
}
