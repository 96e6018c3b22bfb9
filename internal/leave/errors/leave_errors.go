package leaveerrors

import (
	"net/http"

	"go-hrcore/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrRequesterNotFound = apperror.New(
		apperror.CodeNotFound,
		"requester not found",
		http.StatusNotFound,
	)
	ErrRequesterInactive = apperror.New(
		apperror.CodeInvalidState,
		"requester is deactivated",
		http.StatusBadRequest,
	)
	ErrApproverNotFound = apperror.New(
		apperror.CodeNotFound,
		"approver not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidArgument,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrStartDateInPast = apperror.New(
		apperror.CodeInvalidDateRange,
		"start date cannot be in the past",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidDateRange,
		"start date cannot be after end date",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"leave duration exceeds remaining leave days",
		http.StatusBadRequest,
	)
	ErrNotPending = apperror.New(
		apperror.CodeNotPending,
		"leave request is not pending",
		http.StatusConflict,
	)
	ErrNotAuthorized = apperror.New(
		apperror.CodeUnauthorized,
		"role does not grant the approve-leave capability",
		http.StatusForbidden,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidArgument,
		"rejection reason is required",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidArgument,
		"invalid leave request id",
		http.StatusBadRequest,
	)
)
