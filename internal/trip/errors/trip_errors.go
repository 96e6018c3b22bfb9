package triperrors

import (
	"net/http"

	"go-hrcore/internal/shared/apperror"
)

var (
	ErrTripNotFound = apperror.New(
		apperror.CodeNotFound,
		"business trip not found",
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
	ErrDestinationRequired = apperror.New(
		apperror.CodeInvalidArgument,
		"destination is required",
		http.StatusBadRequest,
	)
	ErrNegativeCost = apperror.New(
		apperror.CodeInvalidArgument,
		"cost cannot be negative",
		http.StatusBadRequest,
	)
	ErrNotPending = apperror.New(
		apperror.CodeNotPending,
		"business trip is not pending",
		http.StatusConflict,
	)
	ErrNotAuthorized = apperror.New(
		apperror.CodeUnauthorized,
		"role does not grant the approve-trips capability",
		http.StatusForbidden,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidArgument,
		"rejection reason is required",
		http.StatusBadRequest,
	)
	ErrInvalidTripID = apperror.New(
		apperror.CodeInvalidArgument,
		"invalid business trip id",
		http.StatusBadRequest,
	)
)
