package payrollerrors

import (
	"net/http"

	"go-hrcore/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll record not found",
		http.StatusNotFound,
	)
	ErrPersonNotFound = apperror.New(
		apperror.CodeNotFound,
		"person not found",
		http.StatusNotFound,
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
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidDateRange,
		"period end must be after period start",
		http.StatusBadRequest,
	)
	ErrInvalidQueryRange = apperror.New(
		apperror.CodeInvalidDateRange,
		"range start cannot be after range end",
		http.StatusBadRequest,
	)
	ErrAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"payroll record is already paid",
		http.StatusConflict,
	)
	ErrNotAuthorized = apperror.New(
		apperror.CodeUnauthorized,
		"role does not grant the manage-payroll capability",
		http.StatusForbidden,
	)
	ErrInvalidPayrollID = apperror.New(
		apperror.CodeInvalidArgument,
		"invalid payroll id",
		http.StatusBadRequest,
	)
	ErrInvalidPersonID = apperror.New(
		apperror.CodeInvalidArgument,
		"invalid person id",
		http.StatusBadRequest,
	)
)
