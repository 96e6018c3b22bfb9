package personerrors

import (
	"net/http"

	"go-hrcore/internal/shared/apperror"
)

var (
	ErrPersonNotFound = apperror.New(
		apperror.CodeNotFound,
		"person not found",
		http.StatusNotFound,
	)
	ErrActorNotFound = apperror.New(
		apperror.CodeNotFound,
		"acting person not found",
		http.StatusNotFound,
	)
	ErrEmailConflict = apperror.New(
		apperror.CodeEmailConflict,
		"email is already registered",
		http.StatusConflict,
	)
	ErrNameRequired = apperror.New(
		apperror.CodeInvalidArgument,
		"name is required",
		http.StatusBadRequest,
	)
	ErrEmailRequired = apperror.New(
		apperror.CodeInvalidArgument,
		"email is required",
		http.StatusBadRequest,
	)
	ErrPasswordTooShort = apperror.New(
		apperror.CodeInvalidArgument,
		"password must be at least 8 characters",
		http.StatusBadRequest,
	)
	ErrNegativeSalary = apperror.New(
		apperror.CodeInvalidArgument,
		"base salary cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidArgument,
		"unknown role",
		http.StatusBadRequest,
	)
	ErrRoleUnchanged = apperror.New(
		apperror.CodeInvalidArgument,
		"person already holds this role",
		http.StatusBadRequest,
	)
	ErrCurrentPasswordMismatch = apperror.New(
		apperror.CodeInvalidArgument,
		"current password is incorrect",
		http.StatusBadRequest,
	)
	ErrNotAuthorized = apperror.New(
		apperror.CodeUnauthorized,
		"role does not grant the manage-people capability",
		http.StatusForbidden,
	)
	ErrPersonInactive = apperror.New(
		apperror.CodeInvalidState,
		"person is deactivated",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"not enough remaining leave days",
		http.StatusBadRequest,
	)
	ErrInvalidPersonID = apperror.New(
		apperror.CodeInvalidArgument,
		"invalid person id",
		http.StatusBadRequest,
	)
)
