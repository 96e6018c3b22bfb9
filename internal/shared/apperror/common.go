package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthenticated = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidArgument = New(
		CodeInvalidArgument,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// RequiredField builds the INVALID_ARGUMENT error for a missing binding field.
func RequiredField(field string) *AppError {
	return New(
		CodeInvalidArgument,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

// InvalidField builds the INVALID_ARGUMENT error for a malformed binding field.
func InvalidField(field string) *AppError {
	return New(
		CodeInvalidArgument,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}
