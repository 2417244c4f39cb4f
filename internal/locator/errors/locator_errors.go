package locatorerrors

import (
	"net/http"

	"go-dtr/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time format, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrMissingTimeWindow = apperror.New(
		apperror.CodeInvalidInput,
		"departure_time or arrival_time is required",
		http.StatusBadRequest,
	)
	ErrDuplicateFiling = apperror.New(
		apperror.CodeConflict,
		"a locator is already filed for this date",
		http.StatusConflict,
	)
	ErrLocatorNotFound = apperror.New(
		apperror.CodeNotFound,
		"locator not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid locator status transition",
		http.StatusBadRequest,
	)
	ErrReturnReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"return_reason is required when status is Returned",
		http.StatusBadRequest,
	)
	ErrApproverRequired = apperror.New(
		apperror.CodeInvalidInput,
		"approver is required when status is Approved",
		http.StatusBadRequest,
	)
)
