package fixlogerrors

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
	ErrNoSlotOverrides = apperror.New(
		apperror.CodeInvalidInput,
		"at least one punch correction is required",
		http.StatusBadRequest,
	)
	ErrDuplicateFiling = apperror.New(
		apperror.CodeConflict,
		"a fix log is already filed for this date",
		http.StatusConflict,
	)
	ErrFixLogNotFound = apperror.New(
		apperror.CodeNotFound,
		"fix log not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid fix log status transition",
		http.StatusBadRequest,
	)
	ErrReturnReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"return_reason is required when status is Returned",
		http.StatusBadRequest,
	)
)
