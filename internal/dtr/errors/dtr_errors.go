package dtrerrors

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
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"from and to are required as YYYY-MM-DD, from <= to",
		http.StatusBadRequest,
	)
	ErrNoScheduleAssigned = apperror.New(
		apperror.CodeNotFound,
		"no shift schedule assigned",
		http.StatusNotFound,
	)
)
