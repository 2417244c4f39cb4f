package shifterrors

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
	ErrNoScheduleAssigned = apperror.New(
		apperror.CodeNotFound,
		"no shift schedule assigned",
		http.StatusNotFound,
	)
)
