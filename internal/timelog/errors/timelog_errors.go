package timelogerrors

import (
	"net/http"

	"go-dtr/internal/shared/apperror"
)

var (
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"from and to are required as YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidCheckTime = apperror.New(
		apperror.CodeInvalidInput,
		"invalid check time",
		http.StatusBadRequest,
	)
	ErrUnknownUser = apperror.New(
		apperror.CodeNotFound,
		"no punch device user mapped to this employee",
		http.StatusNotFound,
	)
)
