package travelerrors

import (
	"net/http"

	"go-dtr/internal/shared/apperror"
)

var ErrInvalidDateFormat = apperror.New(
	apperror.CodeInvalidInput,
	"invalid date format, expected YYYY-MM-DD",
	http.StatusBadRequest,
)
