package timelog

import (
	"net/http"

	"go-dtr/internal/shared/apperror"
	"go-dtr/internal/shared/response"
	timelogerrors "go-dtr/internal/timelog/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("timelog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timelog.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) ListRaw(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	from := c.Query("from")
	to := c.Query("to")

	if from == "" || to == "" {
		httpErr := apperror.ToHTTP(timelogerrors.ErrInvalidDateRange)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.ListRaw(c.Request.Context(), employeeID, from, to)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("raw time logs request failed",
			zap.String("employee_id", employeeID),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
