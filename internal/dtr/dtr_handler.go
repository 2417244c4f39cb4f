package dtr

import (
	"net/http"

	"go-dtr/internal/shared/apperror"
	"go-dtr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dtr.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dtr.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("timesheet request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetTimesheet serves the requester's own timesheet.
func (h *Handler) GetTimesheet(c *gin.Context) {
	h.serveTimesheet(c, c.GetString("employee_id"))
}

// GetEmployeeTimesheet serves any employee's timesheet, for
// supervisors and HR.
func (h *Handler) GetEmployeeTimesheet(c *gin.Context) {
	h.serveTimesheet(c, c.Param("id"))
}

func (h *Handler) serveTimesheet(c *gin.Context, employeeID string) {
	from := c.Query("from")
	to := c.Query("to")

	resp, err := h.service.GetTimesheet(c.Request.Context(), employeeID, from, to)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
