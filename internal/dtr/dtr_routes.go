package dtr

import (
	"go-dtr/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	timesheets := r.Group("/dtr")
	timesheets.Use(middleware.AuthMiddleware())
	timesheets.Use(middleware.ExtractUserID())
	timesheets.Use(middleware.ContextLogger(logger))
	{
		timesheets.GET("/timesheet", middleware.RateLimitByUser(5, 20), handler.GetTimesheet)
		timesheets.GET(
			"/employees/:id/timesheet",
			middleware.RateLimitByUser(5, 20),
			middleware.RoleMiddleware("supervisor", "hr_admin"),
			handler.GetEmployeeTimesheet,
		)
	}
}
