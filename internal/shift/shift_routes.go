package shift

import (
	"go-dtr/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/:id/shift-schedule", middleware.RateLimitByUser(5, 20), handler.GetForEmployee)
	}
}
