package timelog

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
	timeLogs := r.Group("/timelogs")
	timeLogs.Use(middleware.AuthMiddleware())
	timeLogs.Use(middleware.ExtractUserID())
	timeLogs.Use(middleware.ContextLogger(logger))
	{
		timeLogs.GET("/raw", middleware.RateLimitByUser(5, 20), handler.ListRaw)
	}
}
