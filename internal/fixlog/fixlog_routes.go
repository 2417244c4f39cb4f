package fixlog

import (
	"go-dtr/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	fixLogs := r.Group("/fixlogs")
	fixLogs.Use(middleware.AuthMiddleware())
	fixLogs.Use(middleware.ExtractUserID())
	{
		fixLogs.GET("", middleware.RateLimitByUser(3, 10), handler.GetAll)
		fixLogs.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)
		if redisClient != nil {
			fixLogs.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RateLimitByUser(1, 5),
				handler.Create,
			)
		} else {
			fixLogs.POST("", middleware.RateLimitByUser(1, 5), handler.Create)
		}
		fixLogs.PATCH(
			"/:id/status",
			middleware.RateLimitByUser(1, 5),
			middleware.RoleMiddleware("supervisor", "hr_admin"),
			handler.UpdateStatus,
		)
	}
}
