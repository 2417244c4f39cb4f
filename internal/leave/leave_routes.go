package leave

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

	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	leaves.Use(middleware.ExtractUserID())
	{
		leaves.GET("", middleware.RateLimitByUser(3, 10), handler.GetAll)
		leaves.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)
		if redisClient != nil {
			leaves.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RateLimitByUser(1, 5),
				handler.Create,
			)
		} else {
			leaves.POST("", middleware.RateLimitByUser(1, 5), handler.Create)
		}
		leaves.PATCH(
			"/:id/status",
			middleware.RateLimitByUser(1, 5),
			middleware.RoleMiddleware("supervisor", "hr_admin"),
			handler.UpdateStatus,
		)
	}
}
