package locator

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

	locators := r.Group("/locators")
	locators.Use(middleware.AuthMiddleware())
	locators.Use(middleware.ExtractUserID())
	{
		locators.GET("", middleware.RateLimitByUser(3, 10), handler.GetAll)
		locators.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)
		if redisClient != nil {
			locators.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RateLimitByUser(1, 5),
				handler.File,
			)
		} else {
			locators.POST("", middleware.RateLimitByUser(1, 5), handler.File)
		}
		locators.PATCH(
			"/:id/status",
			middleware.RateLimitByUser(1, 5),
			middleware.RoleMiddleware("supervisor", "hr_admin"),
			handler.UpdateStatus,
		)
	}
}
