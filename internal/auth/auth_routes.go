package auth

import (
	"go-hrcore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", handler.Login)
		authGroup.GET("/me",
			middleware.AuthMiddleware(),
			middleware.RateLimitByActor(middleware.DefaultActorRate, middleware.DefaultActorBurst),
			handler.GetMe,
		)
	}
}
