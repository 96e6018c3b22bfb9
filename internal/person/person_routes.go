package person

import (
	"go-hrcore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	persons := r.Group("/persons")
	persons.POST("", handler.Register)

	authed := persons.Group("")
	authed.Use(
		middleware.AuthMiddleware(),
		middleware.RateLimitByActor(middleware.DefaultActorRate, middleware.DefaultActorBurst),
	)
	{
		authed.GET("", handler.List)
		authed.GET("/:id", handler.GetByID)
		authed.PUT("/:id/profile", handler.UpdateProfile)
		authed.PUT("/:id/password", handler.ChangePassword)
		authed.PUT("/:id/role", handler.ChangeRole)
		authed.PUT("/:id/salary", handler.UpdateSalary)
		authed.DELETE("/:id", handler.Deactivate)
	}
}
