package leave

import (
	"go-hrcore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leaves := r.Group("/leaves")
	leaves.Use(
		middleware.AuthMiddleware(),
		middleware.RateLimitByActor(middleware.DefaultActorRate, middleware.DefaultActorBurst),
	)
	{
		leaves.POST("", handler.Submit)
		leaves.GET("", handler.GetAll)
		leaves.GET("/pending", handler.ListPending)
		leaves.GET("/:id", handler.GetByID)
		leaves.POST("/:id/approve", handler.Approve)
		leaves.POST("/:id/reject", handler.Reject)
	}
}
