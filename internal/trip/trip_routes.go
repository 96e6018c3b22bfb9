package trip

import (
	"go-hrcore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	trips := r.Group("/trips")
	trips.Use(
		middleware.AuthMiddleware(),
		middleware.RateLimitByActor(middleware.DefaultActorRate, middleware.DefaultActorBurst),
	)
	{
		trips.POST("", handler.Submit)
		trips.GET("", handler.GetAll)
		trips.GET("/pending", handler.ListPending)
		trips.GET("/:id", handler.GetByID)
		trips.POST("/:id/approve", handler.Approve)
		trips.POST("/:id/reject", handler.Reject)
		trips.PUT("/:id/cost", handler.UpdateActualCost)
	}
}
