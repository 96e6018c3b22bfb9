package payroll

import (
	"go-hrcore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(
		middleware.AuthMiddleware(),
		middleware.RateLimitByActor(middleware.DefaultActorRate, middleware.DefaultActorBurst),
	)
	{
		payrolls.POST("", handler.Generate)
		payrolls.GET("", handler.List)
		payrolls.GET("/:id", handler.GetByID)
		payrolls.POST("/:id/pay", handler.MarkPaid)
	}
}
