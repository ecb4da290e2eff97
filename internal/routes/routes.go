package routes

import (
	"foodshare_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts all HTTP routes. The donation API lives at the root
// (POST /signup, GET /listings, ...), matching the public surface clients
// already depend on.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ListingHandler.RegisterRoutes(api)
		appHandlers.LogisticsHandler.RegisterRoutes(api)
		appHandlers.AnalyticsHandler.RegisterRoutes(api)
	}
}
