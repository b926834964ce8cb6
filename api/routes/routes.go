package routes

import (
	"github.com/digitalloto/loto-backend/internal/config"
	"github.com/digitalloto/loto-backend/internal/handlers"
	"github.com/digitalloto/loto-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies bundles the handlers the router wires up
type HandlerDependencies struct {
	DrawHandler    *handlers.DrawHandler
	TicketHandler  *handlers.TicketHandler
	PackageHandler *handlers.PackageHandler
	WalletHandler  *handlers.WalletHandler
	StatsHandler   *handlers.StatsHandler
	BannerHandler  *handlers.BannerHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	// Create router
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/draws", deps.DrawHandler.GetDraws)
		public.GET("/draws/:id", deps.DrawHandler.GetDrawByID)

		public.POST("/buy_ticket", deps.TicketHandler.BuyTicket)
		public.GET("/tickets", deps.TicketHandler.GetTickets)
		public.PUT("/tickets/:id", deps.TicketHandler.UpdateTicket)

		public.POST("/buy_package", deps.PackageHandler.BuyPackage)

		public.GET("/balance", deps.WalletHandler.GetBalance)
		public.GET("/banners", deps.BannerHandler.GetBanners)
	}

	// Admin routes. Deployments front this group with their own access
	// control; the application itself carries no user accounts.
	admin := router.Group("/api/admin")
	{
		admin.POST("/update_balance", deps.WalletHandler.UpdateBalance)
		admin.POST("/conduct_draw", deps.DrawHandler.ConductDraw)

		draws := admin.Group("/draws")
		{
			draws.GET("", deps.DrawHandler.GetDraws)
			draws.POST("", deps.DrawHandler.CreateDraw)
			draws.PUT("/:id", deps.DrawHandler.UpdateDraw)
			draws.DELETE("/:id", deps.DrawHandler.DeleteDraw)
		}

		packages := admin.Group("/packages")
		{
			packages.GET("", deps.PackageHandler.GetPackages)
			packages.POST("", deps.PackageHandler.CreatePackage)
			packages.PUT("/:id", deps.PackageHandler.UpdatePackage)
			packages.DELETE("/:id", deps.PackageHandler.DeletePackage)
		}

		admin.GET("/stats", deps.StatsHandler.GetStats)
	}

	return router
}
