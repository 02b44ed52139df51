// Package router assembles the gin engine serving the Cashflow Steps API.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cashflow/internal/handlers"
	"cashflow/internal/middleware"
	"cashflow/internal/services"

	_ "cashflow/internal/docs" // Import swagger docs
)

// Deps holds everything the routes are wired to.
type Deps struct {
	Games       services.GameServicer
	Catalogs    services.CatalogServicer
	Saves       services.SaveServicer
	Snapshots   services.SnapshotServicer
	Audit       services.AuditServicer
	Tokens      *middleware.SessionTokens
	AdminAPIKey string
}

// New builds the router with middleware, documentation and all API routes.
func New(deps Deps) *gin.Engine {
	gameHandler := handlers.NewGameHandler(deps.Games, deps.Audit, deps.Tokens)
	catalogHandler := handlers.NewCatalogHandler(deps.Catalogs)
	saveHandler := handlers.NewSaveHandler(deps.Saves, deps.Audit)
	snapshotHandler := handlers.NewSnapshotHandler(deps.Snapshots)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	catalog := v1.Group("/catalog")
	catalog.GET("/roles", catalogHandler.GetRoles)
	catalog.GET("/offers", catalogHandler.GetOffers)
	catalog.GET("/events", catalogHandler.GetEvents)

	games := v1.Group("/games")
	games.POST("", gameHandler.CreateGame)
	games.POST("/import", gameHandler.ImportGame)

	// Session routes
	game := v1.Group("/game")
	game.Use(middleware.SessionAuthMiddleware(deps.Tokens))
	game.GET("", gameHandler.GetGame)
	game.GET("/summary", gameHandler.GetSummary)
	game.GET("/log", gameHandler.GetLog)
	game.POST("/month/start", gameHandler.BeginMonth)
	game.POST("/offers/:index/purchase", gameHandler.PurchaseOffer)
	game.POST("/offers/decline", gameHandler.DeclineOffers)
	game.POST("/month/end", gameHandler.EndMonth)
	game.POST("/reset", gameHandler.ResetGame)
	game.GET("/export", gameHandler.ExportGame)
	game.POST("/saves", saveHandler.CreateSave)
	game.GET("/saves", saveHandler.GetSaves)
	game.POST("/saves/:id/load", saveHandler.LoadSave)
	game.GET("/snapshots", snapshotHandler.GetSnapshots)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(deps.AdminAPIKey))
	admin.POST("/catalog/reload", catalogHandler.ReloadCatalog)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
