package main

import (
	"log"
	"strconv"

	"coinquest/config"
	"coinquest/db"
	"coinquest/middlewares"
	"coinquest/routes"
	"coinquest/services"
	"coinquest/utils"
	"coinquest/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Connect to MongoDB using the URI from the configuration
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	services.InitProgressionService(db.LedgerReader{}, db.Store{}, cfg.Season.Months, websocket.BroadcastProgressionEvent)

	if cfg.Season.SeedSampleData {
		utils.PopulateSampleData()
	}

	// Set up the Gin router and configure routes
	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// Set trusted proxies (adjust as needed)
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.CorsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// WebSocket endpoint authenticates via token query param, so it stays
	// outside the auth group.
	router.GET("/ws", websocket.ProgressionWebSocketHandler)

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/missions/evaluate", routes.EvaluateMissionsRouteHandler)
		auth.POST("/missions/reset", routes.ResetMissionsRouteHandler)
		auth.POST("/missions/generate", routes.GenerateMissionsRouteHandler)

		auth.GET("/progression/profile", routes.GetProgressionProfileRouteHandler)
		auth.POST("/progression/login", routes.RecordLoginRouteHandler)

		auth.GET("/performance/score", routes.CalculatePerformanceScoreRouteHandler)
		auth.GET("/leaderboard", routes.GetLeaderboardRouteHandler)

		auth.POST("/season/initialize", routes.InitializeSeasonRouteHandler)
		auth.POST("/season/check", routes.CheckSeasonExpirationRouteHandler)
	}

	return router
}
