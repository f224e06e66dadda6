package main

import (
	"log"

	"accounts-be/internal/cache"
	"accounts-be/internal/config"
	"accounts-be/internal/controllers"
	"accounts-be/internal/database"
	"accounts-be/internal/middleware"
	"accounts-be/internal/repository"
	"accounts-be/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
		}
	}

	// Initialize repository and service
	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cacheClient, cfg.BcryptCost)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	healthController := controllers.NewHealthController(db)

	// Create a Gin router
	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Health check endpoint with a store round-trip
	router.GET("/health", healthController.Check)

	router.POST("/signup", authController.Signup)
	router.POST("/login", authController.Login)

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
