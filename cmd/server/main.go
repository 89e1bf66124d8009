package main

import (
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"habitflow/internal/config"
	"habitflow/internal/database"
	"habitflow/internal/handlers"
	"habitflow/internal/middleware"
	"habitflow/internal/repository"
	"habitflow/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatalf("Failed to add indexes: %v", err)
		}
	}

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userRepo := repository.NewUserRepository(database.GetDB())
	habitRepo := repository.NewHabitRepository(database.GetDB())
	authService := services.NewAuthService(userRepo, tokenService)
	habitService := services.NewHabitService(habitRepo, nil)
	analyticsService := services.NewAnalyticsService(habitRepo, nil)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	habitHandler := handlers.NewHabitHandler(habitService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Initialize Gin router
	r := gin.Default()

	// CORS: configured origins plus any localhost port for development
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost:") {
				return true
			}
			for _, allowed := range cfg.ClientOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.RequireAuth(tokenService), authHandler.GetCurrentUser)
			auth.POST("/update-username", middleware.RequireAuth(tokenService), authHandler.UpdateUsername)
			auth.POST("/change-password", middleware.RequireAuth(tokenService), authHandler.ChangePassword)
		}

		// Habit routes (protected)
		habits := api.Group("/habits")
		habits.Use(middleware.RequireAuth(tokenService))
		{
			habits.GET("", habitHandler.ListHabits)
			habits.POST("", habitHandler.CreateHabit)
			habits.GET("/:id", middleware.RequireHabitOwnership(), habitHandler.GetHabit)
			habits.PATCH("/:id", middleware.RequireHabitOwnership(), habitHandler.UpdateHabit)
			habits.DELETE("/:id", middleware.RequireHabitOwnership(), habitHandler.DeleteHabit)
			habits.POST("/:id/toggle", middleware.RequireHabitOwnership(), habitHandler.ToggleCheck)
		}

		// Analytics routes (protected)
		analytics := api.Group("/analytics")
		analytics.Use(middleware.RequireAuth(tokenService))
		{
			analytics.GET("/daily", analyticsHandler.GetDaily)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
