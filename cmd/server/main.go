package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/srashed001/pug-backend-sub000/internal/config"
	"github.com/srashed001/pug-backend-sub000/internal/database"
	"github.com/srashed001/pug-backend-sub000/internal/handlers"
	"github.com/srashed001/pug-backend-sub000/internal/middleware"
	"github.com/srashed001/pug-backend-sub000/internal/repository"
	"github.com/srashed001/pug-backend-sub000/internal/services"
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

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	followRepo := repository.NewFollowRepository(db)
	threadRepo := repository.NewThreadRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Initialize services
	jwtSecret := []byte(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, jwtSecret)
	userService := services.NewUserService(userRepo, gameRepo)
	followService := services.NewFollowService(followRepo, userRepo)
	gameService := services.NewGameService(gameRepo, userRepo)
	inviteService := services.NewInviteService(inviteRepo, gameRepo, userRepo)
	messageService := services.NewMessageService(threadRepo, userRepo)
	activityService := services.NewActivityService(activityRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, followService, activityService)
	gameHandler := handlers.NewGameHandler(gameService)
	inviteHandler := handlers.NewInviteHandler(inviteService)
	messageHandler := handlers.NewMessageHandler(messageService)

	// Initialize Gin router
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Decode the bearer token when one is present
	r.Use(middleware.Authenticate(jwtSecret))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// User routes
		users := api.Group("/users")
		users.Use(middleware.RequireLogin())
		{
			users.GET("", userHandler.List)
			users.GET("/:username", userHandler.Get)
			users.PATCH("/:username", middleware.RequireSelfOrAdmin("username"), userHandler.Update)
			users.DELETE("/:username", middleware.RequireSelfOrAdmin("username"), userHandler.Deactivate)
			users.POST("/:username/reactivate", middleware.RequireSelfOrAdmin("username"), userHandler.Reactivate)
			users.GET("/:username/games", userHandler.Games)
			users.POST("/:username/follow/:followed", middleware.RequireSelfOrAdmin("username"), userHandler.ToggleFollow)
			users.GET("/:username/followers", userHandler.Followers)
			users.GET("/:username/following", userHandler.Following)
			users.GET("/:username/activity", middleware.RequireSelfOrAdmin("username"), userHandler.Activity)
			users.GET("/:username/threads", middleware.RequireSelfOrAdmin("username"), messageHandler.Threads)
			users.GET("/:username/invites/sent", middleware.RequireSelfOrAdmin("username"), inviteHandler.Sent)
			users.GET("/:username/invites/received", middleware.RequireSelfOrAdmin("username"), inviteHandler.Received)
		}

		// Game routes; listing and detail are public
		games := api.Group("/games")
		{
			games.GET("", gameHandler.List)
			games.GET("/:id", gameHandler.Get)
			games.POST("", middleware.RequireLogin(), gameHandler.Create)
			games.PATCH("/:id", middleware.RequireGameHost(), gameHandler.Update)
			games.DELETE("/:id", middleware.RequireGameHost(), gameHandler.Deactivate)
			games.POST("/:id/reactivate", middleware.RequireGameHost(), gameHandler.Reactivate)
			games.POST("/:id/join", middleware.RequireLogin(), gameHandler.Join)
			games.DELETE("/:id/join", middleware.RequireLogin(), gameHandler.Leave)
			games.POST("/:id/comments", middleware.RequireLogin(), gameHandler.AddComment)
			games.GET("/:id/invites", middleware.RequireGameHost(), inviteHandler.GameInvites)
		}

		// Comment routes
		comments := api.Group("/comments")
		comments.Use(middleware.RequireLogin())
		{
			comments.PATCH("/:id", gameHandler.EditComment)
			comments.DELETE("/:id", gameHandler.DeleteComment)
		}

		// Invite routes
		invites := api.Group("/invites")
		invites.Use(middleware.RequireLogin())
		{
			invites.POST("", inviteHandler.Create)
			invites.POST("/group", inviteHandler.CreateGroup)
			invites.PATCH("/:id", inviteHandler.Update)
		}

		// Thread and message routes
		threads := api.Group("/threads")
		threads.Use(middleware.RequireLogin())
		{
			threads.POST("", messageHandler.Post)
			threads.POST("/resolve", messageHandler.Resolve)
			threads.GET("/:threadId", messageHandler.Get)
			threads.DELETE("/:threadId", messageHandler.HideThread)
			threads.POST("/:threadId/messages", messageHandler.Reply)
		}

		messages := api.Group("/messages")
		messages.Use(middleware.RequireLogin())
		{
			messages.DELETE("/:id", messageHandler.HideMessage)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
