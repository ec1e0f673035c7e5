package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/campusconnect/backend/internal/config"
	"github.com/campusconnect/backend/internal/handler"
	"github.com/campusconnect/backend/internal/middleware"
	"github.com/campusconnect/backend/internal/models"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/campusconnect/backend/internal/service"
	"github.com/campusconnect/backend/pkg/cache"
	"github.com/campusconnect/backend/pkg/database"
	"github.com/campusconnect/backend/pkg/email"
	"github.com/campusconnect/backend/pkg/jwt"
	"github.com/campusconnect/backend/pkg/logger"
	"github.com/campusconnect/backend/pkg/utils"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg := config.Load()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.JWTSecret == config.InsecureDevSecret {
		zapLogger.Warn("JWT_SECRET is not set, using insecure development secret")
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		zapLogger.Fatal("mongodb connection failed", zap.Error(err))
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		zapLogger.Fatal("index creation failed", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	tokens := jwt.NewManager(cfg.JWTSecret)
	mailer := email.NewEmailService(cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailFromName, zapLogger)
	validator := utils.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, tokens, mailer, zapLogger)
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo, userRepo, cacheClient, zapLogger)
	adminService := service.NewAdminService(userRepo, mailer, zapLogger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService)
	eventHandler := handler.NewEventHandler(eventService, validator)
	adminHandler := handler.NewAdminHandler(adminService, eventService)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(zapLogger),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.ClientURL,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PATCH, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())

	api := app.Group("/api")
	api.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.SuccessResponse(nil, "CampusConnect API"))
	})

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	requireAuth := middleware.RequireAuth(tokens, userRepo)

	events := api.Group("/events")
	events.Get("/", eventHandler.List)
	// must be registered before /:id
	events.Get("/recommended/me", requireAuth, eventHandler.Recommended)
	events.Get("/:id", eventHandler.Get)
	events.Post("/", requireAuth, middleware.RequireOrganizer(), eventHandler.Create)
	events.Patch("/:id", requireAuth, middleware.RequireOrganizer(), eventHandler.Update)
	events.Delete("/:id", requireAuth, middleware.RequireAdmin(), eventHandler.Delete)

	users := api.Group("/users", requireAuth)
	users.Get("/me", userHandler.GetMe)
	users.Patch("/me", userHandler.UpdateMe)

	admin := api.Group("/admin", requireAuth, middleware.RequireAdmin())
	admin.Get("/organizers", adminHandler.ListOrganizers)
	admin.Patch("/organizers/:id/verify", adminHandler.VerifyOrganizer)
	admin.Get("/events", adminHandler.ListAllEvents)

	zapLogger.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

// errorHandler converts uncaught errors into the standard envelope without
// leaking internals.
func errorHandler(zapLogger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			if code < fiber.StatusInternalServerError {
				message = fiberErr.Message
			}
		}
		if code >= fiber.StatusInternalServerError {
			zapLogger.Error("unhandled error",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return c.Status(code).JSON(models.ErrorResponse(message))
	}
}
