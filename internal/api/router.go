package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/snapgram/api/internal/api/handler"
	"github.com/snapgram/api/internal/api/middleware"
	"github.com/snapgram/api/internal/core/service"
	mongorepo "github.com/snapgram/api/internal/infrastructure/db/mongo"
	redisdb "github.com/snapgram/api/internal/infrastructure/db/redis"
	"github.com/snapgram/api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, uploads *storage.DiskStore, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("snapgram"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	postRepo := mongorepo.NewPostRepository(db)
	feedCache := redisdb.NewFeedCache(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret)
	postService := service.NewPostService(postRepo, userRepo, feedCache, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService, uploads)
	optionalAuth := middleware.OptionalAuth(jwtSecret)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Post routes ---
	e.POST("/posts", postHandler.Create, optionalAuth)
	e.GET("/posts", postHandler.List)

	// --- Uploaded files (read-only static) ---
	e.Static("/uploads", uploads.Dir())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
