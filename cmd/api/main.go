// @title Trivia API
// @version 1.0
// @description REST backend for a trivia game: categories, questions and quizzes.
// @host localhost:8090
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "trivia-api/cmd/api/docs"
	"trivia-api/internal/adapter"
	"trivia-api/internal/cache"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/handler"
	"trivia-api/internal/logger"
	"trivia-api/internal/middleware"
	"trivia-api/internal/repository"
	"trivia-api/internal/service"
	"trivia-api/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	policy, err := domain.ParseSelectionPolicy(cfg.Quiz.SelectionPolicy)
	if err != nil {
		appLogger.Fatal("Invalid quiz configuration", zap.Error(err))
	}

	db, err := database.NewSQLXPostgresDB(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Redis is optional; without it categories are read from the store each time.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Category cache enabled", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Info("Redis address not set, category cache disabled")
	}

	categoryRepository := repository.NewCategoryDatabaseAdapter(db)
	questionRepository := repository.NewQuestionDatabaseAdapter(db)

	categoryTTL := cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Categories, service.DefaultCategoryCacheTTL)
	categoryService := service.NewCategoryService(categoryRepository, cacheAdapter, categoryTTL)
	questionService := service.NewQuestionService(questionRepository, categoryRepository, categoryService, cfg.Quiz.PageSize)
	quizService := service.NewQuizService(questionRepository, categoryRepository, policy)

	categoryHandler := handler.NewCategoryHandler(categoryService, questionService)
	questionHandler := handler.NewQuestionHandler(questionService)
	quizHandler := handler.NewQuizHandler(quizService)
	healthHandler := handler.NewHealthHandler(db, cacheAdapter)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestid.New(requestid.Config{Generator: util.NewULID}))
	app.Use(middleware.RequestLogger())
	app.Use(middleware.Metrics())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type,Authorization",
		AllowMethods: "GET,POST,DELETE",
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", healthHandler.Healthz)
	handler.RegisterRoutes(app, categoryHandler, questionHandler, quizHandler)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("selection_policy", string(policy)))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
