package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	budgetingapp "github.com/celengan/backend/internal/application/budgeting"
	identityapp "github.com/celengan/backend/internal/application/identity"
	onboardingapp "github.com/celengan/backend/internal/application/onboarding"
	"github.com/celengan/backend/internal/domain/shared"
	"github.com/celengan/backend/internal/infrastructure/auth"
	"github.com/celengan/backend/internal/infrastructure/cache"
	"github.com/celengan/backend/internal/infrastructure/config"
	"github.com/celengan/backend/internal/infrastructure/logger"
	"github.com/celengan/backend/internal/infrastructure/persistence"
	"github.com/celengan/backend/internal/interfaces/http/handler"
	"github.com/celengan/backend/internal/interfaces/http/middleware"
	"github.com/celengan/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Celengan backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Idempotency guard store: Redis when enabled, in-memory otherwise.
	// The in-memory store only protects a single instance; run Redis when
	// deploying more than one replica.
	var guardStore shared.IdempotencyStore
	if cfg.Redis.Enabled {
		redisStore, err := cache.NewRedisIdempotencyStore(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		guardStore = redisStore
		log.Info("Redis idempotency store connected", zap.String("addr", cfg.Redis.Addr()))
	} else {
		guardStore = cache.NewInMemoryIdempotencyStore()
		log.Info("Using in-memory idempotency store")
	}
	defer func() {
		if err := guardStore.Close(); err != nil {
			log.Error("Error closing idempotency store", zap.Error(err))
		}
	}()

	// Repositories
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	groupRepo := persistence.NewGormGroupRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	budgetRepo := persistence.NewGormBudgetRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)

	// Application services
	onboardingService := onboardingapp.NewOnboardingService(db, guardStore, cfg.Onboarding.GuardTTL, log)
	groupService := budgetingapp.NewGroupService(groupRepo, profileRepo)
	categoryService := budgetingapp.NewCategoryService(categoryRepo, groupRepo, log)
	budgetService := budgetingapp.NewBudgetService(budgetRepo, groupRepo)
	transactionService := budgetingapp.NewTransactionService(transactionRepo, groupRepo, log)
	profileService := identityapp.NewProfileService(profileRepo, groupRepo, log)

	// Token validation service
	jwtService := auth.NewJWTService(cfg.JWT)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	if cfg.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	}

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
	}

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Routes
	router.NewRouter(engine).
		Register(handler.NewSystemHandler(db)).
		Register(handler.NewOnboardingHandler(onboardingService)).
		Register(handler.NewGroupHandler(groupService)).
		Register(handler.NewCategoryHandler(categoryService)).
		Register(handler.NewTransactionHandler(transactionService)).
		Register(handler.NewBudgetHandler(budgetService)).
		Register(handler.NewProfileHandler(profileService)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
