// @title DCN Community API
// @version 1.0
// @description Backend for the DCN community: quizzes, certificates, code redemption, contributors and attendance.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize, or rely on the session cookie.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"dcn-community/internal/adapter"
	"dcn-community/internal/cache"
	"dcn-community/internal/config"
	"dcn-community/internal/database"
	"dcn-community/internal/handler"
	"dcn-community/internal/logger"
	"dcn-community/internal/metrics"
	"dcn-community/internal/middleware"
	"dcn-community/internal/observability"
	"dcn-community/internal/repository"
	"dcn-community/internal/service"
	"dcn-community/internal/validation"

	_ "dcn-community/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	flushSentry, err := observability.InitSentry(cfg.Sentry.DSN, cfg.Sentry.Env, cfg.Sentry.Release)
	if err != nil {
		appLogger.Warn("Sentry disabled", zap.Error(err))
	}
	defer flushSentry()

	// Connect to database
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	if err := database.MigrateUp(db.DB); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize repositories
	adminRepository := repository.NewAdminDatabaseAdapter(db)
	quizRepository := repository.NewQuizDatabaseAdapter(db)
	sessionRepository := repository.NewQuizSessionDatabaseAdapter(db)
	kontributorRepository := repository.NewKontributorDatabaseAdapter(db)
	pertemuanRepository := repository.NewPertemuanDatabaseAdapter(db)
	sertifikatRepository := repository.NewSertifikatDatabaseAdapter(db)
	codeRepository := repository.NewCodeRedeemDatabaseAdapter(db)
	pushRepository := repository.NewPushSubscriptionDatabaseAdapter(db)
	activityRepository := repository.NewActivityLogDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize services
	activityLogger := service.NewActivityLogger(activityRepository)
	authService, err := service.NewAuthService(adminRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	quizAdminService := service.NewQuizAdminService(quizRepository, sessionRepository, txManager)
	quizSessionService := service.NewQuizSessionService(quizRepository, sessionRepository, cacheAdapter, cfg)
	kontributorService := service.NewKontributorService(kontributorRepository, cacheAdapter, activityLogger, cfg)
	sertifikatService := service.NewSertifikatService(
		kontributorRepository, pertemuanRepository, sertifikatRepository, sessionRepository,
		cacheAdapter, activityLogger, cfg,
	)
	codeRedeemService := service.NewCodeRedeemService(codeRepository, kontributorRepository, txManager, kontributorService, activityLogger)
	pertemuanService := service.NewPertemuanService(pertemuanRepository, kontributorRepository, txManager, activityLogger)
	notificationService := service.NewNotificationService(pushRepository, adapter.NewWebPushSender(cfg.Push), activityLogger)
	appLogger.Info("Services initialized")

	// Initialize handlers
	v := validation.NewValidator()
	handlers := &handler.Handlers{
		Auth:        handler.NewAuthHandler(authService, cfg),
		QuizAdmin:   handler.NewQuizAdminHandler(quizAdminService, quizSessionService, v),
		QuizSession: handler.NewQuizSessionHandler(quizSessionService, v),
		Sertifikat:  handler.NewSertifikatHandler(sertifikatService, v),
		CodeRedeem:  handler.NewCodeRedeemHandler(codeRedeemService, v),
		Kontributor: handler.NewKontributorHandler(kontributorService, v),
		Pertemuan:   handler.NewPertemuanHandler(pertemuanService, v),
		Push:        handler.NewPushHandler(notificationService, v, cfg.Push.VAPIDPublicKey),
		Activity:    handler.NewActivityHandler(activityLogger),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: cfg.Server.AllowOrigins != "*",
		MaxAge:           300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	handler.RegisterRoutes(app.Group("/api"), handlers, authService, cfg)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	activityLogger.Wait()
	appLogger.Info("Server exited gracefully")
}
