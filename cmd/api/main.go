package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/minutemind/minutemind/pkg/validator"

	"github.com/minutemind/minutemind/internal/adapter/handler"
	"github.com/minutemind/minutemind/internal/adapter/repository"
	"github.com/minutemind/minutemind/internal/infrastructure/cache"
	"github.com/minutemind/minutemind/internal/infrastructure/database"
	httpmw "github.com/minutemind/minutemind/internal/infrastructure/http/middleware"
	"github.com/minutemind/minutemind/internal/infrastructure/storage"
	"github.com/minutemind/minutemind/internal/usecase/analysis"
	"github.com/minutemind/minutemind/internal/usecase/auth"
	meetinguse "github.com/minutemind/minutemind/internal/usecase/meeting"
	notificationuse "github.com/minutemind/minutemind/internal/usecase/notification"
	taskuse "github.com/minutemind/minutemind/internal/usecase/task"
	teamuse "github.com/minutemind/minutemind/internal/usecase/team"
	pkgai "github.com/minutemind/minutemind/pkg/ai"
	"github.com/minutemind/minutemind/pkg/config"
	"github.com/minutemind/minutemind/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping automatic migrations; use sql-migrate in CI/CD/production")
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize the analysis lock backend
	var locker cache.Locker
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisLocker, err := cache.NewRedisLocker(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisLocker.Close()
		locker = redisLocker
	} else {
		log.Println("⚠️  Redis disabled, using in-process analysis locks")
		locker = cache.NewMemoryLocker()
	}

	// Initialize object storage
	log.Println("🗄️  Connecting to object storage...")
	store, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Printf("⚠️  Object storage unavailable, proof and audio files will not be archived: %v", err)
		store = nil
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	breakdownRepo := repository.NewBreakdownRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize AI clients
	log.Println("🤖 Initializing AI components...")
	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)
	whisperClient := pkgai.NewWhisperClient(&cfg.Groq)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize usecases
	log.Println("✨ Initializing services...")
	authService := auth.NewService(userRepo, jwtManager, logger)
	teamService := teamuse.NewService(teamRepo, userRepo, logger)
	meetingService := meetinguse.NewService(meetingRepo, teamRepo, whisperClient, store, logger)

	extractor := analysis.NewExtractor(geminiClient, logger)
	segmenter := analysis.NewSegmenter(geminiClient, logger)
	analysisService := analysis.NewService(meetingRepo, breakdownRepo, userRepo, extractor, segmenter, locker, cfg.Analysis, logger)

	dispatcher := notificationuse.NewDispatcher(notificationRepo, logger)
	taskService := taskuse.NewService(taskRepo, teamRepo, dispatcher, logger)
	notificationService := notificationuse.NewService(notificationRepo)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuth(authService, logger)
	meetingHandler := handler.NewMeeting(meetingService, analysisService, logger)
	taskHandler := handler.NewTask(taskService, store, logger)
	teamHandler := handler.NewTeam(teamService, meetingService, logger)
	notificationHandler := handler.NewNotification(notificationService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	authEchoMW := httpmw.EchoAuth(jwtManager)

	router := handler.NewRouter(cfg, authHandler, meetingHandler, taskHandler, teamHandler, notificationHandler, authEchoMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited")
}
