package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"interact-club.backend/internal/config"
	"interact-club.backend/internal/infrastructure/datasources"
	"interact-club.backend/internal/infrastructure/jobs"
	"interact-club.backend/internal/infrastructure/mail"
	"interact-club.backend/internal/infrastructure/repositories"
	"interact-club.backend/internal/interfaces/http/handlers"
	"interact-club.backend/internal/interfaces/http/middleware"
	"interact-club.backend/internal/usecases"
	"interact-club.backend/pkg/crypto"
	"interact-club.backend/pkg/jwt"
	"interact-club.backend/pkg/logger"
	"interact-club.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv     = godotenv.Load
	loadCfg        = config.Load
	initLog        = logger.Init
	initRedis      = redis.Init
	openDB         = datasources.Open
	hashPassword   = crypto.HashPassword
	runServer      = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownSignal = func() <-chan os.Signal {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		return quit
	}
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := loadCfg()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx, cancel := context.WithCancel(logger.WithService(context.Background(), "api"))
	defer cancel()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	var revoker usecases.TokenRevoker
	if cfg.Redis.Enabled() {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer redis.Close()
		revoker = redis.NewTokenStore()
		logger.Info(ctx, "Redis initialized, token revocation enabled")
	} else {
		logger.Warn(ctx, "REDIS_URL not set, logout will not revoke tokens")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database, cfg.Server.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()
	if err := datasources.Migrate(db); err != nil {
		return err
	}
	logger.Info(ctx, "Database ready", zap.String("driver", cfg.Database.Driver))

	app, err := buildApp(ctx, cfg, db, revoker)
	if err != nil {
		return err
	}

	if err := app.job.Start(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-shutdownSignal()
		logger.Info(context.Background(), "Shutting down server")
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "Server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info(ctx, "Interact Club API starting", zap.String("port", cfg.Server.Port))
	err = runServer(srv)

	app.job.Stop()
	app.contact.Wait()
	cancel()

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

type application struct {
	router  *gin.Engine
	job     *jobs.RegistrationCloseJob
	contact *usecases.ContactUsecase
}

// buildApp wires the API and provisions the administrator account.
func buildApp(ctx context.Context, cfg *config.Config, db *gorm.DB, revoker usecases.TokenRevoker) (*application, error) {
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	userRepo := repositories.NewUserRepository(db)
	boardRepo := repositories.NewBoardMemberRepository(db)
	pastRepo := repositories.NewPastEventRepository(db)
	upcomingRepo := repositories.NewUpcomingEventRepository(db)
	newsRepo := repositories.NewNewsRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	contactRepo := repositories.NewContactSubmissionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	var notifier usecases.ContactNotifier = mail.NoopNotifier{}
	if cfg.Mail.Enabled() {
		notifier = mail.NewResendNotifier(cfg.Mail.ResendAPIKey, cfg.Mail.From, cfg.Mail.ContactInbox)
	}

	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, revoker)
	contactUsecase := usecases.NewContactUsecase(contactRepo, settingsRepo, notifier).
		WithNotifyTimeout(cfg.Mail.Timeout)
	seedUsecase := usecases.NewSeedUsecase(uow, boardRepo, pastRepo, upcomingRepo, newsRepo, galleryRepo)

	hash := cfg.Admin.PasswordHash
	if hash == "" {
		h, err := hashPassword(cfg.Admin.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		hash = h
	}
	if _, err := authUsecase.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Name, hash); err != nil {
		return nil, fmt.Errorf("failed to provision administrator: %w", err)
	}

	if cfg.Seed.OnStart {
		res, err := seedUsecase.Seed(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
		logger.Info(ctx, "Seed on start", zap.Bool("seeded", res.Seeded))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get generic database object: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewDBStatsCollector(sqlDB, cfg.Database.Driver))

	router := newRouter(cfg.Server.CORSOrigins, routeDeps{
		systemHandler:      handlers.NewSystemHandler(sqlDB),
		authHandler:        handlers.NewAuthHandler(authUsecase),
		boardMemberHandler: handlers.NewBoardMemberHandler(boardRepo),
		eventHandler:       handlers.NewEventHandler(pastRepo, upcomingRepo),
		newsHandler:        handlers.NewNewsHandler(newsRepo),
		galleryHandler:     handlers.NewGalleryHandler(galleryRepo),
		settingsHandler:    handlers.NewSettingsHandler(settingsRepo),
		contactHandler:     handlers.NewContactHandler(contactUsecase),
		seedHandler:        handlers.NewSeedHandler(seedUsecase),
		authMiddleware:     middleware.AuthMiddleware(authUsecase),
		metrics:            middleware.NewMetrics(reg),
	})

	return &application{
		router:  router,
		job:     jobs.NewRegistrationCloseJob(upcomingRepo, cfg.Jobs.RegistrationCloseSchedule),
		contact: contactUsecase,
	}, nil
}
