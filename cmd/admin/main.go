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
	"go.uber.org/zap"

	"interact-club.backend/internal/admin/web"
	"interact-club.backend/internal/config"
	"interact-club.backend/pkg/apiclient"
	"interact-club.backend/pkg/logger"
	"interact-club.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv     = godotenv.Load
	loadCfg        = config.Load
	initLog        = logger.Init
	initRedis      = redis.Init
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
	if err := cfg.ValidateAdminUI(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := logger.WithService(context.Background(), "admin")

	if cfg.Redis.Enabled() {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer redis.Close()
		logger.Info(ctx, "Admin sessions stored in Redis")
	} else {
		logger.Warn(ctx, "REDIS_URL not set, admin sessions are kept in memory")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	handler, err := buildHandler(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AdminUI.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-shutdownSignal()
		logger.Info(context.Background(), "Shutting down admin panel")
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "Admin panel shutdown failed", zap.Error(err))
		}
	}()

	logger.Info(ctx, "Admin panel starting",
		zap.String("port", cfg.AdminUI.Port),
		zap.String("api", cfg.AdminUI.APIBaseURL),
	)
	if err := runServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start admin panel: %w", err)
	}
	return nil
}

func buildHandler(cfg *config.Config) (http.Handler, error) {
	var opts []apiclient.Option
	if cfg.AdminUI.APITimeout > 0 {
		opts = append(opts, apiclient.WithTimeout(cfg.AdminUI.APITimeout))
	}
	api := apiclient.New(cfg.AdminUI.APIBaseURL, opts...)

	sessions, err := web.NewSessionManager(cfg.AdminUI)
	if err != nil {
		return nil, fmt.Errorf("failed to configure sessions: %w", err)
	}
	csrfKey, err := cfg.AdminUI.CSRFKeyBytes()
	if err != nil {
		return nil, err
	}
	if csrfKey == nil {
		logger.Warn(context.Background(), "ADMIN_CSRF_KEY not set, forms will expire on restart")
	}

	s, err := web.New(web.Options{
		API:      api,
		Sessions: sessions,
		CSRFKey:  csrfKey,
		Secure:   cfg.AdminUI.CookieSecure,
	})
	if err != nil {
		return nil, err
	}
	return s.Handler(), nil
}
