package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"interact-club.backend/internal/config"
	plog "interact-club.backend/pkg/logger"
)

var dbSeq atomic.Int64

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origOpenDB := openDB
	origHashPassword := hashPassword
	origRunServer := runServer
	origShutdownSignal := shutdownSignal

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		openDB = origOpenDB
		hashPassword = origHashPassword
		runServer = origRunServer
		shutdownSignal = origShutdownSignal
	})

	loadDotenv = func(...string) error { return nil }
	initLog = plog.Init
	openDB = memoryDB
	shutdownSignal = func() <-chan os.Signal { return make(chan os.Signal) }
}

func memoryDB(config.DatabaseConfig, string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:main_%d_%d?mode=memory&cache=shared", time.Now().UnixNano(), dbSeq.Add(1))
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

func baseTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:        "18080",
			Env:         "development",
			CORSOrigins: []string{"*"},
		},
		Database: config.DatabaseConfig{Driver: "sqlite"},
		JWT: config.JWTConfig{
			Secret:       "secret",
			AccessExpiry: time.Hour,
		},
		Admin: config.AdminConfig{
			Email:    "admin@interactkop.com",
			Name:     "Administrator",
			Password: "club-secret",
		},
	}
}

func loadConfig(cfg *config.Config) func() (*config.Config, error) {
	return func() (*config.Config, error) { return cfg, nil }
}

func TestRunMainProcess_ConfigLoadError(t *testing.T) {
	withMainHooks(t)
	loadCfg = func() (*config.Config, error) { return nil, errors.New("bad env") }

	require.Error(t, runMainProcess())
}

func TestRunMainProcess_InvalidConfig(t *testing.T) {
	withMainHooks(t)
	cfg := baseTestConfig()
	cfg.Admin.Password = ""
	loadCfg = loadConfig(cfg)

	err := runMainProcess()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ADMIN_PASSWORD")
}

func TestRunMainProcess_RedisInitError(t *testing.T) {
	withMainHooks(t)
	cfg := baseTestConfig()
	cfg.Redis.URL = "redis://localhost:6379"
	loadCfg = loadConfig(cfg)
	initRedis = func(string, string) error { return errors.New("redis down") }

	require.ErrorContains(t, runMainProcess(), "redis down")
}

func TestRunMainProcess_RedisSkippedWhenUnset(t *testing.T) {
	withMainHooks(t)
	loadCfg = loadConfig(baseTestConfig())
	initRedis = func(string, string) error {
		t.Fatal("redis must not be initialized without REDIS_URL")
		return nil
	}
	runServer = func(*http.Server) error { return http.ErrServerClosed }

	require.NoError(t, runMainProcess())
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)
	loadCfg = loadConfig(baseTestConfig())
	openDB = func(config.DatabaseConfig, string) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	require.ErrorContains(t, runMainProcess(), "db open failed")
}

func TestRunMainProcess_HashError(t *testing.T) {
	withMainHooks(t)
	loadCfg = loadConfig(baseTestConfig())
	hashPassword = func(string) (string, error) { return "", errors.New("entropy") }

	require.ErrorContains(t, runMainProcess(), "admin password")
}

func TestRunMainProcess_InvalidSchedule(t *testing.T) {
	withMainHooks(t)
	cfg := baseTestConfig()
	cfg.Jobs.RegistrationCloseSchedule = "every now and then"
	loadCfg = loadConfig(cfg)

	require.ErrorContains(t, runMainProcess(), "schedule")
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)
	loadCfg = loadConfig(baseTestConfig())
	runServer = func(*http.Server) error { return errors.New("listen failed") }

	require.ErrorContains(t, runMainProcess(), "listen failed")
}

func TestRunMainProcess_GracefulShutdown(t *testing.T) {
	withMainHooks(t)
	cfg := baseTestConfig()
	cfg.Seed.OnStart = true
	loadCfg = loadConfig(cfg)

	quit := make(chan os.Signal, 1)
	shutdownSignal = func() <-chan os.Signal { return quit }

	var addr string
	runServer = func(srv *http.Server) error {
		addr = srv.Addr
		require.NotNil(t, srv.Handler)
		stopped := make(chan struct{})
		srv.RegisterOnShutdown(func() { close(stopped) })
		quit <- os.Interrupt
		select {
		case <-stopped:
			return http.ErrServerClosed
		case <-time.After(2 * time.Second):
			return errors.New("server was not shut down")
		}
	}

	require.NoError(t, runMainProcess())
	require.True(t, strings.HasSuffix(addr, ":18080"))
}

func TestBuildApp_ExistingHashIsUsed(t *testing.T) {
	withMainHooks(t)
	hashPassword = func(string) (string, error) {
		t.Fatal("hash must not be recomputed")
		return "", nil
	}
	cfg := baseTestConfig()
	cfg.Admin.Password = ""
	cfg.Admin.PasswordHash = "$2a$04$abcdefghijklmnopqrstuuJ8Q5Q2v5h5Xo8v1YqM1m0m0m0m0m0m0"

	db := newMigratedDB(t)
	app, err := buildApp(context.Background(), cfg, db, nil)
	require.NoError(t, err)
	require.NotNil(t, app.router)
}
