package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interact-club.backend/internal/config"
	plog "interact-club.backend/pkg/logger"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origRunServer := runServer
	origShutdownSignal := shutdownSignal
	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		runServer = origRunServer
		shutdownSignal = origShutdownSignal
	})

	loadDotenv = func(...string) error { return nil }
	initLog = plog.Init
	shutdownSignal = func() <-chan os.Signal { return make(chan os.Signal) }
}

func adminConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Env: "development"},
		AdminUI: config.AdminUIConfig{
			Port:            "13000",
			APIBaseURL:      "http://localhost:8000/api",
			SessionLifetime: time.Hour,
		},
	}
}

func TestRunMainProcess_ConfigError(t *testing.T) {
	withMainHooks(t)
	loadCfg = func() (*config.Config, error) { return nil, errors.New("bad env") }
	assert.EqualError(t, runMainProcess(), "bad env")
}

func TestRunMainProcess_InvalidConfig(t *testing.T) {
	withMainHooks(t)
	cfg := adminConfig()
	cfg.AdminUI.APITimeout = -time.Second
	loadCfg = func() (*config.Config, error) { return cfg, nil }

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRunMainProcess_RedisError(t *testing.T) {
	withMainHooks(t)
	cfg := adminConfig()
	cfg.Redis.URL = "redis://localhost:1"
	cfg.AdminUI.SessionKey = strings.Repeat("0", 64)
	loadCfg = func() (*config.Config, error) { return cfg, nil }
	initRedis = func(string, string) error { return errors.New("connection refused") }

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize redis")
}

func TestRunMainProcess_ServerResult(t *testing.T) {
	withMainHooks(t)
	loadCfg = func() (*config.Config, error) { return adminConfig(), nil }

	var addr string
	runServer = func(srv *http.Server) error {
		addr = srv.Addr
		return http.ErrServerClosed
	}
	require.NoError(t, runMainProcess())
	assert.Equal(t, ":13000", addr)

	runServer = func(*http.Server) error { return errors.New("address in use") }
	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address in use")
}

func TestBuildHandler(t *testing.T) {
	cfg := adminConfig()
	cfg.AdminUI.APITimeout = 2 * time.Second
	cfg.AdminUI.CSRFKey = strings.Repeat("ab", 32)

	h, err := buildHandler(cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/admin/login"))

	cfg.AdminUI.CSRFKey = "zz"
	_, err = buildHandler(cfg)
	assert.Error(t, err)
}
