package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"interact-club.backend/internal/infrastructure/datasources"
	"interact-club.backend/internal/interfaces/http/handlers"
)

func newMigratedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := memoryDB(baseTestConfig().Database, "test")
	require.NoError(t, err)
	require.NoError(t, datasources.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newTestApp(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := buildApp(context.Background(), baseTestConfig(), newMigratedDB(t), nil)
	require.NoError(t, err)
	t.Cleanup(app.contact.Wait)
	return app.router
}

func call(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, h http.Handler) string {
	t.Helper()
	w := call(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "Admin@InteractKop.com", "password": "club-secret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterAPIRoutes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerAPIRoutes(r, routeDeps{
		systemHandler:      &handlers.SystemHandler{},
		authHandler:        &handlers.AuthHandler{},
		boardMemberHandler: &handlers.BoardMemberHandler{},
		eventHandler:       &handlers.EventHandler{},
		newsHandler:        &handlers.NewsHandler{},
		galleryHandler:     &handlers.GalleryHandler{},
		settingsHandler:    &handlers.SettingsHandler{},
		contactHandler:     &handlers.ContactHandler{},
		seedHandler:        &handlers.SeedHandler{},
		authMiddleware:     func(c *gin.Context) { c.Next() },
	})

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"GET /api/",
		"POST /api/auth/login",
		"GET /api/auth/me",
		"POST /api/auth/logout",
		"GET /api/board-members",
		"POST /api/board-members",
		"PUT /api/board-members/:id",
		"DELETE /api/board-members/:id",
		"GET /api/events/past",
		"POST /api/events/past",
		"PUT /api/events/past/:id",
		"DELETE /api/events/past/:id",
		"GET /api/events/upcoming",
		"POST /api/events/upcoming",
		"PUT /api/events/upcoming/:id",
		"DELETE /api/events/upcoming/:id",
		"GET /api/news",
		"POST /api/news",
		"PUT /api/news/:id",
		"DELETE /api/news/:id",
		"GET /api/gallery",
		"POST /api/gallery",
		"DELETE /api/gallery/:id",
		"GET /api/settings",
		"PUT /api/settings",
		"POST /api/contact/submit",
		"GET /api/contact/submissions",
		"GET /api/contact/info",
		"PUT /api/contact/info",
		"POST /api/seed-database",
	} {
		require.True(t, registered[want], "missing route %s", want)
	}
}

func TestRouter_PublicAndSystemRoutes(t *testing.T) {
	h := newTestApp(t)

	w := call(t, h, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = call(t, h, http.MethodGet, "/api/", "", nil)
	require.JSONEq(t, `{"message":"Interact Club of Kolhapur API","version":"1.0.0"}`, w.Body.String())

	w = call(t, h, http.MethodGet, "/api/board-members", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	w = call(t, h, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "http_requests_total")
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	h := newTestApp(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/board-members"},
		{http.MethodPut, "/api/settings"},
		{http.MethodGet, "/api/contact/submissions"},
		{http.MethodPost, "/api/seed-database"},
	} {
		w := call(t, h, tc.method, tc.path, "", map[string]string{})
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}

	w := call(t, h, http.MethodPost, "/api/board-members", "not-a-jwt", map[string]interface{}{
		"name": "Intruder", "position": "None",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = call(t, h, http.MethodGet, "/api/board-members", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	w = call(t, h, http.MethodGet, "/api/auth/me", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AdminFlow(t *testing.T) {
	h := newTestApp(t)
	token := login(t, h)

	w := call(t, h, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"email":"admin@interactkop.com"`)

	w = call(t, h, http.MethodPost, "/api/board-members", token, map[string]interface{}{
		"name": "Itr. Test User", "position": "Treasurer", "email": "t@example.com",
		"image": "https://x/y.png", "order": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = call(t, h, http.MethodGet, "/api/board-members", "", nil)
	var members []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	require.Len(t, members, 1)
	require.Equal(t, "Treasurer", members[0]["position"])

	w = call(t, h, http.MethodPost, "/api/seed-database", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Skipping seed")

	w = call(t, h, http.MethodPost, "/api/contact/submit", "", map[string]string{
		"name": "Asha", "email": "asha@example.com", "subject": "Join", "message": "How do I join?",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = call(t, h, http.MethodGet, "/api/contact/submissions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "How do I join?")

	w = call(t, h, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_SeedOnEmptyDatabase(t *testing.T) {
	h := newTestApp(t)
	token := login(t, h)

	w := call(t, h, http.MethodPost, "/api/seed-database", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Database seeded successfully")

	w = call(t, h, http.MethodGet, "/api/board-members", "", nil)
	var members []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	require.Len(t, members, 13)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newTestApp(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/news", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_DefaultConfigKeepsRegistrationOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := buildApp(context.Background(), baseTestConfig(), newMigratedDB(t), nil)
	require.NoError(t, err)
	t.Cleanup(app.contact.Wait)
	token := login(t, app.router)

	w := call(t, app.router, http.MethodPost, "/api/events/upcoming", token, map[string]interface{}{
		"title": "Old Drive", "date": "2020-01-01", "time": "10:00 AM", "venue": "Hall",
		"description": "Blood donation", "registration_open": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	require.False(t, app.job.Enabled())
	require.NoError(t, app.job.Start(context.Background()))
	app.job.Stop()

	w = call(t, app.router, http.MethodGet, "/api/events/upcoming", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events []struct {
		Title            string `json:"title"`
		RegistrationOpen bool   `json:"registration_open"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	require.True(t, events[0].RegistrationOpen)
}
