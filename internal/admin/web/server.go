// Package web serves the admin panel as server-rendered HTML on top of the
// API client.
package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	"interact-club.backend/internal/admin/guard"
	"interact-club.backend/internal/admin/session"
	"interact-club.backend/internal/config"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/internal/interfaces/http/middleware"
	"interact-club.backend/pkg/apiclient"
	"interact-club.backend/pkg/crypto"
	"interact-club.backend/pkg/logger"
	"interact-club.backend/pkg/redis"
)

const (
	basePath   = "/admin"
	loginPath  = basePath + "/login"
	homePath   = basePath + "/dashboard"
	csrfField  = "csrf_token"
	flashKey   = "flash"
	flashType  = "flash_type"
	expiredMsg = "Your session has expired. Please log in again."
)

//go:embed templates/*.html
var templateFS embed.FS

type Options struct {
	API      *apiclient.Client
	Sessions *scs.SessionManager
	// CSRFKey must be 32 bytes. A random key is generated when empty.
	CSRFKey []byte
	Secure  bool
}

// Server is the admin web application.
type Server struct {
	api      *apiclient.Client
	sm       *scs.SessionManager
	pages    map[string]*template.Template
	inflight *inflight
	engine   *gin.Engine
	handler  http.Handler
}

// NewSessionManager configures browser sessions. Sessions live in Redis
// when a client is configured and in process memory otherwise.
func NewSessionManager(cfg config.AdminUIConfig) (*scs.SessionManager, error) {
	sm := scs.New()
	sm.Lifetime = cfg.SessionLifetime
	sm.Cookie.Name = "interact_admin"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = cfg.CookieSecure
	sm.Cookie.Path = "/"

	if redis.Enabled() {
		store, err := redis.NewSessionStore(cfg.SessionKey)
		if err != nil {
			return nil, err
		}
		sm.Store = store
	}
	return sm, nil
}

func New(opts Options) (*Server, error) {
	if opts.API == nil || opts.Sessions == nil {
		return nil, errors.New("web: API client and session manager are required")
	}
	key := opts.CSRFKey
	if len(key) == 0 {
		var err error
		if key, err = crypto.RandomBytes(32); err != nil {
			return nil, err
		}
	}
	if len(key) != 32 {
		return nil, errors.New("web: CSRF key must be 32 bytes")
	}

	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	s := &Server{
		api:      opts.API,
		sm:       opts.Sessions,
		pages:    pages,
		inflight: newInflight(),
	}
	s.engine = s.routes()

	protect := csrf.Protect(key,
		csrf.Secure(opts.Secure),
		csrf.Path("/"),
		csrf.FieldName(csrfField),
		csrf.ErrorHandler(http.HandlerFunc(csrfFailure)),
	)
	h := protect(s.engine)
	if !opts.Secure {
		h = plaintext(h)
	}
	s.handler = s.sm.LoadAndSave(h)
	return s, nil
}

// Handler returns the full middleware stack.
func (s *Server) Handler() http.Handler { return s.handler }

// plaintext marks requests as served over HTTP so CSRF checks do not demand
// a TLS Referer.
func plaintext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}

func csrfFailure(w http.ResponseWriter, r *http.Request) {
	logger.Warn(r.Context(), "CSRF check failed", zap.String("path", r.URL.Path), zap.Error(csrf.FailureReason(r)))
	http.Error(w, "Forbidden - the form has expired, please reload the page", http.StatusForbidden)
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, homePath) })
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	admin := r.Group(basePath)
	admin.GET("/login", s.showLogin)
	admin.POST("/login", s.login)

	authed := admin.Group("")
	authed.Use(guard.Require(func(c *gin.Context) session.Reader { return s.session(c) }, loginPath))
	authed.GET("", func(c *gin.Context) { c.Redirect(http.StatusFound, homePath) })
	authed.POST("/logout", s.logout)
	authed.GET("/dashboard", s.dashboard)
	authed.GET("/settings", s.showSettings)
	authed.POST("/settings", s.saveSettings)
	authed.GET("/contact", s.contact)

	registerPanel(authed, s, boardMembersPanel)
	registerPanel(authed, s, eventsPanel)
	registerPanel(authed, s, newsPanel)
	registerPanel(authed, s, galleryPanel)
	return r
}

// client returns an API client bound to the browser session's token.
func (s *Server) client(c *gin.Context) *apiclient.Client {
	return s.api.For(session.Tokens(session.NewScsStorage(s.sm, c.Request.Context())))
}

func (s *Server) session(c *gin.Context) *session.Context {
	ctx := c.Request.Context()
	return session.New(session.NewScsStorage(s.sm, ctx), s.client(c))
}

func (s *Server) flash(c *gin.Context, kind, msg string) {
	ctx := c.Request.Context()
	s.sm.Put(ctx, flashKey, msg)
	s.sm.Put(ctx, flashType, kind)
}

// expire drops the local session after the API rejected its token and
// sends the browser to the login page.
func (s *Server) expire(c *gin.Context) {
	s.session(c).Clear()
	s.flash(c, "error", expiredMsg)
	c.Redirect(http.StatusSeeOther, loginPath)
	c.Abort()
}

func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, apiclient.ErrUnauthorized) {
		s.expire(c)
		return
	}
	logger.Error(c.Request.Context(), "Admin request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
}

type pageData struct {
	Title     string
	Nav       string
	User      *entities.UserProfile
	Flash     string
	FlashType string
	CSRFField string
	CSRFToken string
	Data      any
}

func (s *Server) render(c *gin.Context, status int, page, title string, data any) {
	ctx := c.Request.Context()
	pd := pageData{
		Title:     title,
		Nav:       c.GetString("nav"),
		User:      s.session(c).CurrentUser(),
		CSRFField: csrfField,
		CSRFToken: csrf.Token(c.Request),
		Data:      data,
	}
	if msg := s.sm.PopString(ctx, flashKey); msg != "" {
		pd.Flash = msg
		pd.FlashType = s.sm.PopString(ctx, flashType)
	}

	tmpl, ok := s.pages[page]
	if !ok {
		c.String(http.StatusInternalServerError, "unknown page %q", page)
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Header("Cache-Control", "no-store")
	c.Status(status)
	if err := tmpl.ExecuteTemplate(c.Writer, "layout", pd); err != nil {
		logger.Error(ctx, "Failed to render page", zap.String("page", page), zap.Error(err))
	}
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006 15:04")
	},
}

func parsePages() (map[string]*template.Template, error) {
	names := []string{"login", "dashboard", "settings", "contact", "list", "form", "confirm"}
	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, err
		}
		pages[name] = t
	}
	return pages, nil
}

// inflight allows one write per session and panel at a time.
type inflight struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func newInflight() *inflight {
	return &inflight{busy: map[string]struct{}{}}
}

func (f *inflight) begin(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.busy[key]; ok {
		return false
	}
	f.busy[key] = struct{}{}
	return true
}

func (f *inflight) end(key string) {
	f.mu.Lock()
	delete(f.busy, key)
	f.mu.Unlock()
}
