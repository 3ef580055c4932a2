package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"interact-club.backend/internal/domain/entities"
)

const (
	adminEmail    = "admin@interactkop.com"
	adminPassword = "club-secret"
)

// backend is a small in-memory stand-in for the club API.
type backend struct {
	mu          sync.Mutex
	tokens      map[string]bool
	issued      int
	board       []*entities.BoardMember
	upcoming    []*entities.UpcomingEvent
	settings    entities.SiteSettings
	logoutCalls int
}

func newBackend(t *testing.T) (*backend, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	b := &backend{tokens: map[string]bool{}, settings: *entities.DefaultSiteSettings()}

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/login", b.login)
	api.GET("/settings", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, b.settings)
	})

	authed := api.Group("", b.requireToken)
	authed.POST("/auth/logout", func(c *gin.Context) {
		b.mu.Lock()
		b.logoutCalls++
		delete(b.tokens, bearer(c))
		b.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	})
	authed.GET("/board-members", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, b.board)
	})
	authed.POST("/board-members", func(c *gin.Context) {
		var in entities.CreateBoardMemberInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": err.Error()})
			return
		}
		if err := in.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": err.Error()})
			return
		}
		m := &entities.BoardMember{ID: uuid.New(), Name: in.Name, Position: in.Position, Email: in.Email, Image: in.Image, Order: in.Order}
		b.mu.Lock()
		b.board = append(b.board, m)
		b.mu.Unlock()
		c.JSON(http.StatusCreated, m)
	})
	authed.PUT("/board-members/:id", func(c *gin.Context) {
		var in entities.UpdateBoardMemberInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": err.Error()})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, m := range b.board {
			if m.ID.String() == c.Param("id") {
				in.Apply(m)
				c.JSON(http.StatusOK, m)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "message": "Board member not found"})
	})
	authed.DELETE("/board-members/:id", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, m := range b.board {
			if m.ID.String() == c.Param("id") {
				b.board = append(b.board[:i], b.board[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"message": "Board member deleted"})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "message": "Board member not found"})
	})
	authed.GET("/events/past", func(c *gin.Context) { c.JSON(http.StatusOK, []*entities.PastEvent{}) })
	authed.GET("/events/upcoming", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, b.upcoming)
	})
	authed.GET("/news", func(c *gin.Context) { c.JSON(http.StatusOK, []*entities.NewsArticle{}) })
	authed.GET("/gallery", func(c *gin.Context) { c.JSON(http.StatusOK, []*entities.GalleryImage{}) })
	authed.PUT("/settings", func(c *gin.Context) {
		var in entities.UpdateSiteSettingsInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": err.Error()})
			return
		}
		if err := in.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": err.Error()})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		in.Apply(&b.settings)
		c.JSON(http.StatusOK, b.settings)
	})
	authed.GET("/contact/submissions", func(c *gin.Context) {
		c.JSON(http.StatusOK, []*entities.ContactSubmission{{
			ID: uuid.New(), Name: "Meera", Email: "meera@example.com", Subject: "Joining",
			Message: "How do I join?", Status: entities.ContactStatusNew, CreatedAt: time.Now(),
		}})
	})
	authed.GET("/contact/info", func(c *gin.Context) { c.JSON(http.StatusOK, entities.DefaultContactInfo()) })

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return b, srv
}

func bearer(c *gin.Context) string {
	return strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
}

func (b *backend) requireToken(c *gin.Context) {
	b.mu.Lock()
	ok := b.tokens[bearer(c)]
	b.mu.Unlock()
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "Invalid or expired token"})
		return
	}
	c.Next()
}

func (b *backend) login(c *gin.Context) {
	var in entities.LoginInput
	_ = c.ShouldBindJSON(&in)
	if in.Email != adminEmail || in.Password != adminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_CREDENTIALS", "message": "Invalid email or password"})
		return
	}
	b.mu.Lock()
	b.issued++
	tok := "tok-" + uuid.NewString()
	b.tokens[tok] = true
	b.mu.Unlock()
	c.JSON(http.StatusOK, entities.AuthResponse{
		Token: tok,
		User:  &entities.UserProfile{ID: uuid.New(), Name: "Club Admin", Email: adminEmail},
	})
}

// revokeAll simulates every issued token expiring.
func (b *backend) revokeAll() {
	b.mu.Lock()
	b.tokens = map[string]bool{}
	b.mu.Unlock()
}
