package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"interact-club.backend/pkg/apiclient"
	"interact-club.backend/pkg/logger"
)

type loginView struct {
	Email string
	Next  string
	Error string
}

// safeNext keeps post-login redirects inside the admin area.
func safeNext(next string) string {
	if strings.HasPrefix(next, basePath+"/") && !strings.HasPrefix(next, "//") && !strings.Contains(next, "\\") &&
		!strings.HasPrefix(next, loginPath) {
		return next
	}
	return homePath
}

func (s *Server) showLogin(c *gin.Context) {
	if s.session(c).IsActive() {
		c.Redirect(http.StatusSeeOther, safeNext(c.Query("next")))
		return
	}
	s.render(c, http.StatusOK, "login", "Sign in", loginView{Next: c.Query("next")})
}

func (s *Server) login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	next := c.PostForm("next")
	view := loginView{Email: email, Next: next}

	if email == "" || password == "" {
		view.Error = "Email and password are required."
		s.render(c, http.StatusUnprocessableEntity, "login", "Sign in", view)
		return
	}

	ctx := c.Request.Context()
	user, err := s.session(c).Login(ctx, email, password)
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, apiclient.ErrInvalidCredentials):
			status = http.StatusUnauthorized
			view.Error = "Invalid email or password."
		default:
			view.Error = apiclient.Message(err)
			logger.Warn(ctx, "Admin login failed", zap.String("email", email), zap.Error(err))
		}
		s.render(c, status, "login", "Sign in", view)
		return
	}

	if err := s.sm.RenewToken(ctx); err != nil {
		logger.Error(ctx, "Failed to renew session token", zap.Error(err))
	}
	logger.Info(ctx, "Admin signed in", zap.String("email", user.Email))
	s.flash(c, "success", "Welcome back, "+user.Name+".")
	c.Redirect(http.StatusSeeOther, safeNext(next))
}

func (s *Server) logout(c *gin.Context) {
	ctx := c.Request.Context()
	s.session(c).Logout(ctx)
	if err := s.sm.RenewToken(ctx); err != nil {
		logger.Error(ctx, "Failed to renew session token", zap.Error(err))
	}
	s.flash(c, "success", "You have been signed out.")
	c.Redirect(http.StatusSeeOther, loginPath)
}
