// Package guard decides whether an admin page may be shown for the current
// session.
package guard

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"interact-club.backend/internal/admin/session"
)

type Outcome int

const (
	Admit Outcome = iota
	Redirect
)

// Decision is the result of Decide. Location is set for Redirect.
type Decision struct {
	Outcome  Outcome
	Location string
}

// Decide admits an active session and redirects anything else to
// loginPath. It only reads local state; a stale token is admitted.
func Decide(s session.Reader, loginPath string) Decision {
	if s != nil && s.IsActive() {
		return Decision{Outcome: Admit}
	}
	return Decision{Outcome: Redirect, Location: loginPath}
}

// Require applies Decide to every request. The original path is passed to
// the login page as ?next= for GET requests.
func Require(sessionFor func(c *gin.Context) session.Reader, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := Decide(sessionFor(c), loginPath)
		if d.Outcome == Admit {
			c.Next()
			return
		}
		location := d.Location
		if c.Request.Method == http.MethodGet {
			location += "?" + url.Values{"next": {c.Request.URL.RequestURI()}}.Encode()
		}
		c.Redirect(http.StatusSeeOther, location)
		c.Abort()
	}
}
