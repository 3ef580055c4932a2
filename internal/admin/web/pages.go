package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"interact-club.backend/internal/admin/panel"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/pkg/apiclient"
)

type dashboardView struct {
	Stats *panel.Dashboard
	Error string
}

func (s *Server) dashboard(c *gin.Context) {
	c.Set("nav", "dashboard")
	d, err := panel.LoadDashboard(c.Request.Context(), s.client(c))
	if errors.Is(err, apiclient.ErrUnauthorized) {
		s.expire(c)
		return
	}
	v := dashboardView{Stats: d}
	if err != nil {
		s.fail(c, err)
		v.Error = apiclient.Message(err)
	}
	s.render(c, http.StatusOK, "dashboard", "Dashboard", v)
}

type settingsView struct {
	Fields     []panel.Field
	Error      string
	ErrorField string
}

func (s *Server) showSettings(c *gin.Context) {
	c.Set("nav", "settings")
	settings, err := s.client(c).GetSettings(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		if c.IsAborted() {
			return
		}
		s.flash(c, "error", apiclient.Message(err))
		c.Redirect(http.StatusSeeOther, homePath)
		return
	}
	s.render(c, http.StatusOK, "settings", "Site settings", settingsView{
		Fields: panel.SettingsFormFrom(settings).Fields(),
	})
}

func (s *Server) saveSettings(c *gin.Context) {
	c.Set("nav", "settings")
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}
	form := panel.ParseSettingsForm(c.Request.PostForm)
	err := form.Validate()
	if err == nil {
		_, err = s.client(c).UpdateSettings(c.Request.Context(), form.Input())
	}
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			s.expire(c)
			return
		}
		v := settingsView{Fields: form.Fields(), Error: apiclient.Message(err)}
		status := http.StatusUnprocessableEntity
		var fe *panel.FieldError
		if errors.As(err, &fe) {
			v.ErrorField = fe.Field
		} else if !errors.Is(err, apiclient.ErrValidation) {
			status = http.StatusBadGateway
			s.fail(c, err)
		}
		s.render(c, status, "settings", "Site settings", v)
		return
	}
	s.flash(c, "success", "Settings saved.")
	c.Redirect(http.StatusSeeOther, basePath+"/settings")
}

type contactView struct {
	Info        *entities.ContactInfo
	Submissions []*entities.ContactSubmission
	Error       string
}

func (s *Server) contact(c *gin.Context) {
	c.Set("nav", "contact")
	ctx := c.Request.Context()
	api := s.client(c)
	v := contactView{}
	subs, err := api.ListContactSubmissions(ctx)
	if err == nil {
		v.Submissions = subs
		v.Info, err = api.GetContactInfo(ctx)
	}
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			s.expire(c)
			return
		}
		s.fail(c, err)
		v.Error = apiclient.Message(err)
	}
	s.render(c, http.StatusOK, "contact", "Contact submissions", v)
}
