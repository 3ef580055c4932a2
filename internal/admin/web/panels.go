package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"interact-club.backend/internal/admin/panel"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/pkg/apiclient"
)

// panelDef binds a panel resource to its pages.
type panelDef[T any, F panel.Form] struct {
	name     string
	title    string
	singular string
	columns  []string
	row      func(T) []string
	build    func(api *apiclient.Client) panel.Resource[T, F]
	parse    func(url.Values) F
	// variants, when set, offers one "new" link per ?kind= value and
	// prepare applies the chosen kind to the empty form.
	variants []string
	prepare  func(form F, query url.Values) F
}

var boardMembersPanel = panelDef[*entities.BoardMember, panel.BoardMemberForm]{
	name:     "board-members",
	title:    "Board Members",
	singular: "Board member",
	columns:  []string{"Order", "Name", "Position", "Email"},
	row: func(m *entities.BoardMember) []string {
		return []string{strconv.Itoa(m.Order), m.Name, m.Position, m.Email}
	},
	build: func(api *apiclient.Client) panel.Resource[*entities.BoardMember, panel.BoardMemberForm] {
		return panel.BoardMembers{API: api}
	},
	parse: panel.ParseBoardMemberForm,
}

var eventsPanel = panelDef[panel.EventRow, panel.EventForm]{
	name:     "events",
	title:    "Events",
	singular: "Event",
	columns:  []string{"Type", "Title", "Date", "Registration"},
	row: func(r panel.EventRow) []string {
		reg := ""
		if r.Kind == panel.UpcomingEvent {
			reg = "closed"
			if r.Upcoming.RegistrationOpen {
				reg = "open"
			}
		}
		return []string{string(r.Kind), r.Title(), r.Date(), reg}
	},
	build: func(api *apiclient.Client) panel.Resource[panel.EventRow, panel.EventForm] {
		return panel.Events{API: api}
	},
	parse:    panel.ParseEventForm,
	variants: []string{string(panel.UpcomingEvent), string(panel.PastEvent)},
	prepare: func(f panel.EventForm, q url.Values) panel.EventForm {
		if panel.EventKind(q.Get("kind")) == panel.PastEvent {
			return panel.EventForm{Kind: panel.PastEvent}
		}
		return f
	},
}

var newsPanel = panelDef[*entities.NewsArticle, panel.NewsForm]{
	name:     "news",
	title:    "News",
	singular: "News article",
	columns:  []string{"Date", "Title", "Excerpt"},
	row: func(a *entities.NewsArticle) []string {
		return []string{a.Date, a.Title, a.Excerpt}
	},
	build: func(api *apiclient.Client) panel.Resource[*entities.NewsArticle, panel.NewsForm] {
		return panel.News{API: api}
	},
	parse: panel.ParseNewsForm,
}

var galleryPanel = panelDef[*entities.GalleryImage, panel.GalleryForm]{
	name:     "gallery",
	title:    "Gallery",
	singular: "Gallery image",
	columns:  []string{"Caption", "URL"},
	row: func(g *entities.GalleryImage) []string {
		return []string{g.Caption, g.URL}
	},
	build: func(api *apiclient.Client) panel.Resource[*entities.GalleryImage, panel.GalleryForm] {
		return panel.Gallery{API: api}
	},
	parse: panel.ParseGalleryForm,
}

type listRow struct {
	Key   string
	Cells []string
}

type listView struct {
	Name     string
	Variants []string
	Title    string
	Editable bool
	State    string
	Error    string
	Columns  []string
	Rows     []listRow
}

type formView struct {
	Name       string
	Title      string
	Action     string
	Editing    bool
	Fields     []panel.Field
	Error      string
	ErrorField string
}

type confirmView struct {
	Name   string
	Title  string
	Label  string
	Action string
}

// panelRequest is one panel instance serving one HTTP request.
type panelRequest[T any, F panel.Form] struct {
	*panel.Panel[T, F]
	expired bool
}

func registerPanel[T any, F panel.Form](g *gin.RouterGroup, s *Server, def panelDef[T, F]) {
	base := basePath + "/" + def.name
	open := func(c *gin.Context) *panelRequest[T, F] {
		c.Set("nav", def.name)
		pr := &panelRequest[T, F]{}
		pr.Panel = panel.New(def.build(s.client(c)), func() { pr.expired = true })
		return pr
	}
	itemPath := func(key string) string { return base + "/" + url.PathEscape(key) }

	// loadOrBail loads the list and reports whether the handler should go on.
	loadOrBail := func(c *gin.Context, pr *panelRequest[T, F]) bool {
		err := pr.Load(c.Request.Context())
		if pr.expired {
			s.expire(c)
			return false
		}
		if err != nil {
			s.fail(c, err)
			s.flash(c, "error", apiclient.Message(err))
			c.Redirect(http.StatusSeeOther, homePath)
			return false
		}
		return true
	}

	renderForm := func(c *gin.Context, status int, action string, f *panel.OpenForm[F]) {
		v := formView{
			Name: def.name, Title: def.title, Action: action,
			Editing: f.Mode == panel.Editing, Fields: f.Values.Fields(),
		}
		if f.Err != nil {
			v.Error = apiclient.Message(f.Err)
			var fe *panel.FieldError
			if errors.As(f.Err, &fe) {
				v.ErrorField = fe.Field
			}
		}
		verb := "New "
		if v.Editing {
			verb = "Edit "
		}
		s.render(c, status, "form", verb+def.singular, v)
	}

	// submit runs a write behind the per-session in-flight guard.
	submit := func(c *gin.Context, pr *panelRequest[T, F], action string) {
		key := s.session(c).Token() + "|" + def.name
		if !s.inflight.begin(key) {
			s.flash(c, "error", "A previous change is still being saved.")
			c.Redirect(http.StatusSeeOther, base)
			return
		}
		defer s.inflight.end(key)

		if err := c.Request.ParseForm(); err != nil {
			c.String(http.StatusBadRequest, "invalid form")
			return
		}
		err := pr.Submit(c.Request.Context(), def.parse(c.Request.PostForm))
		if pr.expired {
			s.expire(c)
			return
		}
		if err != nil {
			status := http.StatusUnprocessableEntity
			var fe *panel.FieldError
			if !errors.As(err, &fe) && !errors.Is(err, apiclient.ErrValidation) {
				status = http.StatusBadGateway
				s.fail(c, err)
			}
			renderForm(c, status, action, pr.Form())
			return
		}
		verb := " created."
		if action != base {
			verb = " updated."
		}
		s.flash(c, "success", def.singular+verb)
		c.Redirect(http.StatusSeeOther, base)
	}

	// openEdit loads the list and opens the record in c's :id.
	openEdit := func(c *gin.Context, pr *panelRequest[T, F]) bool {
		if !pr.Editable() {
			c.Status(http.StatusNotFound)
			return false
		}
		if !loadOrBail(c, pr) {
			return false
		}
		if _, err := pr.OpenEdit(c.Param("id")); err != nil {
			s.flash(c, "error", "That record no longer exists.")
			c.Redirect(http.StatusSeeOther, base)
			return false
		}
		return true
	}

	g.GET("/"+def.name, func(c *gin.Context) {
		pr := open(c)
		err := pr.Load(c.Request.Context())
		if pr.expired {
			s.expire(c)
			return
		}
		v := listView{
			Name: def.name, Title: def.title, Editable: pr.Editable(), Variants: def.variants,
			State: pr.State().String(), Columns: def.columns,
		}
		if err != nil {
			s.fail(c, err)
			v.Error = apiclient.Message(err)
		}
		for _, it := range pr.Items() {
			v.Rows = append(v.Rows, listRow{Key: url.PathEscape(pr.Key(it)), Cells: def.row(it)})
		}
		s.render(c, http.StatusOK, "list", def.title, v)
	})

	g.GET("/"+def.name+"/new", func(c *gin.Context) {
		pr := open(c)
		f := pr.OpenCreate()
		if def.prepare != nil {
			f = def.prepare(f, c.Request.URL.Query())
		}
		renderForm(c, http.StatusOK, base, &panel.OpenForm[F]{Mode: panel.Creating, Values: f})
	})

	g.POST("/"+def.name, func(c *gin.Context) {
		pr := open(c)
		pr.OpenCreate()
		submit(c, pr, base)
	})

	g.GET("/"+def.name+"/:id/edit", func(c *gin.Context) {
		pr := open(c)
		if !openEdit(c, pr) {
			return
		}
		renderForm(c, http.StatusOK, itemPath(c.Param("id")), pr.Form())
	})

	g.POST("/"+def.name+"/:id", func(c *gin.Context) {
		pr := open(c)
		if !openEdit(c, pr) {
			return
		}
		submit(c, pr, itemPath(c.Param("id")))
	})

	g.GET("/"+def.name+"/:id/delete", func(c *gin.Context) {
		pr := open(c)
		if !loadOrBail(c, pr) {
			return
		}
		it, ok := pr.Find(c.Param("id"))
		if !ok {
			s.flash(c, "error", "That record no longer exists.")
			c.Redirect(http.StatusSeeOther, base)
			return
		}
		s.render(c, http.StatusOK, "confirm", "Delete "+def.singular, confirmView{
			Name: def.name, Title: def.title, Label: def.row(it)[0] + " " + def.row(it)[1],
			Action: itemPath(c.Param("id")) + "/delete",
		})
	})

	g.POST("/"+def.name+"/:id/delete", func(c *gin.Context) {
		pr := open(c)
		key := s.session(c).Token() + "|" + def.name
		if !s.inflight.begin(key) {
			s.flash(c, "error", "A previous change is still being saved.")
			c.Redirect(http.StatusSeeOther, base)
			return
		}
		defer s.inflight.end(key)

		if !loadOrBail(c, pr) {
			return
		}
		if err := pr.RequestDelete(c.Param("id")); err != nil {
			s.flash(c, "error", "That record no longer exists.")
			c.Redirect(http.StatusSeeOther, base)
			return
		}
		err := pr.ConfirmDelete(c.Request.Context())
		if pr.expired {
			s.expire(c)
			return
		}
		if err != nil {
			s.fail(c, err)
			s.flash(c, "error", apiclient.Message(err))
		} else {
			s.flash(c, "success", def.singular+" deleted.")
		}
		c.Redirect(http.StatusSeeOther, base)
	})
}
