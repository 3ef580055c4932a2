package main

import (
	"github.com/gin-gonic/gin"
	"interact-club.backend/internal/interfaces/http/handlers"
	"interact-club.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	systemHandler      *handlers.SystemHandler
	authHandler        *handlers.AuthHandler
	boardMemberHandler *handlers.BoardMemberHandler
	eventHandler       *handlers.EventHandler
	newsHandler        *handlers.NewsHandler
	galleryHandler     *handlers.GalleryHandler
	settingsHandler    *handlers.SettingsHandler
	contactHandler     *handlers.ContactHandler
	seedHandler        *handlers.SeedHandler
	authMiddleware     gin.HandlerFunc
	metrics            *middleware.Metrics
}

func newRouter(cfgOrigins []string, d routeDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware(cfgOrigins))
	if d.metrics != nil {
		r.Use(d.metrics.Middleware())
	}

	registerSystemRoutes(r, d)
	registerAPIRoutes(r, d)
	return r
}

func registerSystemRoutes(r *gin.Engine, d routeDeps) {
	r.GET("/health", d.systemHandler.Health)
	if d.metrics != nil {
		r.GET("/metrics", gin.WrapH(d.metrics.Handler()))
	}
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		api.GET("/", d.systemHandler.Root)

		// Public routes
		api.POST("/auth/login", d.authHandler.Login)
		api.GET("/board-members", d.boardMemberHandler.ListBoardMembers)
		api.GET("/events/past", d.eventHandler.ListPastEvents)
		api.GET("/events/upcoming", d.eventHandler.ListUpcomingEvents)
		api.GET("/news", d.newsHandler.ListNews)
		api.GET("/gallery", d.galleryHandler.ListGallery)
		api.GET("/settings", d.settingsHandler.GetSettings)
		api.GET("/contact/info", d.contactHandler.GetInfo)
		api.POST("/contact/submit", d.contactHandler.Submit)

		// Administrator routes
		admin := api.Group("")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/auth/me", d.authHandler.Me)
			admin.POST("/auth/logout", d.authHandler.Logout)

			admin.POST("/board-members", d.boardMemberHandler.CreateBoardMember)
			admin.PUT("/board-members/:id", d.boardMemberHandler.UpdateBoardMember)
			admin.DELETE("/board-members/:id", d.boardMemberHandler.DeleteBoardMember)

			admin.POST("/events/past", d.eventHandler.CreatePastEvent)
			admin.PUT("/events/past/:id", d.eventHandler.UpdatePastEvent)
			admin.DELETE("/events/past/:id", d.eventHandler.DeletePastEvent)

			admin.POST("/events/upcoming", d.eventHandler.CreateUpcomingEvent)
			admin.PUT("/events/upcoming/:id", d.eventHandler.UpdateUpcomingEvent)
			admin.DELETE("/events/upcoming/:id", d.eventHandler.DeleteUpcomingEvent)

			admin.POST("/news", d.newsHandler.CreateNews)
			admin.PUT("/news/:id", d.newsHandler.UpdateNews)
			admin.DELETE("/news/:id", d.newsHandler.DeleteNews)

			admin.POST("/gallery", d.galleryHandler.CreateGalleryImage)
			admin.DELETE("/gallery/:id", d.galleryHandler.DeleteGalleryImage)

			admin.PUT("/settings", d.settingsHandler.UpdateSettings)

			admin.GET("/contact/submissions", d.contactHandler.ListSubmissions)
			admin.PUT("/contact/info", d.contactHandler.UpdateInfo)

			admin.POST("/seed-database", d.seedHandler.SeedDatabase)
		}
	}
}
