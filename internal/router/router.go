package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	AddParticipant(c *ginext.Context)
	ValidatePassword(c *ginext.Context)
	ToggleConfirmation(c *ginext.Context)
	ExportICal(c *ginext.Context)
	CalendarLinks(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)

		// Participants
		api.POST("/events/:id/participants", h.AddParticipant)

		// Password sessions
		api.POST("/events/:id/validate-password", h.ValidatePassword)

		// Confirmation and export
		api.POST("/events/:id/confirm", h.ToggleConfirmation)
		api.GET("/events/:id/ical", h.ExportICal)
		api.GET("/events/:id/calendar-links", h.CalendarLinks)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
