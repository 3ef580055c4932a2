package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/internal/domain/repositories"
	"interact-club.backend/internal/interfaces/http/response"
)

// EventHandler serves both past and upcoming events.
type EventHandler struct {
	past     repositories.PastEventRepository
	upcoming repositories.UpcomingEventRepository
}

func NewEventHandler(past repositories.PastEventRepository, upcoming repositories.UpcomingEventRepository) *EventHandler {
	return &EventHandler{past: past, upcoming: upcoming}
}

// GET /api/events/past
func (h *EventHandler) ListPastEvents(c *gin.Context) {
	items, err := h.past.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// POST /api/events/past
func (h *EventHandler) CreatePastEvent(c *gin.Context) {
	var input entities.CreatePastEventInput
	if !bindJSON(c, &input) || !validateInput(c, &input) {
		return
	}

	event := &entities.PastEvent{
		Title:       input.Title,
		Date:        input.Date,
		Description: input.Description,
		Images:      input.Images,
	}
	if err := h.past.Create(c.Request.Context(), event); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, event)
}

// PUT /api/events/past/:id
func (h *EventHandler) UpdatePastEvent(c *gin.Context) {
	id, ok := pathID(c, "event")
	if !ok {
		return
	}
	var input entities.UpdatePastEventInput
	if !bindJSON(c, &input) || !validateInput(c, &input) {
		return
	}

	ctx := c.Request.Context()
	event, err := h.past.GetByID(ctx, id)
	if err != nil {
		response.Error(c, notFoundAs(err, "Past event not found"))
		return
	}
	input.Apply(event)
	if err := h.past.Update(ctx, event); err != nil {
		response.Error(c, notFoundAs(err, "Past event not found"))
		return
	}
	response.Success(c, http.StatusOK, event)
}

// DELETE /api/events/past/:id
func (h *EventHandler) DeletePastEvent(c *gin.Context) {
	id, ok := pathID(c, "event")
	if !ok {
		return
	}
	if err := h.past.SoftDelete(c.Request.Context(), id); err != nil {
		response.Error(c, notFoundAs(err, "Past event not found"))
		return
	}
	response.Message(c, http.StatusOK, "Past event deleted successfully")
}

// GET /api/events/upcoming
func (h *EventHandler) ListUpcomingEvents(c *gin.Context) {
	items, err := h.upcoming.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// POST /api/events/upcoming
func (h *EventHandler) CreateUpcomingEvent(c *gin.Context) {
	var input entities.CreateUpcomingEventInput
	if !bindJSON(c, &input) || !validateInput(c, &input) {
		return
	}

	event := &entities.UpcomingEvent{
		Title:            input.Title,
		Date:             input.Date,
		Time:             input.Time,
		Venue:            input.Venue,
		Description:      input.Description,
		RegistrationOpen: input.IsRegistrationOpen(),
	}
	if err := h.upcoming.Create(c.Request.Context(), event); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, event)
}

// PUT /api/events/upcoming/:id
func (h *EventHandler) UpdateUpcomingEvent(c *gin.Context) {
	id, ok := pathID(c, "event")
	if !ok {
		return
	}
	var input entities.UpdateUpcomingEventInput
	if !bindJSON(c, &input) || !validateInput(c, &input) {
		return
	}

	ctx := c.Request.Context()
	event, err := h.upcoming.GetByID(ctx, id)
	if err != nil {
		response.Error(c, notFoundAs(err, "Upcoming event not found"))
		return
	}
	input.Apply(event)
	if err := h.upcoming.Update(ctx, event); err != nil {
		response.Error(c, notFoundAs(err, "Upcoming event not found"))
		return
	}
	response.Success(c, http.StatusOK, event)
}

// DELETE /api/events/upcoming/:id
func (h *EventHandler) DeleteUpcomingEvent(c *gin.Context) {
	id, ok := pathID(c, "event")
	if !ok {
		return
	}
	if err := h.upcoming.SoftDelete(c.Request.Context(), id); err != nil {
		response.Error(c, notFoundAs(err, "Upcoming event not found"))
		return
	}
	response.Message(c, http.StatusOK, "Upcoming event deleted successfully")
}
