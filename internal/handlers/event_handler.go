package handlers

import (
	"github.com/gin-gonic/gin"

	eventdomain "github.com/BruksfildServices01/event-catering/internal/domain/event"
	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/httpresp"
	"github.com/BruksfildServices01/event-catering/internal/middleware"
	"github.com/BruksfildServices01/event-catering/internal/models"
	"github.com/BruksfildServices01/event-catering/internal/usecase/event"
)

type EventHandler struct {
	events *event.Service
}

func NewEventHandler(events *event.Service) *EventHandler {
	return &EventHandler{events: events}
}

// EventRequest serves create and update; absent fields stay nil.
type EventRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Category        *string `json:"category"`
	Date            *string `json:"date"`
	StartTime       *string `json:"startTime"`
	EndTime         *string `json:"endTime"`
	Venue           *string `json:"venue"`
	AdditionalNotes *string `json:"additionalNotes"`
	HasCleaningFee  *bool   `json:"hasCleaningFee"`
	AdditionalHours *int    `json:"additionalHours"`
}

type EventStatusRequest struct {
	Status string `json:"status"`
}

func (h *EventHandler) List(c *gin.Context) {
	page, limit := httpresp.Paging(c)

	events, total, err := h.events.List(c.Request.Context(), middleware.MustPrincipal(c), eventdomain.ListFilter{
		Status:   models.EventStatus(c.Query("status")),
		Category: models.EventCategory(c.Query("category")),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, events, page, limit, total)
}

func (h *EventHandler) Get(c *gin.Context) {
	ev, err := h.events.Load(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ev)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req EventRequest
	if !bindJSON(c, &req) {
		return
	}

	ev, err := h.events.Create(c.Request.Context(), middleware.MustPrincipal(c), event.Input(req))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, ev)
}

func (h *EventHandler) Update(c *gin.Context) {
	var req EventRequest
	if !bindJSON(c, &req) {
		return
	}

	ev, err := h.events.Update(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"), event.Input(req))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ev)
}

func (h *EventHandler) ChangeStatus(c *gin.Context) {
	var req EventStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	ev, err := h.events.ChangeStatus(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"), req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ev)
}

func (h *EventHandler) UpdateImage(c *gin.Context) {
	f, ok := formImage(c, "image")
	if !ok {
		return
	}
	defer f.Close()

	ev, err := h.events.UpdateImage(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ev)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.events.Delete(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
