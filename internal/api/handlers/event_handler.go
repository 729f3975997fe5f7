package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lkcs/lkcs-backend/internal/services"
)

type EventHandler struct {
	svc services.EventService
}

func NewEventHandler(svc services.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

type eventRequest struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Date  string `json:"date"`
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeRawError(c, err, "Failed to fetch events")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req eventRequest
	_ = c.ShouldBindJSON(&req)

	ev, err := h.svc.Create(c.Request.Context(), req.Title, req.Desc, req.Date)
	if err != nil {
		writeRawError(c, err, "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, ev)
}

func (h *EventHandler) Update(c *gin.Context) {
	var req eventRequest
	_ = c.ShouldBindJSON(&req)

	ev, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Title, req.Desc, req.Date)
	if err != nil {
		writeRawError(c, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeRawError(c, err, "Failed to delete event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
