package handlers

import (
	"net/http"

	eventTypeRepoPkg "meetplan/database/repository/eventtype"
	"meetplan/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventTypeHandler serves the event type catalogue endpoints.
type EventTypeHandler struct {
	Repo eventTypeRepoPkg.EventTypeRepository
}

func NewEventTypeHandler(repo eventTypeRepoPkg.EventTypeRepository) *EventTypeHandler {
	return &EventTypeHandler{Repo: repo}
}

// CreateEventTypeHandler handles POST /event-types.
func (h *EventTypeHandler) CreateEventTypeHandler(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	et := &models.EventType{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.Repo.Create(et); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, et)
}

// GetAllEventTypesHandler handles GET /event-types.
func (h *EventTypeHandler) GetAllEventTypesHandler(c *gin.Context) {
	types, err := h.Repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, types)
}

// DeleteEventTypeHandler handles DELETE /event-types/delete/:id.
func (h *EventTypeHandler) DeleteEventTypeHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event type deleted"})
}
