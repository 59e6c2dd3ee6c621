package handlers

import (
	"net/http"
	"time"

	eventRepoPkg "meetplan/database/repository/event"
	"meetplan/models"
	"meetplan/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventHandler serves the calendar event endpoints.
type EventHandler struct {
	Repo eventRepoPkg.EventRepository
}

func NewEventHandler(repo eventRepoPkg.EventRepository) *EventHandler {
	return &EventHandler{Repo: repo}
}

// CreateEventHandler handles POST /events.
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		UserID string    `json:"userId" binding:"required"`
		TypeID string    `json:"typeId"`
		Title  string    `json:"title" binding:"required"`
		Start  time.Time `json:"start" binding:"required"`
		End    time.Time `json:"end" binding:"required"`
		AllDay bool      `json:"allDay"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	event := &models.CalendarEvent{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		TypeID:    req.TypeID,
		Title:     req.Title,
		Start:     req.Start,
		End:       req.End,
		AllDay:    req.AllDay,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.Repo.Create(event); err != nil {
		logger.Error("Failed to create event", zap.String("userID", req.UserID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, event)
}

// GetEventByIDHandler handles GET /events/id/:id.
func (h *EventHandler) GetEventByIDHandler(c *gin.Context) {
	id := c.Param("id")
	event, err := h.Repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

// GetUserEventsHandler handles GET /events/user/:userId. An optional
// from/to query pair narrows the result to events overlapping the range.
func (h *EventHandler) GetUserEventsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.Param("userId")

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" && toStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from timestamp: " + err.Error()})
			return
		}
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to timestamp: " + err.Error()})
			return
		}
		events, err := h.Repo.GetOverlapping(userID, from, to)
		if err != nil {
			logger.Error("Overlap query failed", zap.String("userID", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, events)
		return
	}

	events, err := h.Repo.GetByUser(userID)
	if err != nil {
		logger.Error("User events query failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

// UpdateEventHandler handles PUT /events/update/:id.
func (h *EventHandler) UpdateEventHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	event, err := h.Repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Title  string     `json:"title"`
		Start  *time.Time `json:"start"`
		End    *time.Time `json:"end"`
		AllDay *bool      `json:"allDay"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Start != nil {
		event.Start = *req.Start
	}
	if req.End != nil {
		event.End = *req.End
	}
	if req.AllDay != nil {
		event.AllDay = *req.AllDay
	}
	event.UpdatedAt = time.Now()

	if err := h.Repo.Update(event); err != nil {
		logger.Error("Update error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEventHandler handles DELETE /events/delete/:id.
func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Repo.Delete(id); err != nil {
		logger.Error("Delete error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
