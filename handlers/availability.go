package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"meetplan/config"
	"meetplan/models"
	"meetplan/services/availability"
	"meetplan/services/meeting"
	"meetplan/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// availabilityCacheTTL keeps repeated identical queries off the engine while
// staying fresh enough that a newly created event is picked up quickly.
const availabilityCacheTTL = 60 * time.Second

// availabilityRequest is the payload for POST /api/availability.
type availabilityRequest struct {
	ParticipantIDs  []string  `json:"participantIds" binding:"required"`
	Start           time.Time `json:"start" binding:"required"`
	End             time.Time `json:"end" binding:"required"`
	DurationMinutes int       `json:"durationMinutes"`
	StepMinutes     int       `json:"stepMinutes"`
	WorkStartHour   int       `json:"workStartHour"`
	WorkEndHour     int       `json:"workEndHour"`
}

// AvailabilityHandler computes conflict-free slots for explicit participants
// without planning anything.
type AvailabilityHandler struct {
	Planner meeting.PlannerService
}

func NewAvailabilityHandler(planner meeting.PlannerService) *AvailabilityHandler {
	return &AvailabilityHandler{Planner: planner}
}

func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = config.AppConfig.DefaultDurationMinutes
	}

	cacheKey := availabilityCacheKey(req)
	cache := utils.GetCacheClient()
	if cached, err := cache.Get(c.Request.Context(), cacheKey).Result(); err == nil {
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	window := models.SearchWindow{
		Start:           req.Start,
		End:             req.End,
		WorkStartHour:   req.WorkStartHour,
		WorkEndHour:     req.WorkEndHour,
		StepMinutes:     req.StepMinutes,
		DurationMinutes: req.DurationMinutes,
	}

	slots, err := h.Planner.GetAvailability(c.Request.Context(), req.ParticipantIDs, window)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidWindow) ||
			errors.Is(err, availability.ErrInvalidDuration) ||
			errors.Is(err, availability.ErrInvalidStep) ||
			errors.Is(err, availability.ErrInvalidWorkHours) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Availability query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	body := gin.H{
		"slots":     slots,
		"count":     len(slots),
		"formatted": availability.FormatSlotsForSelection(slots, availability.DefaultSelectionLimit),
	}
	if raw, err := json.Marshal(body); err == nil {
		if err := cache.Set(c.Request.Context(), cacheKey, raw, availabilityCacheTTL).Err(); err != nil {
			logger.Warn("Failed to cache availability response", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, body)
}

func availabilityCacheKey(req availabilityRequest) string {
	raw, _ := json.Marshal(req)
	sum := sha256.Sum256(raw)
	return "availability:" + hex.EncodeToString(sum[:])
}
