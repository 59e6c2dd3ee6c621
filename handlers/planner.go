package handlers

import (
	"net/http"

	"meetplan/models"
	"meetplan/services/meeting"
	"meetplan/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlannerHandler exposes the meeting orchestrator over HTTP.
type PlannerHandler struct {
	Planner meeting.PlannerService
}

func NewPlannerHandler(planner meeting.PlannerService) *PlannerHandler {
	return &PlannerHandler{Planner: planner}
}

// PlanMeetingHandler handles POST /api/planner/plan. The body carries a
// natural-language request; the response is the full planning outcome.
func (h *PlannerHandler) PlanMeetingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	result, err := h.Planner.PlanMeeting(c.Request.Context(), req)
	if err != nil {
		logger.Error("Meeting planning failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !result.Success {
		// A well-formed request that cannot be satisfied is not a server error.
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
