package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/services"
)

// StatsHandler handles mentor statistics endpoints
type StatsHandler struct {
	service services.StatsServiceInterface
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(service services.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetMentorStats handles GET /api/v1/mentors/:id/stats
func (h *StatsHandler) GetMentorStats(c *gin.Context) {
	mentorID := c.Param("id")
	if mentorID == "" {
		respondError(c, http.StatusBadRequest, "Invalid mentor ID", nil)
		return
	}

	stats, err := h.service.GetMentorStats(c.Request.Context(), mentorID)
	if err != nil {
		respondDomainError(c, err, "Failed to compute mentor stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
